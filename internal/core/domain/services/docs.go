// Package services contains stateless domain services of the ordering core.
// OrderProcessor sequences the multi-entity logic that does not belong to a
// single aggregate: confirming order prices against the restaurant catalog,
// driving lifecycle transitions, and producing the domain events downstream
// coordination consumes.
package services
