// Package kernel contains the shared value objects of the ordering domain:
// UUID identities and the Money type used wherever prices are compared or
// combined.
//
// Both types are immutable. Their zero values are invalid (an unconstructed
// UUID, a Money with no amount) and are detected by validation rather than
// causing failures at use sites.
package kernel
