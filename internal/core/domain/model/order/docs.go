// Package order provides the purchase-order aggregate root and its
// satellites: line items, the delivery address value object, the status
// state machine and the lifecycle domain events.
//
// Key business rules:
//   - An order is economically validated exactly once, at initiation:
//     positive declared total, per-item price consistency against the
//     confirmed product price, and item subtotals (Money-added, so rounded
//     at every step) equal to the declared total.
//   - Status follows Pending -> Paid -> Approved on success, with
//     Paid -> Cancelling -> Cancelled and Pending -> Cancelled as the
//     cancellation paths. Any other transition is rejected and leaves the
//     order unchanged.
//   - Failure messages accumulate append-only across cancellation calls;
//     blank messages are filtered out, nothing is ever deduplicated or
//     cleared.
//
// Events carry an immutable by-value snapshot of the order taken at the
// moment of the transition, so consumers never observe later mutations.
package order
