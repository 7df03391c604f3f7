package entities

import "time"

// StatusHistoryEntry is one append-only audit row for an OS status change.
// Entries are never updated or deleted once written.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI order_id-index: order_id

type StatusHistoryEntry struct {
	ID        string
	OrderID   string
	Status    OrderStatus
	Notes     string
	Actor     string
	CreatedAt time.Time
}
