package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supply item statuses.
const (
	SupplyStatusInStock     = "In Stock"
	SupplyStatusToBuy       = "To Buy"
	SupplyStatusToBuyUrgent = "To Buy (Urgent)"
	SupplyStatusOrdered     = "Ordered"
	SupplyStatusReceived    = "Received"

	DefaultSupplyCategory = "General"
)

// SupplyStatuses lists every accepted supply item status.
var SupplyStatuses = []string{
	SupplyStatusInStock,
	SupplyStatusToBuy,
	SupplyStatusToBuyUrgent,
	SupplyStatusOrdered,
	SupplyStatusReceived,
}

// SupplyItem is one line of a user's household inventory or shopping list.
type SupplyItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Category  string
	Quantity  int
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NeedsPurchase reports whether the item is still on the shopping list.
func (i *SupplyItem) NeedsPurchase() bool {
	return i.Status == SupplyStatusToBuy || i.Status == SupplyStatusToBuyUrgent
}
