package entities

import "time"

// OrderStatus represents the lifecycle of a checkout order.
//
// Domain notes:
//   - An order is created (priced server-side) before the buyer ever pays.
//   - The only transition is created -> paid, and it happens exclusively
//     inside the atomic session commit. Nothing else writes order status.

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
)

// Order is the authoritative price ledger entry persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (the gateway order id, "order_...")
//
// Monetary representation:
//   - AmountPaise is the charge in the smallest currency unit. It is written
//     once at order creation from the server price table and read back as
//     ground truth at verification time. Client-supplied amounts are ignored.
type Order struct {
	ID          string      `json:"id"`
	AmountPaise int64       `json:"amount_paise"`
	Currency    string      `json:"currency"`
	Tier        Tier        `json:"tier"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}
