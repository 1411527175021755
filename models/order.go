package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical nursery flow: plants ship seasonally)
	OrderStatusPending     OrderStatus = "pending"       // Order placed, awaiting confirmation
	OrderStatusConfirmed   OrderStatus = "confirmed"     // Confirmed by the nursery
	OrderStatusReadyToShip OrderStatus = "ready_to_ship" // Packed and ready for dispatch
	OrderStatusShipped     OrderStatus = "shipped"       // Out for delivery
	OrderStatusDelivered   OrderStatus = "delivered"     // Customer received the plants
	OrderStatusCancelled   OrderStatus = "cancelled"     // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderRef      string        `gorm:"uniqueIndex;not null" json:"order_ref"`
	SessionID     string        `gorm:"type:uuid;index" json:"session_id"`
	CustomerName  string        `gorm:"not null" json:"customer_name"`
	CustomerEmail string        `gorm:"not null" json:"customer_email"`
	Phone         string        `json:"phone"`
	Street        string        `json:"street"`
	PostalCode    string        `json:"postal_code"`
	City          string        `json:"city"`
	Country       string        `json:"country"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64       `json:"subtotal"`
	ShippingCost  float64       `json:"shipping_cost"`
	VATAmount     float64       `json:"vat_amount"` // included in TotalAmount, not added on top
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	OrderID   uint         `gorm:"index" json:"order_id"`
	Kind      LineItemKind `gorm:"type:VARCHAR(10)" json:"kind"`
	RefID     string       `gorm:"type:uuid" json:"ref_id"` // cultivar or product id
	Name      string       `json:"name"`
	AgeYears  int          `json:"age_years,omitempty"`
	Size      string       `json:"size,omitempty"`
	UnitPrice float64      `json:"unit_price"`
	Quantity  int          `json:"quantity"`
}
