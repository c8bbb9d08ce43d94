package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order belongs to exactly one customer. OrderDate is set on insert and
// never written again (`<-:create`).
type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerID      uint      `gorm:"not null;index" json:"customer_id"`
	OrderDate       time.Time `gorm:"not null;autoCreateTime;<-:create" json:"order_date"`
	ShippingAddress string    `gorm:"type:text" json:"shipping_address"`
	BillingAddress  string    `gorm:"type:text" json:"billing_address"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TotalAmount sums TotalPrice over the loaded items; zero for an order
// with no items. Items must have been preloaded.
func (o Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// OrderItem binds one product, a quantity, and the unit price captured
// at order time.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Product Product `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

// TotalPrice is quantity times unit price, exact decimal.
func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
