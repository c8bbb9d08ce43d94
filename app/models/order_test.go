package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderItemTotalPrice(t *testing.T) {
	item := OrderItem{Quantity: 3, Price: decimal.RequireFromString("10.00")}
	assert.Equal(t, "30.00", item.TotalPrice().StringFixed(2))
}

func TestOrderTotalAmount(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Quantity: 3, Price: decimal.RequireFromString("10.00")},
			{Quantity: 1, Price: decimal.RequireFromString("5.00")},
		},
	}
	assert.Equal(t, "35.00", order.TotalAmount().StringFixed(2))
}

func TestOrderTotalAmountEmpty(t *testing.T) {
	var order Order
	assert.True(t, order.TotalAmount().IsZero(), "order with no items must total zero")
}

func TestOrderTotalAmountExactDecimal(t *testing.T) {
	// 0.1 + 0.2 style sums must not drift the way float64 would.
	order := Order{
		Items: []OrderItem{
			{Quantity: 1, Price: decimal.RequireFromString("0.10")},
			{Quantity: 1, Price: decimal.RequireFromString("0.20")},
		},
	}
	assert.True(t, order.TotalAmount().Equal(decimal.RequireFromString("0.3")))
}

func TestCustomerFullName(t *testing.T) {
	c := Customer{FirstName: "Anna", LastName: "Abel"}
	assert.Equal(t, "Anna Abel", c.FullName())
}
