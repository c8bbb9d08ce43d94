package repositories

import (
	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/orm"
)

// OrderRepository handles database operations for Order and OrderItem.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// ForCustomer returns the customer's orders with items preloaded,
// oldest first. An empty slice is a valid result.
func (r *OrderRepository) ForCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Where("customer_id = ?", customerID).
		Preload("Items.Product").
		Order("id").
		Get(&orders)
	return orders, err
}

// Create persists a new order with its items.
func (r *OrderRepository) Create(order *models.Order) error {
	return orm.DB().Create(order)
}

// Delete removes an order; its items go with it.
func (r *OrderRepository) Delete(order *models.Order) error {
	return orm.DB().Delete(order)
}
