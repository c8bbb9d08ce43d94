package repositories

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/orm"
	"gorm.io/gorm"
)

// CustomerRepository handles database operations for Customer.
type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// FindByID looks up a customer by primary key.
// Returns ErrNotFound when the id matches no customer.
func (r *CustomerRepository) FindByID(id uint) (models.Customer, error) {
	var customer models.Customer
	err := orm.DB().Model(&models.Customer{}).Where("id = ?", id).First(&customer)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return customer, fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return customer, err
}

// All returns every customer ordered by primary key.
func (r *CustomerRepository) All() ([]models.Customer, error) {
	var customers []models.Customer
	err := orm.DB().Model(&models.Customer{}).Order("id").Get(&customers)
	return customers, err
}

// OrderCounts returns order counts keyed by customer id, in one query.
func (r *CustomerRepository) OrderCounts() (map[uint]int64, error) {
	var rows []struct {
		CustomerID uint
		N          int64
	}
	err := orm.DB().Table("orders").
		Select("customer_id, COUNT(id) AS n").
		Group("customer_id").
		Scan(&rows)
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CustomerID] = row.N
	}
	return counts, nil
}

// Create persists a new customer record.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return orm.DB().Create(customer)
}

// Update persists changes to an existing customer.
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return orm.DB().Save(customer)
}

// Delete removes a customer; orders and their items go with it.
func (r *CustomerRepository) Delete(customer *models.Customer) error {
	return orm.DB().Delete(customer)
}
