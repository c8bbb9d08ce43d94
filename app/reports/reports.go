// Package reports implements the aggregate reporting queries of the back
// office. Each report runs a single parameterized join query fetching flat
// rows, then aggregates in Go. Money is never summed in SQL: several of the
// supported drivers degrade decimal SUM() to float64, and report totals are
// compared against an exact threshold.
package reports

import (
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/orm"
	"github.com/shopspring/decimal"
)

// SpendThreshold is the fixed business constant for the high-spending
// customers report. Customers qualify with total_spent strictly above it.
var SpendThreshold = decimal.NewFromInt(40)

const cacheTTL = time.Minute

// CustomerName is one row of the customers-with-orders report.
type CustomerName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CustomerRevenueRow is one row of the customer-revenue report. Customers
// with no orders appear with zero orders and zero revenue.
type CustomerRevenueRow struct {
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// ProductSalesRow is one row of the best-selling-products report.
// Customers holds the comma-joined distinct full names of buyers.
type ProductSalesRow struct {
	ProductID     uint   `json:"product_id"`
	ProductName   string `json:"product_name"`
	OrderCount    int    `json:"order_count"`
	TotalQuantity int    `json:"total_quantity_ordered"`
	Customers     string `json:"customers"`
}

// CustomerSpendRow is one row of the high-spending-customers report.
type CustomerSpendRow struct {
	FullName   string          `json:"full_name"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// OrderSummary pairs an order with its computed total.
type OrderSummary struct {
	Order models.Order
	Total decimal.Decimal
}

// OrderDetails is the per-customer order history with the grand total
// spent across all orders.
type OrderDetails struct {
	Customer   models.Customer
	Orders     []OrderSummary
	GrandTotal decimal.Decimal
}

// Service exposes the five report operations. All are read-only.
type Service struct {
	customers *repositories.CustomerRepository
	orders    *repositories.OrderRepository
}

func NewService() *Service {
	return &Service{
		customers: repositories.NewCustomerRepository(),
		orders:    repositories.NewOrderRepository(),
	}
}

// customerItemRow is the flat shape shared by the revenue and
// high-spending reports: one row per (customer, order, item) with NULLs
// from the outer joins for customers without orders or items.
type customerItemRow struct {
	CustomerID uint
	FirstName  string
	LastName   string
	OrderID    sql.NullInt64
	Quantity   sql.NullInt64
	Price      decimal.NullDecimal
}

func customerItemRows() ([]customerItemRow, error) {
	var rows []customerItemRow
	err := orm.DB().Table("customers").
		Select("customers.id AS customer_id, customers.first_name, customers.last_name, orders.id AS order_id, order_items.quantity, order_items.price").
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id").
		Order("customers.id").
		Scan(&rows)
	return rows, err
}

// CustomersWithOrders returns the distinct name pairs of customers who
// placed at least one order. Two customers sharing a name collapse to
// one row; pairs come back in the order the first bearer was inserted.
func (s *Service) CustomersWithOrders() ([]CustomerName, error) {
	out := []CustomerName{}
	err := cache.Remember("reports:customers_with_orders", cacheTTL, &out, func() error {
		var rows []struct {
			FirstName string
			LastName  string
		}
		err := orm.DB().Table("customers").
			Select("customers.first_name, customers.last_name, MIN(customers.id) AS first_id").
			Joins("JOIN orders ON orders.customer_id = customers.id").
			Group("customers.first_name, customers.last_name").
			Order("first_id").
			Scan(&rows)
		if err != nil {
			return err
		}

		out = out[:0]
		for _, row := range rows {
			out = append(out, CustomerName{FirstName: row.FirstName, LastName: row.LastName})
		}
		return nil
	})
	return out, err
}

// CustomerRevenue returns every customer with their order count and total
// revenue. Customers without orders appear with zeros, never dropped.
func (s *Service) CustomerRevenue() ([]CustomerRevenueRow, error) {
	out := []CustomerRevenueRow{}
	err := cache.Remember("reports:customer_revenue", cacheTTL, &out, func() error {
		rows, err := customerItemRows()
		if err != nil {
			return err
		}

		out = out[:0]
		for _, agg := range aggregateSpend(rows) {
			out = append(out, CustomerRevenueRow{
				FirstName:    agg.firstName,
				LastName:     agg.lastName,
				TotalOrders:  len(agg.orderIDs),
				TotalRevenue: agg.spent,
			})
		}
		return nil
	})
	return out, err
}

// HighSpendingCustomers returns (full name, total spent) for customers
// strictly above SpendThreshold, highest spender first. A customer at
// exactly the threshold is excluded.
func (s *Service) HighSpendingCustomers() ([]CustomerSpendRow, error) {
	out := []CustomerSpendRow{}
	err := cache.Remember("reports:high_spending_customers", cacheTTL, &out, func() error {
		rows, err := customerItemRows()
		if err != nil {
			return err
		}

		out = out[:0]
		for _, agg := range aggregateSpend(rows) {
			if agg.spent.GreaterThan(SpendThreshold) {
				out = append(out, CustomerSpendRow{
					FullName:   agg.firstName + " " + agg.lastName,
					TotalSpent: agg.spent,
				})
			}
		}

		// Descending by spend; equal spenders keep insertion order.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalSpent.GreaterThan(out[j].TotalSpent)
		})
		return nil
	})
	return out, err
}

// BestSellingProducts returns every product ordered at least once, with
// its distinct order count, total quantity, and the distinct full names
// of its buyers. Ordered by order count descending; ties keep product ID
// order. Products never ordered are excluded.
func (s *Service) BestSellingProducts() ([]ProductSalesRow, error) {
	out := []ProductSalesRow{}
	err := cache.Remember("reports:best_selling_products", cacheTTL, &out, func() error {
		var rows []struct {
			ProductID   uint
			ProductName string
			OrderID     uint
			Quantity    int
			FirstName   string
			LastName    string
		}
		err := orm.DB().Table("products").
			Select("products.id AS product_id, products.name AS product_name, order_items.order_id, order_items.quantity, customers.first_name, customers.last_name").
			Joins("JOIN order_items ON order_items.product_id = products.id").
			Joins("JOIN orders ON orders.id = order_items.order_id").
			Joins("JOIN customers ON customers.id = orders.customer_id").
			Order("products.id, order_items.order_id").
			Scan(&rows)
		if err != nil {
			return err
		}

		type productAgg struct {
			row       ProductSalesRow
			orderIDs  map[uint]struct{}
			customers []string
			seen      map[string]struct{}
		}

		index := map[uint]*productAgg{}
		var order []uint

		for _, r := range rows {
			agg, ok := index[r.ProductID]
			if !ok {
				agg = &productAgg{
					row:      ProductSalesRow{ProductID: r.ProductID, ProductName: r.ProductName},
					orderIDs: map[uint]struct{}{},
					seen:     map[string]struct{}{},
				}
				index[r.ProductID] = agg
				order = append(order, r.ProductID)
			}

			agg.orderIDs[r.OrderID] = struct{}{}
			agg.row.TotalQuantity += r.Quantity

			name := r.FirstName + " " + r.LastName
			if _, dup := agg.seen[name]; !dup {
				agg.seen[name] = struct{}{}
				agg.customers = append(agg.customers, name)
			}
		}

		out = out[:0]
		for _, id := range order {
			agg := index[id]
			agg.row.OrderCount = len(agg.orderIDs)
			agg.row.Customers = strings.Join(agg.customers, ", ")
			out = append(out, agg.row)
		}

		sort.SliceStable(out, func(i, j int) bool {
			return out[i].OrderCount > out[j].OrderCount
		})
		return nil
	})
	return out, err
}

// OrderDetailsFor returns the customer's full order history and the grand
// total spent. Returns repositories.ErrNotFound (wrapped) when the id
// matches no customer.
func (s *Service) OrderDetailsFor(customerID uint) (*OrderDetails, error) {
	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ForCustomer(customerID)
	if err != nil {
		return nil, err
	}

	details := &OrderDetails{Customer: customer, GrandTotal: decimal.Zero}
	for _, order := range orders {
		total := order.TotalAmount()
		details.Orders = append(details.Orders, OrderSummary{Order: order, Total: total})
		details.GrandTotal = details.GrandTotal.Add(total)
	}
	return details, nil
}

// spendAgg accumulates one customer's orders and spend.
type spendAgg struct {
	firstName string
	lastName  string
	orderIDs  map[int64]struct{}
	spent     decimal.Decimal
}

// aggregateSpend folds the flat outer-join rows into one entry per
// customer, preserving the query's customer order. Customers with no
// orders end up with an empty order set and zero spend.
func aggregateSpend(rows []customerItemRow) []*spendAgg {
	index := map[uint]*spendAgg{}
	var out []*spendAgg

	for _, r := range rows {
		agg, ok := index[r.CustomerID]
		if !ok {
			agg = &spendAgg{
				firstName: r.FirstName,
				lastName:  r.LastName,
				orderIDs:  map[int64]struct{}{},
				spent:     decimal.Zero,
			}
			index[r.CustomerID] = agg
			out = append(out, agg)
		}

		if r.OrderID.Valid {
			agg.orderIDs[r.OrderID.Int64] = struct{}{}
		}
		if r.Quantity.Valid && r.Price.Valid {
			line := r.Price.Decimal.Mul(decimal.NewFromInt(r.Quantity.Int64))
			agg.spent = agg.spent.Add(line)
		}
	}

	return out
}
