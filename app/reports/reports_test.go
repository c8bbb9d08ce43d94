package reports

import (
	"errors"
	"testing"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})

	return db
}

type fixture struct {
	anna, bruno, clara, dora models.Customer
	beans, papers, unsold    models.Product
}

// seedFixture builds the canonical dataset:
//
//	Anna:  one order,  3x10.00 + 1x5.00 = 35.00
//	Bruno: two orders, 5x10.00 = 50.00 and 2x5.00 = 10.00, total 60.00
//	Clara: no orders
//	Dora:  one order,  4x10.00 = 40.00 (exactly the threshold)
//
// "Dripper" is never ordered and must not surface in best-sellers.
func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{
		beans:  models.Product{Name: "Espresso Beans", Price: decimal.RequireFromString("10.00"), Inventory: 100},
		papers: models.Product{Name: "Filter Papers", Price: decimal.RequireFromString("5.00"), Inventory: 200},
		unsold: models.Product{Name: "Dripper", Price: decimal.RequireFromString("24.50"), Inventory: 10},
	}
	require.NoError(t, db.Create(&f.beans).Error)
	require.NoError(t, db.Create(&f.papers).Error)
	require.NoError(t, db.Create(&f.unsold).Error)

	f.anna = models.Customer{FirstName: "Anna", LastName: "Abel", Email: "anna@example.com"}
	f.bruno = models.Customer{FirstName: "Bruno", LastName: "Berg", Email: "bruno@example.com"}
	f.clara = models.Customer{FirstName: "Clara", LastName: "Conrad", Email: "clara@example.com"}
	f.dora = models.Customer{FirstName: "Dora", LastName: "Dietrich", Email: "dora@example.com"}
	for _, c := range []*models.Customer{&f.anna, &f.bruno, &f.clara, &f.dora} {
		require.NoError(t, db.Create(c).Error)
	}

	orders := []models.Order{
		{CustomerID: f.anna.ID, Items: []models.OrderItem{
			{ProductID: f.beans.ID, Quantity: 3, Price: f.beans.Price},
			{ProductID: f.papers.ID, Quantity: 1, Price: f.papers.Price},
		}},
		{CustomerID: f.bruno.ID, Items: []models.OrderItem{
			{ProductID: f.beans.ID, Quantity: 5, Price: f.beans.Price},
		}},
		{CustomerID: f.bruno.ID, Items: []models.OrderItem{
			{ProductID: f.papers.ID, Quantity: 2, Price: f.papers.Price},
		}},
		{CustomerID: f.dora.ID, Items: []models.OrderItem{
			{ProductID: f.beans.ID, Quantity: 4, Price: f.beans.Price},
		}},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}

	return f
}

func TestCustomersWithOrders(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	rows, err := NewService().CustomersWithOrders()
	require.NoError(t, err)

	// Clara has no orders; Bruno's two orders collapse to one row.
	assert.Equal(t, []CustomerName{
		{FirstName: "Anna", LastName: "Abel"},
		{FirstName: "Bruno", LastName: "Berg"},
		{FirstName: "Dora", LastName: "Dietrich"},
	}, rows)
}

func TestCustomersWithOrdersCollapsesSameName(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	// A second Anna Abel with her own order must not produce a second row.
	twin := models.Customer{FirstName: "Anna", LastName: "Abel", Email: "anna.abel.2@example.com"}
	require.NoError(t, db.Create(&twin).Error)
	order := models.Order{CustomerID: twin.ID, Items: []models.OrderItem{
		{ProductID: f.beans.ID, Quantity: 1, Price: f.beans.Price},
	}}
	require.NoError(t, db.Create(&order).Error)

	rows, err := NewService().CustomersWithOrders()
	require.NoError(t, err)
	assert.Equal(t, []CustomerName{
		{FirstName: "Anna", LastName: "Abel"},
		{FirstName: "Bruno", LastName: "Berg"},
		{FirstName: "Dora", LastName: "Dietrich"},
	}, rows)
}

func TestCustomerRevenueIncludesZeroOrderCustomers(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	rows, err := NewService().CustomerRevenue()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	byName := map[string]CustomerRevenueRow{}
	for _, row := range rows {
		byName[row.FirstName] = row
	}

	assert.Equal(t, 1, byName["Anna"].TotalOrders)
	assert.Equal(t, "35.00", byName["Anna"].TotalRevenue.StringFixed(2))

	assert.Equal(t, 2, byName["Bruno"].TotalOrders)
	assert.Equal(t, "60.00", byName["Bruno"].TotalRevenue.StringFixed(2))

	assert.Equal(t, 0, byName["Clara"].TotalOrders, "zero-order customer must still appear")
	assert.True(t, byName["Clara"].TotalRevenue.IsZero())

	assert.Equal(t, 1, byName["Dora"].TotalOrders)
	assert.Equal(t, "40.00", byName["Dora"].TotalRevenue.StringFixed(2))
}

func TestHighSpendingCustomersThreshold(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	rows, err := NewService().HighSpendingCustomers()
	require.NoError(t, err)

	// Anna (35) is below, Dora (exactly 40) is excluded by the strict
	// comparison, Clara (0) is far below. Only Bruno (60) qualifies.
	require.Len(t, rows, 1)
	assert.Equal(t, "Bruno Berg", rows[0].FullName)
	assert.Equal(t, "60.00", rows[0].TotalSpent.StringFixed(2))
}

func TestHighSpendingCustomersOrdering(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	// Push Anna past Bruno: 35 + 3x10 = 65.
	extra := models.Order{CustomerID: f.anna.ID, Items: []models.OrderItem{
		{ProductID: f.beans.ID, Quantity: 3, Price: f.beans.Price},
	}}
	require.NoError(t, db.Create(&extra).Error)

	rows, err := NewService().HighSpendingCustomers()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Anna Abel", rows[0].FullName)
	assert.Equal(t, "Bruno Berg", rows[1].FullName)
}

func TestBestSellingProducts(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	rows, err := NewService().BestSellingProducts()
	require.NoError(t, err)
	require.Len(t, rows, 2, "never-ordered products must be excluded")

	beans := rows[0]
	assert.Equal(t, "Espresso Beans", beans.ProductName)
	assert.Equal(t, 3, beans.OrderCount)
	assert.Equal(t, 12, beans.TotalQuantity)
	assert.Equal(t, "Anna Abel, Bruno Berg, Dora Dietrich", beans.Customers)

	papers := rows[1]
	assert.Equal(t, "Filter Papers", papers.ProductName)
	assert.Equal(t, 2, papers.OrderCount)
	assert.Equal(t, 3, papers.TotalQuantity)
	assert.Equal(t, "Anna Abel, Bruno Berg", papers.Customers)
}

func TestOrderDetailsFor(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	details, err := NewService().OrderDetailsFor(f.bruno.ID)
	require.NoError(t, err)

	assert.Equal(t, "Bruno Berg", details.Customer.FullName())
	require.Len(t, details.Orders, 2)
	assert.Equal(t, "50.00", details.Orders[0].Total.StringFixed(2))
	assert.Equal(t, "10.00", details.Orders[1].Total.StringFixed(2))
	assert.Equal(t, "60.00", details.GrandTotal.StringFixed(2))
}

func TestOrderDetailsForNoOrders(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	details, err := NewService().OrderDetailsFor(f.clara.ID)
	require.NoError(t, err)
	assert.Empty(t, details.Orders)
	assert.True(t, details.GrandTotal.IsZero())
}

func TestOrderDetailsForUnknownCustomer(t *testing.T) {
	newTestDB(t)

	_, err := NewService().OrderDetailsFor(4242)
	assert.True(t, errors.Is(err, repositories.ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestReportsOnEmptyDatabase(t *testing.T) {
	newTestDB(t)
	s := NewService()

	withOrders, err := s.CustomersWithOrders()
	require.NoError(t, err)
	assert.Empty(t, withOrders)

	revenue, err := s.CustomerRevenue()
	require.NoError(t, err)
	assert.Empty(t, revenue)

	best, err := s.BestSellingProducts()
	require.NoError(t, err)
	assert.Empty(t, best)

	spenders, err := s.HighSpendingCustomers()
	require.NoError(t, err)
	assert.Empty(t, spenders)
}
