package seeders

import (
	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	Register("store", SeedStore)
}

// SeedStore inserts a small demo dataset. Idempotent: skips when any
// customer already exists.
func SeedStore(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Espresso Beans 1kg", Description: "Dark roast arabica", Price: decimal.RequireFromString("10.00"), Category: "Coffee", Inventory: 120},
		{Name: "Filter Papers", Description: "Size 4, 100 pcs", Price: decimal.RequireFromString("5.00"), Category: "Accessories", Inventory: 300},
		{Name: "Ceramic Dripper", Description: "V-shaped pour-over cone", Price: decimal.RequireFromString("24.50"), Category: "Accessories", Inventory: 45},
		{Name: "Travel Mug", Description: "Insulated 350ml", Price: decimal.RequireFromString("18.90"), Category: "Drinkware", Inventory: 0},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{FirstName: "Anna", LastName: "Abel", Email: "anna.abel@example.com", Address: "Hauptstraße 1", City: "Berlin", PostalCode: "10115", Country: "Germany", PhoneNumber: "+49301234567"},
		{FirstName: "Bruno", LastName: "Berg", Email: "bruno.berg@example.com", Address: "Marktplatz 8", City: "Hamburg", PostalCode: "20095", Country: "Germany", PhoneNumber: "+49407654321"},
		{FirstName: "Clara", LastName: "Conrad", Email: "clara.conrad@example.com", Address: "Ringstraße 12", City: "Vienna", PostalCode: "1010", Country: "Austria", PhoneNumber: "+4315550123"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	// Anna: one order of 3x10.00 + 1x5.00 = 35.00 (below the high-spend
	// threshold). Bruno: one order of 5x10.00 = 50.00 (above it).
	// Clara places no orders and must still show up in revenue reports.
	orders := []models.Order{
		{
			CustomerID:      customers[0].ID,
			ShippingAddress: customers[0].Address,
			BillingAddress:  customers[0].Address,
			Items: []models.OrderItem{
				{ProductID: products[0].ID, Quantity: 3, Price: products[0].Price},
				{ProductID: products[1].ID, Quantity: 1, Price: products[1].Price},
			},
		},
		{
			CustomerID:      customers[1].ID,
			ShippingAddress: customers[1].Address,
			BillingAddress:  customers[1].Address,
			Items: []models.OrderItem{
				{ProductID: products[0].ID, Quantity: 5, Price: products[0].Price},
			},
		},
	}
	return db.Create(&orders).Error
}
