package routes

import (
	"github.com/shashiranjanraj/storefront/app/controllers"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// RegisterWeb mounts every page of the back office.
func RegisterWeb(r *router.Router) {
	store := controllers.NewStoreController()
	reports := controllers.NewReportController()
	questions := controllers.NewQuestionController()

	r.Get("/", "home", store.Home)
	r.Get("/customers", "customer_overview", store.Customers)
	r.Get("/products", "product_overview", store.Products)
	r.Get("/orders/{customerID}", "order_details", store.OrderDetails)

	r.Get("/customers_with_orders", "customers_with_orders", reports.CustomersWithOrders)
	r.Get("/customer_revenue", "customer_revenue", reports.CustomerRevenue)
	r.Get("/best_selling_products", "best_selling_products", reports.BestSellingProducts)
	r.Get("/high_spending_customers", "high_spending_customers", reports.HighSpendingCustomers)

	r.Get("/questions", "questions", questions.Index)
	r.Get("/questions/{section}", "questions_detail", questions.Show)
}
