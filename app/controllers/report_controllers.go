package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/reports"
	"github.com/shashiranjanraj/storefront/app/views"
	"github.com/shashiranjanraj/storefront/pkg/logger"
)

type ReportController struct {
	service *reports.Service
}

func NewReportController() *ReportController {
	return &ReportController{service: reports.NewService()}
}

func (c *ReportController) CustomersWithOrders(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.CustomersWithOrders()
	if err != nil {
		c.fail(w, r, err)
		return
	}

	views.Render(w, http.StatusOK, "customers_with_orders.tmpl", struct {
		Title     string
		Customers []reports.CustomerName
	}{"Customers with Orders", rows})
}

func (c *ReportController) CustomerRevenue(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.CustomerRevenue()
	if err != nil {
		c.fail(w, r, err)
		return
	}

	views.Render(w, http.StatusOK, "customer_revenue.tmpl", struct {
		Title string
		Rows  []reports.CustomerRevenueRow
	}{"Customer Revenue", rows})
}

func (c *ReportController) BestSellingProducts(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.BestSellingProducts()
	if err != nil {
		c.fail(w, r, err)
		return
	}

	views.Render(w, http.StatusOK, "best_selling_products.tmpl", struct {
		Title string
		Rows  []reports.ProductSalesRow
	}{"Best-Selling Products", rows})
}

func (c *ReportController) HighSpendingCustomers(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.HighSpendingCustomers()
	if err != nil {
		c.fail(w, r, err)
		return
	}

	views.Render(w, http.StatusOK, "high_spending_customers.tmpl", struct {
		Title string
		Rows  []reports.CustomerSpendRow
	}{"High-Spending Customers", rows})
}

func (c *ReportController) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger.WithCtx(r.Context()).Error("report failed", "path", r.URL.Path, "error", err)
	views.Error(w, http.StatusInternalServerError, "Internal Server Error")
}
