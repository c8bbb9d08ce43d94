package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/reports"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/views"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

type StoreController struct {
	customers *repositories.CustomerRepository
	products  *repositories.ProductRepository
	reports   *reports.Service
}

func NewStoreController() *StoreController {
	return &StoreController{
		customers: repositories.NewCustomerRepository(),
		products:  repositories.NewProductRepository(),
		reports:   reports.NewService(),
	}
}

func (c *StoreController) Home(w http.ResponseWriter, _ *http.Request) {
	views.Render(w, http.StatusOK, "home.tmpl", struct{ Title string }{"Storefront"})
}

// customerRow decorates a customer with its order count for the list page.
type customerRow struct {
	models.Customer
	OrderCount int64
}

func (c *StoreController) Customers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.customers.All()
	if err != nil {
		c.fail(w, r, err)
		return
	}

	counts, err := c.customers.OrderCounts()
	if err != nil {
		c.fail(w, r, err)
		return
	}

	rows := make([]customerRow, 0, len(customers))
	for _, customer := range customers {
		rows = append(rows, customerRow{Customer: customer, OrderCount: counts[customer.ID]})
	}

	views.Render(w, http.StatusOK, "customers.tmpl", struct {
		Title     string
		Customers []customerRow
	}{"Customers", rows})
}

func (c *StoreController) Products(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.All()
	if err != nil {
		c.fail(w, r, err)
		return
	}

	views.Render(w, http.StatusOK, "products.tmpl", struct {
		Title    string
		Products []models.Product
	}{"Products", products})
}

// OrderDetails renders a customer's order history. An identifier that
// matches no customer is a 404, not a server error.
func (c *StoreController) OrderDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(router.Param(r, "customerID"), 10, 64)
	if err != nil {
		views.NotFound(w, "No such customer")
		return
	}

	details, err := c.reports.OrderDetailsFor(uint(id))
	if errors.Is(err, repositories.ErrNotFound) {
		views.NotFound(w, "No such customer")
		return
	}
	if err != nil {
		c.fail(w, r, err)
		return
	}

	views.Render(w, http.StatusOK, "order_details.tmpl", struct {
		Title   string
		Details *reports.OrderDetails
	}{"Orders for " + details.Customer.FullName(), details})
}

func (c *StoreController) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger.WithCtx(r.Context()).Error("store page failed", "path", r.URL.Path, "error", err)
	views.Error(w, http.StatusInternalServerError, "Internal Server Error")
}
