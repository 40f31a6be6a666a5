package models

import "github.com/google/uuid"

// OverviewResponse is the dashboard headline card data
type OverviewResponse struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int64   `json:"total_orders"`
	TotalCustomers  int64   `json:"total_customers"`
	TotalProducts   int64   `json:"total_products"`
	PendingOrders   int64   `json:"pending_orders"`
	OpenTickets     int64   `json:"open_tickets"`
	RevenueThisWeek float64 `json:"revenue_this_week"`
	OrdersThisWeek  int64   `json:"orders_this_week"`
}

// MonthlyRevenuePoint is a single month in the revenue chart
type MonthlyRevenuePoint struct {
	Month   string  `json:"month"` // "2026-01"
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

type MonthlyRevenueResponse struct {
	Months []MonthlyRevenuePoint `json:"months"`
}

// TopProductRow is a best-seller entry ranked by units sold
type TopProductRow struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	UnitsSold int64     `json:"units_sold"`
	Revenue   float64   `json:"revenue"`
}

type TopProductsResponse struct {
	Products []TopProductRow `json:"products"`
}
