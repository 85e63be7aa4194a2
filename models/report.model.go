package models

import "github.com/shopspring/decimal"

// Report mendefinisikan agregat laporan admin dari GET /admin/reports.
type Report struct {
	TotalUsers      int64           `json:"total_users"`
	TotalSellers    int64           `json:"total_sellers"`
	TotalProducts   int64           `json:"total_products"`
	TotalOrders     int64           `json:"total_orders"`
	CompletedOrders int64           `json:"completed_orders"`
	Revenue         decimal.Decimal `json:"revenue"`
	RecentCompleted []Order         `json:"recent_completed"`
}

// TopProduct adalah satu batang pada grafik produk terlaris.
type TopProduct struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}
