package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status pesanan yang dikenal. Perbandingan selalu case-insensitive karena
// backend tidak konsisten soal kapitalisasi.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// Order mendefinisikan pesanan sebagaimana dikembalikan endpoint seller.
type Order struct {
	ID        int64           `json:"id"`
	Buyer     string          `json:"buyer"`
	Seller    string          `json:"seller"`
	Product   OrderProduct    `json:"product"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderProduct adalah subset produk yang disematkan pada pesanan.
type OrderProduct struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// HasStatus membandingkan status pesanan tanpa mempedulikan kapitalisasi.
func (o Order) HasStatus(status string) bool {
	return strings.EqualFold(o.Status, status)
}
