package models

import "github.com/shopspring/decimal"

// CartItem mendefinisikan satu baris keranjang beserta snapshot produknya.
type CartItem struct {
	ID       int64       `json:"id"`
	Quantity int         `json:"quantity"`
	Product  CartProduct `json:"product"`
}

// CartProduct adalah subset produk yang disematkan pada item keranjang.
type CartProduct struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
}

// Subtotal menghitung harga × jumlah untuk satu baris.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CheckoutRequest adalah body untuk POST /checkout.
type CheckoutRequest struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []CheckoutItem  `json:"items"`
}

// CheckoutItem memetakan satu item keranjang ke baris pesanan.
type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
