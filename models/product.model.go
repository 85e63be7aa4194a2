package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product mendefinisikan struktur untuk produk.
// Harga dipetakan ke decimal karena backend kadang menserialisasi kolom
// DECIMAL sebagai string dan kadang sebagai angka.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image,omitempty"`
	Seller      *User           `json:"seller,omitempty"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at,omitempty"`
}

// StockLevel mengembalikan kategori stok untuk pewarnaan tabel:
// "out" (habis), "low" (kurang dari 10), atau "ok".
func (p Product) StockLevel() string {
	switch {
	case p.Stock == 0:
		return "out"
	case p.Stock < 10:
		return "low"
	default:
		return "ok"
	}
}

// ProductPayload adalah body mutasi produk yang dikirim ke API.
type ProductPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image,omitempty"`
}

// ProductForm menampung input mentah form produk. Harga dan stok diterima
// sebagai string agar pesan kesalahan per field bisa diberikan sebelum parsing.
type ProductForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Stock       string `form:"stock"`
	Image       string `form:"existing_image"`
}

// Validate memeriksa form secara sinkron dan mengembalikan pesan kesalahan
// per field. Form yang tidak valid tidak boleh menghasilkan permintaan jaringan.
func (f ProductForm) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Nama produk wajib diisi"
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil || price.LessThanOrEqual(decimal.Zero) {
		errs["price"] = "Harga harus lebih dari 0"
	}

	if stock, err := parseStock(f.Stock); err != nil || stock < 0 {
		errs["stock"] = "Stok tidak boleh negatif"
	}

	return errs
}

// Payload mengubah form yang sudah tervalidasi menjadi payload API.
func (f ProductForm) Payload() ProductPayload {
	price, _ := decimal.NewFromString(strings.TrimSpace(f.Price))
	stock, _ := parseStock(f.Stock)
	return ProductPayload{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Price:       price,
		Stock:       stock,
		Image:       f.Image,
	}
}

func parseStock(raw string) (int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, errStockNotInteger
	}
	return int(d.IntPart()), nil
}

type formError string

func (e formError) Error() string { return string(e) }

const errStockNotInteger = formError("stok harus bilangan bulat")
