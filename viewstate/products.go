package viewstate

import (
	"context"

	"udoo-web/client"
	"udoo-web/models"
)

// Products adalah state daftar produk, dipakai oleh etalase maupun halaman
// kelola produk.
type Products struct {
	api  *client.Client
	sess models.Session

	Items  []models.Product
	Err    string
	Loaded bool
}

// NewProducts membuat state daftar produk untuk sesi yang diberikan.
func NewProducts(api *client.Client, sess models.Session) *Products {
	return &Products{api: api, sess: sess}
}

// Fetch memuat katalog publik.
func (v *Products) Fetch(ctx context.Context) {
	v.apply(v.api.Products(ctx, v.sess.Token))
}

// FetchManaged memuat daftar produk lewat prefix role yang sudah teresolusi.
func (v *Products) FetchManaged(ctx context.Context) {
	v.apply(v.api.ManagedProducts(ctx, v.sess.Token, v.sess.User.Role))
}

func (v *Products) apply(items []models.Product, err error) {
	if err != nil {
		v.Err = "Gagal mengambil data produk."
		return
	}
	v.Items = items
	v.Err = ""
	v.Loaded = true
}

// Find mencari produk berdasarkan id pada daftar yang sudah dimuat.
func (v *Products) Find(id int64) (models.Product, bool) {
	for _, p := range v.Items {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// PageCount menghitung jumlah halaman dari daftar yang sudah terambil penuh.
// Ini murni kosmetik; tidak ada paginasi di backend.
func (v *Products) PageCount(pageSize int) int {
	if pageSize <= 0 || len(v.Items) == 0 {
		return 1
	}
	return (len(v.Items) + pageSize - 1) / pageSize
}

// Page memotong daftar untuk halaman ke-n (mulai dari 1). Nomor halaman di
// luar rentang dijepit ke rentang yang valid.
func (v *Products) Page(n, pageSize int) []models.Product {
	if pageSize <= 0 {
		return v.Items
	}
	if n < 1 {
		n = 1
	}
	if max := v.PageCount(pageSize); n > max {
		n = max
	}

	start := (n - 1) * pageSize
	if start >= len(v.Items) {
		return nil
	}
	end := start + pageSize
	if end > len(v.Items) {
		end = len(v.Items)
	}
	return v.Items[start:end]
}
