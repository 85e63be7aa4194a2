// Package viewstate menampung state per layar: daftar yang diambil dari API,
// pesan kesalahan, dan turunan murni seperti subtotal. Setiap layar memiliki
// salinannya sendiri; tidak ada cache lintas layar.
package viewstate

import (
	"context"

	"github.com/shopspring/decimal"

	"udoo-web/client"
	"udoo-web/models"
)

// Cart adalah state layar keranjang dan checkout.
type Cart struct {
	api  *client.Client
	sess models.Session

	Items  []models.CartItem
	Err    string
	Dialog string
	Loaded bool
}

// NewCart membuat state keranjang untuk sesi viewer yang diberikan.
func NewCart(api *client.Client, sess models.Session) *Cart {
	return &Cart{api: api, sess: sess}
}

// Fetch memuat ulang isi keranjang. Pada kegagalan, state sebelumnya
// dipertahankan dan Err diisi.
func (v *Cart) Fetch(ctx context.Context) {
	items, err := v.api.Cart(ctx, v.sess.Token)
	if err != nil {
		v.Err = "Terjadi kesalahan saat memuat keranjang."
		return
	}
	v.Items = items
	v.Err = ""
	v.Loaded = true
}

// Total menjumlahkan harga × jumlah seluruh baris. Keranjang kosong
// menghasilkan nol.
func (v *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range v.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Remove menghapus satu baris secara optimistis: setelah DELETE berhasil,
// daftar lokal difilter tanpa fetch ulang. Pada kegagalan daftar tidak
// disentuh dan Dialog diisi; item baru hilang pada fetch penuh berikutnya.
func (v *Cart) Remove(ctx context.Context, id int64) {
	if err := v.api.RemoveCartItem(ctx, v.sess.Token, id); err != nil {
		v.Dialog = "Gagal menghapus item keranjang."
		return
	}

	kept := v.Items[:0:0]
	for _, item := range v.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	v.Items = kept
}

// Checkout mengirim pesanan lalu mengosongkan keranjang. Checkout yang gagal
// membiarkan keranjang apa adanya; keranjang kosong adalah no-op.
func (v *Cart) Checkout(ctx context.Context) error {
	if len(v.Items) == 0 {
		return nil
	}

	req := models.CheckoutRequest{TotalAmount: v.Total()}
	for _, item := range v.Items {
		req.Items = append(req.Items, models.CheckoutItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	if err := v.api.Checkout(ctx, v.sess.Token, req); err != nil {
		return err
	}
	if err := v.api.ClearCart(ctx, v.sess.Token); err != nil {
		return err
	}

	v.Items = nil
	return nil
}
