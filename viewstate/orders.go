package viewstate

import (
	"context"

	"udoo-web/client"
	"udoo-web/models"
)

// Orders adalah state papan pesanan seller.
type Orders struct {
	api  *client.Client
	sess models.Session

	Items  []models.Order
	Err    string
	Dialog string
	Loaded bool
}

// NewOrders membuat state pesanan untuk sesi seller yang diberikan.
func NewOrders(api *client.Client, sess models.Session) *Orders {
	return &Orders{api: api, sess: sess}
}

// Fetch memuat ulang daftar pesanan seller.
func (v *Orders) Fetch(ctx context.Context) {
	orders, err := v.api.SellerOrders(ctx, v.sess.Token)
	if err != nil {
		v.Err = "Terjadi kesalahan saat memuat pesanan."
		return
	}
	v.Items = orders
	v.Err = ""
	v.Loaded = true
}

// Pending mengembalikan pesanan yang belum selesai.
func (v *Orders) Pending() []models.Order {
	return v.withStatus(models.OrderStatusPending)
}

// Completed mengembalikan pesanan yang sudah selesai.
func (v *Orders) Completed() []models.Order {
	return v.withStatus(models.OrderStatusCompleted)
}

func (v *Orders) withStatus(status string) []models.Order {
	var out []models.Order
	for _, o := range v.Items {
		if o.HasStatus(status) {
			out = append(out, o)
		}
	}
	return out
}

// Complete menandai pesanan selesai. Setelah POST berhasil, hanya status
// pesanan yang bersangkutan yang dimutasi lokal; tidak ada fetch ulang.
func (v *Orders) Complete(ctx context.Context, id int64) {
	if err := v.api.CompleteOrder(ctx, v.sess.Token, id); err != nil {
		v.Dialog = "Terjadi kesalahan saat update pesanan."
		return
	}

	for i := range v.Items {
		if v.Items[i].ID == id {
			v.Items[i].Status = models.OrderStatusCompleted
		}
	}
}
