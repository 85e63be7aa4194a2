package viewstate

import (
	"context"
	"net/http"
	"testing"

	"udoo-web/models"
)

const sellerOrders = `[
	{"id":1,"buyer":"Budi","product":{"id":1,"name":"Kopi Arabika"},"quantity":2,"total":"20000","status":"pending"},
	{"id":2,"buyer":"Sari","product":{"id":2,"name":"Teh Melati"},"quantity":1,"total":"5000","status":"Completed"},
	{"id":3,"buyer":"Andi","product":{"id":1,"name":"Kopi Arabika"},"quantity":1,"total":"10000","status":"PENDING"}
]`

func TestOrdersSplitIsCaseInsensitive(t *testing.T) {
	backend := newFakeBackend(t)
	backend.onData("GET /seller/orders", sellerOrders)

	v := NewOrders(backend.client(), testSession(models.RoleSeller))
	v.Fetch(context.Background())

	if len(v.Pending()) != 2 {
		t.Errorf("Pending = %d, want 2", len(v.Pending()))
	}
	if len(v.Completed()) != 1 {
		t.Errorf("Completed = %d, want 1", len(v.Completed()))
	}
}

func TestOrdersCompleteMutatesOnlyMatchingOrder(t *testing.T) {
	backend := newFakeBackend(t)
	backend.onData("GET /seller/orders", sellerOrders)
	backend.onData("POST /seller/orders/1/complete", `null`)

	v := NewOrders(backend.client(), testSession(models.RoleSeller))
	v.Fetch(context.Background())
	v.Complete(context.Background(), 1)

	if v.Dialog != "" {
		t.Fatalf("Dialog = %q", v.Dialog)
	}
	if !v.Items[0].HasStatus(models.OrderStatusCompleted) {
		t.Error("Pesanan 1 harus berstatus completed")
	}
	if !v.Items[2].HasStatus(models.OrderStatusPending) {
		t.Error("Pesanan 3 tidak boleh ikut berubah")
	}
	if n := backend.hitCount("GET /seller/orders"); n != 1 {
		t.Errorf("Complete tidak boleh fetch ulang; GET dipanggil %d kali", n)
	}
}

func TestOrdersCompleteFailure(t *testing.T) {
	backend := newFakeBackend(t)
	backend.onData("GET /seller/orders", sellerOrders)
	backend.onFail("POST /seller/orders/1/complete", http.StatusInternalServerError, "gagal")

	v := NewOrders(backend.client(), testSession(models.RoleSeller))
	v.Fetch(context.Background())
	v.Complete(context.Background(), 1)

	if v.Dialog != "Terjadi kesalahan saat update pesanan." {
		t.Errorf("Dialog = %q", v.Dialog)
	}
	if !v.Items[0].HasStatus(models.OrderStatusPending) {
		t.Error("Status tidak boleh berubah ketika POST gagal")
	}
}
