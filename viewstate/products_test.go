package viewstate

import (
	"context"
	"net/http"
	"testing"

	"udoo-web/models"
)

const catalogThree = `[
	{"id":1,"name":"Kopi Arabika","price":"10000","stock":5},
	{"id":2,"name":"Teh Melati","price":"5000","stock":0},
	{"id":3,"name":"Gula Aren","price":"8000","stock":12}
]`

func TestProductsFetchIdempotent(t *testing.T) {
	backend := newFakeBackend(t)
	backend.onData("GET /products", catalogThree)

	v := NewProducts(backend.client(), testSession(models.RoleViewer))
	v.Fetch(context.Background())
	v.Fetch(context.Background())

	if len(v.Items) != 3 {
		t.Errorf("Fetch ulang harus mengganti daftar, bukan menambah: %d items", len(v.Items))
	}
	if !v.Loaded || v.Err != "" {
		t.Errorf("Loaded=%v Err=%q", v.Loaded, v.Err)
	}
}

func TestProductsFetchFailureKeepsItems(t *testing.T) {
	backend := newFakeBackend(t)
	backend.onData("GET /products", catalogThree)

	v := NewProducts(backend.client(), testSession(models.RoleViewer))
	v.Fetch(context.Background())

	backend.onFail("GET /products", http.StatusBadGateway, "backend down")
	v.Fetch(context.Background())

	if v.Err != "Gagal mengambil data produk." {
		t.Errorf("Err = %q", v.Err)
	}
	if len(v.Items) != 3 {
		t.Errorf("Fetch gagal tidak boleh menyentuh daftar, got %d", len(v.Items))
	}
}

func TestProductsFetchManagedUsesRolePrefix(t *testing.T) {
	backend := newFakeBackend(t)
	backend.onData("GET /seller/products", catalogThree)

	v := NewProducts(backend.client(), testSession(models.RoleSeller))
	v.FetchManaged(context.Background())

	if len(v.Items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(v.Items))
	}
	if backend.hitCount("GET /seller/products") != 1 {
		t.Error("Seller harus memakai prefix /seller/products")
	}
}

func TestProductsFind(t *testing.T) {
	v := &Products{Items: []models.Product{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}}
	if p, ok := v.Find(2); !ok || p.Name != "B" {
		t.Errorf("Find(2) = %+v, %v", p, ok)
	}
	if _, ok := v.Find(99); ok {
		t.Error("Find(99) harus gagal")
	}
}

func TestProductsPaging(t *testing.T) {
	v := &Products{}
	for i := int64(1); i <= 10; i++ {
		v.Items = append(v.Items, models.Product{ID: i})
	}

	if got := v.PageCount(8); got != 2 {
		t.Errorf("PageCount(8) = %d, want 2", got)
	}
	if got := v.Page(1, 8); len(got) != 8 || got[0].ID != 1 {
		t.Errorf("Page(1) = %d items", len(got))
	}
	if got := v.Page(2, 8); len(got) != 2 || got[0].ID != 9 {
		t.Errorf("Page(2) = %d items", len(got))
	}
	// Nomor halaman di luar rentang dijepit.
	if got := v.Page(5, 8); len(got) != 2 {
		t.Errorf("Page(5) harus dijepit ke halaman terakhir, got %d items", len(got))
	}
	if got := v.Page(0, 8); len(got) != 8 {
		t.Errorf("Page(0) harus dijepit ke halaman pertama, got %d items", len(got))
	}

	empty := &Products{}
	if got := empty.PageCount(8); got != 1 {
		t.Errorf("PageCount daftar kosong = %d, want 1", got)
	}
}
