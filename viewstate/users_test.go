package viewstate

import (
	"context"
	"testing"

	"udoo-web/models"
)

const accountList = `[
	{"id":1,"name":"Admin Utama","email":"admin@udoo.test","role":"admin"},
	{"id":2,"name":"Toko Kopi","email":"toko@udoo.test","role":"seller"},
	{"id":3,"name":"Budi Santoso","email":"budi@udoo.test","role":"viewer"},
	{"id":4,"name":"Sari Dewi","email":"sari@udoo.test","role":"viewer"}
]`

func loadUsers(t *testing.T) *Users {
	t.Helper()
	backend := newFakeBackend(t)
	backend.onData("GET /admin/users", accountList)

	v := NewUsers(backend.client(), testSession(models.RoleAdmin))
	v.Fetch(context.Background())
	if v.Err != "" {
		t.Fatalf("Fetch: %s", v.Err)
	}
	return v
}

func TestUsersStats(t *testing.T) {
	v := loadUsers(t)
	stats := v.Stats()
	want := UserStats{Total: 4, Admin: 1, Seller: 1, Viewer: 2}
	if stats != want {
		t.Errorf("Stats = %+v, want %+v", stats, want)
	}
}

func TestUsersFilter(t *testing.T) {
	v := loadUsers(t)

	if got := v.Filter("", "all"); len(got) != 4 {
		t.Errorf("Filter semua = %d, want 4", len(got))
	}
	if got := v.Filter("BUDI", ""); len(got) != 1 || got[0].ID != 3 {
		t.Errorf("Filter nama case-insensitive = %+v", got)
	}
	if got := v.Filter("udoo.test", "viewer"); len(got) != 2 {
		t.Errorf("Filter email + role = %d, want 2", len(got))
	}
	if got := v.Filter("tidak-ada", ""); len(got) != 0 {
		t.Errorf("Filter tanpa hasil = %d, want 0", len(got))
	}
}
