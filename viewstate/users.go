package viewstate

import (
	"context"
	"strings"

	"udoo-web/client"
	"udoo-web/models"
)

// Users adalah state halaman kelola pengguna admin.
type Users struct {
	api  *client.Client
	sess models.Session

	Items  []models.User
	Err    string
	Loaded bool
}

// UserStats adalah ringkasan jumlah akun per role.
type UserStats struct {
	Total  int
	Admin  int
	Seller int
	Viewer int
}

// NewUsers membuat state pengguna untuk sesi admin yang diberikan.
func NewUsers(api *client.Client, sess models.Session) *Users {
	return &Users{api: api, sess: sess}
}

// Fetch memuat ulang daftar akun.
func (v *Users) Fetch(ctx context.Context) {
	users, err := v.api.AdminUsers(ctx, v.sess.Token)
	if err != nil {
		v.Err = "Gagal memuat data pengguna."
		return
	}
	v.Items = users
	v.Err = ""
	v.Loaded = true
}

// Stats menghitung ringkasan per role dari daftar yang sedang dimuat.
func (v *Users) Stats() UserStats {
	stats := UserStats{Total: len(v.Items)}
	for _, u := range v.Items {
		switch u.Role {
		case models.RoleAdmin:
			stats.Admin++
		case models.RoleSeller:
			stats.Seller++
		case models.RoleViewer:
			stats.Viewer++
		}
	}
	return stats
}

// Filter menyaring daftar berdasarkan kata kunci (nama atau email,
// case-insensitive) dan role. Role "all" atau kosong berarti semua role.
func (v *Users) Filter(search string, role string) []models.User {
	search = strings.ToLower(strings.TrimSpace(search))
	var out []models.User
	for _, u := range v.Items {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		if role != "" && role != "all" && string(u.Role) != role {
			continue
		}
		out = append(out, u)
	}
	return out
}
