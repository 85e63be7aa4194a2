package models

// Role menentukan hak akses pengguna terhadap halaman dan prefix endpoint API.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleViewer Role = "viewer"
)

// Valid memastikan role termasuk dalam enum yang dikenal.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleViewer:
		return true
	}
	return false
}

// In memeriksa keanggotaan role pada sebuah allow-list halaman.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// LandingPath mengembalikan halaman tujuan yang sesuai untuk role tersebut.
func (r Role) LandingPath() string {
	if r == RoleViewer {
		return "/home"
	}
	return "/dashboard"
}

// User mendefinisikan struktur pengguna sesuai respons backend.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Session adalah hasil resolusi sesi: identitas pengguna plus bearer token
// yang dipakai untuk setiap permintaan ke API.
type Session struct {
	User  User
	Token string
}

// LoginRequest mendefinisikan struktur untuk permintaan login.
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// RegisterRequest mendefinisikan struktur untuk permintaan registrasi.
type RegisterRequest struct {
	Name                 string `form:"name" json:"name" binding:"required"`
	Email                string `form:"email" json:"email" binding:"required,email"`
	Password             string `form:"password" json:"password" binding:"required,min=8"`
	PasswordConfirmation string `form:"password_confirmation" json:"password_confirmation" binding:"required,eqfield=Password"`
}
