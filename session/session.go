// Package session menyimpan bearer token backend di dalam cookie paseto
// v2.local, sehingga token tidak pernah terbaca oleh browser dalam bentuk asli.
package session

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/o1egl/paseto"
	"golang.org/x/crypto/hkdf"
)

const (
	// CookieName adalah satu-satunya state klien yang dipersistenkan.
	CookieName = "udoo_session"

	footer   = "udoo-session"
	tokenKey = "api_token"
	ttl      = 24 * time.Hour
)

// ErrNoSession dikembalikan ketika cookie tidak ada atau tidak valid.
var ErrNoSession = errors.New("session: no valid session cookie")

// Manager mengenkripsi dan membongkar cookie sesi.
type Manager struct {
	key    []byte
	secure bool
}

// NewManager menurunkan kunci paseto 32 byte dari secret konfigurasi lewat
// HKDF-SHA256, sehingga panjang secret bebas.
func NewManager(secret string, secure bool) (*Manager, error) {
	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("udoo-web session v2.local"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return &Manager{key: key, secure: secure}, nil
}

// Issue membungkus bearer token ke dalam cookie sesi baru.
func (m *Manager) Issue(c *gin.Context, apiToken string) error {
	now := time.Now()
	claims := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: now.Add(ttl),
	}
	claims.Set(tokenKey, apiToken)

	sealed, err := paseto.NewV2().Encrypt(m.key, claims, footer)
	if err != nil {
		return fmt.Errorf("encrypt session: %w", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, sealed, int(ttl.Seconds()), "/", "", m.secure, true)
	return nil
}

// Token membongkar cookie sesi dan mengembalikan bearer token di dalamnya.
func (m *Manager) Token(c *gin.Context) (string, error) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return "", ErrNoSession
	}

	var claims paseto.JSONToken
	var foot string
	if err := paseto.NewV2().Decrypt(raw, m.key, &claims, &foot); err != nil {
		return "", ErrNoSession
	}
	if foot != footer || claims.Validate() != nil {
		return "", ErrNoSession
	}

	apiToken := claims.Get(tokenKey)
	if apiToken == "" {
		return "", ErrNoSession
	}
	return apiToken, nil
}

// Clear membuang cookie sesi (logout atau identitas gagal diverifikasi).
func (m *Manager) Clear(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}
