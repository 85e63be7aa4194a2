package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"udoo-web/models"
)

const sessionKey = "session"

// resolveSession membongkar cookie menjadi bearer token lalu memverifikasi
// identitas sekali lewat /auth/me. Tidak ada retry; satu kegagalan verifikasi
// mengakhiri sesi dan cookie dibuang.
func (ctrl *Controller) resolveSession(c *gin.Context) (models.Session, error) {
	token, err := ctrl.Sessions.Token(c)
	if err != nil {
		return models.Session{}, err
	}

	user, err := ctrl.API.Me(c.Request.Context(), token)
	if err != nil {
		ctrl.Sessions.Clear(c)
		return models.Session{}, err
	}

	return models.Session{User: user, Token: token}, nil
}

// RequireSession adalah resolver sesi bersama untuk semua layar HTML.
// Tanpa sesi valid, pengguna diarahkan ke halaman login.
func (ctrl *Controller) RequireSession(c *gin.Context) {
	sess, err := ctrl.resolveSession(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	c.Set(sessionKey, sess)
	c.Next()
}

// RequireSessionJSON adalah varian resolver untuk permukaan /api: pemanggil
// XHR mendapat 401 JSON, bukan redirect HTML ke halaman login.
func (ctrl *Controller) RequireSessionJSON(c *gin.Context) {
	sess, err := ctrl.resolveSession(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	c.Set(sessionKey, sess)
	c.Next()
}

// RequireRole merender halaman akses-ditolak jika role sesi tidak termasuk
// allow-list halaman. Dipasang setelah RequireSession.
func (ctrl *Controller) RequireRole(label string, allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if !sess.User.Role.In(allowed...) {
			c.HTML(http.StatusForbidden, "access_denied.html", gin.H{
				"Title":    "Akses Ditolak",
				"User":     sess.User,
				"Required": label,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession mengambil sesi yang sudah diresolusi dari context request.
func CurrentSession(c *gin.Context) models.Session {
	sess, _ := c.Get(sessionKey)
	if s, ok := sess.(models.Session); ok {
		return s
	}
	return models.Session{}
}
