package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"udoo-web/client"
	"udoo-web/models"
)

// ShowLogin menampilkan form login.
func (ctrl *Controller) ShowLogin(c *gin.Context) {
	info := ""
	if c.Query("registered") == "1" {
		info = "Registrasi berhasil, silakan login."
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Login", "Info": info})
}

// Login menangani proses login: kredensial ditukar dengan bearer token di
// backend, lalu token dibungkus ke cookie sesi.
func (ctrl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Title": "Login",
			"Error": "Email dan password wajib diisi dengan benar.",
			"Email": req.Email,
		})
		return
	}

	token, err := ctrl.API.Login(c.Request.Context(), req)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Title": "Login",
			"Error": apiErrorMessage(err),
			"Email": req.Email,
		})
		return
	}

	if err := ctrl.Sessions.Issue(c, token); err != nil {
		log.Println("issue session:", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Title": "Login",
			"Error": "Terjadi kesalahan pada server. Silakan coba lagi.",
			"Email": req.Email,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// ShowRegister menampilkan form registrasi.
func (ctrl *Controller) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Title": "Daftar"})
}

// Register menangani registrasi akun baru lalu mengarahkan ke login.
func (ctrl *Controller) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Title": "Daftar",
			"Error": "Periksa kembali isian anda: password minimal 8 karakter dan harus sama dengan konfirmasinya.",
			"Name":  req.Name,
			"Email": req.Email,
		})
		return
	}

	if err := ctrl.API.Register(c.Request.Context(), req); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Title": "Daftar",
			"Error": apiErrorMessage(err),
			"Name":  req.Name,
			"Email": req.Email,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/login?registered=1")
}

// Logout mencabut token di backend, membuang cookie sesi, dan kembali ke login.
func (ctrl *Controller) Logout(c *gin.Context) {
	if token, err := ctrl.Sessions.Token(c); err == nil {
		if err := ctrl.API.Logout(c.Request.Context(), token); err != nil {
			log.Println("logout:", err)
		}
	}
	ctrl.Sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

// Profile menampilkan kartu profil pengguna yang sedang login.
func (ctrl *Controller) Profile(c *gin.Context) {
	sess := CurrentSession(c)
	c.HTML(http.StatusOK, "profile.html", gin.H{"Title": "Profil", "User": sess.User})
}

// apiErrorMessage memilih pesan yang layak tampil: pesan amplop backend
// bila ada, selain itu pesan generik.
func apiErrorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Server error. Silakan coba lagi."
}
