package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"udoo-web/models"
	"udoo-web/viewstate"
)

// ManageUsers menampilkan halaman kelola pengguna admin dengan ringkasan
// per role plus pencarian dan filter sisi klien.
func (ctrl *Controller) ManageUsers(c *gin.Context) {
	sess := CurrentSession(c)
	users := viewstate.NewUsers(ctrl.API, sess)
	users.Fetch(c.Request.Context())

	search := c.Query("search")
	roleFilter := c.DefaultQuery("role", "all")

	flash := ""
	switch {
	case c.Query("role_updated") == "1":
		flash = "Role pengguna berhasil diubah."
	case c.Query("deleted") == "1":
		flash = "Pengguna berhasil dihapus."
	}

	c.HTML(http.StatusOK, "manage_users.html", gin.H{
		"Title":      "Manage Users",
		"User":       sess.User,
		"Users":      users.Filter(search, roleFilter),
		"Stats":      users.Stats(),
		"Search":     search,
		"RoleFilter": roleFilter,
		"Err":        users.Err,
		"Flash":      flash,
		"Dialog":     c.Query("error"),
	})
}

// UpdateUserRole mengganti role sebuah akun lalu memuat ulang daftar.
func (ctrl *Controller) UpdateUserRole(c *gin.Context) {
	sess := CurrentSession(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ctrl.renderNotFound(c, "Pengguna tidak ditemukan")
		return
	}

	role := models.Role(c.PostForm("role"))
	if !role.Valid() {
		c.Redirect(http.StatusSeeOther, "/dashboard/users?error=Role+tidak+dikenal.")
		return
	}

	if err := ctrl.API.UpdateUserRole(c.Request.Context(), sess.Token, id, role); err != nil {
		log.Println("update role:", err)
		c.Redirect(http.StatusSeeOther, "/dashboard/users?error=Gagal+mengubah+role+pengguna.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/users?role_updated=1")
}

// DeleteUser menghapus sebuah akun. Akun sendiri tidak bisa dihapus.
func (ctrl *Controller) DeleteUser(c *gin.Context) {
	sess := CurrentSession(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ctrl.renderNotFound(c, "Pengguna tidak ditemukan")
		return
	}

	if id == sess.User.ID {
		c.Redirect(http.StatusSeeOther, "/dashboard/users?error=Tidak+dapat+menghapus+akun+sendiri.")
		return
	}

	if err := ctrl.API.DeleteUser(c.Request.Context(), sess.Token, id); err != nil {
		log.Println("delete user:", err)
		c.Redirect(http.StatusSeeOther, "/dashboard/users?error=Gagal+menghapus+pengguna.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/users?deleted=1")
}
