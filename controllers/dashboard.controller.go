package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"udoo-web/models"
)

// Dashboard mengarahkan pengguna ke halaman awal sesuai rolenya.
func (ctrl *Controller) Dashboard(c *gin.Context) {
	switch CurrentSession(c).User.Role {
	case models.RoleAdmin:
		c.Redirect(http.StatusSeeOther, "/dashboard/reports")
	case models.RoleSeller:
		c.Redirect(http.StatusSeeOther, "/dashboard/products")
	default:
		c.Redirect(http.StatusSeeOther, "/home")
	}
}
