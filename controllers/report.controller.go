package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"udoo-web/viewstate"
)

// Reports menampilkan dashboard laporan admin: kartu metrik, produk
// terlaris, dan pesanan selesai terbaru.
func (ctrl *Controller) Reports(c *gin.Context) {
	sess := CurrentSession(c)
	report := viewstate.NewReport(ctrl.API, sess)
	report.Fetch(c.Request.Context())

	c.HTML(http.StatusOK, "reports.html", gin.H{
		"Title":       "Laporan",
		"User":        sess.User,
		"Report":      report,
		"TopProducts": report.TopProducts(),
	})
}
