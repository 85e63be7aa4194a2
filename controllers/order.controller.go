package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"udoo-web/viewstate"
)

// SellerOrders menampilkan papan pesanan seller, terbagi baru dan selesai.
func (ctrl *Controller) SellerOrders(c *gin.Context) {
	sess := CurrentSession(c)
	orders := viewstate.NewOrders(ctrl.API, sess)
	orders.Fetch(c.Request.Context())

	c.HTML(http.StatusOK, "orders.html", gin.H{
		"Title":  "Pesanan Masuk",
		"User":   sess.User,
		"Orders": orders,
	})
}

// CompleteOrder menandai satu pesanan selesai. Setelah POST berhasil hanya
// status pesanan itu yang dimutasi lokal, tanpa fetch ulang daftar penuh.
func (ctrl *Controller) CompleteOrder(c *gin.Context) {
	sess := CurrentSession(c)
	orders := viewstate.NewOrders(ctrl.API, sess)
	orders.Fetch(c.Request.Context())

	if id, err := strconv.ParseInt(c.Param("id"), 10, 64); err == nil && orders.Err == "" {
		orders.Complete(c.Request.Context(), id)
	}

	c.HTML(http.StatusOK, "orders.html", gin.H{
		"Title":  "Pesanan Masuk",
		"User":   sess.User,
		"Orders": orders,
	})
}
