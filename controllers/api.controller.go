package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"udoo-web/viewstate"
)

// HealthCheck memeriksa status gateway dan keterjangkauan backend.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	backendStatus := "reachable"
	if err := ctrl.API.Ping(c.Request.Context()); err != nil {
		backendStatus = "unreachable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"backend":   backendStatus,
		"timestamp": time.Now().Unix(),
	})
}

// CartCount mengembalikan jumlah baris keranjang untuk badge di header.
func (ctrl *Controller) CartCount(c *gin.Context) {
	sess := CurrentSession(c)
	items, err := ctrl.API.Cart(c.Request.Context(), sess.Token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Gagal memuat keranjang."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items)})
}

// TopProducts mengembalikan data grafik produk terlaris untuk halaman laporan.
func (ctrl *Controller) TopProducts(c *gin.Context) {
	sess := CurrentSession(c)
	report := viewstate.NewReport(ctrl.API, sess)
	report.Fetch(c.Request.Context())
	if report.Err != "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": report.Err})
		return
	}
	c.JSON(http.StatusOK, gin.H{"top_products": report.TopProducts()})
}
