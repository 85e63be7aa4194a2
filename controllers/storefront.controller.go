package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"udoo-web/viewstate"
)

// Home menampilkan etalase dengan seluruh produk.
func (ctrl *Controller) Home(c *gin.Context) {
	sess := CurrentSession(c)
	products := viewstate.NewProducts(ctrl.API, sess)
	products.Fetch(c.Request.Context())

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":    "Home",
		"User":     sess.User,
		"Products": products.Items,
		"Err":      products.Err,
	})
}

// ProductDetail menampilkan satu produk dari katalog publik.
func (ctrl *Controller) ProductDetail(c *gin.Context) {
	sess := CurrentSession(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ctrl.renderNotFound(c, "Produk tidak ditemukan")
		return
	}

	product, err := ctrl.API.Product(c.Request.Context(), sess.Token, id)
	if err != nil {
		ctrl.renderNotFound(c, "Produk tidak ditemukan")
		return
	}

	c.HTML(http.StatusOK, "product_detail.html", gin.H{
		"Title":   product.Name,
		"User":    sess.User,
		"Product": product,
	})
}

func (ctrl *Controller) renderNotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"Title":   "Tidak Ditemukan",
		"Heading": "Tidak Ditemukan",
		"Message": message,
	})
}
