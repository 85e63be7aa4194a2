package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"udoo-web/viewstate"
)

// ShowCart menampilkan isi keranjang viewer.
func (ctrl *Controller) ShowCart(c *gin.Context) {
	sess := CurrentSession(c)
	cart := viewstate.NewCart(ctrl.API, sess)
	cart.Fetch(c.Request.Context())

	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Title": "Keranjang",
		"User":  sess.User,
		"Cart":  cart,
	})
}

// AddToCart menambahkan produk ke keranjang lalu kembali ke keranjang.
func (ctrl *Controller) AddToCart(c *gin.Context) {
	sess := CurrentSession(c)

	productID, err := strconv.ParseInt(c.PostForm("product_id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/home")
		return
	}
	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	if err := ctrl.API.AddToCart(c.Request.Context(), sess.Token, productID, quantity); err != nil {
		log.Println("add to cart:", err)
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// RemoveCartItem menghapus satu item secara optimistis: halaman dirender
// dari daftar lokal yang difilter, tanpa fetch ulang setelah DELETE.
func (ctrl *Controller) RemoveCartItem(c *gin.Context) {
	sess := CurrentSession(c)
	cart := viewstate.NewCart(ctrl.API, sess)
	cart.Fetch(c.Request.Context())

	if id, err := strconv.ParseInt(c.Param("id"), 10, 64); err == nil && cart.Err == "" {
		cart.Remove(c.Request.Context(), id)
	}

	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Title": "Keranjang",
		"User":  sess.User,
		"Cart":  cart,
	})
}

// ShowCheckout menampilkan ringkasan pesanan sebelum checkout.
func (ctrl *Controller) ShowCheckout(c *gin.Context) {
	sess := CurrentSession(c)
	cart := viewstate.NewCart(ctrl.API, sess)
	cart.Fetch(c.Request.Context())

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Title": "Checkout",
		"User":  sess.User,
		"Cart":  cart,
	})
}

// Checkout mengirim pesanan lalu mengosongkan keranjang. Checkout yang gagal
// membiarkan keranjang utuh dan tidak menampilkan dialog sukses.
func (ctrl *Controller) Checkout(c *gin.Context) {
	sess := CurrentSession(c)
	cart := viewstate.NewCart(ctrl.API, sess)
	cart.Fetch(c.Request.Context())

	if cart.Err != "" {
		c.HTML(http.StatusOK, "checkout.html", gin.H{
			"Title": "Checkout",
			"User":  sess.User,
			"Cart":  cart,
		})
		return
	}

	if err := cart.Checkout(c.Request.Context()); err != nil {
		log.Println("checkout:", err)
		c.HTML(http.StatusOK, "checkout.html", gin.H{
			"Title": "Checkout",
			"User":  sess.User,
			"Cart":  cart,
			"Err":   "Checkout gagal. Keranjang anda tidak berubah.",
		})
		return
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Title":   "Checkout",
		"User":    sess.User,
		"Cart":    cart,
		"Success": true,
	})
}
