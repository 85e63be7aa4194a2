// File: controllers/product.controller.go
package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"udoo-web/models"
	"udoo-web/viewstate"
)

// ManageProducts menampilkan tabel produk yang dikelola admin atau seller.
// Paginasi hanya pemotongan sisi klien atas daftar yang sudah terambil penuh.
func (ctrl *Controller) ManageProducts(c *gin.Context) {
	sess := CurrentSession(c)
	products := viewstate.NewProducts(ctrl.API, sess)
	products.FetchManaged(c.Request.Context())

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	if max := products.PageCount(ctrl.Cfg.PageSize); page > max {
		page = max
	}

	flash := ""
	switch {
	case c.Query("saved") == "1":
		flash = "Produk baru berhasil disimpan."
	case c.Query("updated") == "1":
		flash = "Data produk berhasil diperbarui."
	case c.Query("deleted") == "1":
		flash = "Produk berhasil dihapus."
	}

	c.HTML(http.StatusOK, "manage_products.html", gin.H{
		"Title":     "Kelola Produk",
		"User":      sess.User,
		"Items":     products.Page(page, ctrl.Cfg.PageSize),
		"Page":      page,
		"PageCount": products.PageCount(ctrl.Cfg.PageSize),
		"Err":       products.Err,
		"Flash":     flash,
	})
}

// NewProduct menampilkan form produk kosong.
func (ctrl *Controller) NewProduct(c *gin.Context) {
	sess := CurrentSession(c)
	c.HTML(http.StatusOK, "product_form.html", gin.H{
		"Title":   "Tambah Produk",
		"Heading": "Tambah Produk Baru",
		"Action":  "/dashboard/products",
		"User":    sess.User,
		"Form":    models.ProductForm{},
		"Errors":  map[string]string{},
	})
}

// CreateProduct menangani pembuatan produk baru. Form yang tidak valid
// dirender ulang dengan pesan per field tanpa menyentuh jaringan.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctrl.saveProduct(c, 0)
}

// EditProduct menampilkan form edit terisi data produk.
func (ctrl *Controller) EditProduct(c *gin.Context) {
	sess := CurrentSession(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ctrl.renderNotFound(c, "Produk tidak ditemukan")
		return
	}

	product, err := ctrl.API.ManagedProduct(c.Request.Context(), sess.Token, sess.User.Role, id)
	if err != nil {
		ctrl.renderNotFound(c, "Produk tidak ditemukan")
		return
	}

	c.HTML(http.StatusOK, "product_form.html", gin.H{
		"Title":   "Edit Produk",
		"Heading": "Edit Produk",
		"Action":  "/dashboard/products/" + c.Param("id"),
		"User":    sess.User,
		"Form": models.ProductForm{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price.String(),
			Stock:       strconv.Itoa(product.Stock),
			Image:       product.Image,
		},
		"Errors": map[string]string{},
	})
}

// UpdateProduct menangani pembaruan data produk.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ctrl.renderNotFound(c, "Produk tidak ditemukan")
		return
	}
	ctrl.saveProduct(c, id)
}

// saveProduct adalah alur bersama create/update: validasi sinkron, upload
// gambar bila ada, lalu mutasi lewat prefix role yang sudah teresolusi.
func (ctrl *Controller) saveProduct(c *gin.Context, id int64) {
	sess := CurrentSession(c)

	heading, action := "Tambah Produk Baru", "/dashboard/products"
	if id != 0 {
		heading = "Edit Produk"
		action = "/dashboard/products/" + c.Param("id")
	}

	var form models.ProductForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) > 0 {
		c.HTML(http.StatusBadRequest, "product_form.html", gin.H{
			"Title":   heading,
			"Heading": heading,
			"Action":  action,
			"User":    sess.User,
			"Form":    form,
			"Errors":  errs,
		})
		return
	}

	payload := form.Payload()

	// Jika ada gambar baru, upload ke Cloudinary dulu; URL hasilnya yang
	// dikirim ke backend.
	if file, err := c.FormFile("image"); err == nil && ctrl.Cld != nil {
		src, err := file.Open()
		if err == nil {
			uploadResult, err := ctrl.Cld.Upload.Upload(
				c.Request.Context(),
				src,
				uploader.UploadParams{Folder: "udoo/products"},
			)
			src.Close()
			if err != nil {
				log.Println("Cloudinary upload error:", err)
				c.HTML(http.StatusInternalServerError, "product_form.html", gin.H{
					"Title":   heading,
					"Heading": heading,
					"Action":  action,
					"User":    sess.User,
					"Form":    form,
					"Errors":  map[string]string{},
					"Err":     "Gagal mengunggah gambar produk.",
				})
				return
			}
			payload.Image = uploadResult.SecureURL
		}
	}

	var err error
	redirect := "/dashboard/products?saved=1"
	if id == 0 {
		err = ctrl.API.CreateProduct(c.Request.Context(), sess.Token, sess.User.Role, payload)
	} else {
		err = ctrl.API.UpdateProduct(c.Request.Context(), sess.Token, sess.User.Role, id, payload)
		redirect = "/dashboard/products?updated=1"
	}
	if err != nil {
		log.Println("save product:", err)
		c.HTML(http.StatusBadGateway, "product_form.html", gin.H{
			"Title":   heading,
			"Heading": heading,
			"Action":  action,
			"User":    sess.User,
			"Form":    form,
			"Errors":  map[string]string{},
			"Err":     apiErrorMessage(err),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, redirect)
}

// DeleteProduct menangani penghapusan produk lalu memuat ulang tabel.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	sess := CurrentSession(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ctrl.renderNotFound(c, "Produk tidak ditemukan")
		return
	}

	if err := ctrl.API.DeleteProduct(c.Request.Context(), sess.Token, sess.User.Role, id); err != nil {
		log.Println("delete product:", err)
		c.Redirect(http.StatusSeeOther, "/dashboard/products")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/products?deleted=1")
}
