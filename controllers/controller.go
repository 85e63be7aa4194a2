package controllers

import (
	"github.com/cloudinary/cloudinary-go/v2"

	"udoo-web/client"
	"udoo-web/config"
	"udoo-web/session"
)

// Controller menampung dependensi yang akan digunakan oleh semua handler.
type Controller struct {
	Cfg      *config.AppConfig
	API      *client.Client
	Sessions *session.Manager
	Cld      *cloudinary.Cloudinary
}
