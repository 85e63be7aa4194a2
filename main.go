package main

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"

	"udoo-web/client"
	"udoo-web/config"
	"udoo-web/controllers"
	"udoo-web/routes"
	"udoo-web/session"
)

func main() {
	cfg := config.Load()

	sessions, err := session.NewManager(cfg.SessionSecret, cfg.IsProduction())
	if err != nil {
		log.Fatal("Failed to init session manager: ", err)
	}

	// Cloudinary opsional; tanpa itu form produk tetap jalan tanpa upload.
	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Failed to init Cloudinary: ", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, product image upload disabled")
	}

	ctrl := &controllers.Controller{
		Cfg:      cfg,
		API:      client.New(cfg.APIBaseURL),
		Sessions: sessions,
		Cld:      cld,
	}

	r := routes.Setup(ctrl, cfg.Env)

	log.Printf("udoo-web listening on :%s (backend %s)", cfg.Port, cfg.APIBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server error: ", err)
	}
}
