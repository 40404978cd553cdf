package main

import (
	"html/template"
	"log"
	"strings"
	"time"

	"wedinvite/config"
	"wedinvite/db"
	"wedinvite/handlers"
	"wedinvite/media"
	"wedinvite/models"
	"wedinvite/services"
	"wedinvite/storage"
	"wedinvite/utils"
	"wedinvite/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const uploadsCacheTime = 30 * 86400 // ingested files never change

func main() {
	gormDB, err := db.Open()
	if err != nil {
		log.Fatalf("Cannot open database: %v", err)
	}
	if err = models.Migrate(gormDB); err != nil {
		log.Fatalf("Cannot migrate database: %v", err)
	}
	store, err := storage.New()
	if err != nil {
		log.Fatalf("Cannot set up storage: %v", err)
	}

	ingest := media.NewIngest(store)
	invitations := services.NewInvitationService(gormDB, ingest)
	guestbook := services.NewGuestbookService(gormDB)

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	router.MaxMultipartMemory = int64(config.MAX_UPLOAD_SIZE)
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/uploads"})))
	}
	router.Use(utils.CacheControl(utils.CacheNoCache)) // individual route groups can override
	router.Use(utils.RequestLogMiddleware(gormDB))

	// HTML templates
	router.SetFuncMap(template.FuncMap{"thumb": media.ThumbURL})
	router.LoadHTMLGlob("templates/*.tmpl")

	api := &handlers.API{Invitations: invitations, Guestbook: guestbook}
	router.POST("/api/invitations", api.InvitationCreate)
	router.GET("/api/invitations/:slug", api.InvitationGet)
	router.POST("/api/guestbook/:invitationId", api.GuestbookAdd)
	router.GET("/api/guestbook/:invitationId", api.GuestbookList)

	// Ingested media
	mediaHandlers := &handlers.MediaHandlers{Store: store}
	uploads := router.Group("/uploads", utils.CacheControl(uploadsCacheTime))
	uploads.GET("/:name", mediaHandlers.MediaFetch)

	/*
	 *	Web interface
	 */
	pages := &web.Pages{Invitations: invitations, Guestbook: guestbook}
	router.GET("/", pages.Home)
	router.GET("/create", pages.Create)
	router.GET("/i/:slug", pages.Invitation)
	router.GET("/robots.txt", web.DisallowRobots)

	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
