package main

import (
	"context"
	"log"

	"LifeCarePortal/client"
	"LifeCarePortal/config"
	"LifeCarePortal/controllers"
	"LifeCarePortal/jobs"
	"LifeCarePortal/routes"
	"LifeCarePortal/services"
	"LifeCarePortal/session"

	server "github.com/KanapuramVaishnavi/Core/server"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	run()
}

func run() {
	cfg, err := config.Load()
	if err != nil {
		log.Println("Error from loading config:", err)
		return
	}

	store, err := session.Open(context.Background(), cfg)
	if err != nil {
		log.Println("Error from opening session store:", err)
		return
	}
	sealer, err := session.NewSealer(cfg.SessionSecret)
	if err != nil {
		log.Println("Error from creating cookie sealer:", err)
		return
	}
	sessions := session.NewManager(store, sealer, cfg.SessionTTL, cfg.CookieName, cfg.CookieSecure)
	backend := client.New(cfg.BackendURL, nil)
	handler := controllers.NewHandler(backend, services.NewSubmission())

	defaultopts := server.GetDefaultOptions()

	options := server.Options{
		// sessions live in the portal's own store, not in Core's cache or db
		CacheEnabled:     false,
		MongoEnabled:     false,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		JobsEnabled: !isTest,
		JobsHandler: func() {
			if isTest {
				return
			}
			if _, err := jobs.StartScheduler(cfg, store, backend); err != nil {
				log.Println("Error from starting jobs:", err)
			}
		},

		WebServerPreHandler: func(r *gin.Engine) {
			r.Use(cors.New(cors.Config{
				AllowOrigins:     cfg.AllowOrigins,
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: true,
			}))
			if err := routes.Routes(r, handler, sessions); err != nil {
				log.Println("Error from registering routes:", err)
			}
		},
	}
	startServer(options)
}
