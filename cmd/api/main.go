package main

import (
	"context"
	"log"

	"eldercare-backend/internal/config"
	"eldercare-backend/internal/handlers"
	"eldercare-backend/internal/notify"
	"eldercare-backend/internal/routes"
	"eldercare-backend/internal/service"
	"eldercare-backend/internal/session"
	"eldercare-backend/internal/store"
	"eldercare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func buildStore(cfg config.App) store.Store {
	switch cfg.StoreDriver {
	case "mysql":
		db, err := config.ConnectDB(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		st, err := store.NewGormStore(db)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}
		return st
	default:
		st := store.NewMemoryStore()
		if cfg.SeedDemo {
			store.SeedDemoData(st)
		}
		return st
	}
}

func buildSecureStore(cfg config.App) session.SecureStore {
	if cfg.SessionKey != "" {
		sealed, err := session.NewSealedFileStore(cfg.SessionDir, cfg.SessionKey)
		if err != nil {
			log.Fatalf("Failed to open sealed session store: %v", err)
		}
		return sealed
	}
	blobs, err := session.NewFileBlobStore(cfg.SessionDir)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	return blobs
}

func buildDispatcher(cfg config.App) notify.Dispatcher {
	if cfg.NotifyDriver == "fcm" {
		d, err := notify.NewFCMDispatcher(context.Background(), cfg.FCMCredentialsFile)
		if err != nil {
			log.Fatalf("Failed to initialize FCM: %v", err)
		}
		log.Println("Firebase Cloud Messaging ready")
		return d
	}
	return notify.NewLocalDispatcher(nil)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	st := buildStore(cfg)

	sessions := session.NewManager(st, buildSecureStore(cfg))
	sessions.Restore()

	sched := notify.NewScheduler(buildDispatcher(cfg))

	health := service.NewHealthService(st)
	reminders := service.NewReminderService(st, sched)

	r := gin.Default()
	routes.SetupRoutes(r, handlers.New(st, sessions, health, reminders, sched), st)

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK", nil)
	})

	log.Println("Server listening on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
