package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/codewith-lab/ssrblog/config"
	"github.com/codewith-lab/ssrblog/controllers"
	"github.com/codewith-lab/ssrblog/router"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.Load("./config")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.OpenDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDB(db)

	if err := config.EnsureSchema(db, false); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = config.OpenRedis(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
	}

	h := controllers.NewHandler(db, rdb, cfg.App.JWTSecret)
	r := router.InitRouter(h)

	srv := &http.Server{
		Addr:    cfg.App.Port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	log.Println("Server exiting")
}
