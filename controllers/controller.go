package controllers

import (
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Handler carries the handles every endpoint needs. The store handle is
// injected, never global, so tests run each suite against its own database.
type Handler struct {
	DB        *gorm.DB
	Redis     *redis.Client
	JWTSecret string
}

func NewHandler(db *gorm.DB, rdb *redis.Client, jwtSecret string) *Handler {
	return &Handler{DB: db, Redis: rdb, JWTSecret: jwtSecret}
}
