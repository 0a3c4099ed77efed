package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Likes live only in redis. They are a hot counter, not part of the durable
// data model, so the endpoints degrade to 503 when redis is not configured.

func (h *Handler) LikeArticle(c *gin.Context) {
	if h.Redis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "likes unavailable"})
		return
	}
	articleID := c.Param("id")

	likeKey := "article:" + articleID + ":likes"

	if err := h.Redis.Incr(c, likeKey).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article liked successfully"})
}

func (h *Handler) GetArticleLikes(c *gin.Context) {
	if h.Redis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "likes unavailable"})
		return
	}
	articleID := c.Param("id")

	likeKey := "article:" + articleID + ":likes"

	likes, err := h.Redis.Get(c, likeKey).Result()
	if err == redis.Nil {
		likes = "0"
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}
