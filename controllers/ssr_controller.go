package controllers

import (
	"errors"
	"net/http"

	"github.com/codewith-lab/ssrblog/models"
	"github.com/codewith-lab/ssrblog/pages"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RenderPage resolves a page path and returns the render payload the
// client-side app hydrates from: the page name, its path parameters, and the
// data that page needs. Every request gets its own router so concurrent
// renders never share navigation state.
func (h *Handler) RenderPage(c *gin.Context) {
	router := pages.NewRouter(true)

	match, ok := router.Resolve(c.Request.URL.Path)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	payload := gin.H{
		"page":   match.Page,
		"params": match.Params,
	}

	switch match.Page {
	case pages.Home:
		var articles []models.Article
		if err := h.DB.Where("status = ?", models.StatusPublished).
			Order("created_at desc").Find(&articles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		payload["data"] = gin.H{"articles": articles}

	case pages.ArticleDetail:
		var article models.Article
		err := h.DB.Preload("Comments").Where("id = ?", match.Params["id"]).First(&article).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		payload["data"] = gin.H{"article": article}
	}

	c.JSON(http.StatusOK, payload)
}
