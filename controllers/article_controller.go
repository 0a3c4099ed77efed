package controllers

import (
	"errors"
	"net/http"

	"github.com/codewith-lab/ssrblog/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (h *Handler) CreateArticle(c *gin.Context) {
	var article models.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.DB.Create(&article).Error; err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *Handler) GetArticles(c *gin.Context) {
	query := h.DB.Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var articles []models.Article
	if err := query.Find(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *Handler) GetArticleByID(c *gin.Context) {
	id := c.Param("id")
	var article models.Article
	if err := h.DB.Preload("Comments").Where("id = ?", id).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	// Count the view without touching UpdatedAt or re-running hooks.
	if err := h.DB.Model(&article).UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	article.Views++

	c.JSON(http.StatusOK, article)
}

func (h *Handler) UpdateArticle(c *gin.Context) {
	id := c.Param("id")
	var article models.Article
	if err := h.DB.Where("id = ?", id).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var input struct {
		Title   string               `json:"title" binding:"required"`
		Content string               `json:"content" binding:"required"`
		Summary string               `json:"summary"`
		Author  string               `json:"author"`
		Tags    string               `json:"tags"`
		Status  models.ArticleStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article.Title = input.Title
	article.Content = input.Content
	article.Summary = input.Summary
	if input.Author != "" {
		article.Author = input.Author
	}
	article.Tags = input.Tags
	if input.Status != "" {
		article.Status = input.Status
	}

	if err := h.DB.Save(&article).Error; err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, article)
}

// DeleteArticle is a soft delete: the row keeps its storage and drops out of
// normal queries. Its comments are left untouched.
func (h *Handler) DeleteArticle(c *gin.Context) {
	id := c.Param("id")
	res := h.DB.Where("id = ?", id).Delete(&models.Article{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}
