package controllers

import (
	"errors"
	"net/http"

	"github.com/codewith-lab/ssrblog/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (h *Handler) GetComments(c *gin.Context) {
	id := c.Param("id")
	var comments []models.Comment
	if err := h.DB.Where("article_id = ?", id).Order("created_at asc").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *Handler) CreateComment(c *gin.Context) {
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

	var comment models.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment.ArticleID = article.ID

	if err := h.DB.Create(&comment).Error; err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// DeleteComment removes the row for good; comments have no soft delete.
func (h *Handler) DeleteComment(c *gin.Context) {
	id := c.Param("id")
	res := h.DB.Where("id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
