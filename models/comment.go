package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Comment is hard-deletable, so it declares its columns explicitly instead
// of embedding gorm.Model (which would add DeletedAt and make deletes soft).
// Deleting an Article does not cascade to its Comments.
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content" binding:"required"`
	Author    string    `gorm:"default:Anonymous" json:"author"`
	ArticleID uint      `gorm:"not null;index" json:"articleId"`
	Article   *Article  `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Comment) BeforeSave(tx *gorm.DB) error {
	if c.Author == "" {
		c.Author = "Anonymous"
	}
	if strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	if c.ArticleID == 0 {
		return fmt.Errorf("%w: articleId is required", ErrValidation)
	}
	return nil
}
