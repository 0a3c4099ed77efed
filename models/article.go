package models

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrValidation is returned by model hooks when a write would break a
// record invariant (missing required field, status out of range).
var ErrValidation = errors.New("validation failed")

// ArticleStatus has exactly two cases; anything else is rejected on save.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

func (s ArticleStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Article is soft-deletable: gorm.Model carries DeletedAt, so deleted rows
// stay on disk but drop out of normal queries.
type Article struct {
	gorm.Model
	Title    string        `gorm:"not null" json:"title" binding:"required"`
	Content  string        `gorm:"type:text;not null" json:"content" binding:"required"`
	Summary  string        `json:"summary"`
	Author   string        `gorm:"default:Admin" json:"author"`
	Tags     string        `json:"tags"`
	Status   ArticleStatus `gorm:"type:varchar(16);default:published" json:"status"`
	Views    uint          `gorm:"default:0" json:"views"`
	Comments []Comment     `gorm:"foreignKey:ArticleID" json:"comments,omitempty"`
}

func (a *Article) BeforeSave(tx *gorm.DB) error {
	if a.Author == "" {
		a.Author = "Admin"
	}
	if a.Status == "" {
		a.Status = StatusPublished
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(a.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("%w: status must be %q or %q", ErrValidation, StatusDraft, StatusPublished)
	}
	return nil
}
