package seed

import (
	"errors"
	"fmt"

	"github.com/codewith-lab/ssrblog/config"
	"github.com/codewith-lab/ssrblog/models"
	"github.com/codewith-lab/ssrblog/utils"
	"gorm.io/gorm"
)

// baselineArticles is the fixed batch inserted into an empty store.
var baselineArticles = []models.Article{
	{
		Title:   "Hello World",
		Content: "This is the first article in our SSR blog.",
		Summary: "Welcome to the blog.",
		Tags:    "intro,tech",
		Status:  models.StatusPublished,
	},
	{
		Title:   "Vue SSR Guide",
		Content: "Server-Side Rendering with Vue and Express is powerful.",
		Summary: "Learn about SSR.",
		Tags:    "vue,ssr",
		Status:  models.StatusPublished,
	},
	{
		Title:   "Express Middleware",
		Content: "Understanding how middleware works in Express is crucial.",
		Summary: "Express middleware explained.",
		Tags:    "express,backend",
		Status:  models.StatusPublished,
	},
	{
		Title:   "Sequelize ORM",
		Content: "Sequelize makes interacting with SQL databases easy.",
		Summary: "Intro to Sequelize.",
		Tags:    "db,sql",
		Status:  models.StatusPublished,
	},
	{
		Title:   "Vite for Tooling",
		Content: "Vite is a fast build tool for modern web projects.",
		Summary: "Why use Vite?",
		Tags:    "tooling,vite",
		Status:  models.StatusPublished,
	},
	{
		Title:   "Understanding Hydration",
		Content: "Hydration is the process of making static HTML interactive.",
		Summary: "What is hydration?",
		Tags:    "ssr,vue",
		Status:  models.StatusPublished,
	},
}

// Articles inserts the baseline batch if and only if the store holds no
// articles at all. Idempotence is count-based: a partially emptied store is
// not topped up. The batch runs in one transaction so a mid-batch failure
// cannot leave a partial set behind to satisfy the count guard on the next
// run. Returns the number of articles created.
func Articles(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Article{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", config.ErrStoreUnavailable, err)
	}
	if count > 0 {
		return 0, nil
	}

	batch := make([]models.Article, len(baselineArticles))
	copy(batch, baselineArticles)

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&batch).Error
	})
	if err != nil {
		return 0, fmt.Errorf("seeding articles: %w", err)
	}
	return len(batch), nil
}

// EnsureAdmin creates the admin account if no user with the given username
// exists. Existing credentials are never overwritten. The password is hashed
// before any row is written; a hash failure aborts with nothing persisted.
// Returns true if the account was created.
func EnsureAdmin(db *gorm.DB, username, password string) (bool, error) {
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("%w: %v", config.ErrStoreUnavailable, err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hashing admin password: %w", err)
	}

	user = models.User{
		Username: username,
		Password: hashedPassword,
		Role:     "admin",
	}
	if err := db.Create(&user).Error; err != nil {
		return false, fmt.Errorf("creating admin user: %w", err)
	}
	return true, nil
}
