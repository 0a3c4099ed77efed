package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentDefaults(t *testing.T) {
	db := newTestDB(t)

	article := Article{Title: "Parent", Content: "body"}
	require.NoError(t, db.Create(&article).Error)

	comment := Comment{Content: "Nice post", ArticleID: article.ID}
	require.NoError(t, db.Create(&comment).Error)

	var got Comment
	require.NoError(t, db.First(&got, comment.ID).Error)
	assert.Equal(t, "Anonymous", got.Author)
	assert.Equal(t, article.ID, got.ArticleID)
}

func TestCommentValidation(t *testing.T) {
	db := newTestDB(t)

	err := db.Create(&Comment{Content: "", ArticleID: 1}).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	err = db.Create(&Comment{Content: "orphan"}).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestCommentHardDelete(t *testing.T) {
	db := newTestDB(t)

	article := Article{Title: "Parent", Content: "body"}
	require.NoError(t, db.Create(&article).Error)
	comment := Comment{Content: "bye", ArticleID: article.ID}
	require.NoError(t, db.Create(&comment).Error)

	require.NoError(t, db.Delete(&comment).Error)

	// No soft-delete column: the row is really gone.
	var count int64
	require.NoError(t, db.Unscoped().Model(&Comment{}).Where("id = ?", comment.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCommentsSurviveArticleDelete(t *testing.T) {
	db := newTestDB(t)

	article := Article{Title: "Parent", Content: "body"}
	require.NoError(t, db.Create(&article).Error)
	require.NoError(t, db.Create(&Comment{Content: "still here", ArticleID: article.ID}).Error)

	require.NoError(t, db.Delete(&article).Error)

	var count int64
	require.NoError(t, db.Model(&Comment{}).Where("article_id = ?", article.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCommentResolvesParentArticle(t *testing.T) {
	db := newTestDB(t)

	article := Article{Title: "Parent", Content: "body"}
	require.NoError(t, db.Create(&article).Error)
	comment := Comment{Content: "child", ArticleID: article.ID}
	require.NoError(t, db.Create(&comment).Error)

	var got Comment
	require.NoError(t, db.Preload("Article").First(&got, comment.ID).Error)
	require.NotNil(t, got.Article)
	assert.Equal(t, "Parent", got.Article.Title)
}

func TestArticlePreloadsComments(t *testing.T) {
	db := newTestDB(t)

	article := Article{Title: "Parent", Content: "body"}
	require.NoError(t, db.Create(&article).Error)
	require.NoError(t, db.Create(&Comment{Content: "first", ArticleID: article.ID}).Error)
	require.NoError(t, db.Create(&Comment{Content: "second", ArticleID: article.ID}).Error)

	var got Article
	require.NoError(t, db.Preload("Comments").First(&got, article.ID).Error)
	assert.Len(t, got.Comments, 2)
}
