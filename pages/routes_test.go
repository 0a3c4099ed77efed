package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path       string
		wantPage   Page
		wantParams map[string]string
		wantOK     bool
	}{
		{path: "/", wantPage: Home, wantParams: map[string]string{}, wantOK: true},
		{path: "/login", wantPage: Login, wantParams: map[string]string{}, wantOK: true},
		{path: "/article/42", wantPage: ArticleDetail, wantParams: map[string]string{"id": "42"}, wantOK: true},
		{path: "/create", wantPage: CreateArticle, wantParams: map[string]string{}, wantOK: true},
		{path: "/edit/7", wantPage: CreateArticle, wantParams: map[string]string{"id": "7"}, wantOK: true},
		{path: "/article/42/extra", wantOK: false},
		{path: "/articles", wantOK: false},
		{path: "/edit", wantOK: false},
		{path: "/nope", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m, ok := Resolve(tt.path)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantPage, m.Page)
			assert.Equal(t, tt.wantParams, m.Params)
			assert.Equal(t, tt.path, m.Path)
		})
	}
}

func TestRoutesAreDisjoint(t *testing.T) {
	// Matching must be order-independent; no two patterns may claim the
	// same path shape.
	seen := map[string]bool{}
	for _, r := range Routes() {
		key := ""
		for _, seg := range splitPath(r.Pattern) {
			if seg[0] == ':' {
				key += "/*"
			} else {
				key += "/" + seg
			}
		}
		assert.False(t, seen[key], "pattern %q overlaps another route", r.Pattern)
		seen[key] = true
	}
}

func TestTrailingSlashEquivalence(t *testing.T) {
	m, ok := Resolve("/login/")
	require.True(t, ok)
	assert.Equal(t, Login, m.Page)
}
