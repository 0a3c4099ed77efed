package pages

import "strings"

// Page identifies a renderable page component.
type Page string

const (
	Home          Page = "Home"
	Login         Page = "Login"
	ArticleDetail Page = "ArticleDetail"
	CreateArticle Page = "CreateArticle"
)

// Route binds a path pattern to a page. Segments starting with ':' capture
// the corresponding path segment as a parameter.
type Route struct {
	Pattern string
	Page    Page
}

// Routes is the route table. It is declared by hand and is the single source
// of truth for path-to-page mapping; CreateArticle serves both /create and
// /edit/:id and tells the two apart by the presence of the id parameter.
func Routes() []Route {
	return []Route{
		{Pattern: "/", Page: Home},
		{Pattern: "/login", Page: Login},
		{Pattern: "/article/:id", Page: ArticleDetail},
		{Pattern: "/create", Page: CreateArticle},
		{Pattern: "/edit/:id", Page: CreateArticle},
	}
}

// Match is the result of resolving a path against the route table.
type Match struct {
	Page   Page
	Path   string
	Params map[string]string
}

// Resolve matches path against the route table. Patterns are disjoint, so
// match order does not matter.
func Resolve(path string) (Match, bool) {
	return resolve(Routes(), path)
}

func resolve(routes []Route, path string) (Match, bool) {
	segs := splitPath(path)
	for _, route := range routes {
		params, ok := matchPattern(splitPath(route.Pattern), segs)
		if ok {
			return Match{Page: route.Page, Path: path, Params: params}, true
		}
	}
	return Match{}, false
}

func matchPattern(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	params := map[string]string{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return nil, false
			}
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
