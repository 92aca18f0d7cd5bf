package navigation

import (
	"strings"
)

const LoginPath = "/login"

type Route struct {
	Name         string
	Path         string
	Page         string
	Breadcrumb   string
	RequiresAuth bool
}

// Table is the ordered list of page routes of the site. The first route matching a path wins.
type Table []Route

// Routes is the route table of the website.
var Routes = Table{
	{Name: "Home", Path: "/", Page: "home.html", Breadcrumb: "首頁"},
	{Name: "About", Path: "/about", Page: "about.html", Breadcrumb: "關於我們"},
	{Name: "Cases", Path: "/cases", Page: "cases.html", Breadcrumb: "案例"},
	{Name: "CaseDetail", Path: "/cases/:id", Page: "case_detail.html", Breadcrumb: "案例詳情"},
	{Name: "Contact", Path: "/contact", Page: "contact.html", Breadcrumb: "聯絡我們"},
	{Name: "Login", Path: LoginPath, Page: "login.html", Breadcrumb: "登入"},
	{Name: "Admin", Path: "/admin", Page: "admin.html", Breadcrumb: "管理後台", RequiresAuth: true},
}

type Match struct {
	Matched []Route
}

// Route is the deepest matched record.
func (m Match) Route() Route {
	if len(m.Matched) == 0 {
		return Route{}
	}
	return m.Matched[len(m.Matched)-1]
}

func (m Match) RequiresAuth() bool {
	for _, record := range m.Matched {
		if record.RequiresAuth {
			return true
		}
	}
	return false
}

func (t Table) ByName(name string) (Route, bool) {
	for _, route := range t {
		if route.Name == name {
			return route, true
		}
	}
	return Route{}, false
}

// Resolve matches a concrete request path against the table.
func (t Table) Resolve(path string) (Match, bool) {
	segments := splitPath(path)
	for _, route := range t {
		if matchSegments(splitPath(route.Path), segments) {
			return Match{Matched: []Route{route}}, true
		}
	}
	return Match{}, false
}

// Breadcrumbs returns the resolved routes leading to path, from the home page down to the
// route of path itself. Ancestors that do not resolve are skipped.
func (t Table) Breadcrumbs(path string) []Route {
	segments := splitPath(path)
	crumbs := make([]Route, 0, len(segments)+1)
	for i := 0; i <= len(segments); i++ {
		match, ok := t.Resolve("/" + strings.Join(segments[:i], "/"))
		if ok {
			crumbs = append(crumbs, match.Route())
		}
	}
	return crumbs
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// matchSegments lets a ":name" segment of pattern stand for any non-empty segment.
func matchSegments(pattern, segments []string) bool {
	if len(pattern) != len(segments) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segments[i] == "" {
				return false
			}
			continue
		}
		if p != segments[i] {
			return false
		}
	}
	return true
}
