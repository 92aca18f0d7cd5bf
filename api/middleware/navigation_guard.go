package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caseshowcase/showcase-backend/usecases/navigation"
	"github.com/caseshowcase/showcase-backend/utils"
)

// NewNavigationGuard runs the navigation guard on every path the route table resolves.
// Paths outside the table are left to the router.
func NewNavigationGuard(table navigation.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		match, ok := table.Resolve(c.Request.URL.Path)
		if !ok {
			c.Next()
			return
		}
		guard(c, match)
	}
}

// RequireRoute applies the guard of the named route to an action that is not itself a
// page, such as a form post made from that page.
func RequireRoute(table navigation.Table, name string) gin.HandlerFunc {
	route, ok := table.ByName(name)
	if !ok {
		panic("unknown route " + name)
	}
	match := navigation.Match{Matched: []navigation.Route{route}}
	return func(c *gin.Context) {
		guard(c, match)
	}
}

func guard(c *gin.Context, match navigation.Match) {
	decision := navigation.Guard(match, utils.SessionFromContext(c.Request.Context()))
	if !decision.Proceed() {
		c.Redirect(http.StatusFound, decision.Redirect)
		c.Abort()
		return
	}
	c.Next()
}
