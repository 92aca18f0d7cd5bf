package navigation

import "github.com/caseshowcase/showcase-backend/models"

// Decision is the outcome of the navigation guard. An empty Redirect means proceed.
type Decision struct {
	Redirect string
}

func (d Decision) Proceed() bool {
	return d.Redirect == ""
}

// Guard decides whether a visitor with the given session may navigate to the matched route.
func Guard(match Match, session models.Session) Decision {
	if match.RequiresAuth() && !session.IsAuthenticated() {
		return Decision{Redirect: LoginPath}
	}
	return Decision{}
}
