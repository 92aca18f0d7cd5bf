package models

// Session is the authentication state of a visitor. The zero value is an anonymous visitor.
type Session struct {
	Uid           string
	Email         string
	Authenticated bool
}

func NewAuthenticatedSession(uid, email string) Session {
	return Session{
		Uid:           uid,
		Email:         email,
		Authenticated: true,
	}
}

func (s Session) IsAuthenticated() bool {
	return s.Authenticated && s.Uid != ""
}
