package api

import (
	"time"
)

type Configuration struct {
	Env                 string
	AppName             string
	Port                string
	SiteUrl             string
	RequestLoggingLevel string
	SessionCookieSecure bool
	DefaultTimeout      time.Duration

	FirebaseConfig FirebaseConfig
}

// FirebaseConfig is the public web configuration used by the login page to sign in with
// the Firebase JS SDK.
type FirebaseConfig struct {
	EmulatorHost string
	ProjectId    string
	ApiKey       string
	AuthDomain   string
}

func (cfg FirebaseConfig) IsEmulator() bool {
	return cfg.EmulatorHost != ""
}
