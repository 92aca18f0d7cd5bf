package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/caseshowcase/showcase-backend/usecases"
)

type Option func(*options)

func WithLocalTest(localTest bool) Option {
	return func(o *options) {
		o.localTest = localTest
	}
}

type options struct {
	localTest bool
}

func applyOptions(opts []Option) *options {
	o := &options{
		localTest: false,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewServer serves the website.
func NewServer(
	router *gin.Engine,
	conf Configuration,
	uc usecases.Usecases,
	sessions *SessionHandler,
	opts ...Option,
) *http.Server {
	addRoutes(router, conf, uc, sessions)
	return newHttpServer(router, conf, applyOptions(opts))
}

// NewTriggerServer serves the cleanup trigger receiver.
func NewTriggerServer(
	router *gin.Engine,
	conf Configuration,
	cleaner caseImagesCleaner,
	opts ...Option,
) *http.Server {
	addTriggerRoutes(router, cleaner)
	return newHttpServer(router, conf, applyOptions(opts))
}

func newHttpServer(router *gin.Engine, conf Configuration, o *options) *http.Server {
	var host string
	if o.localTest {
		host = "localhost"
	} else {
		host = "0.0.0.0"
	}

	// Add 5 seconds to the server timeout to gracefully handle the timeout in our code.
	// A zero DefaultTimeout leaves the server without timeouts.
	var maxTimeout time.Duration
	if conf.DefaultTimeout > 0 {
		maxTimeout = conf.DefaultTimeout + 5*time.Second
	}

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%s", host, conf.Port),
		WriteTimeout: maxTimeout,
		ReadTimeout:  maxTimeout,
		IdleTimeout:  maxTimeout,
		Handler:      h2c.NewHandler(router, &http2.Server{}),
	}
}
