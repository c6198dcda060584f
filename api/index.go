package handler

import (
	"net/http"
	"sync"

	"staysync/config"
	"staysync/di"
	"staysync/shared/failure"
	"staysync/shared/logger"
	"staysync/transport/http/response"

	transport "staysync/transport/http"
)

var (
	once    sync.Once
	app     *transport.HTTP
	initErr error
)

// Handler is the serverless entrypoint. Form sessions live in memory, so they only survive while
// the function instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app, initErr = di.InitializeService()
	})

	if initErr != nil {
		response.WithError(w, failure.InternalError(initErr))

		return
	}

	app.ServeHTTP(w, r)
}
