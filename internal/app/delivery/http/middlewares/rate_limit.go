package middlewares

import (
	"errors"
	"net/http"
	"time"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit allows MaxRequests per MaxTimeRequestsPerSeconds for each client
// IP and answers with the JSON error envelope once exceeded.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}

	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errors.New("rate limit exceeded"), r.RemoteAddr))
		}),
	)
}
