package middlewares

import (
	"clinicorp-proxy-service/internal/pkg/exceptions"
	"clinicorp-proxy-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit limits each client IP to App.MaxRequests per second. A limit of
// zero or less turns it off.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	maxRequests := m.InternalConfig.App.MaxRequests
	if maxRequests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		maxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
