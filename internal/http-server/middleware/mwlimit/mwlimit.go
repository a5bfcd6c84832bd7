package mwlimit

import (
	"net"
	"net/http"
	"sync"

	"courtbooker/internal/config"
	"courtbooker/internal/lib/api/response"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

// New rate-limits by client IP with a token bucket per key. Used on the
// auth endpoints to slow down credential guessing.
func New(cfg config.RateLimit) func(next http.Handler) http.Handler {
	l := &limiter{cfg: cfg}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if !l.get(clientKey(r)).Allow() {
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests, slow down"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

type limiter struct {
	limiters sync.Map
	cfg      config.RateLimit
}

func (l *limiter) get(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	burst := l.cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	lim := rate.NewLimiter(rate.Limit(l.cfg.RPS), burst)
	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
