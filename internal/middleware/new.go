package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"todo-backend/pkg/log"
)

type Middleware struct {
	l           log.Logger
	jwtSecret   []byte
	internalKey string

	limiters *expirable.LRU[string, *rate.Limiter]
	rps      rate.Limit
	burst    int
}

// New builds the middleware set shared by all HTTP routes.
// requestsPerMin bounds each client IP; 0 disables rate limiting.
func New(l log.Logger, jwtSecret, internalKey string, requestsPerMin int) Middleware {
	mw := Middleware{
		l:           l,
		jwtSecret:   []byte(jwtSecret),
		internalKey: internalKey,
	}

	if requestsPerMin > 0 {
		mw.rps = rate.Limit(float64(requestsPerMin) / 60.0)
		mw.burst = requestsPerMin / 10
		if mw.burst < 1 {
			mw.burst = 1
		}
		// Idle clients age out after 5 minutes, capped at 1000 entries.
		mw.limiters = expirable.NewLRU[string, *rate.Limiter](1000, nil, time.Minute*5)
	}

	return mw
}
