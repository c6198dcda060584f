package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"staysync/shared"
	"staysync/shared/cache"
	"staysync/shared/constant"
	"staysync/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownAgent      = "unknown"
)

// RateLimit counts requests per client in Redis and rejects them once the window budget is spent.
// The limiter fails open when Redis cannot be reached.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limiter := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		if !limiter.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cacheKey := a.limitKey(r)

			count, err := a.hits(r, cacheKey)
			if err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			if count > limiter.MaxRequests {
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, limiter.WindowSeconds); err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limiter.MaxRequests-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

// hits returns the request count including the current one.
func (a *appMiddleware) hits(r *http.Request, cacheKey string) (int, error) {
	var count int

	err := a.cache.Get(r.Context(), cacheKey, &count)
	if errors.Is(err, cache.Nil) {
		return 1, nil
	}

	if err != nil {
		return 0, err
	}

	return count + 1, nil
}

// limitKey is keyed on address plus user agent. A client id only narrows the key further, so
// rotating it never yields a fresh budget for the same address.
func (a *appMiddleware) limitKey(r *http.Request) string {
	userAgent := r.Header.Get(constant.RequestHeaderUserAgent)
	if userAgent == constant.Empty {
		userAgent = unknownAgent
	}

	parts := []string{a.getClientIP(r), userAgent}

	if clientID := r.Header.Get(constant.RequestHeaderClientID); clientID != constant.Empty {
		parts = append(parts, clientID)
	}

	return shared.BuildCacheKey(cacheKeyRateLimit, parts...)
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
