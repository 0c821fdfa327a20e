package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/pkg/ctxutil"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLen = 128

// RequestID stores the request ID and client IP in the context. An incoming
// X-Request-Id is reused when present and reasonably sized. The client IP is
// the socket peer unless that peer is one of proxies.
func RequestID(proxies TrustedProxies) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			ctx = ctxutil.WithClientIP(ctx, proxies.clientIP(r))
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
