package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/techstore-mx/techstore-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Session scopes cart and wishlist state to a caller-held session id. A
// missing header mints a fresh id; either way the id echoes back in the
// response so the storefront can persist it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionIDHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
