package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-stock-dashboard/internal/devserver"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// On success the user id from the token is stored in the request context
// under [utils.UserIDCtxKey]. A missing, malformed, expired or foreign token
// is rejected with 401 and a "WWW-Authenticate: Bearer" header.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, devserver.ErrInvalidToken.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)).Send()
			unauthorized(w, devserver.ErrInvalidToken.Error())
			return
		}

		userID, err := h.backend.ParseToken(tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			unauthorized(w, devserver.ErrInvalidToken.Error())
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteDetail(w, detail, http.StatusUnauthorized)
}
