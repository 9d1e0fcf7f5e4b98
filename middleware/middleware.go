package middleware

import (
	"context"
	"net/http"
	"strings"

	"styledecor/globals"
	"styledecor/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// Authenticate verifies the bearer token against the process secret.
// A missing Authorization header is 401; a present token that fails
// verification for any reason (bad format, wrong signature, expired)
// is 403. Decoded claims go into the request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.RespondWithMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			return globals.JwtSecret, nil
		})
		if err != nil || !token.Valid {
			utils.RespondWithMessage(w, http.StatusForbidden, "Forbidden")
			return
		}

		ctx := context.WithValue(r.Context(), globals.ClaimsKey, claims)
		next(w, r.WithContext(ctx), ps)
	}
}

// ClaimsFromRequest returns the decoded token claims, or nil when the
// request did not pass through Authenticate.
func ClaimsFromRequest(r *http.Request) jwt.MapClaims {
	claims, _ := r.Context().Value(globals.ClaimsKey).(jwt.MapClaims)
	return claims
}
