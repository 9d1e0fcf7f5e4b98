package middleware

import (
	"context"
	"net/http"
	"strings"

	"styledecor/globals"
	"styledecor/utils"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"google.golang.org/api/option"
)

var firebaseAuth *fbauth.Client

// InitFirebase wires the identity-provider verification path. credFile is
// the service-account JSON; when it is empty the path stays disabled and
// VerifyFirebase rejects everything with 403.
func InitFirebase(ctx context.Context, credFile string) error {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credFile))
	if err != nil {
		return err
	}
	firebaseAuth, err = app.Auth(ctx)
	return err
}

// VerifyFirebase is the alternate verifier: same header contract as
// Authenticate, but the token is checked by the identity provider instead
// of the process secret. Any rejection, including provider/network
// failure, collapses to 403.
func VerifyFirebase(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.RespondWithMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if firebaseAuth == nil {
			utils.RespondWithMessage(w, http.StatusForbidden, "Forbidden")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		decoded, err := firebaseAuth.VerifyIDToken(r.Context(), tokenString)
		if err != nil {
			utils.RespondWithMessage(w, http.StatusForbidden, "Forbidden")
			return
		}

		ctx := context.WithValue(r.Context(), globals.ClaimsKey, jwt.MapClaims(decoded.Claims))
		next(w, r.WithContext(ctx), ps)
	}
}
