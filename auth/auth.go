package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"styledecor/globals"
	"styledecor/rdx"
	"styledecor/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const tokenTTL = 7 * 24 * time.Hour

// IssueToken signs whatever claims object the client sends (the frontend
// posts the logged-in user's identity here after IdP login) and returns
// the bearer token. The payload shape is not validated.
func IssueToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := jwt.MapClaims{}
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(tokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Keep a record of the latest token per email. Best effort only.
	if email, ok := claims["email"].(string); ok && email != "" && rdx.Conn != nil {
		if err := rdx.RdxHset("tokki", email, tokenString); err != nil {
			log.Printf("Redis token storage failed: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"token": tokenString})
}
