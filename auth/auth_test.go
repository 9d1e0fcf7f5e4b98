package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"styledecor/globals"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueTokenSignsArbitraryClaims(t *testing.T) {
	globals.JwtSecret = []byte("test-secret")

	body := strings.NewReader(`{"email":"a@x.com","name":"A"}`)
	req := httptest.NewRequest(http.MethodPost, "/jwt", body)
	rec := httptest.NewRecorder()

	IssueToken(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["token"] == "" {
		t.Fatal("no token in response")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(resp["token"], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims["email"] != "a@x.com" {
		t.Fatalf("email claim lost: %v", claims["email"])
	}
	if claims["name"] != "A" {
		t.Fatalf("extra claim lost: %v", claims["name"])
	}

	expTime, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("exp claim: %v", err)
	}
	want := time.Now().Add(tokenTTL)
	if diff := expTime.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("expiry not ~7 days out: %v", expTime.Time)
	}
}

func TestIssueTokenRejectsBadJSON(t *testing.T) {
	globals.JwtSecret = []byte("test-secret")

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":`))
	rec := httptest.NewRecorder()

	IssueToken(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
