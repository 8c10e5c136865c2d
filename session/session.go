package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"creamery/globals"
	"creamery/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// Guest sessions: the storefront has no user accounts, but the cart and
// form drafts need a durable owner. A signed token carrying a random
// session id is handed to the browser once and sent back on every
// cart/draft/checkout call.

// JWT claims
type Claims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// Issue mints a fresh guest session token.
func Issue(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := utils.GenerateRandomString(16)

	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token":     signed,
		"sessionId": sessionID,
	})
}

// ValidateToken parses a raw (non-prefixed) session token.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

func fromHeader(r *http.Request) (*Claims, error) {
	tokenString := r.Header.Get("Authorization")
	if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
		return nil, fmt.Errorf("missing or malformed token")
	}
	return ValidateToken(tokenString[7:])
}

// Require rejects requests without a valid session token and stores the
// session id in the request context.
func Require(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := fromHeader(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), globals.SessionIDKey, claims.SessionID)
		next(w, r.WithContext(ctx), ps)
	}
}

// Optional attaches the session id when a valid token is present and
// proceeds regardless.
func Optional(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if claims, err := fromHeader(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), globals.SessionIDKey, claims.SessionID))
		}
		next(w, r, ps)
	}
}

// FromContext returns the session id set by Require/Optional, or "".
func FromContext(ctx context.Context) string {
	if v, ok := ctx.Value(globals.SessionIDKey).(string); ok {
		return v
	}
	return ""
}
