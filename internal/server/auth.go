package server

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"logbay/internal/config"
)

// gate authorizes callers of the log routes. Mode "none" passes everything
// through (trusted-network deployments); "token" compares a static bearer
// token; "jwt" validates an HS256 token whose role claim must be "owner".
type gate struct {
	mode   string
	token  string
	secret []byte
}

func newGate(cfg config.Server) *gate {
	return &gate{
		mode:   cfg.AuthMode,
		token:  cfg.APIToken,
		secret: []byte(cfg.JWTSecret),
	}
}

func (g *gate) require(next http.HandlerFunc) http.HandlerFunc {
	if g.mode == "none" {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !g.authorized(r) {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (g *gate) authorized(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return false
	}
	raw := strings.TrimPrefix(auth, "Bearer ")

	switch g.mode {
	case "token":
		return raw == g.token
	case "jwt":
		return g.ownerToken(raw)
	default:
		return false
	}
}

func (g *gate) ownerToken(raw string) bool {
	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "owner"
}
