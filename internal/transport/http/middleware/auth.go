package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/partytracker/party-service/internal/domain"
	"github.com/partytracker/party-service/internal/transport/http/response"
	zlog "github.com/rs/zerolog/log"
)

type principalKey struct{}

// principal is the verified caller stored on the request context.
type principal struct {
	userID string
	role   string
}

// Claims are issued by the auth service: uid and role on top of the
// registered claims.
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthMiddleware struct {
	secret []byte
	issuer string
}

func NewAuth(secret, issuer string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret), issuer: issuer}
}

func (a *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := a.parse(r)
		if err != nil {
			zlog.Debug().Err(err).Str("path", r.URL.Path).Msg("auth rejected")
			response.Err(w, r, &domain.AppError{
				Code:    domain.CodeUnauthorized,
				Message: "unauthorized",
				Meta:    map[string]string{"reason": err.Error()},
			})
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey{}, p)))
	})
}

func (a *AuthMiddleware) parse(r *http.Request) (principal, error) {
	raw, ok := bearerToken(r)
	if !ok {
		return principal{}, errors.New("missing bearer token")
	}

	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithLeeway(30 * time.Second),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return principal{}, err
	}
	if !tok.Valid {
		return principal{}, errors.New("invalid token")
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return principal{}, errors.New("missing uid")
	}

	p := principal{userID: claims.UserID, role: strings.TrimSpace(claims.Role)}
	if p.role == "" {
		p.role = "user"
	}
	return p, nil
}

// bearerToken accepts the scheme case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func principalFrom(r *http.Request) principal {
	p, _ := r.Context().Value(principalKey{}).(principal)
	return p
}

// UserID returns the authenticated caller's id, or "" outside Require.
func UserID(r *http.Request) string { return principalFrom(r).userID }

func Role(r *http.Request) string { return principalFrom(r).role }
