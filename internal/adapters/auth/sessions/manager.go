package sessions

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"vacunapet/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenInvalid = errors.New("session token invalid")
)

// Manager emite y verifica las sesiones de la superficie web.
// La sesión es un JWT HS256 en una cookie HttpOnly; el subject es el
// id del dueño. Implementa auth.SessionVerifier.
type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	now        func() time.Time
}

func NewManager(secret string, ttl time.Duration, cookieName string) *Manager {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Manager{
		secret:     []byte(secret),
		ttl:        ttl,
		cookieName: cookieName,
		now:        time.Now,
	}
}

type sessionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Issue firma un token de sesión para el dueño indicado.
func (m *Manager) Issue(ownerID, email string) (string, error) {
	if strings.TrimSpace(ownerID) == "" {
		return "", errors.New("owner id required")
	}

	now := m.now()
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	uid := strings.TrimSpace(claims.Subject)
	if uid == "" {
		return auth.Claims{}, ErrTokenInvalid
	}

	return auth.Claims{UserID: uid, Email: claims.Email}, nil
}

func (m *Manager) CookieName() string { return m.cookieName }

// Cookie arma la cookie de sesión para el token dado.
func (m *Manager) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie invalida la sesión del navegador (logout).
func (m *Manager) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
