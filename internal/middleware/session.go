package middleware

import (
	"context"
	"net/http"

	"vacunapet/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// SessionContext:
// - Si hay cookie de sesión válida => setea claims en el contexto.
// - Si no la hay o no verifica, el request sigue igual; cada handler
//   decide si exige sesión (la API JSON nunca la mira).
func SessionContext(verifier auth.SessionVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), c.Value)
			if err != nil {
				// Cookie vencida o adulterada: seguimos sin claims.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// RequireUser corta la navegación web sin sesión: redirect a /login.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaims(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
