package auth

import "context"

// SessionVerifier valida un token de sesión y devuelve claims o error.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
