package auth

// Claims representa la identidad extraída de una sesión web válida.
type Claims struct {
	UserID string
	Email  string
}
