package owners

import "time"

// Owner es el dueño registrado; puede tener cero o más mascotas.
type Owner struct {
	ID      string
	Name    string
	Surname string
	Email   string

	// Hash bcrypt, nunca la contraseña en claro.
	PasswordHash string

	// Foto codificada inline (base64 u otro texto); "" si no tiene.
	Photo string

	CreatedAt time.Time
	UpdatedAt time.Time
}
