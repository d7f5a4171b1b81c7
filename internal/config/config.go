package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Properties agrupa toda la configuración de la app, leída desde env.
type Properties struct {
	Port    string `env:"PORT" envDefault:"8080"`
	AppName string `env:"APP_NAME" envDefault:"vacunapet"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// DSN de Postgres. Vacío => storage in-memory (modo dev).
	DatabaseDSN string `env:"DB_DSN"`

	Session SessionProperties `envPrefix:"SESSION_"`
	Uploads UploadProperties  `envPrefix:"UPLOAD_"`
}

type SessionProperties struct {
	// Secreto HMAC para las cookies de sesión web.
	// El default solo sirve para dev; en prod debe venir por env.
	Secret     string        `env:"SECRET" envDefault:"clave_secreta_dev"`
	TTL        time.Duration `env:"TTL" envDefault:"168h"`
	CookieName string        `env:"COOKIE" envDefault:"vp_session"`
}

type UploadProperties struct {
	Dir string `env:"DIR" envDefault:"uploads"`
}

func Read() *Properties {
	cfg := &Properties{}
	if err := env.Parse(cfg); err != nil {
		panic(fmt.Errorf("read config error: %w", err))
	}
	return cfg
}
