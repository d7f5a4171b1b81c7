package owners

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("owner not found")

	// ErrEmailTaken lo devuelve el storage ante email duplicado
	// (la unicidad se exige en la base, no con check-then-insert).
	ErrEmailTaken = errors.New("email already registered")

	// ErrBadCredentials es el mismo para email desconocido y contraseña
	// incorrecta, para no permitir enumerar usuarios.
	ErrBadCredentials = errors.New("bad credentials")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Surname  string // opcional
	Email    string
	Password string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Owner, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return Owner{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Owner{}, err
	}

	now := s.now()
	o := Owner{
		ID:           uuid.NewString(),
		Name:         name,
		Surname:      strings.TrimSpace(in.Surname),
		Email:        email,
		PasswordHash: string(hash),
		Photo:        "",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

// Authenticate verifica credenciales y devuelve el dueño.
// bcrypt compara en tiempo constante; cualquier fallo es ErrBadCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Owner, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Owner{}, ErrInvalidInput
	}

	o, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return Owner{}, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)); err != nil {
		return Owner{}, ErrBadCredentials
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

// Punteros para update parcial: nil = no tocar ese campo.
type UpdateProfileInput struct {
	Name    *string
	Surname *string
	Email   *string
	Photo   *string
}

func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (Owner, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Owner{}, ErrInvalidInput
		}
		o.Name = strings.TrimSpace(*in.Name)
	}
	if in.Surname != nil {
		o.Surname = strings.TrimSpace(*in.Surname)
	}
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return Owner{}, ErrInvalidInput
		}
		o.Email = strings.TrimSpace(*in.Email)
	}
	if in.Photo != nil {
		o.Photo = *in.Photo
	}

	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

// UpdatePhoto reemplaza solo la foto (la API móvil la manda inline).
func (s *Service) UpdatePhoto(ctx context.Context, id, photo string) error {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	o.Photo = photo
	o.UpdatedAt = s.now()
	return s.repo.Update(ctx, o)
}
