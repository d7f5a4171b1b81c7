package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
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

type CreateInput struct {
	OwnerID    string
	Name       string
	Species    string
	Breed      string
	BirthDate  *time.Time
	Weight     float64
	Microchip  string
	Sterilized bool
	Photo      string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.OwnerID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" || strings.TrimSpace(in.Breed) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Weight < 0 {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:         uuid.NewString(),
		OwnerID:    strings.TrimSpace(in.OwnerID),
		Name:       strings.TrimSpace(in.Name),
		Species:    strings.TrimSpace(in.Species),
		Breed:      strings.TrimSpace(in.Breed),
		BirthDate:  in.BirthDate,
		Weight:     in.Weight,
		Microchip:  strings.TrimSpace(in.Microchip),
		Sterilized: in.Sterilized,
		Photo:      in.Photo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// BirthDatePatch distingue "campo no enviado" de "enviado como null":
// Present=false no toca; Present=true con Value=nil limpia la fecha.
type BirthDatePatch struct {
	Present bool
	Value   *time.Time
}

// Punteros para update parcial: nil = no tocar ese campo.
type UpdateInput struct {
	Name       *string
	Species    *string
	Breed      *string
	BirthDate  BirthDatePatch
	Weight     *float64
	Microchip  *string
	Sterilized *bool
	Photo      *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		if strings.TrimSpace(*in.Species) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Species = strings.TrimSpace(*in.Species)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.BirthDate.Present {
		p.BirthDate = in.BirthDate.Value
	}
	if in.Weight != nil {
		if *in.Weight < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.Weight = *in.Weight
	}
	if in.Microchip != nil {
		p.Microchip = strings.TrimSpace(*in.Microchip)
	}
	if in.Sterilized != nil {
		p.Sterilized = *in.Sterilized
	}
	if in.Photo != nil {
		p.Photo = *in.Photo
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
