package records

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type VaccinationInput struct {
	PetID     string
	Name      string
	AppliedOn time.Time
}

func (s *Service) AddVaccination(ctx context.Context, in VaccinationInput) (Vaccination, error) {
	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.Name) == "" || in.AppliedOn.IsZero() {
		return Vaccination{}, ErrInvalidInput
	}

	v := Vaccination{
		ID:        uuid.NewString(),
		PetID:     strings.TrimSpace(in.PetID),
		Name:      strings.TrimSpace(in.Name),
		AppliedOn: in.AppliedOn,
	}
	if err := s.repo.CreateVaccination(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) ListVaccinationsByPet(ctx context.Context, petID string) ([]Vaccination, error) {
	return s.repo.ListVaccinationsByPet(ctx, petID)
}

type DiagnosisInput struct {
	PetID       string
	Title       string
	Date        time.Time
	Description string
}

func (s *Service) AddDiagnosis(ctx context.Context, in DiagnosisInput) (Diagnosis, error) {
	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.Title) == "" || in.Date.IsZero() {
		return Diagnosis{}, ErrInvalidInput
	}

	d := Diagnosis{
		ID:          uuid.NewString(),
		PetID:       strings.TrimSpace(in.PetID),
		Title:       strings.TrimSpace(in.Title),
		Date:        in.Date,
		Description: in.Description,
	}
	if err := s.repo.CreateDiagnosis(ctx, d); err != nil {
		return Diagnosis{}, err
	}
	return d, nil
}

func (s *Service) ListDiagnosesByPet(ctx context.Context, petID string) ([]Diagnosis, error) {
	return s.repo.ListDiagnosesByPet(ctx, petID)
}

type PrescriptionInput struct {
	PetID        string
	Medication   string
	Dosage       string
	Date         time.Time
	Instructions string
}

func (s *Service) AddPrescription(ctx context.Context, in PrescriptionInput) (Prescription, error) {
	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.Medication) == "" ||
		strings.TrimSpace(in.Dosage) == "" || in.Date.IsZero() {
		return Prescription{}, ErrInvalidInput
	}

	p := Prescription{
		ID:           uuid.NewString(),
		PetID:        strings.TrimSpace(in.PetID),
		Medication:   strings.TrimSpace(in.Medication),
		Dosage:       strings.TrimSpace(in.Dosage),
		Date:         in.Date,
		Instructions: in.Instructions,
	}
	if err := s.repo.CreatePrescription(ctx, p); err != nil {
		return Prescription{}, err
	}
	return p, nil
}

func (s *Service) ListPrescriptionsByPet(ctx context.Context, petID string) ([]Prescription, error) {
	return s.repo.ListPrescriptionsByPet(ctx, petID)
}

type PreventionInput struct {
	PetID       string
	Type        string
	Date        time.Time
	Description string
}

func (s *Service) AddPrevention(ctx context.Context, in PreventionInput) (Prevention, error) {
	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.Type) == "" || in.Date.IsZero() {
		return Prevention{}, ErrInvalidInput
	}

	p := Prevention{
		ID:          uuid.NewString(),
		PetID:       strings.TrimSpace(in.PetID),
		Type:        strings.TrimSpace(in.Type),
		Date:        in.Date,
		Description: in.Description,
	}
	if err := s.repo.CreatePrevention(ctx, p); err != nil {
		return Prevention{}, err
	}
	return p, nil
}

func (s *Service) ListPreventionsByPet(ctx context.Context, petID string) ([]Prevention, error) {
	return s.repo.ListPreventionsByPet(ctx, petID)
}
