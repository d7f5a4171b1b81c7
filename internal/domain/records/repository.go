package records

import "context"

type Repository interface {
	CreateVaccination(ctx context.Context, v Vaccination) error
	ListVaccinationsByPet(ctx context.Context, petID string) ([]Vaccination, error)

	CreateDiagnosis(ctx context.Context, d Diagnosis) error
	ListDiagnosesByPet(ctx context.Context, petID string) ([]Diagnosis, error)

	CreatePrescription(ctx context.Context, p Prescription) error
	ListPrescriptionsByPet(ctx context.Context, petID string) ([]Prescription, error)

	CreatePrevention(ctx context.Context, p Prevention) error
	ListPreventionsByPet(ctx context.Context, petID string) ([]Prevention, error)
}
