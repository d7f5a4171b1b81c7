package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	vaccinations  []Vaccination
	diagnoses     []Diagnosis
	prescriptions []Prescription
	preventions   []Prevention
}

func (r *testRepo) CreateVaccination(ctx context.Context, v Vaccination) error {
	r.vaccinations = append(r.vaccinations, v)
	return nil
}

func (r *testRepo) ListVaccinationsByPet(ctx context.Context, petID string) ([]Vaccination, error) {
	out := make([]Vaccination, 0)
	for _, v := range r.vaccinations {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *testRepo) CreateDiagnosis(ctx context.Context, d Diagnosis) error {
	r.diagnoses = append(r.diagnoses, d)
	return nil
}

func (r *testRepo) ListDiagnosesByPet(ctx context.Context, petID string) ([]Diagnosis, error) {
	out := make([]Diagnosis, 0)
	for _, d := range r.diagnoses {
		if d.PetID == petID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *testRepo) CreatePrescription(ctx context.Context, p Prescription) error {
	r.prescriptions = append(r.prescriptions, p)
	return nil
}

func (r *testRepo) ListPrescriptionsByPet(ctx context.Context, petID string) ([]Prescription, error) {
	out := make([]Prescription, 0)
	for _, p := range r.prescriptions {
		if p.PetID == petID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) CreatePrevention(ctx context.Context, p Prevention) error {
	r.preventions = append(r.preventions, p)
	return nil
}

func (r *testRepo) ListPreventionsByPet(ctx context.Context, petID string) ([]Prevention, error) {
	out := make([]Prevention, 0)
	for _, p := range r.preventions {
		if p.PetID == petID {
			out = append(out, p)
		}
	}
	return out, nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestAddVaccination(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	v, err := svc.AddVaccination(ctx, VaccinationInput{
		PetID:     "p1",
		Name:      "  antirrábica ",
		AppliedOn: mustDate(t, "2024-01-10"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "antirrábica", v.Name)

	items, err := svc.ListVaccinationsByPet(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, v.ID, items[0].ID)

	// otra mascota no ve el registro
	items, err = svc.ListVaccinationsByPet(ctx, "p2")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddVaccination_Validation(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()
	applied := mustDate(t, "2024-01-10")

	cases := []VaccinationInput{
		{PetID: "", Name: "antirrábica", AppliedOn: applied},
		{PetID: "p1", Name: "  ", AppliedOn: applied},
		{PetID: "p1", Name: "antirrábica"}, // fecha cero
	}
	for _, in := range cases {
		_, err := svc.AddVaccination(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %+v", in)
	}
}

func TestAddDiagnosis(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	d, err := svc.AddDiagnosis(ctx, DiagnosisInput{
		PetID:       "p1",
		Title:       "otitis",
		Date:        mustDate(t, "2024-02-20"),
		Description: "oído izquierdo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)

	_, err = svc.AddDiagnosis(ctx, DiagnosisInput{PetID: "p1", Title: "", Date: d.Date})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddPrescription_Validation(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()
	date := mustDate(t, "2024-02-21")

	// medicamento y dosis son obligatorios; instrucciones no
	_, err := svc.AddPrescription(ctx, PrescriptionInput{
		PetID: "p1", Medication: "amoxicilina", Dosage: "", Date: date,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	p, err := svc.AddPrescription(ctx, PrescriptionInput{
		PetID: "p1", Medication: "amoxicilina", Dosage: "250mg cada 12h", Date: date,
	})
	require.NoError(t, err)
	assert.Empty(t, p.Instructions)
}

func TestAddPrevention(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	p, err := svc.AddPrevention(ctx, PreventionInput{
		PetID: "p1",
		Type:  "desparasitación",
		Date:  mustDate(t, "2024-04-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "desparasitación", p.Type)

	_, err = svc.AddPrevention(ctx, PreventionInput{PetID: "p1", Type: " ", Date: p.Date})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
