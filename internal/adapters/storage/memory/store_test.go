package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"vacunapet/internal/domain/owners"
	"vacunapet/internal/domain/pets"
	"vacunapet/internal/domain/records"
)

func seedOwner(t *testing.T, s *Store, id, email string) {
	t.Helper()
	err := s.Owners().Create(context.Background(), owners.Owner{
		ID:    id,
		Name:  "Ana",
		Email: email,
	})
	if err != nil {
		t.Fatalf("seed owner: %v", err)
	}
}

func seedPet(t *testing.T, s *Store, id, ownerID string) {
	t.Helper()
	err := s.Pets().Create(context.Background(), pets.Pet{
		ID:      id,
		OwnerID: ownerID,
		Name:    "Rex",
		Species: "perro",
		Breed:   "mixta",
	})
	if err != nil {
		t.Fatalf("seed pet: %v", err)
	}
}

func TestOwners_EmailUniqueness(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	seedOwner(t, s, "u1", "ana@example.com")

	// Mismo email con distinta capitalización => duplicado
	err := s.Owners().Create(ctx, owners.Owner{ID: "u2", Name: "Otra", Email: "ANA@example.com"})
	if !errors.Is(err, owners.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// El update que pisa un email ajeno también falla
	seedOwner(t, s, "u3", "otra@example.com")
	o, err := s.Owners().GetByID(ctx, "u3")
	if err != nil {
		t.Fatalf("get owner: %v", err)
	}
	o.Email = "ana@example.com"
	if err := s.Owners().Update(ctx, o); !errors.Is(err, owners.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken on update, got %v", err)
	}

	// GetByEmail ignora mayúsculas y espacios
	got, err := s.Owners().GetByEmail(ctx, "  ANA@example.com ")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != "u1" {
		t.Fatalf("expected u1, got %s", got.ID)
	}
}

func TestPets_CreateRequiresOwner(t *testing.T) {
	s := NewStore()

	err := s.Pets().Create(context.Background(), pets.Pet{
		ID:      "p1",
		OwnerID: "no-existe",
		Name:    "Rex",
	})
	if !errors.Is(err, pets.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPets_DeleteCascadesRecords(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	seedOwner(t, s, "u1", "ana@example.com")
	seedPet(t, s, "p1", "u1")
	seedPet(t, s, "p2", "u1")

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	reps := s.Records()
	if err := reps.CreateVaccination(ctx, records.Vaccination{ID: "v1", PetID: "p1", Name: "antirrábica", AppliedOn: date}); err != nil {
		t.Fatalf("create vaccination: %v", err)
	}
	if err := reps.CreateDiagnosis(ctx, records.Diagnosis{ID: "d1", PetID: "p1", Title: "otitis", Date: date}); err != nil {
		t.Fatalf("create diagnosis: %v", err)
	}
	if err := reps.CreatePrescription(ctx, records.Prescription{ID: "r1", PetID: "p1", Medication: "amoxicilina", Dosage: "250mg", Date: date}); err != nil {
		t.Fatalf("create prescription: %v", err)
	}
	if err := reps.CreatePrevention(ctx, records.Prevention{ID: "pr1", PetID: "p1", Type: "desparasitación", Date: date}); err != nil {
		t.Fatalf("create prevention: %v", err)
	}
	// Registro de otra mascota: debe sobrevivir al delete de p1
	if err := reps.CreateVaccination(ctx, records.Vaccination{ID: "v2", PetID: "p2", Name: "triple", AppliedOn: date}); err != nil {
		t.Fatalf("create vaccination p2: %v", err)
	}

	if err := s.Pets().Delete(ctx, "p1"); err != nil {
		t.Fatalf("delete pet: %v", err)
	}

	if _, err := s.Pets().GetByID(ctx, "p1"); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	vs, _ := reps.ListVaccinationsByPet(ctx, "p1")
	ds, _ := reps.ListDiagnosesByPet(ctx, "p1")
	ps, _ := reps.ListPrescriptionsByPet(ctx, "p1")
	prs, _ := reps.ListPreventionsByPet(ctx, "p1")
	if len(vs)+len(ds)+len(ps)+len(prs) != 0 {
		t.Fatalf("expected all records of p1 deleted, got %d/%d/%d/%d", len(vs), len(ds), len(ps), len(prs))
	}

	// La otra mascota conserva lo suyo
	vs2, _ := reps.ListVaccinationsByPet(ctx, "p2")
	if len(vs2) != 1 {
		t.Fatalf("expected p2 records untouched, got %d", len(vs2))
	}

	// Doble delete => not found
	if err := s.Pets().Delete(ctx, "p1"); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestRecords_ListsSortedByDate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	seedOwner(t, s, "u1", "ana@example.com")
	seedPet(t, s, "p1", "u1")

	reps := s.Records()
	d := func(day int) time.Time { return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC) }

	_ = reps.CreateVaccination(ctx, records.Vaccination{ID: "v2", PetID: "p1", Name: "segunda", AppliedOn: d(20)})
	_ = reps.CreateVaccination(ctx, records.Vaccination{ID: "v1", PetID: "p1", Name: "primera", AppliedOn: d(5)})
	_ = reps.CreateVaccination(ctx, records.Vaccination{ID: "v3", PetID: "p1", Name: "tercera", AppliedOn: d(25)})

	vs, err := reps.ListVaccinationsByPet(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(vs) != 3 {
		t.Fatalf("expected 3 vaccinations, got %d", len(vs))
	}
	if vs[0].ID != "v1" || vs[1].ID != "v2" || vs[2].ID != "v3" {
		t.Fatalf("expected date-ascending order, got %s %s %s", vs[0].ID, vs[1].ID, vs[2].ID)
	}
}
