package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []CreateInput{
		{OwnerID: "", Name: "Rex", Species: "perro", Breed: "mixta"},
		{OwnerID: "u1", Name: "", Species: "perro", Breed: "mixta"},
		{OwnerID: "u1", Name: "Rex", Species: "", Breed: "mixta"},
		{OwnerID: "u1", Name: "Rex", Species: "perro", Breed: ""},
		{OwnerID: "u1", Name: "Rex", Species: "perro", Breed: "mixta", Weight: -1},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestUpdate_OnlySentFieldsChange(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{
		OwnerID:   "u1",
		Name:      "Rex",
		Species:   "perro",
		Breed:     "labrador",
		BirthDate: date("2020-05-01"),
		Weight:    28.5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	castrado := true
	got, err := svc.Update(context.Background(), p.ID, UpdateInput{Sterilized: &castrado})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if !got.Sterilized {
		t.Fatalf("expected sterilized=true")
	}
	if got.Name != "Rex" || got.Breed != "labrador" || got.Weight != 28.5 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if got.BirthDate == nil || !got.BirthDate.Equal(*date("2020-05-01")) {
		t.Fatalf("birth date changed: %v", got.BirthDate)
	}
}

func TestUpdate_BirthDatePatch(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{
		OwnerID: "u1", Name: "Rex", Species: "perro", Breed: "mixta",
		BirthDate: date("2020-05-01"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Present=false no toca la fecha
	got, err := svc.Update(context.Background(), p.ID, UpdateInput{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.BirthDate == nil {
		t.Fatalf("birth date must survive an update that does not send it")
	}

	// Present=true con Value=nil la limpia
	got, err = svc.Update(context.Background(), p.ID, UpdateInput{
		BirthDate: BirthDatePatch{Present: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.BirthDate != nil {
		t.Fatalf("expected cleared birth date, got %v", got.BirthDate)
	}
	if got.Age(time.Now()) != nil {
		t.Fatalf("expected nil age without birth date")
	}
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{
		OwnerID: "u1", Name: "Rex", Species: "perro", Breed: "mixta",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	vacio := " "
	if _, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: &vacio}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}

	negativo := -2.0
	if _, err := svc.Update(context.Background(), p.ID, UpdateInput{Weight: &negativo}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative weight: expected ErrInvalidInput, got %v", err)
	}

	nombre := "Otro"
	if _, err := svc.Update(context.Background(), "no-existe", UpdateInput{Name: &nombre}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown pet: expected ErrNotFound, got %v", err)
	}
}

func TestAge(t *testing.T) {
	at, _ := time.Parse("2006-01-02", "2024-04-30")

	cases := []struct {
		birth string
		want  int
	}{
		{"2020-05-01", 3}, // cumple mañana
		{"2020-04-30", 4}, // cumple hoy
		{"2020-04-01", 4},
		{"2024-04-30", 0},
	}
	for _, c := range cases {
		p := Pet{BirthDate: date(c.birth)}
		got := p.Age(at)
		if got == nil || *got != c.want {
			t.Fatalf("birth %s: expected %d, got %v", c.birth, c.want, got)
		}
	}

	if (Pet{}).Age(at) != nil {
		t.Fatalf("expected nil age without birth date")
	}
}
