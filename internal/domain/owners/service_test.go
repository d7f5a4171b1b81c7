package owners

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID    map[string]Owner
	byEmail map[string]string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Owner{}, byEmail: map[string]string{}}
}

func (r *testRepo) Create(ctx context.Context, o Owner) error {
	key := strings.ToLower(o.Email)
	if _, ok := r.byEmail[key]; ok {
		return ErrEmailTaken
	}
	r.byID[o.ID] = o
	r.byEmail[key] = o.ID
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Owner, error) {
	o, ok := r.byID[id]
	if !ok {
		return Owner{}, ErrNotFound
	}
	return o, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (Owner, error) {
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return Owner{}, ErrNotFound
	}
	return r.byID[id], nil
}

func (r *testRepo) Update(ctx context.Context, o Owner) error {
	old, ok := r.byID[o.ID]
	if !ok {
		return ErrNotFound
	}
	newKey := strings.ToLower(o.Email)
	if newKey != strings.ToLower(old.Email) {
		if _, taken := r.byEmail[newKey]; taken {
			return ErrEmailTaken
		}
		delete(r.byEmail, strings.ToLower(old.Email))
		r.byEmail[newKey] = o.ID
	}
	r.byID[o.ID] = o
	return nil
}

func TestRegister_HashesPassword(t *testing.T) {
	svc := NewService(newTestRepo())

	o, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreta123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if o.ID == "" {
		t.Fatalf("expected generated id")
	}
	if o.PasswordHash == "secreta123" || o.PasswordHash == "" {
		t.Fatalf("password must be stored hashed, got %q", o.PasswordHash)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []RegisterInput{
		{Name: "", Email: "a@b.com", Password: "x"},
		{Name: "Ana", Email: "", Password: "x"},
		{Name: "Ana", Email: "a@b.com", Password: ""},
		{Name: "   ", Email: "a@b.com", Password: "x"},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	in := RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secreta123"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}

	in.Name = "Otra"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(newTestRepo())

	reg, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "secreta123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	o, err := svc.Authenticate(context.Background(), "ana@example.com", "secreta123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if o.ID != reg.ID {
		t.Fatalf("expected owner %s, got %s", reg.ID, o.ID)
	}

	// Contraseña incorrecta y email desconocido devuelven el mismo error
	if _, err := svc.Authenticate(context.Background(), "ana@example.com", "incorrecta"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("wrong password: expected ErrBadCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nadie@example.com", "secreta123"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("unknown email: expected ErrBadCredentials, got %v", err)
	}
}

func TestUpdateProfile_Partial(t *testing.T) {
	svc := NewService(newTestRepo())

	o, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ana", Surname: "García", Email: "ana@example.com", Password: "secreta123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	nuevo := "Ana María"
	got, err := svc.UpdateProfile(context.Background(), o.ID, UpdateProfileInput{Name: &nuevo})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Ana María" {
		t.Fatalf("expected updated name, got %q", got.Name)
	}
	if got.Surname != "García" || got.Email != "ana@example.com" {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	vacio := "   "
	if _, err := svc.UpdateProfile(context.Background(), o.ID, UpdateProfileInput{Name: &vacio}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}

	if _, err := svc.UpdateProfile(context.Background(), "no-existe", UpdateProfileInput{Name: &nuevo}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown owner: expected ErrNotFound, got %v", err)
	}
}
