package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"vacunapet/internal/domain/pets"
)

type petsRepo struct {
	s *Store
}

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.s.pets[p.ID]; exists {
		return errors.New("pet already exists")
	}
	if _, ok := r.s.owners[p.OwnerID]; !ok {
		return pets.ErrInvalidInput
	}

	r.s.pets[p.ID] = p
	return nil
}

func (r *petsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}

	// Orden estable por created_at asc (consistencia en dev/tests)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.pets[p.ID]; !exists {
		return pets.ErrNotFound
	}
	r.s.pets[p.ID] = p
	return nil
}

// Delete borra la mascota y sus cuatro colecciones bajo el mismo lock:
// nunca quedan registros huérfanos a medias.
func (r *petsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.pets[id]; !exists {
		return pets.ErrNotFound
	}

	for k, v := range r.s.vaccinations {
		if v.PetID == id {
			delete(r.s.vaccinations, k)
		}
	}
	for k, d := range r.s.diagnoses {
		if d.PetID == id {
			delete(r.s.diagnoses, k)
		}
	}
	for k, p := range r.s.prescriptions {
		if p.PetID == id {
			delete(r.s.prescriptions, k)
		}
	}
	for k, p := range r.s.preventions {
		if p.PetID == id {
			delete(r.s.preventions, k)
		}
	}

	delete(r.s.pets, id)
	return nil
}
