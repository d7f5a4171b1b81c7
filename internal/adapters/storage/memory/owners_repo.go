package memory

import (
	"context"
	"errors"
	"strings"

	"vacunapet/internal/domain/owners"
)

type ownersRepo struct {
	s *Store
}

func (r *ownersRepo) Create(ctx context.Context, o owners.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.s.owners[o.ID]; exists {
		return errors.New("owner already exists")
	}
	key := emailKey(o.Email)
	if _, taken := r.s.ownerByEmail[key]; taken {
		return owners.ErrEmailTaken
	}

	r.s.owners[o.ID] = o
	r.s.ownerByEmail[key] = o.ID
	return nil
}

func (r *ownersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownersRepo) GetByEmail(ctx context.Context, email string) (owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.ownerByEmail[emailKey(email)]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return r.s.owners[id], nil
}

func (r *ownersRepo) Update(ctx context.Context, o owners.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, exists := r.s.owners[o.ID]
	if !exists {
		return owners.ErrNotFound
	}

	newKey := emailKey(o.Email)
	if newKey != emailKey(prev.Email) {
		if _, taken := r.s.ownerByEmail[newKey]; taken {
			return owners.ErrEmailTaken
		}
		delete(r.s.ownerByEmail, emailKey(prev.Email))
		r.s.ownerByEmail[newKey] = o.ID
	}

	r.s.owners[o.ID] = o
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
