package memory

import (
	"sync"

	"vacunapet/internal/domain/owners"
	"vacunapet/internal/domain/pets"
	"vacunapet/internal/domain/records"
)

// Store guarda todo en maps bajo un único lock. Los repos son vistas
// sobre el mismo Store: así el delete de mascota puede borrar sus
// registros médicos atómicamente, igual que la transacción de Postgres.
type Store struct {
	mu sync.RWMutex

	owners       map[string]owners.Owner
	ownerByEmail map[string]string // email -> owner id (unicidad)

	pets map[string]pets.Pet

	vaccinations  map[string]records.Vaccination
	diagnoses     map[string]records.Diagnosis
	prescriptions map[string]records.Prescription
	preventions   map[string]records.Prevention
}

func NewStore() *Store {
	return &Store{
		owners:        make(map[string]owners.Owner),
		ownerByEmail:  make(map[string]string),
		pets:          make(map[string]pets.Pet),
		vaccinations:  make(map[string]records.Vaccination),
		diagnoses:     make(map[string]records.Diagnosis),
		prescriptions: make(map[string]records.Prescription),
		preventions:   make(map[string]records.Prevention),
	}
}

func (s *Store) Owners() owners.Repository   { return &ownersRepo{s: s} }
func (s *Store) Pets() pets.Repository       { return &petsRepo{s: s} }
func (s *Store) Records() records.Repository { return &recordsRepo{s: s} }
