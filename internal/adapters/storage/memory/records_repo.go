package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"vacunapet/internal/domain/records"
)

type recordsRepo struct {
	s *Store
}

func (r *recordsRepo) CreateVaccination(ctx context.Context, v records.Vaccination) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("vaccination id required")
	}
	r.s.vaccinations[v.ID] = v
	return nil
}

func (r *recordsRepo) ListVaccinationsByPet(ctx context.Context, petID string) ([]records.Vaccination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]records.Vaccination, 0)
	for _, v := range r.s.vaccinations {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedOn.Before(out[j].AppliedOn) })
	return out, nil
}

func (r *recordsRepo) CreateDiagnosis(ctx context.Context, d records.Diagnosis) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("diagnosis id required")
	}
	r.s.diagnoses[d.ID] = d
	return nil
}

func (r *recordsRepo) ListDiagnosesByPet(ctx context.Context, petID string) ([]records.Diagnosis, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]records.Diagnosis, 0)
	for _, d := range r.s.diagnoses {
		if d.PetID == petID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *recordsRepo) CreatePrescription(ctx context.Context, p records.Prescription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("prescription id required")
	}
	r.s.prescriptions[p.ID] = p
	return nil
}

func (r *recordsRepo) ListPrescriptionsByPet(ctx context.Context, petID string) ([]records.Prescription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]records.Prescription, 0)
	for _, p := range r.s.prescriptions {
		if p.PetID == petID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *recordsRepo) CreatePrevention(ctx context.Context, p records.Prevention) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("prevention id required")
	}
	r.s.preventions[p.ID] = p
	return nil
}

func (r *recordsRepo) ListPreventionsByPet(ctx context.Context, petID string) ([]records.Prevention, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]records.Prevention, 0)
	for _, p := range r.s.preventions {
		if p.PetID == petID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
