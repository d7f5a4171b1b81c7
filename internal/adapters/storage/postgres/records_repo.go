package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vacunapet/internal/domain/records"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) CreateVaccination(ctx context.Context, v records.Vaccination) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vacunas (id, mascota_id, nombre, fecha_aplicacion)
		VALUES ($1,$2,$3,$4)
	`, v.ID, v.PetID, v.Name, v.AppliedOn)
	if isFKViolation(err) {
		return records.ErrInvalidInput
	}
	return err
}

func (r *RecordsRepo) ListVaccinationsByPet(ctx context.Context, petID string) ([]records.Vaccination, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, mascota_id, nombre, fecha_aplicacion
		FROM vacunas
		WHERE mascota_id = $1
		ORDER BY fecha_aplicacion ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.Vaccination, 0)
	for rows.Next() {
		var v records.Vaccination
		if err := rows.Scan(&v.ID, &v.PetID, &v.Name, &v.AppliedOn); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *RecordsRepo) CreateDiagnosis(ctx context.Context, d records.Diagnosis) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO diagnosticos (id, mascota_id, titulo, fecha, descripcion)
		VALUES ($1,$2,$3,$4,$5)
	`, d.ID, d.PetID, d.Title, d.Date, d.Description)
	if isFKViolation(err) {
		return records.ErrInvalidInput
	}
	return err
}

func (r *RecordsRepo) ListDiagnosesByPet(ctx context.Context, petID string) ([]records.Diagnosis, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, mascota_id, titulo, fecha, descripcion
		FROM diagnosticos
		WHERE mascota_id = $1
		ORDER BY fecha ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.Diagnosis, 0)
	for rows.Next() {
		var d records.Diagnosis
		if err := rows.Scan(&d.ID, &d.PetID, &d.Title, &d.Date, &d.Description); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *RecordsRepo) CreatePrescription(ctx context.Context, p records.Prescription) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recetas (id, mascota_id, medicamento, dosis, fecha, instrucciones)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, p.ID, p.PetID, p.Medication, p.Dosage, p.Date, p.Instructions)
	if isFKViolation(err) {
		return records.ErrInvalidInput
	}
	return err
}

func (r *RecordsRepo) ListPrescriptionsByPet(ctx context.Context, petID string) ([]records.Prescription, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, mascota_id, medicamento, dosis, fecha, instrucciones
		FROM recetas
		WHERE mascota_id = $1
		ORDER BY fecha ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.Prescription, 0)
	for rows.Next() {
		var p records.Prescription
		if err := rows.Scan(&p.ID, &p.PetID, &p.Medication, &p.Dosage, &p.Date, &p.Instructions); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *RecordsRepo) CreatePrevention(ctx context.Context, p records.Prevention) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO prevenciones (id, mascota_id, tipo, fecha, descripcion)
		VALUES ($1,$2,$3,$4,$5)
	`, p.ID, p.PetID, p.Type, p.Date, p.Description)
	if isFKViolation(err) {
		return records.ErrInvalidInput
	}
	return err
}

func (r *RecordsRepo) ListPreventionsByPet(ctx context.Context, petID string) ([]records.Prevention, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, mascota_id, tipo, fecha, descripcion
		FROM prevenciones
		WHERE mascota_id = $1
		ORDER BY fecha ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.Prevention, 0)
	for rows.Next() {
		var p records.Prevention
		if err := rows.Scan(&p.ID, &p.PetID, &p.Type, &p.Date, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
