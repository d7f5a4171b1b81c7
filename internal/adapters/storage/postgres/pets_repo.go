package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vacunapet/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mascotas (
			id, user_id,
			nombre, especie, raza,
			fecha_nacimiento, peso, microchip, castrado, foto,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		p.Species,
		p.Breed,
		toNullDate(p.BirthDate),
		p.Weight,
		p.Microchip,
		p.Sterilized,
		p.Photo,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if isFKViolation(err) {
		// user_id no referencia un dueño existente.
		return pets.ErrInvalidInput
	}
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id,
			nombre, especie, raza,
			fecha_nacimiento, peso, microchip, castrado, foto,
			created_at, updated_at
		FROM mascotas
		WHERE id = $1
	`, id)

	var p pets.Pet
	var bd sql.NullTime
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&bd,
		&p.Weight,
		&p.Microchip,
		&p.Sterilized,
		&p.Photo,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	if bd.Valid {
		t := bd.Time
		p.BirthDate = &t
	}

	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, user_id,
			nombre, especie, raza,
			fecha_nacimiento, peso, microchip, castrado, foto,
			created_at, updated_at
		FROM mascotas
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		var bd sql.NullTime
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Name,
			&p.Species,
			&p.Breed,
			&bd,
			&p.Weight,
			&p.Microchip,
			&p.Sterilized,
			&p.Photo,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if bd.Valid {
			t := bd.Time
			p.BirthDate = &t
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE mascotas
		SET
			nombre = $2,
			especie = $3,
			raza = $4,
			fecha_nacimiento = $5,
			peso = $6,
			microchip = $7,
			castrado = $8,
			foto = $9,
			updated_at = $10
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		toNullDate(p.BirthDate),
		p.Weight,
		p.Microchip,
		p.Sterilized,
		p.Photo,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

// Delete borra la mascota y sus cuatro tablas hijas en una sola
// transacción. El schema además tiene ON DELETE CASCADE, pero el borrado
// explícito deja el todo-o-nada en manos de esta transacción y no de la
// versión del DDL desplegada.
func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.ErrNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"vacunas", "diagnosticos", "recetas", "prevenciones"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE mascota_id = $1`, id); err != nil {
			return err
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM mascotas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}

	return tx.Commit()
}
