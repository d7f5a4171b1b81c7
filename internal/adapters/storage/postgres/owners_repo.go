package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vacunapet/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO usuarios (
			id, nombre, apellido, email,
			password_hash, foto,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		o.ID,
		o.Name,
		o.Surname,
		o.Email,
		o.PasswordHash,
		o.Photo,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if isUniqueViolation(err) {
		// La unicidad del email la decide la base; acá solo traducimos.
		return owners.ErrEmailTaken
	}
	return err
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return owners.Owner{}, owners.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, nombre, apellido, email, password_hash, foto, created_at, updated_at
		FROM usuarios
		WHERE id = $1
	`, id)

	return scanOwner(row)
}

func (r *OwnersRepo) GetByEmail(ctx context.Context, email string) (owners.Owner, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return owners.Owner{}, owners.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, nombre, apellido, email, password_hash, foto, created_at, updated_at
		FROM usuarios
		WHERE lower(email) = lower($1)
	`, email)

	return scanOwner(row)
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE usuarios
		SET
			nombre = $2,
			apellido = $3,
			email = $4,
			foto = $5,
			updated_at = $6
		WHERE id = $1
	`,
		o.ID,
		o.Name,
		o.Surname,
		o.Email,
		o.Photo,
		o.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return owners.ErrEmailTaken
	}
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func scanOwner(row *sql.Row) (owners.Owner, error) {
	var o owners.Owner
	if err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Surname,
		&o.Email,
		&o.PasswordHash,
		&o.Photo,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}
