package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Pet, error)
	Update(ctx context.Context, p Pet) error

	// Delete borra la mascota y sus cuatro colecciones de registros
	// médicos en una sola transacción (todo o nada).
	Delete(ctx context.Context, id string) error
}
