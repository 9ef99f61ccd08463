package superhero

import "context"

// Repository is the record store contract. Implementations report
// nickname collisions as ErrDuplicateNickname, unresolvable ids as
// ErrSuperheroNotFound and malformed ids as ErrInvalidID.
type Repository interface {
	// Count returns the total number of records.
	Count(ctx context.Context) (int64, error)

	// List returns records in stable creation order, projected to
	// id, nickname and images. offset/limit paginate the sequence.
	List(ctx context.Context, offset, limit int64) ([]Superhero, error)

	// GetByID returns the full record.
	GetByID(ctx context.Context, id string) (*Superhero, error)

	// Insert persists a new record and fills in its assigned ID.
	Insert(ctx context.Context, hero *Superhero) error

	// Update replaces the stored record with the given one.
	// Last write wins: concurrent updates to the same record are not
	// protected against each other.
	Update(ctx context.Context, hero *Superhero) error

	// Delete removes the record, reporting whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
