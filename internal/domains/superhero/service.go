package superhero

import (
	"context"
	"mime/multipart"
)

// ImageStore abstracts the image backends (local directory, MinIO).
// Store must hand out collision-free public ids; Delete is idempotent -
// deleting an id that no longer exists is not an error.
type ImageStore interface {
	Store(ctx context.Context, data []byte, originalFilename, contentType string) (Image, error)
	Delete(ctx context.Context, publicID string) error
}

// Service is the superhero business logic: the only place orchestrating
// validation, image store and record store.
type Service interface {
	List(ctx context.Context, page int) (*ListResponse, error)
	GetByID(ctx context.Context, id string) (*Superhero, error)
	Create(ctx context.Context, req *CreateSuperheroRequest, files []*multipart.FileHeader) (*Superhero, error)
	Update(ctx context.Context, id string, req *UpdateSuperheroRequest, files []*multipart.FileHeader) (*Superhero, error)
	Delete(ctx context.Context, id string) (*DeleteResponse, error)
	DeleteImage(ctx context.Context, id, publicID string) (*Superhero, error)
}
