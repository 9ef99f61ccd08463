package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"mime/multipart"

	"superhero-backend/internal/domains/superhero"
	"superhero-backend/pkg/logger"
)

// PageSize is the fixed list page size.
const PageSize = 5

// SuperheroService orchestrates the record store and the image store.
// Both are injected so tests can substitute in-memory fakes.
type SuperheroService struct {
	repo   superhero.Repository
	images superhero.ImageStore
}

func NewService(repo superhero.Repository, images superhero.ImageStore) superhero.Service {
	return &SuperheroService{
		repo:   repo,
		images: images,
	}
}

// List returns one page of the catalog. Pages are 1-based; a page past
// the end is an empty list with the same totalPages, consistent with
// pure offset/limit semantics.
func (s *SuperheroService) List(ctx context.Context, page int) (*superhero.ListResponse, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	heroes, err := s.repo.List(ctx, int64(page-1)*PageSize, PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]superhero.ListItem, 0, len(heroes))
	for i := range heroes {
		items = append(items, superhero.ListItem{
			ID:       heroes[i].ID.Hex(),
			Nickname: heroes[i].Nickname,
			Image:    heroes[i].CoverImage(),
		})
	}

	return &superhero.ListResponse{
		Page:        page,
		TotalPages:  int(math.Ceil(float64(total) / float64(PageSize))),
		Superheroes: items,
	}, nil
}

func (s *SuperheroService) GetByID(ctx context.Context, id string) (*superhero.Superhero, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores the uploaded files in request order, then inserts the
// record. If the insert fails (duplicate nickname, store failure) the
// just-stored blobs are deleted again so no orphaned media is left
// behind.
func (s *SuperheroService) Create(ctx context.Context, req *superhero.CreateSuperheroRequest, files []*multipart.FileHeader) (*superhero.Superhero, error) {
	images, err := s.storeFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	hero := &superhero.Superhero{
		Nickname:          req.Nickname,
		RealName:          req.RealName,
		OriginDescription: req.OriginDescription,
		Superpowers:       req.Superpowers,
		CatchPhrase:       req.CatchPhrase,
		Images:            images,
	}

	if err := s.repo.Insert(ctx, hero); err != nil {
		s.rollbackImages(ctx, images)
		return nil, err
	}
	return hero, nil
}

// Update applies a partial update: only fields present in the request
// overwrite stored values, and new files are appended after the
// existing images, never replacing or reordering them.
func (s *SuperheroService) Update(ctx context.Context, id string, req *superhero.UpdateSuperheroRequest, files []*multipart.FileHeader) (*superhero.Superhero, error) {
	hero, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := s.storeFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	if req.Nickname != nil {
		hero.Nickname = *req.Nickname
	}
	if req.RealName != nil {
		hero.RealName = *req.RealName
	}
	if req.OriginDescription != nil {
		hero.OriginDescription = *req.OriginDescription
	}
	if req.Superpowers != nil {
		hero.Superpowers = *req.Superpowers
	}
	if req.CatchPhrase != nil {
		hero.CatchPhrase = *req.CatchPhrase
	}
	hero.Images = append(hero.Images, images...)

	if err := s.repo.Update(ctx, hero); err != nil {
		s.rollbackImages(ctx, images)
		return nil, err
	}
	return hero, nil
}

// Delete removes the record and all of its blobs. Blob deletion is
// best-effort: a stale media reference must never make the record
// undeletable, so individual failures are logged and skipped.
func (s *SuperheroService) Delete(ctx context.Context, id string) (*superhero.DeleteResponse, error) {
	hero, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, img := range hero.Images {
		if err := s.images.Delete(ctx, img.PublicID); err != nil {
			logger.Warn(fmt.Sprintf("failed to delete image %s, continuing", img.PublicID), err)
		}
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &superhero.DeleteResponse{Message: "Hero and images deleted"}, nil
}

// DeleteImage removes one image from the store and from the record.
func (s *SuperheroService) DeleteImage(ctx context.Context, id, publicID string) (*superhero.Superhero, error) {
	hero, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	idx := hero.FindImage(publicID)
	if idx < 0 {
		return nil, superhero.ErrImageNotFound
	}

	// Blob first: if this fails the record still references the blob
	// and the delete can be retried by the caller.
	if err := s.images.Delete(ctx, publicID); err != nil {
		return nil, err
	}

	hero.Images = append(hero.Images[:idx], hero.Images[idx+1:]...)
	if err := s.repo.Update(ctx, hero); err != nil {
		return nil, err
	}
	return hero, nil
}

// storeFiles uploads all files in request order. A failure mid-batch
// rolls back the blobs stored so far and aborts the whole batch.
func (s *SuperheroService) storeFiles(ctx context.Context, files []*multipart.FileHeader) ([]superhero.Image, error) {
	images := []superhero.Image{}
	for _, fh := range files {
		data, err := readFile(fh)
		if err != nil {
			s.rollbackImages(ctx, images)
			return nil, err
		}

		img, err := s.images.Store(ctx, data, fh.Filename, fh.Header.Get("Content-Type"))
		if err != nil {
			s.rollbackImages(ctx, images)
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

// rollbackImages is the compensating action for a failed mutation:
// the stores offer no transaction spanning both, so blobs uploaded
// during the failed request are deleted explicitly.
func (s *SuperheroService) rollbackImages(ctx context.Context, images []superhero.Image) {
	for _, img := range images {
		if err := s.images.Delete(ctx, img.PublicID); err != nil {
			logger.Warn(fmt.Sprintf("failed to roll back image %s", img.PublicID), err)
		}
	}
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err)
	}
	return data, nil
}
