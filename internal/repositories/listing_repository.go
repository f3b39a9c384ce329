package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ps-vitor/apartment-finder/internal/domain"
)

//go:generate mockgen -destination=../mocks/listing_repository_mock.go -package=mocks github.com/ps-vitor/apartment-finder/internal/repositories ListingRepository

type ListingRepository interface {
	Load(ctx context.Context) (domain.Document, error)
}

// FileListingRepository reads the listings document from a single file.
// The file is read again on every Load; nothing is kept between calls.
type FileListingRepository struct {
	path string
}

func NewFileListingRepository(path string) *FileListingRepository {
	return &FileListingRepository{path: path}
}

func (r *FileListingRepository) Path() string {
	return r.path
}

func (r *FileListingRepository) Load(ctx context.Context) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	return LoadFile(r.path)
}

// LoadFile reads and decodes the document at path. A missing file wraps
// domain.ErrListingsNotFound, a file that does not parse wraps
// domain.ErrListingsMalformed; anything else is returned as is.
func LoadFile(path string) (domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Document{}, fmt.Errorf("%w: %s", domain.ErrListingsNotFound, path)
		}
		return domain.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := domain.ParseDocument(data)
	if err != nil {
		return domain.Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}
