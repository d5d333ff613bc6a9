package accounts

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/dmitrijs2005/homeowner/internal/filex"
	"github.com/dmitrijs2005/homeowner/internal/models"
)

// Codec converts the account set to and from bytes.
type Codec interface {
	Encode(accounts []models.Account) ([]byte, error)
	Decode(b []byte) ([]models.Account, error)
	Ext() string
}

// FileRepository keeps the account set in a single file encoded by a Codec.
// Writes replace the file atomically.
type FileRepository struct {
	path  string
	codec Codec
}

// NewFileRepository returns a FileRepository for "<dir>/users.<codec ext>".
func NewFileRepository(dir string, codec Codec) *FileRepository {
	return &FileRepository{
		path:  filepath.Join(dir, common.UsersFileBase+"."+codec.Ext()),
		codec: codec,
	}
}

func (r *FileRepository) Path() string { return r.path }

func (r *FileRepository) Load(ctx context.Context) ([]models.Account, error) {
	b, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, common.ErrNoData
	}
	if err != nil {
		return nil, &common.StorageError{Op: "read", Path: r.path, Err: err}
	}

	accounts, err := r.codec.Decode(b)
	if err != nil {
		return nil, &common.CorruptStateError{Path: r.path, Err: err}
	}
	return accounts, nil
}

func (r *FileRepository) Save(ctx context.Context, accounts []models.Account) error {
	if _, err := filex.EnsureDir(filepath.Dir(r.path)); err != nil {
		return &common.StorageError{Op: "mkdir", Path: r.path, Err: err}
	}

	b, err := r.codec.Encode(accounts)
	if err != nil {
		return &common.StorageError{Op: "encode", Path: r.path, Err: err}
	}

	if err := filex.WriteFileAtomic(r.path, b, 0o600); err != nil {
		return &common.StorageError{Op: "write", Path: r.path, Err: err}
	}
	return nil
}

func (r *FileRepository) Quarantine(ctx context.Context) (string, error) {
	return filex.Quarantine(r.path)
}

func (r *FileRepository) Close() error { return nil }

var _ Repository = (*FileRepository)(nil)
