package services

import (
	"context"
	"errors"
	"slices"

	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/dmitrijs2005/homeowner/internal/models"
)

var errDiskFull = errors.New("disk full")

// fakeRepo is an in-memory Repository with failure injection.
type fakeRepo struct {
	data    []models.Account
	hasData bool

	LoadErr       error
	SaveErr       error
	QuarantineErr error

	Saves       int
	Quarantined int
	Closed      bool
}

func (f *fakeRepo) Load(ctx context.Context) ([]models.Account, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	if !f.hasData {
		return nil, common.ErrNoData
	}
	return slices.Clone(f.data), nil
}

func (f *fakeRepo) Save(ctx context.Context, accounts []models.Account) error {
	if f.SaveErr != nil {
		return &common.StorageError{Op: "write", Path: f.Path(), Err: f.SaveErr}
	}
	f.Saves++
	f.data = slices.Clone(accounts)
	f.hasData = true
	return nil
}

func (f *fakeRepo) Quarantine(ctx context.Context) (string, error) {
	if f.QuarantineErr != nil {
		return "", f.QuarantineErr
	}
	f.Quarantined++
	f.data = nil
	f.hasData = false
	f.LoadErr = nil
	return f.Path() + ".corrupt-test", nil
}

func (f *fakeRepo) Path() string { return "fake/users.tsv" }

func (f *fakeRepo) Close() error {
	f.Closed = true
	return nil
}

func (f *fakeRepo) usernames() []string {
	out := make([]string, 0, len(f.data))
	for _, a := range f.data {
		out = append(out, a.Username)
	}
	return out
}
