package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/dmitrijs2005/homeowner/internal/dbx"
	"github.com/dmitrijs2005/homeowner/internal/filex"
	"github.com/dmitrijs2005/homeowner/internal/models"
	"github.com/dmitrijs2005/homeowner/internal/repositories/accounts/migrations"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// sqliteMagic opens every SQLite 3 database file.
const sqliteMagic = "SQLite format 3\x00"

var errNotSQLite = errors.New("not a SQLite database")

// goose keeps its settings in package state.
var gooseOnce sync.Once

// RunMigrations applies the embedded schema migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	var err error
	gooseOnce.Do(func() {
		goose.SetBaseFS(migrations.Migrations)
		goose.SetLogger(goose.NopLogger())
		err = goose.SetDialect("sqlite3")
	})
	if err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// SQLiteRepository keeps the account set in the accounts table of a SQLite
// file. The database is opened lazily so that a missing file can be told
// apart from an empty account set.
type SQLiteRepository struct {
	path string
	db   *sql.DB
}

// NewSQLiteRepository returns a SQLiteRepository for "<dir>/users.db".
func NewSQLiteRepository(dir string) *SQLiteRepository {
	return &SQLiteRepository{path: filepath.Join(dir, common.UsersFileBase+".db")}
}

func (r *SQLiteRepository) Path() string { return r.path }

func (r *SQLiteRepository) open(ctx context.Context) error {
	db, err := sql.Open("sqlite", r.path)
	if err != nil {
		return err
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("migrations: %w", err)
	}
	r.db = db
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]models.Account, error) {
	if r.db == nil {
		ok, err := filex.Exists(r.path)
		if err != nil {
			return nil, &common.StorageError{Op: "stat", Path: r.path, Err: err}
		}
		if !ok {
			return nil, common.ErrNoData
		}

		if err := checkSQLiteHeader(r.path); err != nil {
			return nil, err
		}
		if err := r.open(ctx); err != nil {
			return nil, classifyOpenErr(r.path, err)
		}
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, password, is_admin, created_at FROM accounts ORDER BY position`)
	if err != nil {
		return nil, &common.StorageError{Op: "query", Path: r.path, Err: err}
	}
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		var (
			id, username, password, createdAt string
			admin                             int64
		)
		if err := rows.Scan(&id, &username, &password, &admin, &createdAt); err != nil {
			return nil, &common.CorruptStateError{Path: r.path, Err: err}
		}
		a, err := scanAccount(id, username, password, admin, createdAt)
		if err != nil {
			return nil, &common.CorruptStateError{Path: r.path, Err: err}
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, &common.StorageError{Op: "query", Path: r.path, Err: err}
	}
	return result, nil
}

// checkSQLiteHeader rejects files that cannot be a SQLite database before
// the driver gets to them. An empty file is a valid, empty database.
func checkSQLiteHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &common.StorageError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	head := make([]byte, len(sqliteMagic))
	n, err := io.ReadFull(f, head)
	switch {
	case n == 0 && errors.Is(err, io.EOF):
		return nil
	case err != nil && !errors.Is(err, io.ErrUnexpectedEOF):
		return &common.StorageError{Op: "read", Path: path, Err: err}
	case string(head[:n]) != sqliteMagic:
		return &common.CorruptStateError{Path: path, Err: errNotSQLite}
	}
	return nil
}

// classifyOpenErr separates environment failures (permissions, I/O, locks)
// from a database whose content or schema is unusable.
func classifyOpenErr(path string, err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() & 0xff {
		case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_PERM, sqlite3.SQLITE_READONLY,
			sqlite3.SQLITE_IOERR, sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_FULL:
			return &common.StorageError{Op: "open", Path: path, Err: err}
		}
	}
	var pe *fs.PathError
	if errors.Is(err, fs.ErrPermission) || errors.As(err, &pe) {
		return &common.StorageError{Op: "open", Path: path, Err: err}
	}
	return &common.CorruptStateError{Path: path, Err: err}
}

func scanAccount(id, username, password string, admin int64, createdAt string) (models.Account, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return models.Account{}, fmt.Errorf("id %q: %w", id, err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.Account{}, fmt.Errorf("created_at %q: %w", createdAt, err)
	}
	return models.Account{
		ID:        uid,
		Username:  username,
		Password:  password,
		IsAdmin:   admin != 0,
		CreatedAt: ts.UTC(),
	}, nil
}

// Save replaces every row in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, accounts []models.Account) error {
	if r.db == nil {
		if _, err := filex.EnsureDir(filepath.Dir(r.path)); err != nil {
			return &common.StorageError{Op: "mkdir", Path: r.path, Err: err}
		}
		if err := r.open(ctx); err != nil {
			return &common.StorageError{Op: "open", Path: r.path, Err: err}
		}
	}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
			return fmt.Errorf("failed to clear accounts: %w", err)
		}
		for i, a := range accounts {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO accounts (position, id, username, password, is_admin, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
				i, a.ID.String(), a.Username, a.Password, boolToInt(a.IsAdmin), a.CreatedAt.UTC().Format(time.RFC3339Nano))
			if err != nil {
				return fmt.Errorf("failed to insert account %q: %w", a.Username, err)
			}
		}
		return nil
	})
	if err != nil {
		return &common.StorageError{Op: "write", Path: r.path, Err: err}
	}
	return nil
}

// Quarantine closes the database and moves the file aside.
func (r *SQLiteRepository) Quarantine(ctx context.Context) (string, error) {
	if err := r.Close(); err != nil {
		return "", err
	}
	return filex.Quarantine(r.path)
}

func (r *SQLiteRepository) Close() error {
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ Repository = (*SQLiteRepository)(nil)
