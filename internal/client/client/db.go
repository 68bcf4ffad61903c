package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/glitterpage/internal/client/migrations"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/diary"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/friends"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/kv"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/profile"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/scrapbook"
	"github.com/dmitrijs2005/glitterpage/internal/client/storage"
	"github.com/dmitrijs2005/glitterpage/internal/filex"
	"github.com/dmitrijs2005/glitterpage/internal/logging"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	DB        *sql.DB
	KV        kv.Repository
	Store     *storage.Durable
	Profile   profile.Repository
	Friends   friends.Repository
	Diary     diary.Repository
	Scrapbook scrapbook.Repository
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens dsn, migrates it and builds the repositories. A plain
// file path gets its parent directory created first.
func InitDatabase(ctx context.Context, dsn string, log logging.Logger) (*Repositories, error) {
	if !isMemoryDSN(dsn) {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one writer; background completions share the handle
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}

	return NewRepositories(db, log), nil
}

// NewRepositories wires the repositories over an already migrated db.
func NewRepositories(db *sql.DB, log logging.Logger) *Repositories {
	store := kv.NewSQLiteRepository(db)
	durable := storage.New(store, log)
	return &Repositories{
		DB:        db,
		KV:        store,
		Store:     durable,
		Profile:   profile.NewDurableRepository(durable),
		Friends:   friends.NewDurableRepository(durable),
		Diary:     diary.NewDurableRepository(durable),
		Scrapbook: scrapbook.NewDurableRepository(durable, time.Now),
	}
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.HasPrefix(dsn, "file:")
}
