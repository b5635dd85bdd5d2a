package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/config"
)

//go:generate mockgen -source=sql_main.go -destination=mock/sql_main_mock.go -package=mock

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	cr  *categoryRepository
	scr *subCategoryRepository
	csr *costumeRepository
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	if dbRead == nil {
		dbRead = dbWrite
	}

	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.cr = (*categoryRepository)(&rtx.common)
	rtx.scr = (*subCategoryRepository)(&rtx.common)
	rtx.csr = (*costumeRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	// Atomic runs steps in one transaction. Repositories obtained from the
	// SQLRepository passed to steps, used with the ctx passed to steps, join it.
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetCategoryRepository() CategoryRepository
	GetSubCategoryRepository() SubCategoryRepository
	GetCostumeRepository() CostumeRepository
	Ping(ctx context.Context) error
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	xlog.Debug(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					xlog.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", xlog.Err(err))
					err = nil
				}
				return
			}

			xlog.Debug(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()

	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetCategoryRepository() CategoryRepository {
	return r.cr
}

func (r *Repository) GetSubCategoryRepository() SubCategoryRepository {
	return r.scr
}

func (r *Repository) GetCostumeRepository() CostumeRepository {
	return r.csr
}

// Ping checks both pools, used by the health endpoint.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.dbWrite.PingContext(ctx); err != nil {
		return fmt.Errorf("write db: %w", err)
	}
	if r.dbRead != r.dbWrite {
		if err := r.dbRead.PingContext(ctx); err != nil {
			return fmt.Errorf("read db: %w", err)
		}
	}
	return nil
}
