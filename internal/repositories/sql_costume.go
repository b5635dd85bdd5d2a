package repositories

import (
	"context"

	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/monitoring"

	sq "github.com/Masterminds/squirrel"
)

//go:generate mockgen -source=sql_costume.go -destination=mock/sql_costume_mock.go -package=mock

type CostumeRepository interface {
	List(ctx context.Context, opts models.CostumeFilterOptions) ([]models.Costume, error)
	// GetByID returns the costume row without characteristics, common.ErrNoRows when absent.
	GetByID(ctx context.Context, id int) (*models.Costume, error)
	Create(ctx context.Context, in *models.Costume) (*models.Costume, error)
	Update(ctx context.Context, id int, in models.UpdateCostumeIn) (*models.Costume, error)
	Delete(ctx context.Context, id int) error
	DeleteByCategoryID(ctx context.Context, categoryID int) (int64, error)
	CountBySubCategoryID(ctx context.Context, subCategoryID int) (int, error)
	// MoveToCategory sets category_id on every costume of the subcategory.
	MoveToCategory(ctx context.Context, subCategoryID, categoryID int) (int64, error)
	CountByAgeCategory(ctx context.Context) (models.CostumeStats, error)

	GetCharacteristics(ctx context.Context, costumeID int) (models.Characteristics, error)
	// ReplaceCharacteristics deletes the stored set and inserts chars, blank entries are skipped.
	ReplaceCharacteristics(ctx context.Context, costumeID int, chars models.Characteristics) error
	DeleteCharacteristics(ctx context.Context, costumeID int) error
	DeleteCharacteristicsByCategoryID(ctx context.Context, categoryID int) (int64, error)
}

type costumeRepository sqlRepo

var _ CostumeRepository = (*costumeRepository)(nil)

func scanCostume(row rowScanner) (models.Costume, error) {
	var c models.Costume
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Price,
		&c.Deposit,
		&c.ImageURL,
		&c.Size,
		&c.CategoryID,
		&c.SubCategoryID,
		&c.AgeCategory,
		&c.Active,
		&c.Available,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func buildCostumeListQuery(opts models.CostumeFilterOptions) (string, []interface{}, error) {
	q := psql.Select(costumeColumns...).From("costumes")
	if opts.CategoryID > 0 {
		q = q.Where(sq.Eq{"category_id": opts.CategoryID})
	}
	if opts.SubCategoryID > 0 {
		q = q.Where(sq.Eq{"subcategory_id": opts.SubCategoryID})
	}
	if opts.AgeCategory != "" {
		q = q.Where(sq.Eq{"age_category": opts.AgeCategory.String()})
	}
	if opts.ActiveOnly {
		q = q.Where(sq.Eq{"active": true})
	}
	return q.OrderBy("created_at DESC", "id DESC").ToSql()
}

func buildCostumeUpdateQuery(id int, in models.UpdateCostumeIn) (string, []interface{}, error) {
	q := psql.Update("costumes").Set("updated_at", sq.Expr("now()"))
	if in.Title != nil {
		q = q.Set("title", *in.Title)
	}
	if in.Description != nil {
		q = q.Set("description", *in.Description)
	}
	if in.Price != nil {
		q = q.Set("price_per_day", *in.Price)
	}
	if in.Deposit != nil {
		q = q.Set("deposit", *in.Deposit)
	}
	if in.ImageURL != nil {
		q = q.Set("image_url", *in.ImageURL)
	}
	if in.Size != nil {
		// an empty size clears it
		if *in.Size == "" {
			q = q.Set("size", nil)
		} else {
			q = q.Set("size", *in.Size)
		}
	}
	if in.CategoryID != nil {
		q = q.Set("category_id", *in.CategoryID)
	}
	if in.SubCategoryID != nil {
		q = q.Set("subcategory_id", *in.SubCategoryID)
	}
	if in.AgeCategory != nil {
		q = q.Set("age_category", in.AgeCategory.String())
	}
	if in.Active != nil {
		q = q.Set("active", *in.Active)
	}
	if in.Available != nil {
		q = q.Set("available", *in.Available)
	}
	return q.Where(sq.Eq{"id": id}).Suffix(returning(costumeColumns)).ToSql()
}

func (csr *costumeRepository) List(ctx context.Context, opts models.CostumeFilterOptions) (result []models.Costume, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildCostumeListQuery(opts)
	if err != nil {
		return nil, err
	}

	rows, err := csr.r.extractTxRead(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collectRows(rows, scanCostume)
}

func (csr *costumeRepository) GetByID(ctx context.Context, id int) (result *models.Costume, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	costume, err := scanCostume(csr.r.extractTxRead(ctx).QueryRowContext(ctx, queryCostumeGetByID, id))
	if err != nil {
		return nil, err
	}

	return &costume, nil
}

func (csr *costumeRepository) Create(ctx context.Context, in *models.Costume) (result *models.Costume, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	created, err := scanCostume(csr.r.extractTxWrite(ctx).QueryRowContext(ctx, queryCostumeCreate,
		in.Title,
		in.Description,
		in.Price,
		in.Deposit,
		in.ImageURL,
		in.Size,
		in.CategoryID,
		in.SubCategoryID,
		in.AgeCategory.String(),
		in.Active,
		in.Available,
	))
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (csr *costumeRepository) Update(ctx context.Context, id int, in models.UpdateCostumeIn) (result *models.Costume, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildCostumeUpdateQuery(id, in)
	if err != nil {
		return nil, err
	}

	updated, err := scanCostume(csr.r.extractTxWrite(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (csr *costumeRepository) Delete(ctx context.Context, id int) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return execAffectingOne(ctx, csr.r.extractTxWrite(ctx), queryCostumeDelete, id)
}

func (csr *costumeRepository) DeleteByCategoryID(ctx context.Context, categoryID int) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return execAffected(ctx, csr.r.extractTxWrite(ctx), queryCostumeDeleteByCategoryID, categoryID)
}

func (csr *costumeRepository) CountBySubCategoryID(ctx context.Context, subCategoryID int) (count int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	err = csr.r.extractTxRead(ctx).QueryRowContext(ctx, queryCostumeCountBySubCategoryID, subCategoryID).Scan(&count)
	return count, err
}

func (csr *costumeRepository) MoveToCategory(ctx context.Context, subCategoryID, categoryID int) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return execAffected(ctx, csr.r.extractTxWrite(ctx), queryCostumeMoveToCategory, categoryID, subCategoryID)
}

func (csr *costumeRepository) CountByAgeCategory(ctx context.Context) (stats models.CostumeStats, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	err = csr.r.extractTxRead(ctx).QueryRowContext(ctx, queryCostumeCountByAgeCategory).Scan(
		&stats.Children,
		&stats.Adults,
		&stats.Total,
	)
	return stats, err
}
