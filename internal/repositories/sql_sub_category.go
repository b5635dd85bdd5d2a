package repositories

import (
	"context"

	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/monitoring"

	sq "github.com/Masterminds/squirrel"
)

//go:generate mockgen -source=sql_sub_category.go -destination=mock/sql_sub_category_mock.go -package=mock

type SubCategoryRepository interface {
	// List returns active subcategories ordered by name.
	List(ctx context.Context, opts models.SubCategoryFilterOptions) ([]models.SubCategory, error)
	// ListByCategoryIDs returns the subcategories of the given categories ordered by name.
	ListByCategoryIDs(ctx context.Context, categoryIDs []int, activeOnly bool) ([]models.SubCategory, error)
	GetByID(ctx context.Context, id int) (*models.SubCategory, error)
	Create(ctx context.Context, in *models.SubCategory) (*models.SubCategory, error)
	Update(ctx context.Context, id int, in models.UpdateSubCategoryIn) (*models.SubCategory, error)
	Delete(ctx context.Context, id int) error
	DeleteByCategoryID(ctx context.Context, categoryID int) (int64, error)
}

type subCategoryRepository sqlRepo

var _ SubCategoryRepository = (*subCategoryRepository)(nil)

func scanSubCategory(row rowScanner) (models.SubCategory, error) {
	var sc models.SubCategory
	err := row.Scan(
		&sc.ID,
		&sc.CategoryID,
		&sc.Name,
		&sc.Slug,
		&sc.Description,
		&sc.ImageURL,
		&sc.AgeCategory,
		&sc.Count,
		&sc.Active,
		&sc.Available,
		&sc.CreatedAt,
		&sc.UpdatedAt,
	)
	return sc, err
}

func buildSubCategoryListQuery(categoryIDs []int, activeOnly bool) (string, []interface{}, error) {
	q := psql.Select(subCategoryColumns...).From("subcategories")
	if len(categoryIDs) == 1 {
		q = q.Where(sq.Eq{"category_id": categoryIDs[0]})
	} else if len(categoryIDs) > 1 {
		q = q.Where(sq.Eq{"category_id": categoryIDs})
	}
	if activeOnly {
		q = q.Where(sq.Eq{"active": true})
	}
	return q.OrderBy("name ASC", "id ASC").ToSql()
}

func buildSubCategoryUpdateQuery(id int, in models.UpdateSubCategoryIn) (string, []interface{}, error) {
	q := psql.Update("subcategories").Set("updated_at", sq.Expr("now()"))
	if in.CategoryID != nil {
		q = q.Set("category_id", *in.CategoryID)
	}
	if in.Name != nil {
		q = q.Set("name", *in.Name)
	}
	if in.Slug != nil {
		q = q.Set("slug", *in.Slug)
	}
	if in.Description != nil {
		q = q.Set("description", *in.Description)
	}
	if in.ImageURL != nil {
		q = q.Set("image_url", *in.ImageURL)
	}
	if in.AgeCategory != nil {
		q = q.Set("age_category", in.AgeCategory.String())
	}
	if in.Count != nil {
		q = q.Set("count", int(*in.Count))
	}
	if in.Active != nil {
		q = q.Set("active", *in.Active)
	}
	if in.Available != nil {
		q = q.Set("available", *in.Available)
	}
	return q.Where(sq.Eq{"id": id}).Suffix(returning(subCategoryColumns)).ToSql()
}

func (scr *subCategoryRepository) List(ctx context.Context, opts models.SubCategoryFilterOptions) (result []models.SubCategory, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	var categoryIDs []int
	if opts.CategoryID > 0 {
		categoryIDs = []int{opts.CategoryID}
	}

	query, args, err := buildSubCategoryListQuery(categoryIDs, true)
	if err != nil {
		return nil, err
	}

	rows, err := scr.r.extractTxRead(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collectRows(rows, scanSubCategory)
}

func (scr *subCategoryRepository) ListByCategoryIDs(ctx context.Context, categoryIDs []int, activeOnly bool) (result []models.SubCategory, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if len(categoryIDs) == 0 {
		return []models.SubCategory{}, nil
	}

	query, args, err := buildSubCategoryListQuery(categoryIDs, activeOnly)
	if err != nil {
		return nil, err
	}

	rows, err := scr.r.extractTxRead(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collectRows(rows, scanSubCategory)
}

func (scr *subCategoryRepository) GetByID(ctx context.Context, id int) (result *models.SubCategory, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	sc, err := scanSubCategory(scr.r.extractTxRead(ctx).QueryRowContext(ctx, querySubCategoryGetByID, id))
	if err != nil {
		return nil, err
	}

	return &sc, nil
}

func (scr *subCategoryRepository) Create(ctx context.Context, in *models.SubCategory) (result *models.SubCategory, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	created, err := scanSubCategory(scr.r.extractTxWrite(ctx).QueryRowContext(ctx, querySubCategoryCreate,
		in.CategoryID,
		in.Name,
		in.Slug,
		in.Description,
		in.ImageURL,
		in.AgeCategory.String(),
		int(in.Count),
		in.Active,
		in.Available,
	))
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (scr *subCategoryRepository) Update(ctx context.Context, id int, in models.UpdateSubCategoryIn) (result *models.SubCategory, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildSubCategoryUpdateQuery(id, in)
	if err != nil {
		return nil, err
	}

	updated, err := scanSubCategory(scr.r.extractTxWrite(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (scr *subCategoryRepository) Delete(ctx context.Context, id int) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return execAffectingOne(ctx, scr.r.extractTxWrite(ctx), querySubCategoryDelete, id)
}

func (scr *subCategoryRepository) DeleteByCategoryID(ctx context.Context, categoryID int) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return execAffected(ctx, scr.r.extractTxWrite(ctx), querySubCategoryDeleteByCategoryID, categoryID)
}
