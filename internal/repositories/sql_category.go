package repositories

import (
	"context"

	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/monitoring"

	sq "github.com/Masterminds/squirrel"
)

//go:generate mockgen -source=sql_category.go -destination=mock/sql_category_mock.go -package=mock

type CategoryRepository interface {
	List(ctx context.Context, opts models.CategoryFilterOptions) ([]models.Category, error)
	// GetByID returns common.ErrNoRows when the category does not exist.
	GetByID(ctx context.Context, id int) (*models.Category, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, in *models.Category) (*models.Category, error)
	// Update writes the non nil fields of in and returns the stored row.
	Update(ctx context.Context, id int, in models.UpdateCategoryIn) (*models.Category, error)
	Delete(ctx context.Context, id int) error
	CountActive(ctx context.Context) (int, error)
}

type categoryRepository sqlRepo

var _ CategoryRepository = (*categoryRepository)(nil)

func scanCategory(row rowScanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.ImageURL,
		&c.AgeCategory,
		&c.Active,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func buildCategoryListQuery(opts models.CategoryFilterOptions) (string, []interface{}, error) {
	q := psql.Select(categoryColumns...).From("categories")
	if opts.AgeCategory != "" {
		q = q.Where(sq.Eq{"age_category": opts.AgeCategory.String()})
	}
	if opts.ActiveOnly {
		q = q.Where(sq.Eq{"active": true})
	}
	return q.OrderBy("created_at DESC", "id DESC").ToSql()
}

func buildCategoryUpdateQuery(id int, in models.UpdateCategoryIn) (string, []interface{}, error) {
	q := psql.Update("categories").Set("updated_at", sq.Expr("now()"))
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
	if in.Active != nil {
		q = q.Set("active", *in.Active)
	}
	return q.Where(sq.Eq{"id": id}).Suffix(returning(categoryColumns)).ToSql()
}

func (cr *categoryRepository) List(ctx context.Context, opts models.CategoryFilterOptions) (result []models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildCategoryListQuery(opts)
	if err != nil {
		return nil, err
	}

	rows, err := cr.r.extractTxRead(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return collectRows(rows, scanCategory)
}

func (cr *categoryRepository) GetByID(ctx context.Context, id int) (result *models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	category, err := scanCategory(cr.r.extractTxRead(ctx).QueryRowContext(ctx, queryCategoryGetByID, id))
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (cr *categoryRepository) Exists(ctx context.Context, id int) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return queryExists(ctx, cr.r.extractTxRead(ctx), queryCategoryExists, id)
}

func (cr *categoryRepository) Create(ctx context.Context, in *models.Category) (result *models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	created, err := scanCategory(cr.r.extractTxWrite(ctx).QueryRowContext(ctx, queryCategoryCreate,
		in.Name,
		in.Slug,
		in.Description,
		in.ImageURL,
		in.AgeCategory.String(),
		in.Active,
	))
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (cr *categoryRepository) Update(ctx context.Context, id int, in models.UpdateCategoryIn) (result *models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildCategoryUpdateQuery(id, in)
	if err != nil {
		return nil, err
	}

	updated, err := scanCategory(cr.r.extractTxWrite(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (cr *categoryRepository) Delete(ctx context.Context, id int) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return execAffectingOne(ctx, cr.r.extractTxWrite(ctx), queryCategoryDelete, id)
}

func (cr *categoryRepository) CountActive(ctx context.Context) (count int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	err = cr.r.extractTxRead(ctx).QueryRowContext(ctx, queryCategoryCountActive).Scan(&count)
	return count, err
}
