package services

import (
	"context"

	"github.com/karnaval/go-costume-catalog/internal/common"
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/common/metrics"
	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/monitoring"
	"github.com/karnaval/go-costume-catalog/internal/repositories"
)

//go:generate mockgen -source=category_service.go -destination=mock/category_service_mock.go -package=mock

type CategoryService interface {
	// List returns the matching categories, newest first, each with its active subcategories.
	List(ctx context.Context, opts models.CategoryFilterOptions) ([]models.Category, error)
	// Get returns the category with all of its subcategories.
	Get(ctx context.Context, id int) (*models.Category, error)
	Create(ctx context.Context, in models.CreateCategoryIn) (*models.Category, error)
	Update(ctx context.Context, id int, in models.UpdateCategoryIn) (*models.Category, error)
	// Delete removes the category together with its subcategories, their
	// costumes and the costumes' characteristics.
	Delete(ctx context.Context, id int) error
}

type category service

var _ CategoryService = (*category)(nil)

func (s *category) List(ctx context.Context, opts models.CategoryFilterOptions) (output []models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	categories, err := s.srv.sqlRepo.GetCategoryRepository().List(ctx, opts)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	ids := make([]int, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	subCategories, err := s.srv.sqlRepo.GetSubCategoryRepository().ListByCategoryIDs(ctx, ids, true)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	byCategory := make(map[int][]models.SubCategory, len(categories))
	for _, sc := range subCategories {
		byCategory[sc.CategoryID] = append(byCategory[sc.CategoryID], sc)
	}
	for i := range categories {
		categories[i].Subcategories = byCategory[categories[i].ID]
	}

	return categories, nil
}

func (s *category) Get(ctx context.Context, id int) (output *models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return s.get(ctx, s.srv.sqlRepo, id)
}

func (s *category) get(ctx context.Context, repo repositories.SQLRepository, id int) (*models.Category, error) {
	c, err := repo.GetCategoryRepository().GetByID(ctx, id)
	if err != nil {
		return nil, checkDatabaseError(err, models.ErrKeyCategoryNotFound)
	}

	c.Subcategories, err = repo.GetSubCategoryRepository().ListByCategoryIDs(ctx, []int{id}, false)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	return c, nil
}

func (s *category) Create(ctx context.Context, in models.CreateCategoryIn) (output *models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.catalogMetrics().RecordMutation(metrics.EntityCategory, metrics.OperationCreate, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	in.AgeCategory = in.AgeCategory.OrDefault(models.AgeCategoryChildren)
	for i := range in.Subcategories {
		in.Subcategories[i].AgeCategory = in.Subcategories[i].AgeCategory.OrDefault(in.AgeCategory)
	}

	if err = validateInput(in); err != nil {
		return nil, err
	}

	newCategory := &models.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		AgeCategory: in.AgeCategory,
		Active:      boolOrDefault(in.Active, true),
	}
	if newCategory.Slug == "" {
		newCategory.Slug = defaultSlug(in.Name)
	}

	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		created, err := r.GetCategoryRepository().Create(actx, newCategory)
		if err != nil {
			return checkDatabaseError(err)
		}

		created.Subcategories = make([]models.SubCategory, 0, len(in.Subcategories))
		for _, inline := range in.Subcategories {
			sc, err := r.GetSubCategoryRepository().Create(actx, newSubCategory(inline.ToCreateSubCategoryIn(created.ID)))
			if err != nil {
				return checkDatabaseError(err)
			}
			created.Subcategories = append(created.Subcategories, *sc)
		}

		output = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.srv.invalidateStats(ctx)

	return output, nil
}

func (s *category) Update(ctx context.Context, id int, in models.UpdateCategoryIn) (output *models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.catalogMetrics().RecordMutation(metrics.EntityCategory, metrics.OperationUpdate, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if err = validateInput(in); err != nil {
		return nil, err
	}

	if in.IsEmpty() {
		return s.get(ctx, s.srv.sqlRepo, id)
	}

	updated, err := s.srv.sqlRepo.GetCategoryRepository().Update(ctx, id, in)
	if err != nil {
		return nil, checkDatabaseError(err, models.ErrKeyCategoryNotFound)
	}

	updated.Subcategories, err = s.srv.sqlRepo.GetSubCategoryRepository().ListByCategoryIDs(ctx, []int{id}, false)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	s.srv.invalidateStats(ctx)

	return updated, nil
}

func (s *category) Delete(ctx context.Context, id int) (err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.catalogMetrics().RecordMutation(metrics.EntityCategory, metrics.OperationDelete, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		exists, err := r.GetCategoryRepository().Exists(actx, id)
		if err != nil {
			return checkDatabaseError(err)
		}
		if !exists {
			return checkDatabaseError(common.ErrNoRows, models.ErrKeyCategoryNotFound)
		}

		// children first, nothing in the schema cascades
		characteristics, err := r.GetCostumeRepository().DeleteCharacteristicsByCategoryID(actx, id)
		if err != nil {
			return checkDatabaseError(err)
		}

		costumes, err := r.GetCostumeRepository().DeleteByCategoryID(actx, id)
		if err != nil {
			return checkDatabaseError(err)
		}

		subCategories, err := r.GetSubCategoryRepository().DeleteByCategoryID(actx, id)
		if err != nil {
			return checkDatabaseError(err)
		}

		if err := r.GetCategoryRepository().Delete(actx, id); err != nil {
			return checkDatabaseError(err, models.ErrKeyCategoryNotFound)
		}

		xlog.Info(actx, "[CATEGORY.DELETE]",
			xlog.Int("category_id", id),
			xlog.Int64("subcategories", subCategories),
			xlog.Int64("costumes", costumes),
			xlog.Int64("characteristics", characteristics),
		)
		return nil
	})
	if err != nil {
		return err
	}

	s.srv.invalidateStats(ctx)

	return nil
}
