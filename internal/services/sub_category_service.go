package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/karnaval/go-costume-catalog/internal/common"
	"github.com/karnaval/go-costume-catalog/internal/common/metrics"
	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/monitoring"
	"github.com/karnaval/go-costume-catalog/internal/repositories"
)

//go:generate mockgen -source=sub_category_service.go -destination=mock/sub_category_service_mock.go -package=mock

type SubCategoryService interface {
	// List returns active subcategories ordered by name, optionally of one category.
	List(ctx context.Context, opts models.SubCategoryFilterOptions) ([]models.SubCategory, error)
	Get(ctx context.Context, id int) (*models.SubCategory, error)
	Create(ctx context.Context, in models.CreateSubCategoryIn) (*models.SubCategory, error)
	// Update moves the subcategory's costumes along when the parent category changes.
	Update(ctx context.Context, id int, in models.UpdateSubCategoryIn) (*models.SubCategory, error)
	// Delete refuses with ErrConflict while costumes still reference the subcategory.
	Delete(ctx context.Context, id int) error
}

type subCategory service

var _ SubCategoryService = (*subCategory)(nil)

// newSubCategory applies the defaults of a new subcategory: a slug from the
// name, active and available unless told otherwise.
func newSubCategory(in models.CreateSubCategoryIn) *models.SubCategory {
	sc := &models.SubCategory{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		AgeCategory: in.AgeCategory,
		Count:       in.Count,
		Active:      boolOrDefault(in.Active, true),
		Available:   boolOrDefault(in.Available, true),
	}
	if sc.Slug == "" {
		sc.Slug = defaultSlug(in.Name)
	}
	return sc
}

func (s *subCategory) List(ctx context.Context, opts models.SubCategoryFilterOptions) (output []models.SubCategory, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	output, err = s.srv.sqlRepo.GetSubCategoryRepository().List(ctx, opts)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	return output, nil
}

func (s *subCategory) Get(ctx context.Context, id int) (output *models.SubCategory, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	output, err = s.srv.sqlRepo.GetSubCategoryRepository().GetByID(ctx, id)
	if err != nil {
		return nil, checkDatabaseError(err, models.ErrKeySubcategoryNotFound)
	}

	return output, nil
}

func (s *subCategory) Create(ctx context.Context, in models.CreateSubCategoryIn) (output *models.SubCategory, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.catalogMetrics().RecordMutation(metrics.EntitySubCategory, metrics.OperationCreate, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if err = validateInput(in); err != nil {
		return nil, err
	}

	parent, err := s.srv.sqlRepo.GetCategoryRepository().GetByID(ctx, in.CategoryID)
	if errors.Is(err, common.ErrNoRows) {
		return nil, referenceError("categoryId", models.ErrKeyCategoryReferenceNotFound)
	}
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	in.AgeCategory = in.AgeCategory.OrDefault(parent.AgeCategory)

	output, err = s.srv.sqlRepo.GetSubCategoryRepository().Create(ctx, newSubCategory(in))
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	s.srv.invalidateStats(ctx)

	return output, nil
}

func (s *subCategory) Update(ctx context.Context, id int, in models.UpdateSubCategoryIn) (output *models.SubCategory, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.catalogMetrics().RecordMutation(metrics.EntitySubCategory, metrics.OperationUpdate, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if err = validateInput(in); err != nil {
		return nil, err
	}

	if in.IsEmpty() {
		return s.Get(ctx, id)
	}

	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		if in.CategoryID != nil {
			exists, err := r.GetCategoryRepository().Exists(actx, *in.CategoryID)
			if err != nil {
				return checkDatabaseError(err)
			}
			if !exists {
				return referenceError("categoryId", models.ErrKeyCategoryReferenceNotFound)
			}
		}

		updated, err := r.GetSubCategoryRepository().Update(actx, id, in)
		if err != nil {
			return checkDatabaseError(err, models.ErrKeySubcategoryNotFound)
		}

		// a costume's category is always its subcategory's parent
		if in.CategoryID != nil {
			if _, err := r.GetCostumeRepository().MoveToCategory(actx, id, *in.CategoryID); err != nil {
				return checkDatabaseError(err)
			}
		}

		output = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.srv.invalidateStats(ctx)

	return output, nil
}

func (s *subCategory) Delete(ctx context.Context, id int) (err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.catalogMetrics().RecordMutation(metrics.EntitySubCategory, metrics.OperationDelete, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		if _, err := r.GetSubCategoryRepository().GetByID(actx, id); err != nil {
			return checkDatabaseError(err, models.ErrKeySubcategoryNotFound)
		}

		count, err := r.GetCostumeRepository().CountBySubCategoryID(actx, id)
		if err != nil {
			return checkDatabaseError(err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %w", common.ErrConflict, models.GetErrMap(models.ErrKeySubcategoryHasCostumes))
		}

		if err := r.GetSubCategoryRepository().Delete(actx, id); err != nil {
			return checkDatabaseError(err, models.ErrKeySubcategoryNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.srv.invalidateStats(ctx)

	return nil
}
