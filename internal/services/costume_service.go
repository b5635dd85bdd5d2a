package services

import (
	"context"
	"errors"

	"github.com/karnaval/go-costume-catalog/internal/common"
	"github.com/karnaval/go-costume-catalog/internal/common/cache"
	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/common/metrics"
	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/monitoring"
	"github.com/karnaval/go-costume-catalog/internal/repositories"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=costume_service.go -destination=mock/costume_service_mock.go -package=mock

type CostumeService interface {
	// List returns the costumes matching every non zero filter, newest first.
	List(ctx context.Context, opts models.CostumeFilterOptions) ([]models.Costume, error)
	// Get returns the costume with its characteristics.
	Get(ctx context.Context, id int) (*models.Costume, error)
	Create(ctx context.Context, in models.CreateCostumeIn) (*models.Costume, error)
	// Update replaces the stored characteristics when in.Characteristics is non nil.
	Update(ctx context.Context, id int, in models.UpdateCostumeIn) (*models.Costume, error)
	Delete(ctx context.Context, id int) error
	GetStats(ctx context.Context) (models.CostumeStats, error)
}

type costume service

var _ CostumeService = (*costume)(nil)

// checkRelations makes sure both references exist and agree: the
// subcategory must belong to the category.
func checkRelations(ctx context.Context, r repositories.SQLRepository, categoryID, subCategoryID int) error {
	exists, err := r.GetCategoryRepository().Exists(ctx, categoryID)
	if err != nil {
		return checkDatabaseError(err)
	}
	if !exists {
		return referenceError("categoryId", models.ErrKeyCategoryReferenceNotFound)
	}

	sc, err := r.GetSubCategoryRepository().GetByID(ctx, subCategoryID)
	if errors.Is(err, common.ErrNoRows) {
		return referenceError("subcategoryId", models.ErrKeySubcategoryReferenceNotFound)
	}
	if err != nil {
		return checkDatabaseError(err)
	}

	if sc.CategoryID != categoryID {
		return referenceError("subcategoryId", models.ErrKeySubcategoryCategoryMismatch)
	}

	return nil
}

func (s *costume) List(ctx context.Context, opts models.CostumeFilterOptions) (output []models.Costume, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	output, err = s.srv.sqlRepo.GetCostumeRepository().List(ctx, opts)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	return output, nil
}

func (s *costume) Get(ctx context.Context, id int) (output *models.Costume, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	repo := s.srv.sqlRepo.GetCostumeRepository()

	output, err = repo.GetByID(ctx, id)
	if err != nil {
		return nil, checkDatabaseError(err, models.ErrKeyCostumeNotFound)
	}

	output.Characteristics, err = repo.GetCharacteristics(ctx, id)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	return output, nil
}

func (s *costume) Create(ctx context.Context, in models.CreateCostumeIn) (output *models.Costume, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.catalogMetrics().RecordMutation(metrics.EntityCostume, metrics.OperationCreate, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if err = validateInput(in); err != nil {
		return nil, err
	}

	newCostume := &models.Costume{
		Title:         in.Title,
		Description:   in.Description,
		Price:         in.Price,
		Deposit:       in.Deposit,
		ImageURL:      in.ImageURL,
		Size:          in.Size,
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
		AgeCategory:   in.AgeCategory,
		Active:        boolOrDefault(in.Active, true),
		Available:     boolOrDefault(in.Available, true),
	}
	characteristics := in.Characteristics.Clean()

	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		if err := checkRelations(actx, r, in.CategoryID, in.SubCategoryID); err != nil {
			return err
		}

		created, err := r.GetCostumeRepository().Create(actx, newCostume)
		if err != nil {
			return checkDatabaseError(err)
		}

		if len(characteristics) > 0 {
			if err := r.GetCostumeRepository().ReplaceCharacteristics(actx, created.ID, characteristics); err != nil {
				return checkDatabaseError(err)
			}
		}
		created.Characteristics = characteristics

		output = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.srv.invalidateStats(ctx)

	return output, nil
}

func (s *costume) Update(ctx context.Context, id int, in models.UpdateCostumeIn) (output *models.Costume, err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.catalogMetrics().RecordMutation(metrics.EntityCostume, metrics.OperationUpdate, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	if err = validateInput(in); err != nil {
		return nil, err
	}

	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		repo := r.GetCostumeRepository()

		current, err := repo.GetByID(actx, id)
		if err != nil {
			return checkDatabaseError(err, models.ErrKeyCostumeNotFound)
		}

		if in.TouchesRelations() {
			categoryID, subCategoryID := current.CategoryID, current.SubCategoryID
			if in.CategoryID != nil {
				categoryID = *in.CategoryID
			}
			if in.SubCategoryID != nil {
				subCategoryID = *in.SubCategoryID
			}
			if err := checkRelations(actx, r, categoryID, subCategoryID); err != nil {
				return err
			}
		}

		if in.HasRowChanges() {
			if current, err = repo.Update(actx, id, in); err != nil {
				return checkDatabaseError(err, models.ErrKeyCostumeNotFound)
			}
		}

		if in.Characteristics != nil {
			characteristics := in.Characteristics.Clean()
			if err := repo.ReplaceCharacteristics(actx, id, characteristics); err != nil {
				return checkDatabaseError(err)
			}
			current.Characteristics = characteristics
		} else if current.Characteristics, err = repo.GetCharacteristics(actx, id); err != nil {
			return checkDatabaseError(err)
		}

		output = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.srv.invalidateStats(ctx)

	return output, nil
}

func (s *costume) Delete(ctx context.Context, id int) (err error) {
	monitor := monitoring.New(ctx)
	defer func() {
		s.srv.catalogMetrics().RecordMutation(metrics.EntityCostume, metrics.OperationDelete, err)
		monitor.Finish(monitoring.WithFinishCheckError(err))
	}()

	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		repo := r.GetCostumeRepository()
		if err := repo.DeleteCharacteristics(actx, id); err != nil {
			return checkDatabaseError(err)
		}
		if err := repo.Delete(actx, id); err != nil {
			return checkDatabaseError(err, models.ErrKeyCostumeNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.srv.invalidateStats(ctx)

	return nil
}

// GetStats serves from the stats cache. A broken cache is skipped, the
// numbers are then read from the database on every call.
func (s *costume) GetStats(ctx context.Context) (output models.CostumeStats, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	cached, err := s.srv.statsCache.Get(ctx, statsCacheKey)
	if err == nil {
		s.srv.catalogMetrics().RecordStatsCache(true)
		return cached, nil
	}
	if !errors.Is(err, cache.ErrNotExists) {
		xlog.Warn(ctx, "[STATS.CACHE.GET]", xlog.Err(err))
	}
	s.srv.catalogMetrics().RecordStatsCache(false)

	generation := s.srv.statsGeneration.Load()
	output, err = s.countStats(ctx)
	if err != nil {
		return models.CostumeStats{}, err
	}

	if s.srv.statsGeneration.Load() != generation {
		xlog.Debug(ctx, "[STATS.CACHE.SET] skipped, catalog changed while counting")
		return output, nil
	}

	if err := s.srv.statsCache.Set(ctx, statsCacheKey, output, s.srv.conf.App.StatsCacheTTL); err != nil {
		xlog.Warn(ctx, "[STATS.CACHE.SET]", xlog.Err(err))
	}

	return output, nil
}

func (s *costume) countStats(ctx context.Context) (models.CostumeStats, error) {
	var (
		stats            models.CostumeStats
		activeCategories int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats, err = s.srv.sqlRepo.GetCostumeRepository().CountByAgeCategory(gctx)
		return err
	})
	g.Go(func() (err error) {
		activeCategories, err = s.srv.sqlRepo.GetCategoryRepository().CountActive(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.CostumeStats{}, checkDatabaseError(err)
	}

	stats.Kind = "costumeStats"
	stats.ActiveCategories = activeCategories
	return stats, nil
}
