package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/karnaval/go-costume-catalog/internal/common"
	"github.com/karnaval/go-costume-catalog/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestSubCategoryRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(subCategoryTestSuite))
}

type subCategoryTestSuite struct {
	sqlSuite
	repo SubCategoryRepository
}

func (s *subCategoryTestSuite) SetupTest() {
	s.sqlSuite.SetupTest()
	s.repo = s.sqlSuite.repo.GetSubCategoryRepository()
}

func subCategoryRows() *sqlmock.Rows {
	return sqlmock.NewRows(subCategoryColumns).
		AddRow(10, 2, "Белорусские", "belorusskie", "", "/img/10.png", "children", 4, true, true, fixedTime, fixedTime).
		AddRow(11, 3, "Русские", "russkie", "", "/img/11.png", "adults", 12, true, false, fixedTime, fixedTime)
}

func (s *subCategoryTestSuite) TestBuildSubCategoryListQuery() {
	testCases := []struct {
		name        string
		categoryIDs []int
		activeOnly  bool
		wantWhere   string
		wantArgs    []interface{}
	}{
		{
			name:       "all active",
			activeOnly: true,
			wantWhere:  "WHERE active = $1",
			wantArgs:   []interface{}{true},
		},
		{
			name:        "single category",
			categoryIDs: []int{2},
			activeOnly:  true,
			wantWhere:   "WHERE category_id = $1 AND active = $2",
			wantArgs:    []interface{}{2, true},
		},
		{
			name:        "many categories",
			categoryIDs: []int{2, 3},
			wantWhere:   "WHERE category_id IN ($1,$2)",
			wantArgs:    []interface{}{2, 3},
		},
	}
	for _, tt := range testCases {
		s.T().Run(tt.name, func(t *testing.T) {
			query, args, err := buildSubCategoryListQuery(tt.categoryIDs, tt.activeOnly)
			assert.NoError(t, err)
			assert.Contains(t, query, tt.wantWhere)
			assert.Contains(t, query, "ORDER BY name ASC, id ASC")
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func (s *subCategoryTestSuite) TestRepository_List() {
	query, args, _ := buildSubCategoryListQuery([]int{2}, true)
	s.mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(driverArgs(args)...).WillReturnRows(subCategoryRows())

	got, err := s.repo.List(context.TODO(), models.SubCategoryFilterOptions{CategoryID: 2})
	s.NoError(err)
	s.Len(got, 2)
	s.Equal(models.DisplayCount(4), got[0].Count)
	s.Equal(models.AgeCategoryAdults, got[1].AgeCategory)

	query, args, _ = buildSubCategoryListQuery(nil, true)
	s.mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(driverArgs(args)...).WillReturnError(assert.AnError)

	_, err = s.repo.List(context.TODO(), models.SubCategoryFilterOptions{})
	s.ErrorIs(err, assert.AnError)
}

func (s *subCategoryTestSuite) TestRepository_ListByCategoryIDs() {
	s.Run("no ids skips the query", func() {
		got, err := s.repo.ListByCategoryIDs(context.TODO(), nil, false)
		s.NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("several ids", func() {
		query, args, _ := buildSubCategoryListQuery([]int{2, 3}, false)
		s.mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(driverArgs(args)...).WillReturnRows(subCategoryRows())

		got, err := s.repo.ListByCategoryIDs(context.TODO(), []int{2, 3}, false)
		s.NoError(err)
		s.Len(got, 2)
		s.NoError(s.mock.ExpectationsWereMet())
	})
}

func (s *subCategoryTestSuite) TestRepository_GetByID() {
	s.mock.ExpectQuery(regexp.QuoteMeta(querySubCategoryGetByID)).WithArgs(10).WillReturnRows(subCategoryRows())

	got, err := s.repo.GetByID(context.TODO(), 10)
	s.NoError(err)
	s.Equal(10, got.ID)
	s.Equal(2, got.CategoryID)

	s.mock.ExpectQuery(regexp.QuoteMeta(querySubCategoryGetByID)).WithArgs(99).WillReturnError(sql.ErrNoRows)

	got, err = s.repo.GetByID(context.TODO(), 99)
	s.ErrorIs(err, sql.ErrNoRows)
	s.Nil(got)
}

func (s *subCategoryTestSuite) TestRepository_Create() {
	in := &models.SubCategory{
		CategoryID:  2,
		Name:        "Белорусские",
		Slug:        "belorusskie",
		ImageURL:    "/img/10.png",
		AgeCategory: models.AgeCategoryChildren,
		Count:       4,
		Active:      true,
		Available:   true,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta(querySubCategoryCreate)).
		WithArgs(2, in.Name, in.Slug, "", in.ImageURL, "children", 4, true, true).
		WillReturnRows(subCategoryRows())

	got, err := s.repo.Create(context.TODO(), in)
	s.NoError(err)
	s.Equal(10, got.ID)

	s.mock.ExpectQuery(regexp.QuoteMeta(querySubCategoryCreate)).WillReturnError(assert.AnError)

	_, err = s.repo.Create(context.TODO(), in)
	s.Error(err)
}

func (s *subCategoryTestSuite) TestRepository_Update() {
	categoryID := 3
	count := models.DisplayCount(7)
	in := models.UpdateSubCategoryIn{CategoryID: &categoryID, Count: &count}

	query, args, err := buildSubCategoryUpdateQuery(10, in)
	s.Require().NoError(err)
	s.Contains(query, "SET updated_at = now(), category_id = $1, count = $2 WHERE id = $3")

	s.mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(driverArgs(args)...).WillReturnRows(subCategoryRows())

	got, err := s.repo.Update(context.TODO(), 10, in)
	s.NoError(err)
	s.Equal(10, got.ID)
}

func (s *subCategoryTestSuite) TestRepository_Delete() {
	s.mock.ExpectExec(regexp.QuoteMeta(querySubCategoryDelete)).WithArgs(10).WillReturnResult(sqlmock.NewResult(0, 1))
	s.NoError(s.repo.Delete(context.TODO(), 10))

	s.mock.ExpectExec(regexp.QuoteMeta(querySubCategoryDelete)).WithArgs(10).WillReturnResult(sqlmock.NewResult(0, 0))
	s.ErrorIs(s.repo.Delete(context.TODO(), 10), common.ErrNoRows)
}

func (s *subCategoryTestSuite) TestRepository_DeleteByCategoryID() {
	s.mock.ExpectExec(regexp.QuoteMeta(querySubCategoryDeleteByCategoryID)).WithArgs(2).WillReturnResult(sqlmock.NewResult(0, 4))

	affected, err := s.repo.DeleteByCategoryID(context.TODO(), 2)
	s.NoError(err)
	s.EqualValues(4, affected)

	s.mock.ExpectExec(regexp.QuoteMeta(querySubCategoryDeleteByCategoryID)).WithArgs(2).WillReturnError(assert.AnError)

	_, err = s.repo.DeleteByCategoryID(context.TODO(), 2)
	s.ErrorIs(err, assert.AnError)
}
