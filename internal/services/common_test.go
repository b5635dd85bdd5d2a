package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/karnaval/go-costume-catalog/internal/common"
	"github.com/karnaval/go-costume-catalog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCheckDatabaseError(t *testing.T) {
	err := checkDatabaseError(common.ErrNoRows, models.ErrKeyCostumeNotFound)
	assert.ErrorIs(t, err, common.ErrDataNotFound)

	var detail models.ErrorDetail
	assert.True(t, errors.As(err, &detail))
	assert.Equal(t, "COSTUME_NOT_FOUND", detail.Code)

	err = checkDatabaseError(common.ErrNoRows)
	assert.ErrorIs(t, err, common.ErrDataNotFound)

	boom := errors.New("connection reset")
	err = checkDatabaseError(boom)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, common.ErrDataNotFound)
}

func TestDefaultSlug(t *testing.T) {
	assert.Equal(t, "narodnye", defaultSlug("Народные"))
	assert.Equal(t, "skazochnye-geroi", defaultSlug("Сказочные герои"))
	assert.Equal(t, "", defaultSlug(""))

	long := defaultSlug(strings.Repeat("ab ", 200))
	assert.LessOrEqual(t, len(long), maxSlugLength)
	assert.False(t, strings.HasSuffix(long, "-"))
}

func TestReferenceError(t *testing.T) {
	err := referenceError("categoryId", models.ErrKeyCategoryReferenceNotFound)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "Category does not exist")
}
