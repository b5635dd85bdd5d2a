package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/karnaval/go-costume-catalog/internal/common"
	"github.com/karnaval/go-costume-catalog/internal/common/validation"
	"github.com/karnaval/go-costume-catalog/internal/models"

	"github.com/gosimple/slug"
	"github.com/hashicorp/go-multierror"
)

const maxSlugLength = 255

// checkDatabaseError maps a missing row to ErrDataNotFound carrying the
// error detail of notFoundKey. Anything else is a storage failure.
func checkDatabaseError(err error, notFoundKey ...string) error {
	if errors.Is(err, common.ErrNoRows) {
		key := models.ErrKeyDataNotFound
		if len(notFoundKey) > 0 {
			key = notFoundKey[0]
		}
		return fmt.Errorf("%w: %w", common.ErrDataNotFound, models.GetErrMap(key))
	}

	return fmt.Errorf("%w: %w", models.GetErrMap(models.ErrKeyDatabaseError), err)
}

func validateInput(in interface{}) error {
	if err := validation.ValidateStruct(in); err != nil {
		return common.NewValidationError(err)
	}
	return nil
}

// referenceError is a violation only the database can detect, such as a
// categoryId pointing nowhere.
func referenceError(field, key string) error {
	return common.NewValidationError(multierror.Append(nil, validation.NewFieldError(field, key)))
}

// defaultSlug transliterates name, so "Народные" becomes "narodnye".
func defaultSlug(name string) string {
	s := slug.MakeLang(name, "ru")
	if len(s) > maxSlugLength {
		s = strings.TrimRight(s[:maxSlugLength], "-")
	}
	return s
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
