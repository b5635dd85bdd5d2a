package models

import "time"

type Category struct {
	ID          int
	Name        string
	Slug        string
	Description string
	ImageURL    string
	AgeCategory AgeCategory
	Active      bool
	CreatedAt   *time.Time
	UpdatedAt   *time.Time

	Subcategories []SubCategory
}

func (c *Category) ToResponse() *CategoryOut {
	out := &CategoryOut{
		Kind:          "category",
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		Image:         c.ImageURL,
		AgeCategory:   c.AgeCategory,
		Active:        c.Active,
		Subcategories: make([]SubCategoryOut, 0, len(c.Subcategories)),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	for _, sc := range c.Subcategories {
		out.Subcategories = append(out.Subcategories, *sc.ToResponse())
	}

	return out
}

type CategoryOut struct {
	Kind          string           `json:"kind"`
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	Image         string           `json:"image"`
	AgeCategory   AgeCategory      `json:"ageCategory"`
	Active        bool             `json:"active"`
	Subcategories []SubCategoryOut `json:"subcategories"`
	CreatedAt     *time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time       `json:"updatedAt"`
}

type CategoryFilterOptions struct {
	AgeCategory AgeCategory
	ActiveOnly  bool
}

// CreateCategoryIn is the canonical create input. Defaults (age category, active,
// slug) are applied by the service before validation.
type CreateCategoryIn struct {
	Name          string                `json:"name" validate:"required,max=255"`
	Description   string                `json:"description" validate:"required"`
	AgeCategory   AgeCategory           `json:"ageCategory" validate:"oneof=children adults"`
	Slug          string                `json:"slug" validate:"max=255"`
	ImageURL      string                `json:"image"`
	Active        *bool                 `json:"active"`
	Subcategories []InlineSubCategoryIn `json:"subcategories" validate:"dive"`
}

// UpdateCategoryIn carries only the fields the caller sent; nil means untouched.
type UpdateCategoryIn struct {
	Name        *string      `json:"name" validate:"omitnil,min=1,max=255"`
	Slug        *string      `json:"slug" validate:"omitnil,min=1,max=255"`
	Description *string      `json:"description" validate:"omitnil,min=1"`
	ImageURL    *string      `json:"image"`
	AgeCategory *AgeCategory `json:"ageCategory" validate:"omitnil,oneof=children adults"`
	Active      *bool        `json:"active"`
}

func (u UpdateCategoryIn) IsEmpty() bool {
	return u.Name == nil && u.Slug == nil && u.Description == nil &&
		u.ImageURL == nil && u.AgeCategory == nil && u.Active == nil
}

type ListCategoryRequest struct {
	AgeCategory string `query:"ageCategory" validate:"omitempty,oneof=children adults" example:"children"`
	ActiveOnly  bool   `query:"activeOnly" example:"true"`
}

func (r ListCategoryRequest) ToFilterOpts() CategoryFilterOptions {
	return CategoryFilterOptions{
		AgeCategory: AgeCategory(r.AgeCategory),
		ActiveOnly:  r.ActiveOnly,
	}
}

// CreateCategoryRequest accepts both generations of admin payloads:
// name|title, image|image_url, ageCategory|age_category.
type CreateCategoryRequest struct {
	Name             string                     `json:"name" example:"Народные"`
	Title            string                     `json:"title"`
	Slug             string                     `json:"slug" example:"narodnye"`
	Description      string                     `json:"description" example:"Народные костюмы"`
	Image            string                     `json:"image"`
	ImageURL         string                     `json:"image_url"`
	AgeCategory      string                     `json:"ageCategory" example:"children"`
	AgeCategorySnake string                     `json:"age_category"`
	Active           *bool                      `json:"active"`
	Subcategories    []CreateSubCategoryRequest `json:"subcategories"`
}

func (r CreateCategoryRequest) ToCreateCategoryIn() CreateCategoryIn {
	in := CreateCategoryIn{
		Name:        firstNonEmpty(r.Name, r.Title),
		Description: r.Description,
		AgeCategory: AgeCategory(firstNonEmpty(r.AgeCategory, r.AgeCategorySnake)),
		Slug:        r.Slug,
		ImageURL:    firstNonEmpty(r.Image, r.ImageURL),
		Active:      r.Active,
	}
	for _, sc := range r.Subcategories {
		in.Subcategories = append(in.Subcategories, sc.ToInlineSubCategoryIn())
	}

	return in
}

type UpdateCategoryRequest struct {
	Name             *string `json:"name"`
	Title            *string `json:"title"`
	Slug             *string `json:"slug"`
	Description      *string `json:"description"`
	Image            *string `json:"image"`
	ImageURL         *string `json:"image_url"`
	AgeCategory      *string `json:"ageCategory"`
	AgeCategorySnake *string `json:"age_category"`
	Active           *bool   `json:"active"`
}

func (r UpdateCategoryRequest) ToUpdateCategoryIn() UpdateCategoryIn {
	return UpdateCategoryIn{
		Name:        firstNonNil(r.Name, r.Title),
		Slug:        r.Slug,
		Description: r.Description,
		ImageURL:    firstNonNil(r.Image, r.ImageURL),
		AgeCategory: toAgeCategoryPtr(firstNonNil(r.AgeCategory, r.AgeCategorySnake)),
		Active:      r.Active,
	}
}
