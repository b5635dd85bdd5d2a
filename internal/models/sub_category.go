package models

import "time"

type SubCategory struct {
	ID          int
	CategoryID  int
	Name        string
	Slug        string
	Description string
	ImageURL    string
	AgeCategory AgeCategory
	Count       DisplayCount
	Active      bool
	Available   bool
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

type SubCategoryOut struct {
	Kind        string       `json:"kind"`
	ID          int          `json:"id"`
	CategoryID  int          `json:"categoryId"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	AgeCategory AgeCategory  `json:"ageCategory"`
	Count       DisplayCount `json:"count"`
	Active      bool         `json:"active"`
	Available   bool         `json:"available"`
	CreatedAt   *time.Time   `json:"createdAt"`
	UpdatedAt   *time.Time   `json:"updatedAt"`
}

func (c *SubCategory) ToResponse() *SubCategoryOut {
	return &SubCategoryOut{
		Kind:        "subCategory",
		ID:          c.ID,
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.ImageURL,
		AgeCategory: c.AgeCategory,
		Count:       c.Count,
		Active:      c.Active,
		Available:   c.Available,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type SubCategoryFilterOptions struct {
	CategoryID int
}

type CreateSubCategoryIn struct {
	CategoryID  int          `json:"categoryId" validate:"gt=0"`
	Name        string       `json:"name" validate:"required,max=255"`
	Slug        string       `json:"slug" validate:"max=255"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image"`
	AgeCategory AgeCategory  `json:"ageCategory" validate:"omitempty,oneof=children adults"`
	Count       DisplayCount `json:"count" validate:"gte=0"`
	Active      *bool        `json:"active"`
	Available   *bool        `json:"available"`
}

// InlineSubCategoryIn is a subcategory sent together with its parent category,
// the parent id is only known once the category row exists.
type InlineSubCategoryIn struct {
	Name        string       `json:"name" validate:"required,max=255"`
	Slug        string       `json:"slug" validate:"max=255"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image"`
	AgeCategory AgeCategory  `json:"ageCategory" validate:"omitempty,oneof=children adults"`
	Count       DisplayCount `json:"count" validate:"gte=0"`
	Active      *bool        `json:"active"`
	Available   *bool        `json:"available"`
}

func (in InlineSubCategoryIn) ToCreateSubCategoryIn(categoryID int) CreateSubCategoryIn {
	return CreateSubCategoryIn{
		CategoryID:  categoryID,
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		AgeCategory: in.AgeCategory,
		Count:       in.Count,
		Active:      in.Active,
		Available:   in.Available,
	}
}

type UpdateSubCategoryIn struct {
	CategoryID  *int          `json:"categoryId" validate:"omitnil,gt=0"`
	Name        *string       `json:"name" validate:"omitnil,min=1,max=255"`
	Slug        *string       `json:"slug" validate:"omitnil,min=1,max=255"`
	Description *string       `json:"description"`
	ImageURL    *string       `json:"image"`
	AgeCategory *AgeCategory  `json:"ageCategory" validate:"omitnil,oneof=children adults"`
	Count       *DisplayCount `json:"count" validate:"omitnil,gte=0"`
	Active      *bool         `json:"active"`
	Available   *bool         `json:"available"`
}

func (u UpdateSubCategoryIn) IsEmpty() bool {
	return u.CategoryID == nil && u.Name == nil && u.Slug == nil && u.Description == nil &&
		u.ImageURL == nil && u.AgeCategory == nil && u.Count == nil && u.Active == nil && u.Available == nil
}

type ListSubCategoryRequest struct {
	CategoryID int `query:"categoryId" validate:"gte=0" example:"1"`
}

func (r ListSubCategoryRequest) ToFilterOpts() SubCategoryFilterOptions {
	return SubCategoryFilterOptions{CategoryID: r.CategoryID}
}

type CreateSubCategoryRequest struct {
	CategoryID       FlexibleID   `json:"categoryId" example:"1"`
	CategoryIDSnake  FlexibleID   `json:"category_id"`
	Name             string       `json:"name" example:"Русские"`
	Title            string       `json:"title"`
	Slug             string       `json:"slug"`
	Description      string       `json:"description"`
	Image            string       `json:"image"`
	ImageURL         string       `json:"image_url"`
	AgeCategory      string       `json:"ageCategory"`
	AgeCategorySnake string       `json:"age_category"`
	Count            DisplayCount `json:"count" swaggertype:"integer" example:"12"`
	Active           *bool        `json:"active"`
	Available        *bool        `json:"available"`
}

func (r CreateSubCategoryRequest) ToCreateSubCategoryIn() CreateSubCategoryIn {
	categoryID := r.CategoryID
	if categoryID == 0 {
		categoryID = r.CategoryIDSnake
	}

	in := r.ToInlineSubCategoryIn().ToCreateSubCategoryIn(int(categoryID))
	return in
}

func (r CreateSubCategoryRequest) ToInlineSubCategoryIn() InlineSubCategoryIn {
	return InlineSubCategoryIn{
		Name:        firstNonEmpty(r.Name, r.Title),
		Slug:        r.Slug,
		Description: r.Description,
		ImageURL:    firstNonEmpty(r.Image, r.ImageURL),
		AgeCategory: AgeCategory(firstNonEmpty(r.AgeCategory, r.AgeCategorySnake)),
		Count:       r.Count,
		Active:      r.Active,
		Available:   r.Available,
	}
}

type UpdateSubCategoryRequest struct {
	CategoryID       *FlexibleID   `json:"categoryId"`
	CategoryIDSnake  *FlexibleID   `json:"category_id"`
	Name             *string       `json:"name"`
	Title            *string       `json:"title"`
	Slug             *string       `json:"slug"`
	Description      *string       `json:"description"`
	Image            *string       `json:"image"`
	ImageURL         *string       `json:"image_url"`
	AgeCategory      *string       `json:"ageCategory"`
	AgeCategorySnake *string       `json:"age_category"`
	Count            *DisplayCount `json:"count" swaggertype:"integer"`
	Active           *bool         `json:"active"`
	Available        *bool         `json:"available"`
}

func (r UpdateSubCategoryRequest) ToUpdateSubCategoryIn() UpdateSubCategoryIn {
	return UpdateSubCategoryIn{
		CategoryID:  firstNonNilID(r.CategoryID, r.CategoryIDSnake),
		Name:        firstNonNil(r.Name, r.Title),
		Slug:        r.Slug,
		Description: r.Description,
		ImageURL:    firstNonNil(r.Image, r.ImageURL),
		AgeCategory: toAgeCategoryPtr(firstNonNil(r.AgeCategory, r.AgeCategorySnake)),
		Count:       r.Count,
		Active:      r.Active,
		Available:   r.Available,
	}
}
