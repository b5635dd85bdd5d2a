package models

import "time"

type Costume struct {
	ID              int
	Title           string
	Description     string
	Price           Decimal
	Deposit         Decimal
	ImageURL        string
	Size            *string
	CategoryID      int
	SubCategoryID   int
	AgeCategory     AgeCategory
	Active          bool
	Available       bool
	Characteristics Characteristics
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}

type CostumeOut struct {
	Kind            string          `json:"kind"`
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           Decimal         `json:"price" swaggertype:"number" example:"500"`
	Deposit         Decimal         `json:"deposit" swaggertype:"number" example:"0"`
	Image           string          `json:"image"`
	Size            *string         `json:"size"`
	CategoryID      int             `json:"categoryId"`
	SubCategoryID   int             `json:"subcategoryId"`
	AgeCategory     AgeCategory     `json:"ageCategory"`
	Active          bool            `json:"active"`
	Available       bool            `json:"available"`
	Characteristics Characteristics `json:"characteristics,omitempty"`
	CreatedAt       *time.Time      `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt"`
}

func (c *Costume) ToResponse() *CostumeOut {
	return &CostumeOut{
		Kind:            "costume",
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Price:           c.Price,
		Deposit:         c.Deposit,
		Image:           c.ImageURL,
		Size:            c.Size,
		CategoryID:      c.CategoryID,
		SubCategoryID:   c.SubCategoryID,
		AgeCategory:     c.AgeCategory,
		Active:          c.Active,
		Available:       c.Available,
		Characteristics: c.Characteristics,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// CostumeFilterOptions is a logical AND of every non zero field.
type CostumeFilterOptions struct {
	CategoryID    int
	SubCategoryID int
	AgeCategory   AgeCategory
	ActiveOnly    bool
}

// CreateCostumeIn field order is the order violations are reported in.
type CreateCostumeIn struct {
	Title           string          `json:"title" validate:"required,max=255"`
	Description     string          `json:"description" validate:"required"`
	Price           Decimal         `json:"price" validate:"decimalGreaterThan=0,decimalLessThan=10000000000,decimalMaxScale=2"`
	ImageURL        string          `json:"image" validate:"required"`
	CategoryID      int             `json:"categoryId" validate:"gt=0"`
	SubCategoryID   int             `json:"subcategoryId" validate:"gt=0"`
	AgeCategory     AgeCategory     `json:"ageCategory" validate:"oneof=children adults"`
	Size            *string         `json:"size" validate:"omitnil,max=100"`
	Deposit         Decimal         `json:"deposit" validate:"decimalGreaterThanOrEqual=0,decimalLessThan=10000000000,decimalMaxScale=2"`
	Active          *bool           `json:"active"`
	Available       *bool           `json:"available"`
	Characteristics Characteristics `json:"characteristics"`
}

type UpdateCostumeIn struct {
	Title         *string      `json:"title" validate:"omitnil,min=1,max=255"`
	Description   *string      `json:"description" validate:"omitnil,min=1"`
	Price         *Decimal     `json:"price" validate:"omitnil,decimalGreaterThan=0,decimalLessThan=10000000000,decimalMaxScale=2"`
	ImageURL      *string      `json:"image" validate:"omitnil,min=1"`
	CategoryID    *int         `json:"categoryId" validate:"omitnil,gt=0"`
	SubCategoryID *int         `json:"subcategoryId" validate:"omitnil,gt=0"`
	AgeCategory   *AgeCategory `json:"ageCategory" validate:"omitnil,oneof=children adults"`
	Size          *string      `json:"size" validate:"omitnil,max=100"`
	Deposit       *Decimal     `json:"deposit" validate:"omitnil,decimalGreaterThanOrEqual=0,decimalLessThan=10000000000,decimalMaxScale=2"`
	Active        *bool        `json:"active"`
	Available     *bool        `json:"available"`

	// nil keeps the stored characteristics, non nil replaces all of them
	Characteristics Characteristics `json:"characteristics"`
}

func (u UpdateCostumeIn) HasRowChanges() bool {
	return u.Title != nil || u.Description != nil || u.Price != nil || u.ImageURL != nil ||
		u.CategoryID != nil || u.SubCategoryID != nil || u.AgeCategory != nil || u.Size != nil ||
		u.Deposit != nil || u.Active != nil || u.Available != nil
}

func (u UpdateCostumeIn) TouchesRelations() bool {
	return u.CategoryID != nil || u.SubCategoryID != nil
}

type ListCostumeRequest struct {
	CategoryID    int    `query:"categoryId" validate:"gte=0" example:"1"`
	SubCategoryID int    `query:"subcategoryId" validate:"gte=0" example:"1"`
	AgeCategory   string `query:"ageCategory" validate:"omitempty,oneof=children adults" example:"children"`
	ActiveOnly    bool   `query:"activeOnly" example:"false"`
}

func (r ListCostumeRequest) ToFilterOpts() CostumeFilterOptions {
	return CostumeFilterOptions{
		CategoryID:    r.CategoryID,
		SubCategoryID: r.SubCategoryID,
		AgeCategory:   AgeCategory(r.AgeCategory),
		ActiveOnly:    r.ActiveOnly,
	}
}

// CreateCostumeRequest accepts title|name, image|image_url, camelCase or
// snake_case ids, and price/deposit as number or numeric string.
type CreateCostumeRequest struct {
	Title              string          `json:"title" example:"Сарафан"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              Decimal         `json:"price" swaggertype:"number" example:"500"`
	Deposit            Decimal         `json:"deposit" swaggertype:"number" example:"0"`
	Image              string          `json:"image"`
	ImageURL           string          `json:"image_url"`
	Size               *string         `json:"size"`
	CategoryID         FlexibleID      `json:"categoryId" swaggertype:"integer" example:"1"`
	CategoryIDSnake    FlexibleID      `json:"category_id" swaggertype:"integer"`
	SubCategoryID      FlexibleID      `json:"subcategoryId" swaggertype:"integer" example:"1"`
	SubCategoryIDSnake FlexibleID      `json:"subcategory_id" swaggertype:"integer"`
	AgeCategory        string          `json:"ageCategory" example:"children"`
	AgeCategorySnake   string          `json:"age_category"`
	Active             *bool           `json:"active"`
	Available          *bool           `json:"available"`
	Characteristics    Characteristics `json:"characteristics"`
}

func (r CreateCostumeRequest) ToCreateCostumeIn() CreateCostumeIn {
	categoryID, subCategoryID := r.CategoryID, r.SubCategoryID
	if categoryID == 0 {
		categoryID = r.CategoryIDSnake
	}
	if subCategoryID == 0 {
		subCategoryID = r.SubCategoryIDSnake
	}

	size := r.Size
	if size != nil && *size == "" {
		size = nil
	}

	return CreateCostumeIn{
		Title:           firstNonEmpty(r.Title, r.Name),
		Description:     r.Description,
		Price:           r.Price,
		ImageURL:        firstNonEmpty(r.Image, r.ImageURL),
		CategoryID:      int(categoryID),
		SubCategoryID:   int(subCategoryID),
		AgeCategory:     AgeCategory(firstNonEmpty(r.AgeCategory, r.AgeCategorySnake)),
		Size:            size,
		Deposit:         r.Deposit,
		Active:          r.Active,
		Available:       r.Available,
		Characteristics: r.Characteristics,
	}
}

type UpdateCostumeRequest struct {
	Title              *string         `json:"title"`
	Name               *string         `json:"name"`
	Description        *string         `json:"description"`
	Price              *Decimal        `json:"price" swaggertype:"number"`
	Deposit            *Decimal        `json:"deposit" swaggertype:"number"`
	Image              *string         `json:"image"`
	ImageURL           *string         `json:"image_url"`
	Size               *string         `json:"size"`
	CategoryID         *FlexibleID     `json:"categoryId" swaggertype:"integer"`
	CategoryIDSnake    *FlexibleID     `json:"category_id" swaggertype:"integer"`
	Category           *FlexibleID     `json:"category" swaggertype:"integer"`
	SubCategoryID      *FlexibleID     `json:"subcategoryId" swaggertype:"integer"`
	SubCategoryIDSnake *FlexibleID     `json:"subcategory_id" swaggertype:"integer"`
	SubCategory        *FlexibleID     `json:"subcategory" swaggertype:"integer"`
	AgeCategory        *string         `json:"ageCategory"`
	AgeCategorySnake   *string         `json:"age_category"`
	Active             *bool           `json:"active"`
	Available          *bool           `json:"available"`
	Characteristics    Characteristics `json:"characteristics"`
}

func (r UpdateCostumeRequest) ToUpdateCostumeIn() UpdateCostumeIn {
	return UpdateCostumeIn{
		Title:           firstNonNil(r.Title, r.Name),
		Description:     r.Description,
		Price:           r.Price,
		ImageURL:        firstNonNil(r.Image, r.ImageURL),
		CategoryID:      firstNonNilID(r.CategoryID, r.CategoryIDSnake, r.Category),
		SubCategoryID:   firstNonNilID(r.SubCategoryID, r.SubCategoryIDSnake, r.SubCategory),
		AgeCategory:     toAgeCategoryPtr(firstNonNil(r.AgeCategory, r.AgeCategorySnake)),
		Size:            r.Size,
		Deposit:         r.Deposit,
		Active:          r.Active,
		Available:       r.Available,
		Characteristics: r.Characteristics,
	}
}

type CostumeStats struct {
	Kind             string `json:"kind"`
	Children         int    `json:"children"`
	Adults           int    `json:"adults"`
	Total            int    `json:"total"`
	ActiveCategories int    `json:"activeCategories"`
}
