package repositories

var subCategoryColumns = []string{
	"id", "category_id", "name", "slug", "description", "image_url", "age_category",
	"count", "active", "available", "created_at", "updated_at",
}

// query to subcategories table
var (
	querySubCategoryGetByID = `SELECT ` + columns(subCategoryColumns...) + ` FROM subcategories WHERE id = $1;`

	querySubCategoryCreate = `
		INSERT INTO subcategories(
			category_id, name, slug, description, image_url, age_category, count, active, available, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now()
		)
		` + returning(subCategoryColumns) + `;`

	querySubCategoryDelete = `DELETE FROM subcategories WHERE id = $1;`

	querySubCategoryDeleteByCategoryID = `DELETE FROM subcategories WHERE category_id = $1;`
)
