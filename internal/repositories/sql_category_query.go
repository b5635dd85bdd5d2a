package repositories

var categoryColumns = []string{
	"id", "name", "slug", "description", "image_url", "age_category", "active", "created_at", "updated_at",
}

// query to categories table
var (
	queryCategoryGetByID = `SELECT ` + columns(categoryColumns...) + ` FROM categories WHERE id = $1;`

	queryCategoryExists = `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1);`

	queryCategoryCreate = `
		INSERT INTO categories(
			name, slug, description, image_url, age_category, active, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, now(), now()
		)
		` + returning(categoryColumns) + `;`

	queryCategoryDelete = `DELETE FROM categories WHERE id = $1;`

	queryCategoryCountActive = `SELECT COUNT(*) FROM categories WHERE active = TRUE;`
)
