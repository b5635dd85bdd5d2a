package repositories

var costumeColumns = []string{
	"id", "title", "description", "price_per_day", "deposit", "image_url", "size",
	"category_id", "subcategory_id", "age_category", "active", "available", "created_at", "updated_at",
}

// query to costumes and costume_characteristics tables
var (
	queryCostumeGetByID = `SELECT ` + columns(costumeColumns...) + ` FROM costumes WHERE id = $1;`

	queryCostumeCreate = `
		INSERT INTO costumes(
			title, description, price_per_day, deposit, image_url, size,
			category_id, subcategory_id, age_category, active, available, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now()
		)
		` + returning(costumeColumns) + `;`

	queryCostumeDelete = `DELETE FROM costumes WHERE id = $1;`

	queryCostumeCountBySubCategoryID = `SELECT COUNT(*) FROM costumes WHERE subcategory_id = $1;`

	queryCostumeMoveToCategory = `UPDATE costumes SET category_id = $1, updated_at = now() WHERE subcategory_id = $2;`

	// a costume belongs to a category either directly or through one of its subcategories
	costumesOfCategory = `SELECT id FROM costumes WHERE category_id = $1 OR subcategory_id IN (SELECT id FROM subcategories WHERE category_id = $1)`

	queryCostumeDeleteByCategoryID = `DELETE FROM costumes WHERE id IN (` + costumesOfCategory + `);`

	queryCostumeCountByAgeCategory = `
		SELECT
			COUNT(*) FILTER (WHERE age_category = 'children'),
			COUNT(*) FILTER (WHERE age_category = 'adults'),
			COUNT(*)
		FROM costumes;`

	queryCharacteristicList = `SELECT characteristic_name, characteristic_value FROM costume_characteristics WHERE costume_id = $1 ORDER BY characteristic_name ASC;`

	queryCharacteristicInsert = `INSERT INTO costume_characteristics(costume_id, characteristic_name, characteristic_value) VALUES($1, $2, $3);`

	queryCharacteristicDeleteByCostumeID = `DELETE FROM costume_characteristics WHERE costume_id = $1;`

	queryCharacteristicDeleteByCategoryID = `DELETE FROM costume_characteristics WHERE costume_id IN (` + costumesOfCategory + `);`
)
