package services

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"taskforge/taskforge/testutils"
	"taskforge/taskforge/utils/cache"
)

func TestGetCategories_ReadsThroughCache(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "categories" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).
			AddRow(1, "Chores", ""))

	categoryService := NewCategoryService(cache.New(time.Minute))

	first, err := categoryService.GetCategories(db)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	// Second call is served from the cache; no further query is expected.
	second, err := categoryService.GetCategories(db)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategory_InvalidatesCache(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "categories" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).
			AddRow(1, "Chores", ""))
	mock.ExpectQuery(`INSERT INTO "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(`SELECT (.+) FROM "categories" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).
			AddRow(1, "Chores", "").
			AddRow(2, "Work", ""))

	categoryService := NewCategoryService(cache.New(time.Minute))

	_, err := categoryService.GetCategories(db)
	assert.NoError(t, err)

	created, err := categoryService.CreateCategory(db, "Work", "")
	assert.NoError(t, err)
	assert.Equal(t, "Work", created.Name)

	categories, err := categoryService.GetCategories(db)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
