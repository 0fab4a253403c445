package services

import (
	"taskforge/taskforge/database"
	"taskforge/taskforge/models"
	"taskforge/taskforge/utils/cache"
)

const categoryListCacheKey = "categories:all"

type CategoryServiceInterface interface {
	CreateCategory(db *database.Database, name, description string) (models.Category, error)
	GetCategories(db *database.Database) ([]models.Category, error)
}

// CategoryService reads the category list through an in-process TTL cache.
// Writes invalidate the cached list.
type CategoryService struct {
	cache *cache.Store
}

func NewCategoryService(store *cache.Store) *CategoryService {
	return &CategoryService{cache: store}
}

func (s *CategoryService) CreateCategory(db *database.Database, name, description string) (models.Category, error) {
	category := models.Category{
		Name:        name,
		Description: description,
	}
	if err := db.DB.Create(&category).Error; err != nil {
		return models.Category{}, err
	}

	if s.cache != nil {
		s.cache.Delete(categoryListCacheKey)
	}
	return category, nil
}

func (s *CategoryService) GetCategories(db *database.Database) ([]models.Category, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(categoryListCacheKey); ok {
			if categories, ok := cached.([]models.Category); ok {
				return categories, nil
			}
		}
	}

	var categories []models.Category
	if err := db.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(categoryListCacheKey, categories)
	}
	return categories, nil
}

var CategoryServiceInstance CategoryServiceInterface
