package services

import (
	"errors"

	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"gorm.io/gorm"
)

// CategoryService manages the admin-edited category tree. Parent links come
// from admin input, so reparenting is checked for cycles before it lands.
type CategoryService struct {
	categories repositories.CategoryRepository
}

func NewCategoryService(categories repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(req models.CategoryRequest) (*models.Category, error) {
	if _, err := s.categories.GetByName(req.Name); err == nil {
		return nil, conflictErr("a category with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if req.ParentID != nil {
		if _, err := s.categories.GetByID(*req.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, validationErr("parent category does not exist")
			}
			return nil, err
		}
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	if err := s.categories.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(id uint, req models.CategoryRequest) (*models.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.ParentID != nil {
		if err := s.checkParent(id, *req.ParentID); err != nil {
			return nil, err
		}
	}

	category.Name = req.Name
	category.Description = req.Description
	category.ParentID = req.ParentID
	if err := s.categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// checkParent rejects a parent that is the category itself or any node whose
// ancestor chain leads back to it.
func (s *CategoryService) checkParent(id, parentID uint) error {
	if parentID == id {
		return validationErr("a category cannot be its own parent")
	}

	seen := map[uint]bool{id: true}
	current := parentID
	for {
		if seen[current] {
			return validationErr("category parent would create a cycle")
		}
		seen[current] = true

		node, err := s.categories.GetByID(current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationErr("parent category does not exist")
			}
			return err
		}
		if node.ParentID == nil {
			return nil
		}
		current = *node.ParentID
	}
}

// Ancestors walks the parent chain from a category to the root, nearest
// first.
func (s *CategoryService) Ancestors(id uint) ([]models.Category, error) {
	var chain []models.Category
	seen := map[uint]bool{}

	category, err := s.categories.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	for category.ParentID != nil {
		if seen[*category.ParentID] {
			break // legacy data may still hold a cycle
		}
		seen[*category.ParentID] = true
		parent, err := s.categories.GetByID(*category.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				break
			}
			return nil, err
		}
		chain = append(chain, *parent)
		category = parent
	}
	return chain, nil
}
