package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Nagesh2809/cafe-management/entity"
	"github.com/Nagesh2809/cafe-management/repository"
)

// popularLimit caps /menu/popular; the UI only shows a sample.
const popularLimit = 4

type MenuService struct {
	repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.repo.List()
}

func (s *MenuService) Popular() ([]entity.MenuItem, error) {
	return s.repo.ListPopular(popularLimit)
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	return s.repo.Create(item)
}

// Update replaces every mutable attribute; this is not a partial patch.
func (s *MenuService) Update(id uint, in *entity.MenuItem) (*entity.MenuItem, error) {
	item, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	item.Name = in.Name
	item.Category = in.Category
	item.Price = in.Price
	item.Description = in.Description
	item.LongDescription = in.LongDescription
	item.Image = in.Image
	item.Ingredients = in.Ingredients
	item.AddOns = in.AddOns
	item.IsPopular = in.IsPopular
	item.IsAvailable = in.IsAvailable

	if err := s.repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Delete(id uint) error {
	ok, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
