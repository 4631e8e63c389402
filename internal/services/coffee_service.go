package services

import (
	"errors"
	"fmt"

	"coffeeshop/internal/models"
	"coffeeshop/internal/repository"

	"gorm.io/gorm"
)

type CoffeeService interface {
	AddCoffee(coffee *models.Coffee) error
	GetCoffees() ([]models.Coffee, error)
	UpdateCoffee(id string, updated *models.Coffee) (*models.Coffee, error)
	DeleteCoffee(id string) (string, error)
}

type coffeeService struct {
	coffeeRepo repository.CoffeeRepository
}

func NewCoffeeService(coffeeRepo repository.CoffeeRepository) CoffeeService {
	return &coffeeService{coffeeRepo: coffeeRepo}
}

func (s *coffeeService) AddCoffee(coffee *models.Coffee) error {
	if coffee.ID == "" || coffee.Name == "" {
		return validationf("coffee id and name are required")
	}
	if coffee.Price < 0 {
		return validationf("price must not be negative")
	}
	if coffee.Status == "" {
		coffee.Status = models.CoffeeActive
	}
	if !coffee.Status.Valid() {
		return validationf("invalid coffee status %q", coffee.Status)
	}

	_, err := s.coffeeRepo.GetByID(coffee.ID)
	if err == nil {
		return validationf("coffee already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return internal("lookup coffee", err)
	}

	if err := s.coffeeRepo.Create(coffee); err != nil {
		return internal("create coffee", err)
	}
	return nil
}

func (s *coffeeService) GetCoffees() ([]models.Coffee, error) {
	coffees, err := s.coffeeRepo.GetAll()
	if err != nil {
		return nil, internal("fetch coffees", err)
	}
	if len(coffees) == 0 {
		return nil, notFoundf("no coffees found")
	}
	return coffees, nil
}

func (s *coffeeService) UpdateCoffee(id string, updated *models.Coffee) (*models.Coffee, error) {
	if updated.Price < 0 {
		return nil, validationf("price must not be negative")
	}
	if !updated.Status.Valid() {
		return nil, validationf("invalid coffee status %q", updated.Status)
	}

	coffee, err := s.coffeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("coffee not found")
		}
		return nil, internal(fmt.Sprintf("fetch coffee %s", id), err)
	}

	coffee.Name = updated.Name
	coffee.Description = updated.Description
	coffee.Price = updated.Price
	coffee.Status = updated.Status
	if updated.Image != nil {
		coffee.Image = updated.Image
	}
	if updated.CategoryID != nil {
		coffee.CategoryID = updated.CategoryID
	}

	if err := s.coffeeRepo.Update(coffee); err != nil {
		return nil, internal(fmt.Sprintf("update coffee %s", id), err)
	}
	return coffee, nil
}

func (s *coffeeService) DeleteCoffee(id string) (string, error) {
	coffee, err := s.coffeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFoundf("coffee not found")
		}
		return "", internal(fmt.Sprintf("fetch coffee %s", id), err)
	}

	if err := s.coffeeRepo.Delete(id); err != nil {
		return "", internal(fmt.Sprintf("delete coffee %s", id), err)
	}

	return fmt.Sprintf("Coffee %s deleted successfully", coffee.Name), nil
}
