package repository

import (
	"coffeeshop/internal/models"

	"gorm.io/gorm"
)

type CoffeeRepository interface {
	Create(coffee *models.Coffee) error
	GetByID(id string) (*models.Coffee, error)
	GetAll() ([]models.Coffee, error)
	GetByStatus(status models.CoffeeStatus) ([]models.Coffee, error)
	Update(coffee *models.Coffee) error
	Delete(id string) error
}

type coffeeRepository struct {
	db *gorm.DB
}

func NewCoffeeRepository(db *gorm.DB) CoffeeRepository {
	return &coffeeRepository{db: db}
}

func (r *coffeeRepository) Create(coffee *models.Coffee) error {
	return r.db.Create(coffee).Error
}

func (r *coffeeRepository) GetByID(id string) (*models.Coffee, error) {
	var coffee models.Coffee
	err := r.db.Where("id = ?", id).First(&coffee).Error
	if err != nil {
		return nil, err
	}
	return &coffee, nil
}

func (r *coffeeRepository) GetAll() ([]models.Coffee, error) {
	var coffees []models.Coffee
	err := r.db.Find(&coffees).Error
	return coffees, err
}

func (r *coffeeRepository) GetByStatus(status models.CoffeeStatus) ([]models.Coffee, error) {
	var coffees []models.Coffee
	err := r.db.Where("status = ?", status).Find(&coffees).Error
	return coffees, err
}

func (r *coffeeRepository) Update(coffee *models.Coffee) error {
	return r.db.Save(coffee).Error
}

func (r *coffeeRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Coffee{}).Error
}
