package services

import (
	"errors"
	"fmt"

	"coffeeshop/internal/models"
	"coffeeshop/internal/repository"

	"gorm.io/gorm"
)

type StoreService interface {
	AddStore(store *models.Store) error
	GetStores() ([]models.Store, error)
	UpdateStore(id uint, updated *models.Store) (*models.Store, error)
	DeleteStore(id uint) (string, error)
}

type storeService struct {
	storeRepo repository.StoreRepository
}

func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

func (s *storeService) AddStore(store *models.Store) error {
	if !store.Status.Valid() {
		return validationf("invalid store status %q", store.Status)
	}

	_, err := s.storeRepo.GetByNameAndAddress(store.Name, store.Address)
	if err == nil {
		return validationf("store already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return internal("lookup store", err)
	}

	if err := s.storeRepo.Create(store); err != nil {
		return internal("create store", err)
	}
	return nil
}

func (s *storeService) GetStores() ([]models.Store, error) {
	stores, err := s.storeRepo.GetAll()
	if err != nil {
		return nil, internal("fetch stores", err)
	}
	if len(stores) == 0 {
		return nil, notFoundf("no stores found")
	}
	return stores, nil
}

func (s *storeService) UpdateStore(id uint, updated *models.Store) (*models.Store, error) {
	if !updated.Status.Valid() {
		return nil, validationf("invalid store status %q", updated.Status)
	}

	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("store not found")
		}
		return nil, internal(fmt.Sprintf("fetch store %d", id), err)
	}

	store.Name = updated.Name
	store.Address = updated.Address
	store.PrepTimeMinutes = updated.PrepTimeMinutes
	store.Status = updated.Status

	if err := s.storeRepo.Update(store); err != nil {
		return nil, internal(fmt.Sprintf("update store %d", id), err)
	}
	return store, nil
}

func (s *storeService) DeleteStore(id uint) (string, error) {
	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFoundf("store not found")
		}
		return "", internal(fmt.Sprintf("fetch store %d", id), err)
	}

	if err := s.storeRepo.Delete(id); err != nil {
		return "", internal(fmt.Sprintf("delete store %d", id), err)
	}

	return fmt.Sprintf("Store %s deleted successfully", store.Name), nil
}
