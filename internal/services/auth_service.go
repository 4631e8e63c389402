package services

import (
	"errors"

	"coffeeshop/internal/models"
	"coffeeshop/internal/repository"

	"gorm.io/gorm"
)

type AuthService interface {
	Signup(username, password string) (*models.Admin, error)
	Login(username, password string) (*models.Admin, error)
}

type authService struct {
	adminRepo repository.AdminRepository
}

func NewAuthService(adminRepo repository.AdminRepository) AuthService {
	return &authService{adminRepo: adminRepo}
}

func (s *authService) Signup(username, password string) (*models.Admin, error) {
	if username == "" || password == "" {
		return nil, validationf("username and password are required")
	}

	_, err := s.adminRepo.GetByUsername(username)
	if err == nil {
		return nil, validationf("username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal("lookup admin username", err)
	}

	admin := &models.Admin{Username: username, Password: password}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, internal("create admin", err)
	}

	return admin, nil
}

func (s *authService) Login(username, password string) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &UnauthorizedError{Detail: "invalid credentials"}
		}
		return nil, internal("lookup admin username", err)
	}

	if admin.Password != password {
		return nil, &UnauthorizedError{Detail: "invalid credentials"}
	}

	return admin, nil
}
