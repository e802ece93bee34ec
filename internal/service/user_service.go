package service

import (
	"errors"
	"fmt"

	"maths_point_backend/internal/model"
	"maths_point_backend/internal/repository"
	"maths_point_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetUsers() ([]model.User, error) {
	users, err := s.UserRepo.List()
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", util.ErrDependency, err)
	}
	return users, nil
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user not found", util.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find user: %v", util.ErrDependency, err)
	}
	return user, nil
}

type UpdateProfileReq struct {
	FullName        string `json:"fullname"`
	Email           string `json:"email"`
	Avatar          string `json:"avatar"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfile changes basic account fields; a password change additionally
// requires the current password to match.
func (s *UserService) UpdateProfile(userID uint, req UpdateProfileReq) (*model.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if req.CurrentPassword != "" && req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			return nil, fmt.Errorf("%w: current password is incorrect", util.ErrInvalidCredentials)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, fmt.Errorf("%w: update user: %v", util.ErrDependency, err)
	}

	return user, nil
}
