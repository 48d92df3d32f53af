package services

import (
	"errors"
	"strings"

	"github.com/wet-dev/wet/internal/models"
	"github.com/wet-dev/wet/internal/repository"
	"gorm.io/gorm"
)

type UserService struct {
	db    *gorm.DB
	users *repository.UserRepository
	likes *repository.LikeRepository
}

func NewUserService(db *gorm.DB, users *repository.UserRepository, likes *repository.LikeRepository) *UserService {
	return &UserService{
		db:    db,
		users: users,
		likes: likes,
	}
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.users.FindAll()
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) CreateUser(name, email string) (*models.User, error) {
	email = normalizeEmail(email)

	if err := s.ensureEmailAvailable(email, 0); err != nil {
		return nil, err
	}

	user := models.User{
		Name:  name,
		Email: email,
	}

	if err := s.users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &user, nil
}

// UpdateUser changes the name and email of an existing user. Nothing else is
// mutable; the creation timestamp in particular stays untouched.
func (s *UserService) UpdateUser(id uint, name, email string) (*models.User, error) {
	user, err := s.users.FindByID(id)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	email = normalizeEmail(email)

	if err := s.ensureEmailAvailable(email, user.ID); err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email

	if err := s.users.Save(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the user together with their like rows, so deletion is
// never blocked by dangling likes.
func (s *UserService) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		likes := s.likes.WithTx(tx)

		user, err := users.FindByID(id)

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := likes.DeleteByUser(user.ID); err != nil {
			return err
		}

		return users.Delete(user)
	})
}

// ensureEmailAvailable rejects an email already held by a different user.
// excludeID is zero at creation time.
func (s *UserService) ensureEmailAvailable(email string, excludeID uint) error {
	existing, err := s.users.FindByEmail(email)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if existing.ID != excludeID {
		return ErrEmailTaken
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
