package services

import (
	"errors"

	"github.com/wet-dev/wet/internal/models"
	"github.com/wet-dev/wet/internal/repository"
	"github.com/wet-dev/wet/internal/types"
	"gorm.io/gorm"
)

// RestaurantService owns the like toggle workflow: resolving the user,
// materializing the restaurant on first encounter, and flipping the like row,
// all inside one transaction.
type RestaurantService struct {
	db          *gorm.DB
	users       *repository.UserRepository
	restaurants *repository.RestaurantRepository
	likes       *repository.LikeRepository
}

func NewRestaurantService(
	db *gorm.DB,
	users *repository.UserRepository,
	restaurants *repository.RestaurantRepository,
	likes *repository.LikeRepository,
) *RestaurantService {
	return &RestaurantService{
		db:          db,
		users:       users,
		restaurants: restaurants,
		likes:       likes,
	}
}

// ToggleLike flips the like state for the given user and restaurant record and
// reports the new state: true when the like was created, false when it was
// removed. The restaurant is inserted from the record the first time any user
// likes it; existing rows are never merged or refreshed.
func (s *RestaurantService) ToggleLike(userID uint, record types.Restaurant) (bool, error) {
	var liked bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		restaurants := s.restaurants.WithTx(tx)
		likes := s.likes.WithTx(tx)

		user, err := users.FindByID(userID)

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		restaurant, err := restaurants.FindByKakaoID(record.ID)

		if errors.Is(err, gorm.ErrRecordNotFound) {
			restaurant, err = materializeRestaurant(restaurants, record)
		}

		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent toggle materialized this restaurant first.
				// The transaction is already poisoned on postgres, so
				// surface a conflict instead of re-reading inside it.
				return ErrLikeConflict
			}
			return err
		}

		existing, err := likes.FindByUserAndRestaurant(user.ID, restaurant.ID)

		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if existing != nil {
			if err := likes.DeleteByUserAndRestaurant(user.ID, restaurant.ID); err != nil {
				return err
			}

			liked = false
			return nil
		}

		like := models.RestaurantLike{
			UserID:       user.ID,
			RestaurantID: restaurant.ID,
		}

		if err := likes.Create(&like); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent toggle already inserted this like. Roll
				// everything back and let the caller re-read state.
				return ErrLikeConflict
			}
			return err
		}

		liked = true
		return nil
	})

	if err != nil {
		return false, err
	}

	return liked, nil
}

// materializeRestaurant inserts a restaurant copied from the incoming record.
func materializeRestaurant(restaurants *repository.RestaurantRepository, record types.Restaurant) (*models.Restaurant, error) {
	restaurant := models.Restaurant{
		KakaoID:     record.ID,
		Name:        record.Name,
		Category:    record.Category,
		Phone:       record.Phone,
		Address:     record.Address,
		RoadAddress: record.RoadAddress,
		X:           record.X,
		Y:           record.Y,
		PlaceURL:    record.PlaceURL,
	}

	if err := restaurants.Create(&restaurant); err != nil {
		return nil, err
	}

	return &restaurant, nil
}

// ListLiked returns every restaurant the user has liked, mapped back to the
// external record shape.
func (s *RestaurantService) ListLiked(userID uint) ([]types.Restaurant, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	likes, err := s.likes.FindByUser(userID)

	if err != nil {
		return nil, err
	}

	records := make([]types.Restaurant, 0, len(likes))

	for _, like := range likes {
		r := like.Restaurant

		records = append(records, types.Restaurant{
			ID:          r.KakaoID,
			Name:        r.Name,
			Category:    r.Category,
			Phone:       r.Phone,
			Address:     r.Address,
			RoadAddress: r.RoadAddress,
			X:           r.X,
			Y:           r.Y,
			PlaceURL:    r.PlaceURL,
		})
	}

	return records, nil
}
