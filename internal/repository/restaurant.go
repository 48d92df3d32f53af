package repository

import (
	"time"

	"github.com/wet-dev/wet/internal/models"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// WithTx returns a copy bound to the given transaction handle.
func (r *RestaurantRepository) WithTx(tx *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: tx}
}

func (r *RestaurantRepository) FindByKakaoID(kakaoID string) (*models.Restaurant, error) {
	var restaurant models.Restaurant

	if err := r.db.Where("kakao_id = ?", kakaoID).First(&restaurant).Error; err != nil {
		return nil, err
	}

	return &restaurant, nil
}

func (r *RestaurantRepository) ExistsByKakaoID(kakaoID string) (bool, error) {
	var count int64

	if err := r.db.Model(&models.Restaurant{}).Where("kakao_id = ?", kakaoID).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create stamps both timestamps exactly once, then inserts the row. Restaurants
// are never updated afterward, so UpdatedAt stays equal to CreatedAt.
func (r *RestaurantRepository) Create(restaurant *models.Restaurant) error {
	now := time.Now()
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now

	return r.db.Create(restaurant).Error
}
