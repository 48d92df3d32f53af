package repository

import (
	"time"

	"github.com/wet-dev/wet/internal/models"
	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// WithTx returns a copy bound to the given transaction handle.
func (r *LikeRepository) WithTx(tx *gorm.DB) *LikeRepository {
	return &LikeRepository{db: tx}
}

func (r *LikeRepository) FindByUser(userID uint) ([]models.RestaurantLike, error) {
	var likes []models.RestaurantLike

	if err := r.db.Preload("Restaurant").Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, err
	}

	return likes, nil
}

func (r *LikeRepository) FindByUserAndRestaurant(userID, restaurantID uint) (*models.RestaurantLike, error) {
	var like models.RestaurantLike

	if err := r.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&like).Error; err != nil {
		return nil, err
	}

	return &like, nil
}

func (r *LikeRepository) ExistsByUserAndRestaurant(userID, restaurantID uint) (bool, error) {
	var count int64

	if err := r.db.Model(&models.RestaurantLike{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *LikeRepository) DeleteByUserAndRestaurant(userID, restaurantID uint) error {
	return r.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&models.RestaurantLike{}).Error
}

func (r *LikeRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.RestaurantLike{}).Error
}

// Create stamps the creation time exactly once, then inserts the row.
func (r *LikeRepository) Create(like *models.RestaurantLike) error {
	like.CreatedAt = time.Now()

	return r.db.Create(like).Error
}
