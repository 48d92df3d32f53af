package models

import "time"

// RestaurantLike joins a user to a restaurant they liked. The composite unique
// index keeps at most one row per (user, restaurant) pair, even when two
// toggles race.
type RestaurantLike struct {
	ID           uint `gorm:"primaryKey"`
	UserID       uint `gorm:"not null;uniqueIndex:idx_user_restaurant"`
	RestaurantID uint `gorm:"not null;uniqueIndex:idx_user_restaurant"`
	CreatedAt    time.Time

	// Relationships
	User       User       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
