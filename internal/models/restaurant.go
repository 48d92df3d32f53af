package models

import "time"

// Restaurant is a local copy of a place from the Kakao Local API, materialized
// the first time a user likes it. KakaoID is the provider's place identifier
// and the natural key for lookups.
type Restaurant struct {
	ID          uint   `gorm:"primaryKey"`
	KakaoID     string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	Category    string
	Phone       string
	Address     string
	RoadAddress string
	X           string
	Y           string
	PlaceURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships
	Likes []RestaurantLike `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
