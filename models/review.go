package models

import "time"

// MaxReviewImages caps the images attached to a single review.
const MaxReviewImages = 10

type Review struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	SpotID       uint          `json:"spotId" gorm:"index:idx_review_spot_user,unique;not null"`
	UserID       uint          `json:"userId" gorm:"index:idx_review_spot_user,unique;not null"`
	Review       string        `json:"review"`
	Stars        int           `json:"stars"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	User         User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Spot         Spot          `json:"spot,omitempty" gorm:"foreignKey:SpotID"`
	ReviewImages []ReviewImage `json:"reviewImages,omitempty" gorm:"foreignKey:ReviewID"`
}
