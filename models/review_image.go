package models

import "time"

type ReviewImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ReviewID  uint      `json:"reviewId" gorm:"index;not null"`
	URL       string    `json:"url" gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Review    Review    `json:"review,omitempty" gorm:"foreignKey:ReviewID"`
}
