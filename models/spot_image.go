package models

import "time"

type SpotImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SpotID    uint      `json:"spotId" gorm:"index;not null"`
	URL       string    `json:"url" gorm:"not null"`
	Preview   bool      `json:"preview" gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Spot      Spot      `json:"spot,omitempty" gorm:"foreignKey:SpotID"`
}
