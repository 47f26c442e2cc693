package models

import (
	"fmt"
	"time"
)

// PlaceholderImage is returned as previewImage for spots without a
// preview-flagged image.
const PlaceholderImage = "https://placehold.co/600x400?text=No+Preview"

type Spot struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	OwnerID     uint        `json:"ownerId" gorm:"index;not null"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	AvgRating   float64     `json:"avgRating"`  // derived, kept by the rating aggregator
	NumReviews  int         `json:"numReviews"` // derived, kept by the rating aggregator
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	Owner       User        `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	SpotImages  []SpotImage `json:"spotImages,omitempty" gorm:"foreignKey:SpotID"`
	Reviews     []Review    `json:"reviews,omitempty" gorm:"foreignKey:SpotID"`
	Bookings    []Booking   `json:"bookings,omitempty" gorm:"foreignKey:SpotID"`
}

func (s *Spot) ValidateCoordinates() error {
	if s.Lat < -90 || s.Lat > 90 {
		return fmt.Errorf("invalid latitude: %f, must be between -90 and 90", s.Lat)
	}
	if s.Lng < -180 || s.Lng > 180 {
		return fmt.Errorf("invalid longitude: %f, must be between -180 and 180", s.Lng)
	}
	return nil
}

func (s *Spot) ValidateName() error {
	if len(s.Name) < 2 || len(s.Name) > 50 {
		return fmt.Errorf("invalid name length: %d, must be between 2 and 50 characters", len(s.Name))
	}
	return nil
}

// PreviewImage picks the URL of the preview-flagged image, or the
// placeholder when none is flagged. SpotImages must be preloaded.
func (s *Spot) PreviewImage() string {
	for _, img := range s.SpotImages {
		if img.Preview {
			return img.URL
		}
	}
	return PlaceholderImage
}
