package dto

import (
	"github.com/kenandcrys/auth-me/models"
)

type CreateSpotRequest struct {
	Address     string   `json:"address" binding:"required"`
	City        string   `json:"city" binding:"required"`
	State       string   `json:"state" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	Lat         *float64 `json:"lat" binding:"required"`
	Lng         *float64 `json:"lng" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}

// UpdateSpotRequest carries the same field set; every field is required on
// update as well, matching create.
type UpdateSpotRequest = CreateSpotRequest

type SpotResponse struct {
	ID           uint    `json:"id"`
	OwnerID      uint    `json:"ownerId"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
	AvgRating    float64 `json:"avgRating"`
	NumReviews   int     `json:"numReviews"`
	PreviewImage string  `json:"previewImage"`
}

type SpotDetailResponse struct {
	ID            uint                `json:"id"`
	OwnerID       uint                `json:"ownerId"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	State         string              `json:"state"`
	Country       string              `json:"country"`
	Lat           float64             `json:"lat"`
	Lng           float64             `json:"lng"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Price         float64             `json:"price"`
	CreatedAt     string              `json:"createdAt"`
	UpdatedAt     string              `json:"updatedAt"`
	NumReviews    int                 `json:"numReviews"`
	AvgStarRating float64             `json:"avgStarRating"`
	SpotImages    []SpotImageResponse `json:"SpotImages"`
	Owner         OwnerInfo           `json:"Owner"`
}

type OwnerInfo struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SpotListResponse struct {
	Spots      []SpotResponse `json:"Spots"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalSpots int            `json:"totalSpots"`
}

// ScoredSpot pairs a spot with its fuzzy-search relevance score.
type ScoredSpot struct {
	Spot  models.Spot `json:"spot"`
	Score int         `json:"score"`
}

func NewSpotResponse(spot models.Spot) SpotResponse {
	return SpotResponse{
		ID:           spot.ID,
		OwnerID:      spot.OwnerID,
		Address:      spot.Address,
		City:         spot.City,
		State:        spot.State,
		Country:      spot.Country,
		Lat:          spot.Lat,
		Lng:          spot.Lng,
		Name:         spot.Name,
		Description:  spot.Description,
		Price:        spot.Price,
		CreatedAt:    spot.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    spot.UpdatedAt.Format("2006-01-02 15:04:05"),
		AvgRating:    spot.AvgRating,
		NumReviews:   spot.NumReviews,
		PreviewImage: spot.PreviewImage(),
	}
}
