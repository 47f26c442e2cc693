package dto

import (
	"github.com/kenandcrys/auth-me/models"
)

type CreateReviewRequest struct {
	Review string `json:"review" binding:"required"`
	Stars  *int   `json:"stars" binding:"required"`
}

type UpdateReviewRequest = CreateReviewRequest

type ReviewUserInfo struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ReviewResponse struct {
	ID        uint   `json:"id"`
	SpotID    uint   `json:"spotId"`
	UserID    uint   `json:"userId"`
	Review    string `json:"review"`
	Stars     int    `json:"stars"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type SpotReviewResponse struct {
	ReviewResponse
	User         ReviewUserInfo        `json:"User"`
	ReviewImages []ReviewImageResponse `json:"ReviewImages"`
}

type UserReviewResponse struct {
	ReviewResponse
	Spot         SpotResponse          `json:"Spot"`
	ReviewImages []ReviewImageResponse `json:"ReviewImages"`
}

type ReviewListResponse struct {
	Reviews interface{} `json:"Reviews"`
}

func NewReviewResponse(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		SpotID:    r.SpotID,
		UserID:    r.UserID,
		Review:    r.Review,
		Stars:     r.Stars,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: r.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewSpotReviewResponse(r models.Review) SpotReviewResponse {
	images := make([]ReviewImageResponse, 0, len(r.ReviewImages))
	for _, img := range r.ReviewImages {
		images = append(images, ReviewImageResponse{ID: img.ID, URL: img.URL})
	}

	return SpotReviewResponse{
		ReviewResponse: NewReviewResponse(r),
		User: ReviewUserInfo{
			ID:        r.User.ID,
			FirstName: r.User.FirstName,
			LastName:  r.User.LastName,
		},
		ReviewImages: images,
	}
}
