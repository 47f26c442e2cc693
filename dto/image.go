package dto

type AddSpotImageRequest struct {
	URL     string `json:"url" binding:"required"`
	Preview *bool  `json:"preview" binding:"required"`
}

type AddReviewImageRequest struct {
	URL string `json:"url" binding:"required"`
}

type SpotImageResponse struct {
	ID      uint   `json:"id"`
	URL     string `json:"url"`
	Preview bool   `json:"preview"`
}

type ReviewImageResponse struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}
