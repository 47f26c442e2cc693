package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/kenandcrys/auth-me/config"
	"github.com/kenandcrys/auth-me/dto"
	"github.com/kenandcrys/auth-me/middleware"
	"github.com/kenandcrys/auth-me/models"
	"github.com/kenandcrys/auth-me/response"
	"github.com/kenandcrys/auth-me/services"
)

func loadReviewForImage(c *gin.Context, userID uint) (models.Review, bool) {
	reviewID := c.Param("reviewId")

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		response.NotFound(c, "Review couldn't be found")
		return review, false
	}

	if review.UserID != userID {
		response.Forbidden(c)
		return review, false
	}

	return review, true
}

func reviewImageCapacity(c *gin.Context, reviewID uint) bool {
	var count int64
	if err := config.DB.Model(&models.ReviewImage{}).Where("review_id = ?", reviewID).Count(&count).Error; err != nil {
		response.ServerError(c)
		return false
	}
	if count >= models.MaxReviewImages {
		response.ForbiddenMessage(c, "Maximum number of images for this review was reached")
		return false
	}
	return true
}

// AddReviewImage attaches an image URL to the caller's review, capped at
// ten images per review.
func AddReviewImage(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	review, ok := loadReviewForImage(c, userID)
	if !ok {
		return
	}

	var req dto.AddReviewImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "URL must be a string")
		return
	}

	if !reviewImageCapacity(c, review.ID) {
		return
	}

	image := models.ReviewImage{
		ReviewID: review.ID,
		URL:      req.URL,
	}

	if err := config.DB.Create(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(review.SpotID)
	response.Success(c, dto.ReviewImageResponse{ID: image.ID, URL: image.URL})
}

// UploadReviewImage uploads a multipart file to Cloudinary and attaches
// the hosted URL to the caller's review.
func UploadReviewImage(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	review, ok := loadReviewForImage(c, userID)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}

	if !reviewImageCapacity(c, review.ID) {
		return
	}

	url, err := services.UploadImage(c.Request.Context(), file, "reviews")
	if err != nil {
		response.ServerError(c)
		return
	}

	image := models.ReviewImage{
		ReviewID: review.ID,
		URL:      url,
	}

	if err := config.DB.Create(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(review.SpotID)
	response.Success(c, dto.ReviewImageResponse{ID: image.ID, URL: image.URL})
}

// DeleteReviewImage removes a review image. Owner of the parent review
// only.
func DeleteReviewImage(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	imageID := c.Param("imageId")

	var image models.ReviewImage
	if err := config.DB.Preload("Review").First(&image, imageID).Error; err != nil {
		response.NotFound(c, "Review Image couldn't be found")
		return
	}

	if image.Review.UserID != userID {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(image.Review.SpotID)
	response.Deleted(c)
}
