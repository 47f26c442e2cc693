package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kenandcrys/auth-me/config"
	"github.com/kenandcrys/auth-me/dto"
	apperrors "github.com/kenandcrys/auth-me/errors"
	"github.com/kenandcrys/auth-me/middleware"
	"github.com/kenandcrys/auth-me/models"
	"github.com/kenandcrys/auth-me/response"
	"github.com/kenandcrys/auth-me/services"
	"github.com/kenandcrys/auth-me/utils"
	"github.com/kenandcrys/auth-me/validator"
)

// GetSpotReviews lists a spot's reviews with authors and images, served
// from Redis when warm.
func GetSpotReviews(c *gin.Context) {
	spotID := c.Param("spotId")

	var spot models.Spot
	if err := config.DB.First(&spot, spotID).Error; err != nil {
		response.NotFound(c, "Spot couldn't be found")
		return
	}

	cacheKey := fmt.Sprintf("%s%d", services.CacheKeySpotReviews, spot.ID)
	rdb := config.RedisClient

	if rdb != nil {
		var cached []dto.SpotReviewResponse
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.Success(c, dto.ReviewListResponse{Reviews: cached})
			return
		}
	}

	var reviews []models.Review
	if err := config.DB.Preload("User").Preload("ReviewImages").
		Where("spot_id = ?", spot.ID).
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.SpotReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		results = append(results, dto.NewSpotReviewResponse(review))
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, results, 10*time.Minute); err != nil {
			utils.LogError("failed to cache spot reviews: %v", err)
		}
	}

	response.Success(c, dto.ReviewListResponse{Reviews: results})
}

// CreateSpotReview posts a review for a spot. One review per user per
// spot; the spot's rating aggregates are recomputed synchronously.
func CreateSpotReview(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	spotID := c.Param("spotId")

	var spot models.Spot
	if err := config.DB.First(&spot, spotID).Error; err != nil {
		response.NotFound(c, "Spot couldn't be found")
		return
	}

	var existing models.Review
	err := config.DB.Where("user_id = ? AND spot_id = ?", userID, spot.ID).First(&existing).Error
	if err == nil {
		response.Conflict(c, "User already has a review for this spot", nil)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.ServerError(c)
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{
			"review": "Review text is required",
			"stars":  "Stars must be an integer from 1 to 5",
		})
		return
	}

	if err := validator.ValidateReview(req.Review, *req.Stars); err != nil {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}

	review := models.Review{
		SpotID: spot.ID,
		UserID: userID,
		Review: req.Review,
		Stars:  *req.Stars,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		// A racing duplicate slips past the pre-check and lands on the
		// (spot_id, user_id) unique index instead.
		if services.IsUniqueViolation(err) {
			response.Conflict(c, "User already has a review for this spot", nil)
			return
		}
		response.ServerError(c)
		return
	}

	if _, _, err := services.UpdateSpotRating(config.DB, spot.ID); err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(spot.ID)
	response.Created(c, dto.NewReviewResponse(review))
}

// GetCurrentUserReviews lists the authenticated user's reviews with their
// spots and images.
func GetCurrentUserReviews(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var reviews []models.Review
	if err := config.DB.Preload("Spot").Preload("Spot.SpotImages").Preload("ReviewImages").
		Where("user_id = ?", userID).
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.UserReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		images := make([]dto.ReviewImageResponse, 0, len(review.ReviewImages))
		for _, img := range review.ReviewImages {
			images = append(images, dto.ReviewImageResponse{ID: img.ID, URL: img.URL})
		}
		results = append(results, dto.UserReviewResponse{
			ReviewResponse: dto.NewReviewResponse(review),
			Spot:           dto.NewSpotResponse(review.Spot),
			ReviewImages:   images,
		})
	}

	response.Success(c, dto.ReviewListResponse{Reviews: results})
}

// UpdateReview edits the text and stars of the caller's review and
// recomputes the spot's aggregates.
func UpdateReview(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	reviewID := c.Param("reviewId")

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		response.NotFound(c, "Review couldn't be found")
		return
	}

	if review.UserID != userID {
		response.Forbidden(c)
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{
			"review": "Review text is required",
			"stars":  "Stars must be an integer from 1 to 5",
		})
		return
	}

	if err := validator.ValidateReview(req.Review, *req.Stars); err != nil {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}

	review.Review = req.Review
	review.Stars = *req.Stars

	if err := config.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	if _, _, err := services.UpdateSpotRating(config.DB, review.SpotID); err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(review.SpotID)
	response.Success(c, dto.NewReviewResponse(review))
}

// DeleteReview removes the caller's review, its images, and recomputes
// the spot's aggregates so they never drift from the stored reviews.
func DeleteReview(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	reviewID := c.Param("reviewId")

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		response.NotFound(c, "Review couldn't be found")
		return
	}

	if review.UserID != userID {
		response.Forbidden(c)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", review.ID).Delete(&models.ReviewImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&review).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	if _, _, err := services.UpdateSpotRating(config.DB, review.SpotID); err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(review.SpotID)
	response.Deleted(c)
}
