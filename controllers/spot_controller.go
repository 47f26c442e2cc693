package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kenandcrys/auth-me/config"
	"github.com/kenandcrys/auth-me/dto"
	"github.com/kenandcrys/auth-me/middleware"
	"github.com/kenandcrys/auth-me/models"
	"github.com/kenandcrys/auth-me/response"
	"github.com/kenandcrys/auth-me/services"
	"github.com/kenandcrys/auth-me/utils"
	"github.com/kenandcrys/auth-me/validator"
)

// invalidateSpotCaches drops the cached spot listing and, when spotID is
// non-zero, that spot's cached review listing. Called after every mutation
// that can change what those listings render.
func invalidateSpotCaches(spotID uint) {
	rdb := config.RedisClient
	if rdb == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, services.CacheKeySpotsAll)
	if spotID != 0 {
		key := fmt.Sprintf("%s%d", services.CacheKeySpotReviews, spotID)
		_ = services.DeleteFromRedis(config.Ctx, rdb, key)
	}
}

func querymap(c *gin.Context) map[string]string {
	out := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			out[key] = values[0]
		}
	}
	return out
}

// GetAllSpots lists spots with bound filters and pagination. The
// unfiltered default page is served from Redis when warm.
func GetAllSpots(c *gin.Context) {
	filters, fieldErrors := validator.ValidateSpotListQuery(querymap(c))
	if fieldErrors != nil {
		response.ValidationError(c, fieldErrors)
		return
	}

	unfiltered := filters.MinLat == nil && filters.MaxLat == nil &&
		filters.MinLng == nil && filters.MaxLng == nil &&
		filters.MinPrice == nil && filters.MaxPrice == nil &&
		filters.Page == 1 && filters.Size == 20

	rdb := config.RedisClient
	if unfiltered && rdb != nil {
		var cached dto.SpotListResponse
		if err := services.GetFromRedis(config.Ctx, rdb, services.CacheKeySpotsAll, &cached); err == nil && len(cached.Spots) > 0 {
			response.Success(c, cached)
			return
		}
	}

	tx := config.DB.Model(&models.Spot{})
	if filters.MinLat != nil {
		tx = tx.Where("lat >= ?", *filters.MinLat)
	}
	if filters.MaxLat != nil {
		tx = tx.Where("lat <= ?", *filters.MaxLat)
	}
	if filters.MinLng != nil {
		tx = tx.Where("lng >= ?", *filters.MinLng)
	}
	if filters.MaxLng != nil {
		tx = tx.Where("lng <= ?", *filters.MaxLng)
	}
	if filters.MinPrice != nil {
		tx = tx.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		tx = tx.Where("price <= ?", *filters.MaxPrice)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var spots []models.Spot
	if err := tx.Preload("SpotImages").
		Offset((filters.Page - 1) * filters.Size).
		Limit(filters.Size).
		Find(&spots).Error; err != nil {
		response.ServerError(c)
		return
	}

	spotResponses := make([]dto.SpotResponse, 0, len(spots))
	for _, spot := range spots {
		spotResponses = append(spotResponses, dto.NewSpotResponse(spot))
	}

	result := dto.SpotListResponse{
		Spots:      spotResponses,
		Page:       filters.Page,
		Size:       filters.Size,
		TotalSpots: int(total),
	}

	if unfiltered && rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, services.CacheKeySpotsAll, result, 10*time.Minute); err != nil {
			utils.LogError("failed to cache spot listing: %v", err)
		}
	}

	response.Success(c, result)
}

// SearchSpots ranks spots against a free-text query.
func SearchSpots(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "query is required")
		return
	}

	results, err := services.SearchSpots(config.DB, query)
	if err != nil {
		response.ServerError(c)
		return
	}

	spotResponses := make([]dto.SpotResponse, 0, len(results))
	for _, scored := range results {
		spotResponses = append(spotResponses, dto.NewSpotResponse(scored.Spot))
	}

	response.Success(c, gin.H{"Spots": spotResponses})
}

// GetCurrentUserSpots lists the authenticated user's own spots.
func GetCurrentUserSpots(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var spots []models.Spot
	if err := config.DB.Preload("SpotImages").
		Where("owner_id = ?", userID).
		Find(&spots).Error; err != nil {
		response.ServerError(c)
		return
	}

	spotResponses := make([]dto.SpotResponse, 0, len(spots))
	for _, spot := range spots {
		spotResponses = append(spotResponses, dto.NewSpotResponse(spot))
	}

	response.Success(c, gin.H{"Spots": spotResponses})
}

// GetSpotDetail returns a spot with its images, owner and live rating
// aggregates.
func GetSpotDetail(c *gin.Context) {
	id := c.Param("spotId")

	var spot models.Spot
	if err := config.DB.Preload("SpotImages").Preload("Owner").First(&spot, id).Error; err != nil {
		response.NotFound(c, "Spot couldn't be found")
		return
	}

	var reviews []models.Review
	if err := config.DB.Where("spot_id = ?", spot.ID).Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	stars := make([]int, 0, len(reviews))
	for _, r := range reviews {
		stars = append(stars, r.Stars)
	}
	avg, count := services.ComputeRating(stars)

	images := make([]dto.SpotImageResponse, 0, len(spot.SpotImages))
	for _, img := range spot.SpotImages {
		images = append(images, dto.SpotImageResponse{ID: img.ID, URL: img.URL, Preview: img.Preview})
	}

	response.Success(c, dto.SpotDetailResponse{
		ID:            spot.ID,
		OwnerID:       spot.OwnerID,
		Address:       spot.Address,
		City:          spot.City,
		State:         spot.State,
		Country:       spot.Country,
		Lat:           spot.Lat,
		Lng:           spot.Lng,
		Name:          spot.Name,
		Description:   spot.Description,
		Price:         spot.Price,
		CreatedAt:     spot.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     spot.UpdatedAt.Format("2006-01-02 15:04:05"),
		NumReviews:    count,
		AvgStarRating: avg,
		SpotImages:    images,
		Owner: dto.OwnerInfo{
			ID:        spot.Owner.ID,
			FirstName: spot.Owner.FirstName,
			LastName:  spot.Owner.LastName,
		},
	})
}

func spotFromRequest(req dto.CreateSpotRequest, ownerID uint) models.Spot {
	return models.Spot{
		OwnerID:     ownerID,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}
}

// CreateSpot creates a listing owned by the current user.
func CreateSpot(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req dto.CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{
			"address":     "Street address is required",
			"city":        "City is required",
			"state":       "State is required",
			"country":     "Country is required",
			"lat":         "Latitude is not valid",
			"lng":         "Longitude is not valid",
			"name":        "Name must be between 2 and 50 characters",
			"description": "Description is required",
			"price":       "Price per day is required",
		})
		return
	}

	spot := spotFromRequest(req, userID)
	if fieldErrors, err := validator.ValidateSpot(&spot); err != nil {
		response.ValidationError(c, fieldErrors)
		return
	}

	if err := config.DB.Create(&spot).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(0)
	response.Created(c, dto.NewSpotResponse(spot))
}

// UpdateSpot rewrites a listing's fields. Owner only.
func UpdateSpot(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	id := c.Param("spotId")

	var spot models.Spot
	if err := config.DB.First(&spot, id).Error; err != nil {
		response.NotFound(c, "Spot couldn't be found")
		return
	}

	if spot.OwnerID != userID {
		response.Forbidden(c)
		return
	}

	var req dto.UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Bad Request")
		return
	}

	updated := spotFromRequest(req, spot.OwnerID)
	if fieldErrors, err := validator.ValidateSpot(&updated); err != nil {
		response.ValidationError(c, fieldErrors)
		return
	}

	spot.Address = updated.Address
	spot.City = updated.City
	spot.State = updated.State
	spot.Country = updated.Country
	spot.Lat = updated.Lat
	spot.Lng = updated.Lng
	spot.Name = updated.Name
	spot.Description = updated.Description
	spot.Price = updated.Price

	if err := config.DB.Save(&spot).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(spot.ID)
	response.Success(c, dto.NewSpotResponse(spot))
}

// DeleteSpot removes a listing and everything hanging off it. The cascade
// over images, reviews, review images and bookings is one explicit
// transaction rather than ORM lifecycle hooks.
func DeleteSpot(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	id := c.Param("spotId")

	var spot models.Spot
	if err := config.DB.First(&spot, id).Error; err != nil {
		response.NotFound(c, "Spot couldn't be found")
		return
	}

	if spot.OwnerID != userID {
		response.Forbidden(c)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		reviewIDs := tx.Model(&models.Review{}).Select("id").Where("spot_id = ?", spot.ID)
		if err := tx.Where("review_id IN (?)", reviewIDs).Delete(&models.ReviewImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("spot_id = ?", spot.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("spot_id = ?", spot.ID).Delete(&models.SpotImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("spot_id = ?", spot.ID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&spot).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(spot.ID)
	response.Deleted(c)
}
