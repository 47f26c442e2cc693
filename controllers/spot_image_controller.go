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

// AddSpotImage attaches an image URL to a spot. Owner only.
func AddSpotImage(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	spotID := c.Param("spotId")

	var spot models.Spot
	if err := config.DB.First(&spot, spotID).Error; err != nil {
		response.NotFound(c, "Spot couldn't be found")
		return
	}

	if spot.OwnerID != userID {
		response.Forbidden(c)
		return
	}

	var req dto.AddSpotImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{
			"url":     "Url is required",
			"preview": "Preview should be true or false",
		})
		return
	}

	image := models.SpotImage{
		SpotID:  spot.ID,
		URL:     req.URL,
		Preview: *req.Preview,
	}

	if err := config.DB.Create(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(spot.ID)
	response.Success(c, dto.SpotImageResponse{ID: image.ID, URL: image.URL, Preview: image.Preview})
}

// UploadSpotImage accepts a multipart file, pushes it to Cloudinary and
// attaches the hosted URL to the spot. Owner only.
func UploadSpotImage(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	spotID := c.Param("spotId")

	var spot models.Spot
	if err := config.DB.First(&spot, spotID).Error; err != nil {
		response.NotFound(c, "Spot couldn't be found")
		return
	}

	if spot.OwnerID != userID {
		response.Forbidden(c)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}

	preview := c.PostForm("preview") == "true"

	url, err := services.UploadImage(c.Request.Context(), file, "spots")
	if err != nil {
		response.ServerError(c)
		return
	}

	image := models.SpotImage{
		SpotID:  spot.ID,
		URL:     url,
		Preview: preview,
	}

	if err := config.DB.Create(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(spot.ID)
	response.Success(c, dto.SpotImageResponse{ID: image.ID, URL: image.URL, Preview: image.Preview})
}

// DeleteSpotImage removes a spot image. Owner of the parent spot only.
func DeleteSpotImage(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	imageID := c.Param("imageId")

	var image models.SpotImage
	if err := config.DB.Preload("Spot").First(&image, imageID).Error; err != nil {
		response.NotFound(c, "Spot Image couldn't be found")
		return
	}

	if image.Spot.OwnerID != userID {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(image.SpotID)
	response.Deleted(c)
}
