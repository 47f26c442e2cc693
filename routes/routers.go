package routes

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kenandcrys/auth-me/controllers"
	middlewares "github.com/kenandcrys/auth-me/middleware"
	"github.com/kenandcrys/auth-me/services/notification"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	bookingController := controllers.NewBookingController(notification.NewMelodyService(m))

	api := router.Group("/api")
	api.Use(middlewares.SessionMiddleware())

	// session
	api.POST("/session", controllers.Login)
	api.DELETE("/session", controllers.Logout)
	api.GET("/session", middlewares.RestoreUser(), controllers.GetSession)
	api.POST("/auth/google", controllers.AuthGoogle)

	// users
	api.POST("/users", controllers.RegisterUser)

	// spots
	api.GET("/spots", middlewares.RestoreUser(), controllers.GetAllSpots)
	api.GET("/spots/search", controllers.SearchSpots)
	api.GET("/spots/current", middlewares.AuthMiddleware(), controllers.GetCurrentUserSpots)
	api.GET("/spots/:spotId", controllers.GetSpotDetail)
	api.POST("/spots", middlewares.AuthMiddleware(), controllers.CreateSpot)
	api.PUT("/spots/:spotId", middlewares.AuthMiddleware(), controllers.UpdateSpot)
	api.DELETE("/spots/:spotId", middlewares.AuthMiddleware(), controllers.DeleteSpot)

	// spot images
	api.POST("/spots/:spotId/images", middlewares.AuthMiddleware(), controllers.AddSpotImage)
	api.POST("/spots/:spotId/images/upload", middlewares.AuthMiddleware(), controllers.UploadSpotImage)
	api.DELETE("/spot-images/:imageId", middlewares.AuthMiddleware(), controllers.DeleteSpotImage)

	// reviews
	api.GET("/spots/:spotId/reviews", controllers.GetSpotReviews)
	api.POST("/spots/:spotId/reviews", middlewares.AuthMiddleware(), controllers.CreateSpotReview)
	api.GET("/reviews/current", middlewares.AuthMiddleware(), controllers.GetCurrentUserReviews)
	api.PUT("/reviews/:reviewId", middlewares.AuthMiddleware(), controllers.UpdateReview)
	api.DELETE("/reviews/:reviewId", middlewares.AuthMiddleware(), controllers.DeleteReview)

	// review images
	api.POST("/reviews/:reviewId/images", middlewares.AuthMiddleware(), controllers.AddReviewImage)
	api.POST("/reviews/:reviewId/images/upload", middlewares.AuthMiddleware(), controllers.UploadReviewImage)
	api.DELETE("/review-images/:imageId", middlewares.AuthMiddleware(), controllers.DeleteReviewImage)

	// bookings
	api.GET("/bookings/current", middlewares.AuthMiddleware(), bookingController.GetCurrentUserBookings)
	api.GET("/spots/:spotId/bookings", middlewares.AuthMiddleware(), bookingController.GetSpotBookings)
	api.POST("/spots/:spotId/bookings", middlewares.AuthMiddleware(), bookingController.CreateSpotBooking)
	api.PUT("/bookings/:bookingId", middlewares.AuthMiddleware(), bookingController.UpdateBooking)
	api.DELETE("/bookings/:bookingId", middlewares.AuthMiddleware(), bookingController.DeleteBooking)
}
