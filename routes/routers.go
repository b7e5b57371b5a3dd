package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/controllers"
	"hostelhub/middleware"
)

func SetupRoutes(router *gin.Engine, m *melody.Melody) {

	notificationController := controllers.NewNotificationController(m)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", middleware.AuthMiddleware(constants.RoleAdmin), controllers.Register)
	auth.POST("/login", controllers.Login)
	auth.GET("/me", middleware.AuthMiddleware(), controllers.GetMe)
	auth.PUT("/update-profile", middleware.AuthMiddleware(), controllers.UpdateProfile)
	auth.PUT("/change-password", middleware.AuthMiddleware(), controllers.ChangePassword)
	auth.GET("/users", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), controllers.GetUsers)
	auth.DELETE("/users/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.DeleteUser)
	auth.PUT("/users/:id/toggle-status", middleware.AuthMiddleware(constants.RoleAdmin), controllers.ToggleUserStatus)

	rooms := api.Group("/rooms")
	rooms.GET("", middleware.AuthMiddleware(), controllers.GetRooms)
	rooms.GET("/suggest", middleware.AuthMiddleware(), controllers.SuggestRooms)
	rooms.GET("/:id", middleware.AuthMiddleware(), controllers.GetRoomDetail)
	rooms.POST("", middleware.AuthMiddleware(constants.RoleAdmin), controllers.CreateRoom)
	rooms.PUT("/:id", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), controllers.UpdateRoom)
	rooms.DELETE("/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.DeleteRoom)
	rooms.PUT("/:id/allocate", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), controllers.AllocateRoom)
	rooms.PUT("/:id/deallocate", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), controllers.DeallocateRoom)

	students := api.Group("/students", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden))
	students.GET("", controllers.GetStudents)
	students.GET("/:id", controllers.GetStudentDetail)
	students.PUT("/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.UpdateStudent)
	students.DELETE("/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.DeleteStudent)

	complaints := api.Group("/complaints", middleware.AuthMiddleware())
	complaints.GET("", controllers.GetComplaints)
	complaints.POST("", controllers.CreateComplaint)
	complaints.PUT("/:id", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), controllers.UpdateComplaint)
	complaints.DELETE("/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.DeleteComplaint)

	fees := api.Group("/fees", middleware.AuthMiddleware())
	fees.GET("", controllers.GetFees)
	fees.POST("", middleware.AuthMiddleware(constants.RoleAdmin), controllers.CreateFee)
	fees.POST("/bulk", middleware.AuthMiddleware(constants.RoleAdmin), controllers.BulkCreateFees)
	fees.POST("/:id/pay", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), controllers.PayFee)
	fees.PUT("/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.UpdateFee)
	fees.DELETE("/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.DeleteFee)

	meals := api.Group("/meals", middleware.AuthMiddleware())
	meals.GET("", controllers.GetMeals)
	meals.POST("", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), controllers.UpsertMeal)
	meals.POST("/bulk", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), controllers.BulkUpsertMeals)
	meals.DELETE("/:id", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), controllers.DeleteMeal)

	notifications := api.Group("/notifications", middleware.AuthMiddleware())
	notifications.GET("", notificationController.GetNotifications)
	notifications.GET("/unread-count", notificationController.UnreadCount)
	notifications.POST("", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), notificationController.CreateNotification)
	notifications.PUT("/read-all", notificationController.MarkAllRead)
	notifications.PUT("/:id/read", notificationController.MarkRead)
	notifications.DELETE("/:id", middleware.AuthMiddleware(constants.RoleAdmin), notificationController.DeleteNotification)

	api.GET("/dashboard/stats", middleware.AuthMiddleware(constants.RoleAdmin, constants.RoleWarden), controllers.GetDashboardStats)

	api.POST("/upload", middleware.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"url":     resp.SecureURL,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
