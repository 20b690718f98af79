package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homestore-backend-go/internal/core"
	"homestore-backend-go/internal/middleware"
)

// SetupRoutes configures all application routes with their handlers and the
// auth wrapper. Global middleware (logging, recovery, CORS) is applied to
// the router before this function is called, in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	authService core.AuthService,
	userService core.UserService,
	householdService core.HouseholdService,
	roomService core.RoomService,
	itemService core.ItemService,
) {
	authMW := middleware.NewAuthMiddleware(authService)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	householdHandler := NewHouseholdHandler(householdService)
	roomHandler := NewRoomHandler(roomService)
	itemHandler := NewItemHandler(itemService)

	// Wrong method on a known path must be 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "NOT_FOUND",
			"no route for "+c.Request.Method+" "+c.Request.URL.Path)
	})
	router.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	apiGroup := router.Group("/api")
	{
		// Public endpoints: no bearer token required.
		apiGroup.POST("/register", authHandler.Register)
		apiGroup.POST("/reset_password", authHandler.ResetPassword)
		apiGroup.POST("/users", userHandler.EnsureUser)

		// Everything below requires a verified bearer token.
		apiGroup.GET("/profile", authMW.RequireAuth(), userHandler.GetProfile)

		householdsGroup := apiGroup.Group("/households", authMW.RequireAuth())
		{
			householdsGroup.POST("", householdHandler.CreateHousehold)
			householdsGroup.GET("/:householdId", householdHandler.GetHousehold)

			roomsGroup := householdsGroup.Group("/:householdId/rooms")
			{
				roomsGroup.POST("", roomHandler.CreateRoom)
				roomsGroup.GET("", roomHandler.ListRooms)
				roomsGroup.GET("/:roomId", roomHandler.GetRoom)
				roomsGroup.PUT("/:roomId", roomHandler.UpdateRoom)
				roomsGroup.DELETE("/:roomId", roomHandler.DeleteRoom)
			}
		}

		itemsGroup := apiGroup.Group("/items", authMW.RequireAuth())
		{
			itemsGroup.POST("", itemHandler.CreateItem)
			itemsGroup.GET("", itemHandler.ListItems)
			// The static segment takes priority over :itemId in gin's tree.
			itemsGroup.POST("/bulk", itemHandler.BulkImportItems)
			itemsGroup.GET("/:itemId", itemHandler.GetItem)
			itemsGroup.PUT("/:itemId", itemHandler.UpdateItem)
			itemsGroup.DELETE("/:itemId", itemHandler.DeleteItem)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Household inventory backend is healthy."})
	})

	logger.Info("API routes configured successfully under /api and /health.")
}
