package routes

import (
	"net/http"

	"backoffice/controllers"
	_ "backoffice/docs"
	"backoffice/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, ctl *controllers.Controller, gatherer prometheus.Gatherer) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(response.NotFound)

	v1 := router.Group("/api/v1")

	v1.POST("/properties", ctl.CreateProperty)
	v1.GET("/properties", ctl.ListProperties)
	v1.GET("/properties/:id", ctl.GetProperty)
	v1.PUT("/properties/:id", ctl.UpdateProperty)
	v1.DELETE("/properties/:id", ctl.DeleteProperty)

	v1.GET("/properties/:id/room-types", ctl.ListRoomTypes)
	v1.GET("/properties/:id/rooms", ctl.ListRooms)
	v1.GET("/properties/:id/rate-plans", ctl.ListRatePlans)
	v1.GET("/properties/:id/guests", ctl.ListGuests)
	v1.GET("/properties/:id/reservations", ctl.ListReservations)
	v1.GET("/properties/:id/staff", ctl.ListStaff)
	v1.GET("/properties/:id/housekeeping-tasks", ctl.ListHousekeepingTasks)
	v1.GET("/properties/:id/suppliers", ctl.ListSuppliers)
	v1.GET("/properties/:id/inventory-items", ctl.ListInventoryItems)
	v1.GET("/properties/:id/inventory-transactions", ctl.ListInventoryTransactions)
	v1.GET("/properties/:id/purchase-orders", ctl.ListPurchaseOrders)
	v1.GET("/properties/:id/fnb-menu-items", ctl.ListFnbMenuItems)
	v1.GET("/properties/:id/user-roles", ctl.ListUserRoles)
	v1.GET("/properties/:id/low-stock", ctl.GetLowStockItems)

	v1.POST("/room-types", ctl.CreateRoomType)
	v1.GET("/room-types/:id", ctl.GetRoomType)
	v1.PUT("/room-types/:id", ctl.UpdateRoomType)
	v1.DELETE("/room-types/:id", ctl.DeleteRoomType)

	v1.POST("/rooms", ctl.CreateRoom)
	v1.GET("/rooms/:id", ctl.GetRoom)
	v1.PUT("/rooms/:id", ctl.UpdateRoom)
	v1.DELETE("/rooms/:id", ctl.DeleteRoom)

	v1.POST("/rate-plans", ctl.CreateRatePlan)
	v1.GET("/rate-plans/:id", ctl.GetRatePlan)
	v1.PUT("/rate-plans/:id", ctl.UpdateRatePlan)
	v1.DELETE("/rate-plans/:id", ctl.DeleteRatePlan)

	v1.POST("/guests", ctl.CreateGuest)
	v1.GET("/guests/:id", ctl.GetGuest)
	v1.PUT("/guests/:id", ctl.UpdateGuest)
	v1.DELETE("/guests/:id", ctl.DeleteGuest)

	v1.POST("/reservations", ctl.CreateReservation)
	v1.GET("/reservations/:id", ctl.GetReservation)
	v1.PUT("/reservations/:id", ctl.UpdateReservation)
	v1.DELETE("/reservations/:id", ctl.DeleteReservation)

	v1.POST("/staff", ctl.CreateStaff)
	v1.GET("/staff/:id", ctl.GetStaff)
	v1.PUT("/staff/:id", ctl.UpdateStaff)
	v1.DELETE("/staff/:id", ctl.DeleteStaff)

	v1.POST("/housekeeping-tasks", ctl.CreateHousekeepingTask)
	v1.GET("/housekeeping-tasks/:id", ctl.GetHousekeepingTask)
	v1.PUT("/housekeeping-tasks/:id", ctl.UpdateHousekeepingTask)
	v1.DELETE("/housekeeping-tasks/:id", ctl.DeleteHousekeepingTask)
	v1.POST("/housekeeping-tasks/:id/start", ctl.StartHousekeepingTask)
	v1.POST("/housekeeping-tasks/:id/complete", ctl.CompleteHousekeepingTask)
	v1.POST("/housekeeping-tasks/:id/skip", ctl.SkipHousekeepingTask)
	v1.POST("/housekeeping-tasks/:id/reopen", ctl.ReopenHousekeepingTask)

	v1.POST("/suppliers", ctl.CreateSupplier)
	v1.GET("/suppliers/:id", ctl.GetSupplier)
	v1.PUT("/suppliers/:id", ctl.UpdateSupplier)
	v1.DELETE("/suppliers/:id", ctl.DeleteSupplier)

	v1.POST("/inventory-items", ctl.CreateInventoryItem)
	v1.GET("/inventory-items/:id", ctl.GetInventoryItem)
	v1.PUT("/inventory-items/:id", ctl.UpdateInventoryItem)
	v1.DELETE("/inventory-items/:id", ctl.DeleteInventoryItem)

	v1.POST("/inventory-transactions", ctl.CreateInventoryTransaction)
	v1.GET("/inventory-transactions/:id", ctl.GetInventoryTransaction)
	v1.PUT("/inventory-transactions/:id", ctl.UpdateInventoryTransaction)
	v1.DELETE("/inventory-transactions/:id", ctl.DeleteInventoryTransaction)

	v1.POST("/purchase-orders", ctl.CreatePurchaseOrder)
	v1.GET("/purchase-orders/:id", ctl.GetPurchaseOrder)
	v1.PUT("/purchase-orders/:id", ctl.UpdatePurchaseOrder)
	v1.DELETE("/purchase-orders/:id", ctl.DeletePurchaseOrder)
	v1.GET("/purchase-orders/:id/lines", ctl.ListPurchaseOrderLines)

	v1.POST("/purchase-order-lines", ctl.CreatePurchaseOrderLine)
	v1.GET("/purchase-order-lines/:id", ctl.GetPurchaseOrderLine)
	v1.PUT("/purchase-order-lines/:id", ctl.UpdatePurchaseOrderLine)
	v1.DELETE("/purchase-order-lines/:id", ctl.DeletePurchaseOrderLine)

	v1.POST("/fnb-menu-items", ctl.CreateFnbMenuItem)
	v1.GET("/fnb-menu-items/:id", ctl.GetFnbMenuItem)
	v1.PUT("/fnb-menu-items/:id", ctl.UpdateFnbMenuItem)
	v1.DELETE("/fnb-menu-items/:id", ctl.DeleteFnbMenuItem)
	v1.GET("/fnb-menu-items/:id/recipes", ctl.ListRecipes)

	v1.POST("/recipes", ctl.CreateRecipe)
	v1.GET("/recipes/:id", ctl.GetRecipe)
	v1.PUT("/recipes/:id", ctl.UpdateRecipe)
	v1.DELETE("/recipes/:id", ctl.DeleteRecipe)
	v1.GET("/recipes/:id/lines", ctl.ListRecipeLines)

	v1.POST("/recipe-lines", ctl.CreateRecipeLine)
	v1.GET("/recipe-lines/:id", ctl.GetRecipeLine)
	v1.PUT("/recipe-lines/:id", ctl.UpdateRecipeLine)
	v1.DELETE("/recipe-lines/:id", ctl.DeleteRecipeLine)

	v1.POST("/users", ctl.CreateUser)
	v1.GET("/users", ctl.ListUsers)
	v1.GET("/users/:id", ctl.GetUser)
	v1.PUT("/users/:id", ctl.UpdateUser)
	v1.DELETE("/users/:id", ctl.DeleteUser)

	v1.POST("/roles", ctl.CreateRole)
	v1.GET("/roles", ctl.ListRoles)
	v1.GET("/roles/:id", ctl.GetRole)
	v1.PUT("/roles/:id", ctl.UpdateRole)
	v1.DELETE("/roles/:id", ctl.DeleteRole)

	v1.POST("/user-roles", ctl.CreateUserRole)
	v1.GET("/user-roles/:id", ctl.GetUserRole)
	v1.PUT("/user-roles/:id", ctl.UpdateUserRole)
	v1.DELETE("/user-roles/:id", ctl.DeleteUserRole)

	v1.POST("/maintenance/recipe-lines/repair", ctl.RepairRecipeLines)
}
