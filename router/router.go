package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafe-pos/catalog"
	"cafe-pos/controllers"
	"cafe-pos/middlewares"
	"cafe-pos/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Services share one lock registry so booking, checkout and order
	// creation on the same table serialize against each other.
	locks := services.NewTableLocker()
	tableSvc := services.NewTableService(db, locks)
	orderSvc := services.NewOrderService(db, catalog.NewGormReader(db), locks)
	sessionSvc := services.NewSessionService(db)

	userCtrl := controllers.NewUserController(db)
	floorCtrl := controllers.NewFloorController(db)
	tableCtrl := controllers.NewTableController(db, tableSvc)
	categoryCtrl := controllers.NewCategoryController(db)
	dishCtrl := controllers.NewDishController(db)
	orderCtrl := controllers.NewOrderController(orderSvc)
	sessionCtrl := controllers.NewSessionController(sessionSvc)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.StrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Read-only views of the floor plan and the catalog
	r.GET("/floors", floorCtrl.GetAllFloors)
	r.GET("/floors/:floor_id", floorCtrl.GetFloorByID)
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/dishes", dishCtrl.GetAllDishes)
	r.GET("/dishes/:dish_id", dishCtrl.GetDishByID)

	// ----------------------------------------------------------------
	//                      STAFF ROUTES
	// ----------------------------------------------------------------
	staff := r.Group("/")
	staff.Use(middlewares.AuthMiddleware())
	{
		staff.GET("/profile", userCtrl.GetProfile)

		// Occupancy lifecycle
		staff.POST("/tables/:table_id/book", tableCtrl.BookTable)
		staff.POST("/tables/:table_id/checkout", tableCtrl.CheckoutTable)
		staff.GET("/tables/:table_id/checkout/preview", tableCtrl.PreviewCheckout)

		// Orders
		staff.GET("/orders", orderCtrl.GetAllOrders)
		staff.POST("/orders", orderCtrl.CreateOrder)
		staff.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

		// Reporting read side
		staff.GET("/sessions/completed", sessionCtrl.GetCompletedSessions)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		admin.POST("/floors", floorCtrl.CreateFloor)
		admin.PATCH("/floors/:floor_id", floorCtrl.UpdateFloor)
		admin.DELETE("/floors/:floor_id", floorCtrl.DeleteFloor)

		admin.POST("/tables", tableCtrl.CreateTable)
		admin.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

		admin.POST("/dishes", dishCtrl.CreateDish)
		admin.PATCH("/dishes/:dish_id", dishCtrl.UpdateDish)
		admin.DELETE("/dishes/:dish_id", dishCtrl.DeleteDish)
	}

	return r
}
