package routes

import (
	"nunis-api/configs"
	"nunis-api/controllers"
	"nunis-api/middlewares"
	"nunis-api/repository"
	"nunis-api/services"
	"nunis-api/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	contactRepo := repository.NewContactRepository(db)
	resetRepo := repository.NewResetRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, resetRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo, cfg.S3Bucket, cfg.S3Region)
	categorySvc := services.NewCategoryService(categoryRepo)
	menuSvc := services.NewMenuService(menuRepo)
	transactionSvc := services.NewTransactionService(db, transactionRepo, menuRepo, userRepo)
	contactSvc := services.NewContactService(contactRepo)
	reportSvc := services.NewReportService(cfg.LogoPath)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	transactionCtrl := controllers.NewTransactionController(transactionSvc, hub)
	contactCtrl := controllers.NewContactController(contactSvc)
	reportCtrl := controllers.NewReportController(reportSvc, transactionSvc, menuSvc, contactSvc)

	// Auth (public)
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)
	r.POST("/forgot-password/:email", authCtrl.ForgotPassword)
	r.POST("/verify-otp", authCtrl.VerifyOTP)
	r.POST("/reset-password", authCtrl.ResetPassword)

	// Catalog (public)
	r.GET("/categories", categoryCtrl.List)
	r.GET("/categories/:id/menu-items", categoryCtrl.MenuItems)
	r.GET("/menu-items", menuCtrl.ListActive)
	r.GET("/menu-terlaris", menuCtrl.BestSellers)

	// Contact (public create)
	r.POST("/contact", contactCtrl.Create)

	// Logged-in users
	u := r.Group("/", middlewares.AuthMiddleware())
	{
		u.POST("/transaksi", transactionCtrl.Create)
		u.POST("/checkout", transactionCtrl.Checkout)
		u.GET("/transaksi/:userId/with-details", transactionCtrl.ListForUser)
		u.GET("/user/:email", userCtrl.GetByEmail)
		u.PUT("/update-user-profile", userCtrl.UpdateProfile)
		u.POST("/upload-profile-picture", userCtrl.UploadPicture)
	}

	// Admin
	admin := r.Group("/", middlewares.AuthMiddleware("admin"))
	{
		admin.POST("/categoriesAdd", categoryCtrl.Create)
		admin.PUT("/editcategories", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)

		admin.GET("/allmenu", menuCtrl.ListAll)
		admin.POST("/addmenuitems", menuCtrl.Create)
		admin.PUT("/editmenu", menuCtrl.Update)
		admin.DELETE("/menu-items/:kode_menu", menuCtrl.Delete)

		admin.GET("/alltransaksi", transactionCtrl.ListAll)
		admin.GET("/transaksi-date-range", transactionCtrl.ListByDateRange)
		admin.PATCH("/update-status-by-faktur", transactionCtrl.UpdateStatusByFaktur)
		admin.GET("/statistics", transactionCtrl.Statistics)
		admin.GET("/statistics-by-date", transactionCtrl.StatisticsByDate)

		admin.GET("/receipt/:faktur", transactionCtrl.Receipt)
		admin.GET("/invoice-qr/:faktur", reportCtrl.InvoiceQR)
		admin.GET("/laporan-rekap", reportCtrl.LaporanRekap)
		admin.GET("/export-transaksi", reportCtrl.ExportTransaksi)
		admin.GET("/export-menu", reportCtrl.ExportMenu)
		admin.GET("/export-ulasan", reportCtrl.ExportReviews)

		admin.GET("/getUser", userCtrl.List)
		admin.DELETE("/deleteuser/:id", userCtrl.Delete)
		admin.PATCH("/update-user-status/:email", userCtrl.UpdateStatus)

		admin.GET("/contact", contactCtrl.List)
		admin.DELETE("/contact/:id", contactCtrl.Delete)
	}

	// Live order notifications
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
