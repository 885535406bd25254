package server

import (
	"agriwise-server/confs"
	"agriwise-server/db"
	"agriwise-server/handlers"
	httpHandler "agriwise-server/handlers/http"
	"agriwise-server/mail"
	"agriwise-server/repositories"
	"agriwise-server/services"
	"agriwise-server/usecases"
	"agriwise-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // the mobile client runs from arbitrary origins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	pumpRepo := repositories.NewPumpPgRepository(s.db)
	sensorRepo := repositories.NewSensorPgRepository(s.db)
	notificationRepo := repositories.NewNotificationPgRepository(s.db)

	// Mail transport is owned here and injected; services never build one
	mailer := mail.NewSMTPMailer(s.cfg.SMTP)

	// WebSocket manager for live notification delivery
	manager := ws.NewManager()

	// Initialize use cases
	authUseCase := usecases.NewAuthService(userRepo, mailer, s.cfg.JWTSecret, s.cfg.AppURL)
	userUseCase := usecases.NewUserService(userRepo)
	pumpUseCase := usecases.NewPumpService(pumpRepo, sensorRepo)
	sensorUseCase := usecases.NewSensorService(sensorRepo, pumpRepo)
	notificationUseCase := usecases.NewNotificationService(notificationRepo, pumpRepo, manager)

	// Telemetry alert sweep
	alerts := services.NewAlertService(notificationUseCase, s.cfg.WaterCapacityMin, s.cfg.TemperatureMax, s.cfg.AlertSweepEvery)
	alerts.Start()

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
			"buffer": alerts.Stats(),
		})
	})

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	userHandler := httpHandler.NewUserHandler(userUseCase)
	pumpHandler := httpHandler.NewPumpHandler(pumpUseCase)
	sensorHandler := httpHandler.NewSensorHandler(sensorUseCase, alerts)
	notificationHandler := httpHandler.NewNotificationHandler(notificationUseCase)
	wsHandler := handlers.NewWSHandler(manager, userRepo, s.cfg.JWTSecret)

	protected := httpHandler.RequireAuth(userRepo, s.cfg.JWTSecret)

	// Setup API routes
	api := s.app.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/logout", protected, authHandler.Logout)
			auth.PUT("/updatepassword", protected, authHandler.UpdatePassword)
			auth.POST("/forgotpassword", authHandler.ForgotPassword)
			auth.PUT("/resetpassword/:resettoken", authHandler.ResetPassword)
		}

		// User routes (self-scoped)
		users := api.Group("/users", protected)
		{
			users.GET("/connected", wsHandler.GetConnectedUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Pump routes (owner-scoped)
		pumps := api.Group("/pumps", protected)
		{
			pumps.POST("", pumpHandler.CreatePump)
			pumps.GET("", pumpHandler.GetPumps)
			pumps.GET("/user", pumpHandler.GetPumps)
			pumps.GET("/:id", pumpHandler.GetPumpByID)
			pumps.PUT("/:id", pumpHandler.UpdatePump)
			pumps.PATCH("/:id/status", pumpHandler.UpdatePumpStatus)
			pumps.DELETE("/:id", pumpHandler.DeletePump)
		}

		// Sensor routes (owner-scoped)
		sensors := api.Group("/sensors", protected)
		{
			sensors.POST("", sensorHandler.CreateSensor)
			sensors.GET("", sensorHandler.GetSensors)
			sensors.GET("/user", sensorHandler.GetSensors)
			sensors.GET("/:id", sensorHandler.GetSensorByID)
			sensors.PUT("/:id", sensorHandler.UpdateSensor)
			sensors.PATCH("/:id/status", sensorHandler.UpdateSensorStatus)
			sensors.DELETE("/:id", sensorHandler.DeleteSensor)
		}

		// Notification routes (recipient-scoped)
		notifications := api.Group("/notifications", protected)
		{
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
			notifications.PATCH("/read-all", notificationHandler.MarkAllAsRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}
	}

	s.app.GET("/ws", wsHandler.HandleNotificationWS)

	if err := s.app.Run(s.cfg.Addr); err != nil {
		panic(err)
	}
}
