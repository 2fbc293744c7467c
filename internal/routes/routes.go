package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/fleet-manager/internal/audit"
	"github.com/BruksfildServices01/fleet-manager/internal/auth"
	"github.com/BruksfildServices01/fleet-manager/internal/handlers"
	infraRepo "github.com/BruksfildServices01/fleet-manager/internal/infra/repository"
	"github.com/BruksfildServices01/fleet-manager/internal/middleware"
	ucAccount "github.com/BruksfildServices01/fleet-manager/internal/usecase/account"
	ucVehicle "github.com/BruksfildServices01/fleet-manager/internal/usecase/vehicle"
)

const (
	authRateMax    = 10
	authRateWindow = time.Minute
)

// RegisterRoutes wires repositories, usecases and handlers onto the engine.
// The returned dispatcher must be closed at shutdown.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	tokens *auth.TokenService,
	rdb *redis.Client,
	log *logrus.Logger,
) *audit.Dispatcher {

	// ------------------------------
	// Infra
	// ------------------------------
	userRepo := infraRepo.NewUserGormRepository(db)
	vehicleRepo := infraRepo.NewVehicleGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	// ------------------------------
	// Usecases
	// ------------------------------
	registerUC := ucAccount.NewRegister(userRepo, tokens, auditDispatcher)
	loginUC := ucAccount.NewLogin(userRepo, tokens)
	profileUC := ucAccount.NewProfile(userRepo)
	deleteAccountUC := ucAccount.NewDelete(userRepo, auditDispatcher)

	createVehicleUC := ucVehicle.NewCreate(vehicleRepo, auditDispatcher)
	getVehicleUC := ucVehicle.NewGet(vehicleRepo)
	listVehiclesUC := ucVehicle.NewList(vehicleRepo)
	updateVehicleUC := ucVehicle.NewUpdate(vehicleRepo, auditDispatcher)
	deleteVehicleUC := ucVehicle.NewDelete(vehicleRepo, auditDispatcher)
	setStatusUC := ucVehicle.NewSetStatus(vehicleRepo, auditDispatcher)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, profileUC, deleteAccountUC, log)
	vehicleHandler := handlers.NewVehicleHandler(
		createVehicleUC,
		getVehicleUC,
		listVehiclesUC,
		updateVehicleUC,
		deleteVehicleUC,
		setStatusUC,
		log,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, log)

	// ------------------------------
	// Routes
	// ------------------------------
	api := r.Group("/api")
	{
		authAPI := api.Group("/auth")
		authAPI.Use(middleware.AuthRateLimit(rdb, authRateMax, authRateWindow))
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
		}

		// The profile read authenticates from the token alone so a deleted
		// account surfaces as 404 from the lookup, not 401 from the gate.
		api.GET("/auth/me", middleware.TokenMiddleware(tokens), authHandler.Me)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, userRepo))
		{
			secured.DELETE("/auth/me", authHandler.DeleteMe)

			secured.GET("/vehicles", vehicleHandler.List)
			secured.POST("/vehicles", vehicleHandler.Create)
			secured.GET("/vehicles/:id", vehicleHandler.Get)
			secured.PUT("/vehicles/:id", vehicleHandler.Update)
			secured.DELETE("/vehicles/:id", vehicleHandler.Delete)
			secured.PATCH("/vehicles/:id/status", vehicleHandler.SetStatus)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return auditDispatcher
}
