package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// Run загружает конфигурацию, подключает базу, прогоняет миграции
// и запускает HTTP-сервер.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает gin.Engine со всеми middleware и маршрутами.
// Вынесен отдельно, чтобы интеграционные тесты поднимали тот же роутер.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	var mailer email.Provider
	if cfg.Email.Enabled {
		mailer = email.NewSMTPProvider(cfg)
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		mailer = &MockEmailProvider{}
		logger.Warn("Email disabled, using mock provider")
	}

	serviceContainer := services.NewServiceContainer(gormDB, mailer)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg))

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

// seedFirstAdmin создает первого админа, если его еще нет.
// Email и пароль берутся из конфигурации; без них сидирование пропускается.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminUser models.User
		result := tx.Where("email = ?", adminEmail).First(&adminUser)
		if result.Error == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		newAdmin := &models.User{
			Email:        adminEmail,
			PasswordHash: hash,
			FirstName:    "System",
			LastName:     "Admin",
			Role:         models.UserRoleAdmin,
		}
		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		logger.Info("First admin user created", "user_id", newAdmin.ID)
		return nil
	})
}
