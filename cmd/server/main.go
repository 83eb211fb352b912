package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/cache/redis"
	"github.com/teodor-vladconstantin/job-navigator/internal/config"
	"github.com/teodor-vladconstantin/job-navigator/internal/cvresolve"
	"github.com/teodor-vladconstantin/job-navigator/internal/domain/fiber/handler"
	"github.com/teodor-vladconstantin/job-navigator/internal/middleware"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/service"
	"github.com/teodor-vladconstantin/job-navigator/internal/usecase"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zapLogger, err := newLogger(appConfig.Env)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer zapLogger.Sync()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: int(usecase.MaxCVSize) + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    code,
				Message: "A apărut o eroare. Încearcă din nou.",
			}, err)
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	db := connectDB()

	listingCache := redis.New(config.LoadRedisConfig())
	defer listingCache.Close()

	storageConfig := config.LoadStorageConfig()
	storage := service.NewStorageService()
	mailer := service.NewMailService()
	tokens := service.NewTokenService()
	resolver := cvresolve.NewResolver(storage, storageConfig.CVBucket, storageConfig.GuestCVBucket, storageConfig.SignedURLTTL)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	guestRepo := repository.NewGuestApplicationRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, profileRepo, tokens, mailer, zapLogger)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, listingCache, zapLogger)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, guestRepo, profileRepo, jobRepo, storage, storageConfig.GuestCVBucket, zapLogger)
	companyUC := usecase.NewCompanyUsecase(companyRepo, jobRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, storage, storageConfig.CVBucket, zapLogger)
	leadUC := usecase.NewLeadUsecase(leadRepo)

	handler.NewAuthHandler(authUC, tokens).RegisterRoutes(app)
	handler.NewJobHandler(jobUC, tokens, profileRepo).RegisterRoutes(app)
	handler.NewApplicationHandler(applicationUC, tokens, profileRepo).RegisterRoutes(app)
	handler.NewCompanyHandler(companyUC, tokens, profileRepo).RegisterRoutes(app)
	handler.NewProfileHandler(profileUC, tokens).RegisterRoutes(app)
	handler.NewLeadHandler(leadUC, tokens, profileRepo).RegisterRoutes(app)
	handler.NewCVHandler(resolver, tokens, profileRepo).RegisterRoutes(app)

	zapLogger.Info("server listening", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func connectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
		dbConfig.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Company{},
		&model.Job{},
		&model.Application{},
		&model.GuestApplication{},
		&model.AiLead{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
