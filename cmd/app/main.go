package main

import (
	"fmt"
	"log/slog"
	"os"

	"courier-trust/cmd"
	httpin "courier-trust/internal/adapters/in/http"
	"courier-trust/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		S3Bucket:           goDotEnvVariable("S3_BUCKET"),
		S3Region:           goDotEnvVariable("S3_REGION"),
		TrackingBaseOrigin: goDotEnvVariable("TRACKING_BASE_ORIGIN"),
		DefaultCountryCode: goDotEnvVariable("DEFAULT_COUNTRY_CODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateCourierRepository(),
		app.CreateRecalculateScoreCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := httpin.NewServer(
		app.CreateRecalculateScoreCommandHandler(),
		app.CreateIssuePolicyCommandHandler(),
		app.CreateFileClaimCommandHandler(),
		app.CreateCreateTrackingLinkCommandHandler(),
		app.CreateRecordTrackingUpdateCommandHandler(),
		app.CreateDeactivateTrackingLinkCommandHandler(),
		app.CreateSubmitProofCommandHandler(),
		app.CreateGetScoreQueryHandler(),
		app.CreateResolveTrackingLinkQueryHandler(),
		app.CreateGetDeliveryProofsQueryHandler(),
		configs.DefaultCountryCode,
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
