package main

import (
	"fmt"
	"os"
	"time"

	"fastfood/cmd"
	httpin "fastfood/internal/adapters/in/http"
	"fastfood/internal/adapters/out/postgres/customerrepo"
	"fastfood/internal/adapters/out/postgres/orderrepo"
	"fastfood/internal/adapters/out/postgres/paymentrepo"
	"fastfood/internal/adapters/out/postgres/productrepo"
	"fastfood/internal/jobs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
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
		StaleOrderSchedule: goDotEnvVariable("STALE_ORDER_SCHEDULE"),
		StaleOrderMaxAge:   durationVariable("STALE_ORDER_MAX_AGE"),
		ReconcileSchedule:  goDotEnvVariable("RECONCILE_SCHEDULE"),
		ReconcileMinAge:    durationVariable("RECONCILE_MIN_AGE"),
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

func durationVariable(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		app.CreateReconcilePaymentsCommandHandler(),
		jobs.JobConfig{
			StaleOrderSchedule: configs.StaleOrderSchedule,
			StaleOrderMaxAge:   configs.StaleOrderMaxAge,
			ReconcileSchedule:  configs.ReconcileSchedule,
			ReconcileMinAge:    configs.ReconcileMinAge,
		},
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAttachCustomerCommandHandler(),
		app.CreateAttachItemCommandHandler(),
		app.CreatePayOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetNewOrdersQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
		app.CreateGetProductsByCategoryQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
