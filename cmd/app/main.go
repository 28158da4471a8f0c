package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fleetbook/cmd"
	"fleetbook/internal/adapters/out/postgres/assignmentrepo"
	"fleetbook/internal/adapters/out/postgres/orderrepo"
	"fleetbook/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}
	defer func() {
		_ = app.ClosePublisher()
	}()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager, err := app.CreateJobManager(logger)
	if err != nil {
		log.Fatalf("Failed to build job manager: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaEventsTopic:      goDotEnvVariable("KAFKA_EVENTS_TOPIC"),
		SystemAccount:         goDotEnvVariable("SYSTEM_ACCOUNT"),
		BillingCronSpec:       goDotEnvVariable("BILLING_CRON_SPEC"),
		MaxFleetFraction:      goDotEnvVariable("MAX_FLEET_FRACTION"),
		MaxOrdersPerContainer: goDotEnvVariable("MAX_ORDERS_PER_CONTAINER"),
		LedgerDecimals:        goDotEnvVariable("LEDGER_DECIMALS"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.ContainerDTO{},
		&orderrepo.OrderDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlersWithBaseURL(e, app.CreateHTTPServer(), "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
