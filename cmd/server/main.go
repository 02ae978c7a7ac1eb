package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/auth"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/core"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/db"
	breathsafeHttp "github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dbType := os.Getenv(common.EnvKeyDBType)
	switch dbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown BREATHSAFE_DB_TYPE: " + dbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHttpHostPort))

	jwtSecret := strings.TrimSpace(os.Getenv(common.EnvKeyJWTSecret))
	if jwtSecret == "" {
		log.Fatal("BREATHSAFE_JWT_SECRET not set in .env")
	}

	var jwtTTLHours int64
	if jwtTTLHours, err = strconv.ParseInt(os.Getenv(common.EnvKeyJWTTTLHours), 10, 64); err != nil {
		log.Fatal("Invalid BREATHSAFE_JWT_TTL_HOURS, or not set in .env, should be an int value")
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyDefaultRate), 64); err != nil {
		log.Fatal("Invalid BREATHSAFE_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid BREATHSAFE_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	breathsafeCore := core.BreathSafe{
		Db: *dbInstance,
	}
	breathsafeCore.WithServices(core.ServiceOpts{
		Requests:      breathsafeCore.GetIRequests(),
		Sensors:       breathsafeCore.GetISensors(),
		Subscriptions: breathsafeCore.GetISubscriptions(),
		Users:         breathsafeCore.GetIUsers(),
		Analytics:     breathsafeCore.GetIAnalytics(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &breathsafeHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             &breathsafeCore,
		JWT:              auth.NewJWTManager(jwtSecret, time.Duration(jwtTTLHours)*time.Hour),
		RateLimiterStore: core.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
