package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDBType string = "BREATHSAFE_DB_TYPE"
	EnvKeyDBPath string = "BREATHSAFE_DB_PATH"

	EnvKeyHttpHostPort string = "BREATHSAFE_HTTP_HOST_PORT"

	EnvKeyJWTSecret   string = "BREATHSAFE_JWT_SECRET"
	EnvKeyJWTTTLHours string = "BREATHSAFE_JWT_TTL_HOURS"

	EnvKeyDefaultRate  string = "BREATHSAFE_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "BREATHSAFE_DEFAULT_BURST"

	EnvKeyLogDir string = "BREATHSAFE_LOG_DIR"

	LoggerNameCore          string = "breathsafe_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameAPIClient     string = "api_client"
	LoggerNameController    string = "controller"
	LoggerFieldCategory     string = "category"

	LoggerCategoryRequest      string = "request"
	LoggerCategorySensor       string = "sensor"
	LoggerCategorySubscription string = "subscription"
	LoggerCategoryAlert        string = "alert"
	LoggerCategoryAuth         string = "auth"
	LoggerCategoryAnalytics    string = "analytics"
)
