package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/riskibarqy/vpl-ladder/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	LogLevel                   logging.Level
	CORSAllowedOrigins         []string
	CacheEnabled               bool
	CacheTTL                   time.Duration
	DriblBaseURL               string
	DriblSeason                string
	DriblTenant                string
	DriblTimezone              string
	DriblDateRange             string
	DriblTimeout               time.Duration
	DriblMaxPages              int
	DriblCircuitEnabled        bool
	DriblCircuitFailureCount   int
	DriblCircuitOpenTimeout    time.Duration
	DriblCircuitHalfOpenMaxReq int
	FetchMaxWorkers            int
	LadderAgeGroupTokens       []string
	UptraceEnabled             bool
	UptraceDSN                 string
	PprofEnabled               bool
	PprofAddr                  string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsPositiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := getEnvAsPositiveDuration("CACHE_TTL", "5m")
	if err != nil {
		return Config{}, err
	}

	driblBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("DRIBL_BASE_URL", "https://mc-api.dribl.com/api")), "/")
	if !strings.HasPrefix(driblBaseURL, "http://") && !strings.HasPrefix(driblBaseURL, "https://") {
		return Config{}, fmt.Errorf("DRIBL_BASE_URL must be an http(s) URL, got %q", driblBaseURL)
	}
	driblTimeout, err := getEnvAsPositiveDuration("DRIBL_TIMEOUT", "20s")
	if err != nil {
		return Config{}, err
	}
	driblMaxPages, err := getEnvAsInt("DRIBL_MAX_PAGES", 50)
	if err != nil {
		return Config{}, fmt.Errorf("parse DRIBL_MAX_PAGES: %w", err)
	}
	if driblMaxPages < 1 {
		return Config{}, fmt.Errorf("DRIBL_MAX_PAGES must be >= 1")
	}
	driblCircuitEnabled, err := strconv.ParseBool(getEnv("DRIBL_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DRIBL_CIRCUIT_ENABLED: %w", err)
	}
	driblCircuitFailureCount, err := getEnvAsInt("DRIBL_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DRIBL_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if driblCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("DRIBL_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	driblCircuitOpenTimeout, err := getEnvAsPositiveDuration("DRIBL_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	driblCircuitHalfOpenMaxReq, err := getEnvAsInt("DRIBL_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DRIBL_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if driblCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("DRIBL_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	fetchMaxWorkers, err := getEnvAsInt("FETCH_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_MAX_WORKERS: %w", err)
	}
	if fetchMaxWorkers < 1 || fetchMaxWorkers > 64 {
		return Config{}, fmt.Errorf("FETCH_MAX_WORKERS must be between 1 and 64")
	}

	ageGroupTokens := splitCSV(getEnv("LADDER_AGE_GROUP_TOKENS", "U13,U14,U15,U16,U17,U18"))
	if len(ageGroupTokens) == 0 {
		return Config{}, fmt.Errorf("LADDER_AGE_GROUP_TOKENS cannot be empty")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "vpl-ladder-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		LogLevel:                   logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CacheEnabled:               cacheEnabled,
		CacheTTL:                   cacheTTL,
		DriblBaseURL:               driblBaseURL,
		DriblSeason:                strings.TrimSpace(getEnv("DRIBL_SEASON", "nPmrj2rmow")),
		DriblTenant:                strings.TrimSpace(getEnv("DRIBL_TENANT", "w8zdBWPmBX")),
		DriblTimezone:              strings.TrimSpace(getEnv("DRIBL_TIMEZONE", "Australia/Sydney")),
		DriblDateRange:             strings.TrimSpace(getEnv("DRIBL_DATE_RANGE", "default")),
		DriblTimeout:               driblTimeout,
		DriblMaxPages:              driblMaxPages,
		DriblCircuitEnabled:        driblCircuitEnabled,
		DriblCircuitFailureCount:   driblCircuitFailureCount,
		DriblCircuitOpenTimeout:    driblCircuitOpenTimeout,
		DriblCircuitHalfOpenMaxReq: driblCircuitHalfOpenMaxReq,
		FetchMaxWorkers:            fetchMaxWorkers,
		LadderAgeGroupTokens:       ageGroupTokens,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.DriblSeason == "" || cfg.DriblTenant == "" {
		return Config{}, fmt.Errorf("DRIBL_SEASON and DRIBL_TENANT cannot be empty")
	}
	if _, err := time.LoadLocation(cfg.DriblTimezone); err != nil {
		return Config{}, fmt.Errorf("invalid DRIBL_TIMEZONE %q: %w", cfg.DriblTimezone, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}

	return value, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
