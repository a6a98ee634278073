package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, backend URL), secrets
// - default: Values common across all environments (timezone, timeouts, operating hours)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Backend   BackendConfig
	Draft     DraftConfig
	Redis     RedisConfig
	AMQP      AMQPConfig
	Schedule  ScheduleConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

// JWTConfig holds the secret shared with the backend that issues access tokens.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type AuthConfig struct {
	LoginPath       string `envconfig:"AUTH_LOGIN_PATH" default:"/login"`
	CookieName      string `envconfig:"AUTH_COOKIE_NAME" default:"access_token"`
	AllowCookieAuth bool   `envconfig:"AUTH_ALLOW_COOKIE" default:"true"`
}

type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

type DraftConfig struct {
	// Store is "memory" or "redis".
	Store string        `envconfig:"DRAFT_STORE" default:"memory"`
	TTL   time.Duration `envconfig:"DRAFT_TTL" default:"2h"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// AMQPConfig leaves URL empty to disable event publishing.
type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL" default:""`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"shuttlesync.events"`
}

type ScheduleConfig struct {
	TimeZone      string        `envconfig:"SCHEDULE_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	OpenTime      string        `envconfig:"SCHEDULE_OPEN_TIME" default:"05:00"`
	CloseTime     string        `envconfig:"SCHEDULE_CLOSE_TIME" default:"23:00"`
	SlotLength    time.Duration `envconfig:"SCHEDULE_SLOT_LENGTH" default:"2h"`
	BaseSlotPrice int64         `envconfig:"SCHEDULE_BASE_SLOT_PRICE" default:"200000"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `envconfig:"RATE_LIMIT_RPM" default:"300"`
	Burst             int `envconfig:"RATE_LIMIT_BURST" default:"50"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the business time zone used for "today" and the past-date policy.
func (c *ScheduleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Ho_Chi_Minh",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ho_Chi_Minh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Auth: AuthConfig{
			LoginPath:       "/login",
			CookieName:      "access_token",
			AllowCookieAuth: true,
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 2 * time.Second,
		},
		Draft: DraftConfig{
			Store: "memory",
			TTL:   time.Hour,
		},
		Schedule: ScheduleConfig{
			TimeZone:      "Asia/Ho_Chi_Minh",
			OpenTime:      "05:00",
			CloseTime:     "23:00",
			SlotLength:    2 * time.Hour,
			BaseSlotPrice: 200000,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 6000,
			Burst:             1000,
		},
	}
}
