package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "SPORTITUP"

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Session stores
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server" envconfig:"SERVER"`
	Logs     LogsConfig     `toml:"logs" envconfig:"LOGS"`
	Metrics  MetricsConfig  `toml:"metrics" envconfig:"METRICS"`
	Storage  StorageConfig  `toml:"storage" envconfig:"STORAGE"`
	Database DatabaseConfig `toml:"database" envconfig:"DATABASE"`
	Redis    RedisConfig    `toml:"redis" envconfig:"REDIS"`
	Auth     AuthConfig     `toml:"auth" envconfig:"AUTH"`
	Owners   []OwnerConfig  `toml:"owners" ignored:"true"`
	Venues   VenuesConfig   `toml:"venues" envconfig:"VENUES"`
	Booking  BookingConfig  `toml:"booking" envconfig:"BOOKING"`
	Stats    StatsConfig    `toml:"stats" envconfig:"STATS"`
	Demo     DemoConfig     `toml:"demo" envconfig:"DEMO"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

type LogsConfig struct {
	Level string `toml:"level" split_words:"true"`
	File  string `toml:"file" split_words:"true"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

type StorageConfig struct {
	Driver string `toml:"driver" split_words:"true"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr" split_words:"true"`
	Password string `toml:"password" split_words:"true"`
	DB       int    `toml:"db" split_words:"true"`
}

type AuthConfig struct {
	SessionStore         string   `toml:"session_store" split_words:"true"`
	TokenSecret          string   `toml:"token_secret" split_words:"true"`
	TokenIssuer          string   `toml:"token_issuer" split_words:"true"`
	OwnerSessionTTLHours int      `toml:"owner_session_ttl_hours" split_words:"true"`
	UserSessionTTLHours  int      `toml:"user_session_ttl_hours" split_words:"true"`
	CookieSecure         bool     `toml:"cookie_secure" split_words:"true"`
	PhoneRegion          string   `toml:"phone_region" split_words:"true"`
	CORSOrigins          []string `toml:"cors_origins" split_words:"true"`
}

func (a AuthConfig) OwnerSessionTTL() time.Duration {
	return time.Duration(a.OwnerSessionTTLHours) * time.Hour
}

func (a AuthConfig) UserSessionTTL() time.Duration {
	return time.Duration(a.UserSessionTTLHours) * time.Hour
}

// OwnerConfig учетная запись владельца. Password (демо) хешируется при старте,
// PasswordHash - готовый bcrypt хеш.
type OwnerConfig struct {
	ID           string `toml:"id"`
	Email        string `toml:"email"`
	Name         string `toml:"name"`
	Password     string `toml:"password"`
	PasswordHash string `toml:"password_hash"`
}

type VenuesConfig struct {
	// FallbackOwnerID владелец для неизвестных площадок в публичной доступности.
	// Пусто - неизвестная площадка отклоняется.
	FallbackOwnerID string        `toml:"fallback_owner_id" split_words:"true"`
	Catalog         []VenueConfig `toml:"catalog" ignored:"true"`
}

type VenueConfig struct {
	ID           string   `toml:"id"`
	Name         string   `toml:"name"`
	Location     string   `toml:"location"`
	OwnerID      string   `toml:"owner_id"`
	Sports       []string `toml:"sports"`
	PricePerHour float64  `toml:"price_per_hour"`
	OpenTime     string   `toml:"open_time"`
	CloseTime    string   `toml:"close_time"`
}

type BookingConfig struct {
	// RejectConflicts повторная проверка слота при создании (по умолчанию true)
	RejectConflicts *bool `toml:"reject_conflicts" split_words:"true"`
}

func (b BookingConfig) RejectsConflicts() bool {
	return b.RejectConflicts == nil || *b.RejectConflicts
}

type StatsConfig struct {
	Timezone string `toml:"timezone" split_words:"true"`
}

// Location часовой пояс статистики
func (s StatsConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

type DemoConfig struct {
	EnableReset bool `toml:"enable_reset" split_words:"true"`
}

// Load читает config.toml, применяет переменные окружения SPORTITUP_* и значения по умолчанию.
// Отсутствующий файл не ошибка: конфигурация собирается из окружения и дефолтов.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("config: decode %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: env overrides: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "sportitup"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverMemory
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Auth.SessionStore == "" {
		c.Auth.SessionStore = SessionStoreMemory
	}
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = "sportitup"
	}
	if c.Auth.OwnerSessionTTLHours == 0 {
		c.Auth.OwnerSessionTTLHours = 7 * 24
	}
	if c.Auth.UserSessionTTLHours == 0 {
		c.Auth.UserSessionTTLHours = 30 * 24
	}
	if c.Auth.PhoneRegion == "" {
		c.Auth.PhoneRegion = "IN"
	}
	if len(c.Owners) == 0 {
		c.Owners = DefaultOwners()
	}
	if len(c.Venues.Catalog) == 0 {
		c.Venues.Catalog = DefaultVenues()
	}
	if c.Stats.Timezone == "" {
		c.Stats.Timezone = "UTC"
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			problems = append(problems, "database.host and database.dbname are required for postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown storage.driver %q", c.Storage.Driver))
	}

	switch c.Auth.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		problems = append(problems, fmt.Sprintf("unknown auth.session_store %q", c.Auth.SessionStore))
	}

	if c.Auth.TokenSecret == "" {
		problems = append(problems, "auth.token_secret is required")
	}

	if c.Demo.EnableReset && c.Storage.Driver != DriverMemory {
		problems = append(problems, "demo.enable_reset requires the memory storage driver")
	}

	if _, err := c.Stats.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("stats.timezone: %v", err))
	}

	owners := make(map[string]struct{}, len(c.Owners))
	for i, o := range c.Owners {
		if o.ID == "" || o.Email == "" {
			problems = append(problems, fmt.Sprintf("owners[%d]: id and email are required", i))
		}
		if o.Password == "" && o.PasswordHash == "" {
			problems = append(problems, fmt.Sprintf("owners[%d]: password or password_hash is required", i))
		}
		owners[o.ID] = struct{}{}
	}

	venues := make(map[string]struct{}, len(c.Venues.Catalog))
	for i, v := range c.Venues.Catalog {
		if v.ID == "" {
			problems = append(problems, fmt.Sprintf("venues.catalog[%d]: id is required", i))
		}
		if _, dup := venues[v.ID]; dup {
			problems = append(problems, fmt.Sprintf("venues.catalog[%d]: duplicate id %q", i, v.ID))
		}
		venues[v.ID] = struct{}{}
		if _, ok := owners[v.OwnerID]; !ok {
			problems = append(problems, fmt.Sprintf("venues.catalog[%d]: unknown owner %q", i, v.OwnerID))
		}
	}

	if c.Venues.FallbackOwnerID != "" {
		if _, ok := owners[c.Venues.FallbackOwnerID]; !ok {
			problems = append(problems, fmt.Sprintf("venues.fallback_owner_id: unknown owner %q", c.Venues.FallbackOwnerID))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
