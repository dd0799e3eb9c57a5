package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento admitidos.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Store   StoreConfig
	DB      DBConfig
	Cache   CacheConfig
	Swagger SwaggerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selecciona la persistencia: postgres o memory.
type StoreConfig struct {
	Driver string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
	ForceIPv4   bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// CacheConfig caché Redis de lecturas por ID. Addr vacío = deshabilitada.
type CacheConfig struct {
	Addr string
	TTL  time.Duration
}

// Enabled informa si hay Redis configurado.
func (c CacheConfig) Enabled() bool {
	return c.Addr != ""
}

// SwaggerConfig documento OpenAPI servido en /docs.
type SwaggerConfig struct {
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, STORE_DRIVER, REDIS_ADDR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: .env o config.env en el directorio actual o ./config
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "empresas-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:         getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:         getInt(v, "HTTP_PORT", 8001),
			ReadTimeout:  time.Duration(getInt(v, "HTTP_READ_TIMEOUT_SECONDS", 10)) * time.Second,
			WriteTimeout: time.Duration(getInt(v, "HTTP_WRITE_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", StorePostgres)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "empresas"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 25)),
			ForceIPv4:   getBool(v, "DB_FORCE_IPV4", false),
		},
		Cache: CacheConfig{
			Addr: getString(v, "REDIS_ADDR", ""),
			TTL:  time.Duration(getInt(v, "CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Swagger: SwaggerConfig{
			FilePath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rechaza combinaciones que impedirían arrancar.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("config: STORE_DRIVER %q no soportado (postgres|memory)", c.Store.Driver)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT %d fuera de rango", c.HTTP.Port)
	}
	if c.Store.Driver == StorePostgres && c.DB.MaxConns <= 0 {
		return fmt.Errorf("config: DB_MAX_CONNS debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(v.GetString(key))
	if err != nil {
		return def
	}
	return b
}
