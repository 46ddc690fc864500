package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Valores de desarrollo local. Nunca deben llegar a producción: Load los rechaza cuando APP_ENV=production.
const (
	devJWTSecret   = "crystal-trading-dev-secret-change-me"
	devUpstreamURL = "http://localhost:5000/api"
)

// EnvProduction valor de APP_ENV que activa las validaciones estrictas.
const EnvProduction = "production"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Upstream UpstreamConfig
	Transfer TransferConfig

	// Fallbacks lista las claves que se resolvieron con un valor inseguro de desarrollo.
	// main las registra como warning al arrancar.
	Fallbacks []string
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// IsProduction indica si la aplicación corre en producción.
func (c AppConfig) IsProduction() bool {
	return c.Env == EnvProduction
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UpstreamConfig backend al que se reenvían clientes, cuentas, comprobantes, facturas y modelos.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// TransferConfig ubicación del archivo JSON que respalda los traslados de stock.
type TransferConfig struct {
	StorePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. En producción, la ausencia de JWT_SECRET, UPSTREAM_BASE_URL
// o de la conexión a la base de datos es un error fatal.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "crystal-trading-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", ""),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "crystal_trading"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*12),
			Issuer:     getString(v, "JWT_ISSUER", "crystal-trading"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Upstream: UpstreamConfig{
			BaseURL: strings.TrimRight(getString(v, "UPSTREAM_BASE_URL", ""), "/"),
			Timeout: time.Duration(getInt(v, "UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Transfer: TransferConfig{
			StorePath: getString(v, "TRANSFER_STORE_PATH", "data/stock-transfers.json"),
		},
	}

	var missing []string
	if cfg.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
		cfg.JWT.Secret = devJWTSecret
	}
	if cfg.Upstream.BaseURL == "" {
		missing = append(missing, "UPSTREAM_BASE_URL")
		cfg.Upstream.BaseURL = devUpstreamURL
	}
	if cfg.DB.DatabaseURL == "" && cfg.DB.Host == "" {
		missing = append(missing, "DATABASE_URL")
		cfg.DB.Host = "localhost"
	}

	if cfg.App.IsProduction() && len(missing) > 0 {
		return nil, fmt.Errorf("config: %w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}
	cfg.Fallbacks = missing
	return cfg, nil
}

// ErrMissingRequired configuración obligatoria ausente en producción.
var ErrMissingRequired = errors.New("configuración obligatoria ausente")

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
