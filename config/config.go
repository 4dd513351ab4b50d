package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"dashboard/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath                = "."
	defaultLoginPath           = "/login"
	defaultSessionCheckTimeout = 5 * time.Second
	defaultProfileCacheTTL     = 5 * time.Minute
	defaultTokenTTL            = time.Hour
	defaultHeartbeatInterval   = 15 * time.Second
	defaultMaxSilence          = time.Minute
	defaultWatchdogSchedule    = "@every 30s"
	defaultInitialLoadLimit    = 50
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Realtime configuration for the notification push channel
	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// Firebase configuration for device alerts
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

// HTTPConfig defines the local dashboard API listener.
type HTTPConfig struct {
	Host      string `json:"host" yaml:"host"`
	Port      int    `json:"port" yaml:"port"`
	LoginPath string `json:"loginPath" yaml:"loginPath"`
	Timeouts  struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
	// RateLimit is requests per second per client IP; zero disables limiting.
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	// AllowedOrigins are the browser origins besides the agent itself that may call the API.
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
}

// AuthConfig defines session and profile resolution settings
type AuthConfig struct {
	SessionFile         string        `json:"sessionFile" yaml:"sessionFile"`
	SessionCheckTimeout time.Duration `json:"sessionCheckTimeout" yaml:"sessionCheckTimeout"`
	ProfileCacheTTL     time.Duration `json:"profileCacheTTL" yaml:"profileCacheTTL"`
	TokenTTL            time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	BcryptCost          int           `json:"bcryptCost" yaml:"bcryptCost"`
	JWTSecret           string        `json:"jwtSecret" yaml:"jwtSecret"`
	OIDC                *OIDCConfig   `json:"oidc" yaml:"oidc"`
}

// OIDCConfig switches token verification from the shared secret to OIDC discovery.
type OIDCConfig struct {
	IssuerURL string `json:"issuerUrl" yaml:"issuerUrl"`
	Audience  string `json:"audience" yaml:"audience"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RealtimeConfig defines the push channel transport
type RealtimeConfig struct {
	// Provider type: "memory", "postgres" or "google"
	Provider string `json:"provider" yaml:"provider"`

	// PostgreSQL DSN used for LISTEN/NOTIFY (postgres provider)
	PostgresDSN string `json:"postgresDsn" yaml:"postgresDsn"`

	// LISTEN channel name (postgres provider)
	Channel string `json:"channel" yaml:"channel"`

	// Google Cloud project, topic and subscription (google provider)
	ProjectID      string `json:"projectId" yaml:"projectId"`
	TopicID        string `json:"topicId" yaml:"topicId"`
	SubscriptionID string `json:"subscriptionId" yaml:"subscriptionId"`

	// How often an idle subscription emits a heartbeat
	HeartbeatInterval time.Duration `json:"heartbeatInterval" yaml:"heartbeatInterval"`

	// Silence after which the watchdog re-initializes the channel
	MaxSilence time.Duration `json:"maxSilence" yaml:"maxSilence"`

	// Cron spec of the reconnect watchdog
	WatchdogSchedule string `json:"watchdogSchedule" yaml:"watchdogSchedule"`

	// Number of recent notifications loaded when the channel opens
	InitialLoadLimit int `json:"initialLoadLimit" yaml:"initialLoadLimit"`
}

// FirebaseConfig defines Firebase configuration for device alerts
type FirebaseConfig struct {
	ProjectID       string   `json:"projectId" yaml:"projectId"`
	CredentialsPath string   `json:"credentialsPath" yaml:"credentialsPath"`
	DeviceTokens    []string `json:"deviceTokens" yaml:"deviceTokens"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.LoginPath) == "" {
		cfg.HTTP.LoginPath = defaultLoginPath
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.SessionCheckTimeout <= 0 {
		cfg.Auth.SessionCheckTimeout = defaultSessionCheckTimeout
	}
	if cfg.Auth.ProfileCacheTTL <= 0 {
		cfg.Auth.ProfileCacheTTL = defaultProfileCacheTTL
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.Auth.SessionFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Auth.SessionFile = filepath.Join(home, ".dashboard", "session.json")
		} else {
			cfg.Auth.SessionFile = "session.json"
		}
	}

	if cfg.Realtime == nil {
		cfg.Realtime = &RealtimeConfig{}
	}
	if cfg.Realtime.Channel == "" {
		cfg.Realtime.Channel = constants.DefaultRealtimeChannel
	}
	if cfg.Realtime.HeartbeatInterval <= 0 {
		cfg.Realtime.HeartbeatInterval = defaultHeartbeatInterval
	}
	if cfg.Realtime.MaxSilence <= 0 {
		cfg.Realtime.MaxSilence = defaultMaxSilence
	}
	if cfg.Realtime.WatchdogSchedule == "" {
		cfg.Realtime.WatchdogSchedule = defaultWatchdogSchedule
	}
	if cfg.Realtime.InitialLoadLimit <= 0 {
		cfg.Realtime.InitialLoadLimit = defaultInitialLoadLimit
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
