package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSlot               = "default"
	defaultStartingGold       = 100
	defaultEventHistory       = 50
	defaultStorageDriver      = StorageDriverMemory
	defaultSlowQueryThreshold = 200 * time.Millisecond
	defaultSendBuffer         = 32
	defaultWriteTimeout       = 10 * time.Second
	defaultPingInterval       = 30 * time.Second
)

// Storage drivers for save slots.
const (
	StorageDriverMemory   = "memory"
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Game configuration for the simulation itself
	Game *GameConfig `json:"game" yaml:"game"`

	// Catalog configuration for the static game tables
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Storage configuration for save slots
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Websocket configuration for the event stream
	Websocket *WebsocketConfig `json:"websocket" yaml:"websocket"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GameConfig defines the rules of a running game
type GameConfig struct {
	// Save slot the server plays in
	Slot string `json:"slot" yaml:"slot"`

	// Gold a new game starts with
	StartingGold int `json:"startingGold" yaml:"startingGold"`

	// Reject operations outside their phase. Defaults to true when unset.
	StrictPhases *bool `json:"strictPhases" yaml:"strictPhases"`

	// Optional seed for a reproducible game
	Seed *int64 `json:"seed" yaml:"seed"`

	// Number of events returned by default from the event log
	EventHistory int `json:"eventHistory" yaml:"eventHistory"`
}

// IsStrictPhases reports whether phase gating is on.
func (g *GameConfig) IsStrictPhases() bool {
	return g == nil || g.StrictPhases == nil || *g.StrictPhases
}

// CatalogConfig defines where catalog overrides are read from
type CatalogConfig struct {
	// Path to a YAML file that replaces or extends the built-in tables. Empty uses the built-in tables only.
	Path string `json:"path" yaml:"path"`
}

// StorageConfig defines the save slot storage
type StorageConfig struct {
	// Driver is one of "memory", "file" or "postgres"
	Driver string `json:"driver" yaml:"driver"`

	// Path of the save file (file driver)
	Path string `json:"path" yaml:"path"`

	// SlowQueryThreshold marks postgres save store queries as slow in the log
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// WebsocketConfig defines the event stream connections
type WebsocketConfig struct {
	SendBuffer   int           `json:"sendBuffer" yaml:"sendBuffer"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	PingInterval time.Duration `json:"pingInterval" yaml:"pingInterval"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Game == nil {
		cfg.Game = &GameConfig{}
	}
	if strings.TrimSpace(cfg.Game.Slot) == "" {
		cfg.Game.Slot = defaultSlot
	}
	if cfg.Game.StartingGold <= 0 {
		cfg.Game.StartingGold = defaultStartingGold
	}
	if cfg.Game.EventHistory <= 0 {
		cfg.Game.EventHistory = defaultEventHistory
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if strings.TrimSpace(cfg.Storage.Driver) == "" {
		cfg.Storage.Driver = defaultStorageDriver
	}
	if cfg.Storage.SlowQueryThreshold <= 0 {
		cfg.Storage.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if cfg.Websocket == nil {
		cfg.Websocket = &WebsocketConfig{}
	}
	if cfg.Websocket.SendBuffer <= 0 {
		cfg.Websocket.SendBuffer = defaultSendBuffer
	}
	if cfg.Websocket.WriteTimeout <= 0 {
		cfg.Websocket.WriteTimeout = defaultWriteTimeout
	}
	if cfg.Websocket.PingInterval <= 0 {
		cfg.Websocket.PingInterval = defaultPingInterval
	}

	if cfg.TestRoutes == nil {
		cfg.TestRoutes = &TestRoutesConfig{}
	}
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverFile:
		if strings.TrimSpace(cfg.Storage.Path) == "" {
			return errors.New("storage.path is required for the file driver")
		}
	case StorageDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres driver")
		}
	default:
		return errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	return nil
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
