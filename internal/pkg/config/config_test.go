package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var baseValidConfig = AppConfig{
	Server: ServerConfig{Port: 8080},
	Mongo: MongoConfig{
		URI:             "mongodb://localhost:27017",
		DBName:          "FlatFund_Prod",
		MinPoolSize:     5,
		MaxPoolSize:     20,
		MaxConnIdleTime: 25 * time.Minute,
		ConnectTimeout:  10 * time.Second,
	},
	Redis: RedisConfig{
		Addr:           "localhost:6379",
		Password:       "pass",
		DB:             1,
		ConnectTimeout: 5 * time.Second,
	},
	PubSub: PubSubConfig{
		ProjectID:    "pid",
		ReceiptTopic: "receipt-notifications",
	},
	Billing: BillingConfig{DecisionTTLMinutes: 10},
}

func writeTempConfig(t *testing.T, cfg AppConfig) string {
	t.Helper()
	data, _ := yaml.Marshal(cfg)
	tmp := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmp, data, 0644))
	return tmp
}

func TestValidateConfigErrors(t *testing.T) {
	t.Run("min pool size too low", func(t *testing.T) {
		c := baseValidConfig
		c.Mongo.MinPoolSize = 1
		assert.Error(t, validateConfig(&c))
	})

	t.Run("max pool size too high", func(t *testing.T) {
		c := baseValidConfig
		c.Mongo.MaxPoolSize = 100
		assert.Error(t, validateConfig(&c))
	})

	t.Run("max conn idle time out of range", func(t *testing.T) {
		c := baseValidConfig
		c.Mongo.MaxConnIdleTime = 5 * time.Minute
		assert.Error(t, validateConfig(&c))
	})

	t.Run("decision ttl too low", func(t *testing.T) {
		c := baseValidConfig
		c.Billing.DecisionTTLMinutes = 0
		assert.Error(t, validateConfig(&c))
	})

	t.Run("decision ttl too high", func(t *testing.T) {
		c := baseValidConfig
		c.Billing.DecisionTTLMinutes = 120
		assert.Error(t, validateConfig(&c))
	})

	t.Run("valid config passes", func(t *testing.T) {
		c := baseValidConfig
		assert.NoError(t, validateConfig(&c))
	})
}

func TestLoadFromConfigFilePath(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromConfigFilePath(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unparseable yaml", func(t *testing.T) {
		tmp := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(tmp, []byte("server: [broken"), 0644))

		_, err := LoadFromConfigFilePath(tmp)
		assert.Error(t, err)
	})

	t.Run("valid file loads with defaults applied", func(t *testing.T) {
		tmp := writeTempConfig(t, baseValidConfig)

		cfg, err := LoadFromConfigFilePath(tmp)
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Logging.LogLevel)
		assert.Equal(t, 10, cfg.Billing.DecisionTTLMinutes)
	})
}

func TestGetEnvOrDefaultAsInt(t *testing.T) {
	t.Run("unset returns default", func(t *testing.T) {
		assert.Equal(t, 42, GetEnvOrDefaultAsInt("FLATFUND_TEST_UNSET", 42))
	})

	t.Run("set returns parsed value", func(t *testing.T) {
		t.Setenv("FLATFUND_TEST_INT", "7")
		assert.Equal(t, 7, GetEnvOrDefaultAsInt("FLATFUND_TEST_INT", 42))
	})

	t.Run("invalid returns default", func(t *testing.T) {
		t.Setenv("FLATFUND_TEST_INT", "abc")
		assert.Equal(t, 42, GetEnvOrDefaultAsInt("FLATFUND_TEST_INT", 42))
	})
}

func TestGetEnvOrDefaultAsString(t *testing.T) {
	t.Run("unset returns default", func(t *testing.T) {
		assert.Equal(t, "dflt", GetEnvOrDefaultAsString("FLATFUND_TEST_UNSET", "dflt"))
	})

	t.Run("blank returns default", func(t *testing.T) {
		t.Setenv("FLATFUND_TEST_STR", "   ")
		assert.Equal(t, "dflt", GetEnvOrDefaultAsString("FLATFUND_TEST_STR", "dflt"))
	})

	t.Run("set returns value", func(t *testing.T) {
		t.Setenv("FLATFUND_TEST_STR", "value")
		assert.Equal(t, "value", GetEnvOrDefaultAsString("FLATFUND_TEST_STR", "dflt"))
	})
}
