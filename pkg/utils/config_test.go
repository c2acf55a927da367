package utils

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("with nil values", func(t *testing.T) {
		config := NewConfig(nil)
		require.NotNil(t, config)
		assert.False(t, config.Has("anything"))
	})

	t.Run("values are copied", func(t *testing.T) {
		values := map[string]string{"API_PORT": "9000"}
		config := NewConfig(values)

		values["API_PORT"] = "modified"
		assert.Equal(t, "9000", config.Get("API_PORT"))
	})
}

func TestNewConfigFromEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("STRINGS_TEST_KEY=from_file\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("STRINGS_TEST_KEY") })

	config := NewConfigFromEnv(envFile, filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "from_file", config.Get("STRINGS_TEST_KEY"))
}

func TestConfigGetWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"existing": "value",
		"empty":    "",
	})

	assert.Equal(t, "value", config.GetWithDefault("existing", "default"))
	assert.Equal(t, "default", config.GetWithDefault("missing", "default"))
	assert.Equal(t, "default", config.GetWithDefault("empty", "default"))
}

func TestConfigGetBool(t *testing.T) {
	config := NewConfig(map[string]string{
		"true_bool":    "true",
		"upper_true":   "TRUE",
		"false_bool":   "false",
		"true_1":       "1",
		"true_yes":     "yes",
		"true_enabled": "enabled",
		"false_off":    "off",
		"invalid":      "invalid_bool",
		"empty":        "",
	})

	tests := []struct {
		key      string
		expected bool
	}{
		{"true_bool", true},
		{"upper_true", true},
		{"false_bool", false},
		{"true_1", true},
		{"true_yes", true},
		{"true_enabled", true},
		{"false_off", false},
		{"invalid", false},
		{"empty", false},
		{"missing", false},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			assert.Equal(t, test.expected, config.GetBool(test.key), "GetBool(%s)", test.key)
		})
	}
}

func TestConfigGetInt(t *testing.T) {
	config := NewConfig(map[string]string{
		"valid_int":   "42",
		"negative":    "-10",
		"invalid_int": "not_a_number",
		"empty":       "",
	})

	assert.Equal(t, 42, config.GetInt("valid_int"))
	assert.Equal(t, -10, config.GetInt("negative"))
	assert.Equal(t, 0, config.GetInt("invalid_int"))
	assert.Equal(t, 0, config.GetInt("missing"))

	assert.Equal(t, 42, config.GetIntWithDefault("valid_int", 999))
	assert.Equal(t, 999, config.GetIntWithDefault("missing", 999))
	assert.Equal(t, 999, config.GetIntWithDefault("empty", 999))
	assert.Equal(t, 0, config.GetIntWithDefault("invalid_int", 999))
}

func TestConfigHas(t *testing.T) {
	config := NewConfig(map[string]string{"API_KEY": "secret", "MYSQL_DATABASE": ""})

	assert.True(t, config.Has("API_KEY"))
	assert.False(t, config.Has("MYSQL_DATABASE"))
	assert.False(t, config.Has("missing"))
}

func TestConfigConcurrentReads(t *testing.T) {
	config := NewConfig(map[string]string{"counter": "0"})

	var wg sync.WaitGroup
	wg.Add(50)

	for i := 0; i < 50; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				key := "key_" + string(rune('a'+id%26))
				config.Get(key)
				config.Has(key)
				config.GetBool("counter")
				config.GetIntWithDefault("counter", 1)
			}
		}(i)
	}

	wg.Wait()
}

func TestEnvFile(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	assert.Equal(t, ".env", EnvFile())

	t.Setenv("ENV_FILE", "custom.env")
	assert.Equal(t, "custom.env", EnvFile())
}
