package cfgloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/wrapkit/cfgloader"
)

type dbConfig struct {
	Host     string `yaml:"host"     validate:"required"`
	Port     int    `yaml:"port"     default:"5432"`
	Password string `yaml:"password" mask:"true"`
}

type appConfig struct {
	Name     string   `yaml:"name" validate:"required"`
	LogLevel string   `yaml:"log_level" default:"info"`
	DB       dbConfig `yaml:"db"`
}

// writeConfig puts content into ./config/test.yaml inside a temp working dir.
func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "test.yaml"), []byte(content), 0o644))
	t.Chdir(dir)
	t.Setenv("ENVIRONMENT", cfgloader.EnvTest)
}

func TestLoad(t *testing.T) {
	writeConfig(t, `
name: wrapkit
db:
  host: localhost
  password: secret
`)

	cfg, err := cfgloader.Load[appConfig](cfgloader.WithSilent())
	require.NoError(t, err)

	assert.Equal(t, "wrapkit", cfg.Name)
	assert.Equal(t, "info", cfg.LogLevel, "default applied")
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port, "default applied")
	assert.Equal(t, "secret", cfg.DB.Password)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	writeConfig(t, `
name: wrapkit
db:
  host: ${DB_HOST}
`)
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := cfgloader.Load[appConfig](cfgloader.WithSilent())
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.DB.Host)
}

func TestLoadValidationFailure(t *testing.T) {
	writeConfig(t, `
db:
  host: localhost
`)

	_, err := cfgloader.Load[appConfig](cfgloader.WithSilent())
	require.Error(t, err)
	assert.Equal(t, errx.T_Validation, errx.GetType(err))
}

func TestLoadMissingEnvironment(t *testing.T) {
	writeConfig(t, "name: wrapkit")
	t.Setenv("ENVIRONMENT", "nonsense")

	_, err := cfgloader.Load[appConfig](cfgloader.WithSilent())
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, cfgloader.CodeInvalidConfig))
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENVIRONMENT", cfgloader.EnvTest)

	_, err := cfgloader.Load[appConfig](cfgloader.WithSilent())
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, cfgloader.CodeInvalidConfig))
}

func TestLoadRejectsPointerType(t *testing.T) {
	writeConfig(t, "name: wrapkit")

	_, err := cfgloader.Load[*appConfig](cfgloader.WithSilent())
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, cfgloader.CodeInvalidConfig))
}
