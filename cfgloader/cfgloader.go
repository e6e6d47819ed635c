// Package cfgloader loads and validates configuration at the start of an application.
//
// Configuration lives in YAML files named after the ENVIRONMENT variable
// (./config/${ENVIRONMENT}.yaml). Environment variable references inside the
// file are expanded, missing fields fall back to `default` struct tags, and
// the result is checked against `validate` struct tags before being returned.
package cfgloader

import (
	"fmt"
	"os"
	"reflect"
	"slices"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rise-and-shine/wrapkit/logger"
	"github.com/rise-and-shine/wrapkit/val"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"
)

// CodeInvalidConfig marks configuration loading failures.
const CodeInvalidConfig = "INVALID_CONFIG"

// Load loads and validates configuration from a YAML file selected by the
// ENVIRONMENT variable.
//
// The configuration struct should use `yaml` struct tags to map fields to
// the YAML file structure. Default values can be set with the `default`
// tag (applied when the YAML file leaves the field zero) and validations
// with the `validate` tag.
// See https://pkg.go.dev/github.com/go-playground/validator/v10.
//
// Example:
//
//	type Config struct {
//	    Host     string `yaml:"host" validate:"required"`
//	    Port     int    `yaml:"port" default:"8080"`
//	    LogLevel string `yaml:"log_level" default:"info"`
//	}
func Load[T any](opts ...Option) (T, error) {
	var config T

	if reflect.ValueOf(config).Kind() == reflect.Ptr {
		return config, errx.New("config type must not be a pointer",
			errx.WithCode(CodeInvalidConfig))
	}

	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}

	// optional; real env vars take precedence over .env entries
	_ = godotenv.Load()

	env, err := defineEnvironment()
	if err != nil {
		return config, err
	}

	path := fmt.Sprintf("./config/%s.yaml", env)

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errx.Wrap(err,
			errx.WithCode(CodeInvalidConfig),
			errx.WithDetails(errx.D{"path": path, "environment": env}),
		)
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errx.Wrap(err,
			errx.WithCode(CodeInvalidConfig),
			errx.WithDetails(errx.D{"path": path, "environment": env}),
		)
	}

	if err := defaults.Set(&config); err != nil {
		return config, errx.Wrap(err, errx.WithCode(CodeInvalidConfig))
	}

	if err := val.ValidateSchema(&config); err != nil {
		return config, err
	}

	if !options.Silent {
		printConfig(config)
	}

	return config, nil
}

// MustLoad is Load that terminates the process on failure.
func MustLoad[T any](opts ...Option) T {
	config, err := Load[T](opts...)
	if err != nil {
		logger.Fatalx(err)
	}
	return config
}

func defineEnvironment() (string, error) {
	env := os.Getenv("ENVIRONMENT")
	choices := []string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}
	if !slices.Contains(choices, env) {
		return "", errx.New("ENVIRONMENT variable is not set or invalid",
			errx.WithCode(CodeInvalidConfig),
			errx.WithDetails(errx.D{"value": env, "choices": choices}),
		)
	}
	return env, nil
}
