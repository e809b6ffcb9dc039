package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	devEnvFile  = ".env.dev"
	prodEnvFile = ".env.prod"
)

// ErrInvalidEnvironment is returned when required variables are missing or malformed.
var ErrInvalidEnvironment = errors.New("invalid environment variables")

// Config centralises every runtime setting. It is built once at startup and
// handed to the components that need it.
type Config struct {
	AppName  string     `env:"APP_NAME" envDefault:"upload-api"`
	Port     string     `env:"PORT" validate:"required,min=2"`
	Env      string     `env:"NODE_ENV" validate:"required,min=3"`
	LogLevel string     `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string     `env:"LOG_FILE"`
	HTTP     HTTPConfig `envPrefix:"HTTP_"`
}

// HTTPConfig controls the HTTP server behaviour.
type HTTPConfig struct {
	Host               string        `env:"HOST"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout        time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes       int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Address is the host:port pair the HTTP listener binds to.
func (c Config) Address() string {
	return net.JoinHostPort(c.HTTP.Host, c.Port)
}

// IsDevelopment reports whether NODE_ENV selects the development settings.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// EnvFile returns the settings file name for the given mode.
func EnvFile(mode string) string {
	if mode == "development" {
		return devEnvFile
	}
	return prodEnvFile
}

// Load reads configuration from the working directory's env file and the process environment.
func Load() (Config, error) {
	return LoadDir(".")
}

// LoadDir is Load with the env file looked up in dir.
func LoadDir(dir string) (Config, error) {
	return Resolve(dir, environMap(os.Environ()))
}

// Resolve merges the mode-specific env file found in dir with environ, parses
// the result and validates it. Values in environ win over the file.
func Resolve(dir string, environ map[string]string) (Config, error) {
	path := filepath.Join(dir, EnvFile(environ["NODE_ENV"]))
	merged, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		merged = make(map[string]string, len(environ))
	}
	for k, v := range environ {
		merged[k] = v
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: merged}); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("env"), ",")
		if name == "" {
			return fld.Name
		}
		return name
	})

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidEnvironment, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidEnvironment, strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}

func environMap(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}
