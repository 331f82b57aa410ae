package yamlconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/crush/internal/core/domain/config"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// DefaultFile is the configuration path relative to the home directory.
const DefaultFile = ".crush/config.yaml"

// Provider implements the ConfigProvider interface
// by reading the configuration from a YAML file.
type Provider struct {
	fs       afero.Fs
	filePath string
	validate *validator.Validate
}

// NewProvider creates a new Provider reading filePath from fs.
func NewProvider(fs afero.Fs, filePath string) (ports.ConfigProvider, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &Provider{fs: fs, filePath: filePath, validate: newValidator()}, nil
}

// DefaultPath returns the configuration path inside the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, DefaultFile), nil
}

// Load reads the configuration file. Keys missing from the file keep their
// defaults, and a missing or empty file yields config.Default().
// Unknown keys and values failing validation are errors.
func (p *Provider) Load() (config.Config, error) {
	cfg := config.Default()

	data, err := afero.ReadFile(p.fs, p.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return config.Config{}, fmt.Errorf("failed to read config file %s: %w", p.filePath, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		// A file holding only comments or "---" has no document.
		if errors.Is(err, io.EOF) {
			return config.Default(), nil
		}
		return config.Config{}, fmt.Errorf("failed to unmarshal config from %s: %w", p.filePath, err)
	}

	if err := p.validate.Struct(cfg); err != nil {
		return config.Config{}, fmt.Errorf("invalid config in %s: %w", p.filePath, describe(err))
	}
	return cfg, nil
}

// newValidator reports fields by their YAML key rather than the Go field name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// describe turns validator errors into one readable line per failing key.
func describe(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
