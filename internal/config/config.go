// Package config loads the command line tool configuration.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	yaml "gopkg.in/yaml.v3"

	"github.com/goliatone/go-htmlextra"
	"github.com/goliatone/go-htmlextra/pkg/extension"
	"github.com/goliatone/go-htmlextra/pkg/render/template/gotemplate"
)

//go:embed config.yaml
var defaults []byte

type (
	TemplatesConfig struct {
		Dir       string `yaml:"dir"`
		Extension string `yaml:"extension"`
		Embedded  bool   `yaml:"embedded"`
	}

	MarkupConfig struct {
		Ellipsis      string `yaml:"ellipsis"`
		ContextLength int    `yaml:"context_length"`
	}

	LoggingConfig struct {
		Level string `yaml:"level"`
	}

	Config struct {
		Version   int             `yaml:"version"`
		Templates TemplatesConfig `yaml:"templates"`
		Markup    MarkupConfig    `yaml:"markup"`
		Logging   LoggingConfig   `yaml:"logging"`
		Globals   map[string]any  `yaml:"globals"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// only fields defined above are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration file at path on top of the
// embedded defaults. An empty path returns the defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaults, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if len(path) == 0 {
		return cfg, cfg.validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if cfg, err = unmarshalConfig(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, cfg.validate()
}

// Prepare returns the default configuration.
func Prepare() []byte {
	return bytes.Clone(defaults)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

func (c *Config) validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported configuration version %d", c.Version)
	}
	if c.Markup.ContextLength <= 0 {
		return fmt.Errorf("markup.context_length must be positive, got %d", c.Markup.ContextLength)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// Prepare builds the program logger writing to stderr. Debug switches to a
// development logger at debug level.
func (l LoggingConfig) Prepare(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	level, err := zapcore.ParseLevel(strings.TrimSpace(l.Level))
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}

// Options translates the configuration into engine options.
func (c *Config) Options(logger *zap.Logger) []htmlextra.Option {
	var engine []gotemplate.Option
	if c.Templates.Dir != "" {
		engine = append(engine, gotemplate.WithBaseDir(c.Templates.Dir))
	}
	engine = append(engine,
		gotemplate.WithExtension(c.Templates.Extension),
		gotemplate.WithGlobalData(c.Globals),
	)

	opts := []htmlextra.Option{
		htmlextra.WithLogger(logger),
		htmlextra.WithEngineOptions(engine...),
		htmlextra.WithExtensionOptions(c.ExtensionOptions()...),
	}
	if c.Templates.Embedded {
		opts = append(opts, htmlextra.WithEmbeddedTemplates())
	}
	return opts
}

// ExtensionOptions returns the helper options for standalone use.
func (c *Config) ExtensionOptions() []extension.Option {
	var opts []extension.Option
	if c.Markup.Ellipsis != "" {
		opts = append(opts, extension.WithEllipsis(c.Markup.Ellipsis))
	}
	return opts
}
