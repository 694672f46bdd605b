package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/smallnest/statespace/log"
	"github.com/smallnest/statespace/search"
)

// Output formats accepted by --format.
const (
	formatText    = "text"
	formatMermaid = "mermaid"
	formatDOT     = "dot"
	formatASCII   = "ascii"
)

// config is the merged view of the config file and the command line.
type config struct {
	Strategy      string  `yaml:"strategy" validate:"required,strategy"`
	DepthLimit    int     `yaml:"depth_limit" validate:"gte=0"`
	MaxDepthLimit int     `yaml:"max_depth_limit" validate:"gte=0"`
	CycleDepth    int     `yaml:"cycle_depth" validate:"gte=0"`
	Weight        float64 `yaml:"weight" validate:"gte=0"`
	Format        string  `yaml:"format" validate:"oneof=text mermaid dot ascii"`
	LogLevel      string  `yaml:"log_level" validate:"loglevel"`
	Metrics       bool    `yaml:"metrics"`

	// Map is a YAML road map for the route problem; empty selects the
	// built-in map.
	Map string `yaml:"map"`
}

func defaultConfig() config {
	return config{
		Strategy:   string(search.StrategyBreadthFirst),
		DepthLimit: search.DefaultDepthLimit,
		CycleDepth: search.DefaultCycleDepth,
		Weight:     search.DefaultWeight,
		Format:     formatText,
		LogLevel:   "warn",
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		_, err := search.ParseStrategy(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field by its YAML name.
func (c config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s=%v fails %q", yamlName(fe.StructField()), fe.Value(), fe.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

var yamlNames = map[string]string{
	"Strategy":      "strategy",
	"DepthLimit":    "depth_limit",
	"MaxDepthLimit": "max_depth_limit",
	"CycleDepth":    "cycle_depth",
	"Weight":        "weight",
	"Format":        "format",
	"LogLevel":      "log_level",
}

func yamlName(field string) string {
	if name, ok := yamlNames[field]; ok {
		return name
	}
	return field
}

// searchOptions turns the config into engine options.
func (c config) searchOptions() []search.Option {
	return []search.Option{
		search.WithDepthLimit(c.DepthLimit),
		search.WithMaxDepthLimit(c.MaxDepthLimit),
		search.WithCycleDepth(c.CycleDepth),
		search.WithWeight(c.Weight),
	}
}
