// Package config loads interpreter settings from a YAML file. Files are
// validated against an embedded JSON Schema before they are decoded.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/aledsdavies/lindenmaker/core/errors"
	"github.com/aledsdavies/lindenmaker/core/suggest"
	"github.com/aledsdavies/lindenmaker/runtime/interpreter"
	"github.com/aledsdavies/lindenmaker/runtime/renderer"
	"github.com/aledsdavies/lindenmaker/runtime/turtle"
)

// CurrentVersion is written by Default and is the newest accepted version
const CurrentVersion = "v1.0.0"

//go:embed schema.json
var schemaJSON string

// Config is the decoded configuration file
type Config struct {
	Version         string   `yaml:"version"`
	Defaults        Defaults `yaml:"defaults"`
	Frame           string   `yaml:"frame"`
	DrawNodes       bool     `yaml:"draw_nodes"`
	LegacyQueryAxis bool     `yaml:"legacy_query_axis"`
	Objects         []string `yaml:"objects"`
}

// Defaults mirrors interpreter.Defaults
type Defaults struct {
	Length   float64 `yaml:"length"`
	Width    float64 `yaml:"width"`
	Growth   float64 `yaml:"growth"`
	Angle    float64 `yaml:"angle"`
	Material int     `yaml:"material"`
}

// framePresets maps preset names to initial frames
var framePresets = map[string]func() turtle.Frame{
	"identity": turtle.IdentityFrame,
	"upward":   turtle.UpwardFrame,
}

// Default returns the configuration used when no file is given
func Default() *Config {
	d := interpreter.DefaultDefaults()
	return &Config{
		Version: CurrentVersion,
		Defaults: Defaults{
			Length:   d.Length,
			Width:    d.Width,
			Growth:   d.Growth,
			Angle:    d.Angle,
			Material: d.Material,
		},
		Frame: "identity",
	}
}

// Load reads and validates the configuration file at path
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.InvalidConfig, "cannot open config file", err).
			WithContext("path", path)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads a configuration document from r. Keys missing from the
// document keep their Default values; an empty document yields Default().
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.InvalidConfig, "cannot read config", err)
	}
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	if err := validateSchema(data); err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.Wrap(errors.InvalidConfig, "cannot decode config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the schema cannot express
func (c *Config) Validate() error {
	v := canonicalVersion(c.Version)
	if !semver.IsValid(v) {
		return errors.New(errors.InvalidConfig, fmt.Sprintf("invalid config version %q", c.Version))
	}
	if semver.Major(v) != semver.Major(CurrentVersion) {
		return errors.New(errors.InvalidConfig,
			fmt.Sprintf("unsupported config version %s, expected %s.x", c.Version, semver.Major(CurrentVersion))).
			WithContext("version", c.Version)
	}
	if _, err := c.InitialFrame(); err != nil {
		return err
	}
	return nil
}

// InitialFrame resolves the frame preset
func (c *Config) InitialFrame() (turtle.Frame, error) {
	name := c.Frame
	if name == "" {
		name = "identity"
	}
	preset, ok := framePresets[strings.ToLower(name)]
	if !ok {
		msg := fmt.Sprintf("unknown frame preset %q", c.Frame)
		if s := suggest.ClosestMatch(name, presetNames()); s != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}
		return turtle.Frame{}, errors.New(errors.InvalidConfig, msg).WithContext("frame", c.Frame)
	}
	return preset(), nil
}

// Options converts the configuration into interpreter options
func (c *Config) Options() ([]interpreter.Option, error) {
	frame, err := c.InitialFrame()
	if err != nil {
		return nil, err
	}
	opts := []interpreter.Option{
		interpreter.WithDefaults(interpreter.Defaults{
			Length:   c.Defaults.Length,
			Width:    c.Defaults.Width,
			Growth:   c.Defaults.Growth,
			Angle:    c.Defaults.Angle,
			Material: c.Defaults.Material,
		}),
		interpreter.WithInitialFrame(frame),
	}
	if c.DrawNodes {
		opts = append(opts, interpreter.WithNodes())
	}
	if c.LegacyQueryAxis {
		opts = append(opts, interpreter.WithLegacyQueryAxis())
	}
	return opts, nil
}

// RecorderOptions converts the object catalog into recorder options
func (c *Config) RecorderOptions() []renderer.Option {
	if len(c.Objects) == 0 {
		return nil
	}
	return []renderer.Option{renderer.WithObjects(c.Objects...)}
}

// validateSchema checks the raw document against the embedded schema
func validateSchema(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return errors.Wrap(errors.InvalidConfig, "cannot compile config schema", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(errors.InvalidConfig, "config is not valid YAML", err)
	}
	// the validator expects JSON-decoded values
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(errors.InvalidConfig, "config cannot be represented as JSON", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return errors.Wrap(errors.InvalidConfig, "config cannot be represented as JSON", err)
	}

	if err := schema.Validate(value); err != nil {
		return errors.Wrap(errors.InvalidConfig, "config does not match schema", err)
	}
	return nil
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if compiler.Formats == nil {
		compiler.Formats = make(map[string]func(interface{}) bool)
	}
	compiler.Formats["semver"] = func(v interface{}) bool {
		s, ok := v.(string)
		if !ok {
			return true // Type validation happens separately
		}
		return semver.IsValid(canonicalVersion(s))
	}

	url := "schema://lindenmaker.json"
	if err := compiler.AddResource(url, strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
})

// canonicalVersion adds the "v" prefix semver requires
func canonicalVersion(s string) string {
	if !strings.HasPrefix(s, "v") {
		return "v" + s
	}
	return s
}

func presetNames() []string {
	names := make([]string, 0, len(framePresets))
	for name := range framePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
