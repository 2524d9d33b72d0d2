package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kpaths/core"
)

// Sentinel errors returned by Load and Parse.
var (
	// ErrUnsupportedFormat indicates an unknown file extension or format name.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid file")
)

// Format names a file encoding.
type Format string

const (
	// YAML is decoded with gopkg.in/yaml.v3.
	YAML Format = "yaml"

	// TOML is decoded with github.com/BurntSushi/toml.
	TOML Format = "toml"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(fmt.Sprintf("config: register duration validation: %v", err))
	}

	return v
}

// Edge is one weighted edge of the graph section.
type Edge struct {
	From   string  `yaml:"from" toml:"from" json:"from" validate:"required"`
	To     string  `yaml:"to" toml:"to" json:"to" validate:"required"`
	Weight float64 `yaml:"weight" toml:"weight" json:"weight" validate:"gte=0"`
}

// Graph describes the graph every query runs over.
type Graph struct {
	Directed   bool   `yaml:"directed" toml:"directed" json:"directed"`
	MultiEdges bool   `yaml:"multi_edges" toml:"multi_edges" json:"multi_edges"`
	Loops      bool   `yaml:"loops" toml:"loops" json:"loops"`
	Edges      []Edge `yaml:"edges" toml:"edges" json:"edges" validate:"required,min=1,dive"`
}

// Query is one k-shortest-paths request.
//
// MaxDepth 0 means unbounded. Direction is "outgoing" (default) or "incoming".
type Query struct {
	Name      string `yaml:"name" toml:"name" json:"name" validate:"required"`
	Start     string `yaml:"start" toml:"start" json:"start" validate:"required"`
	Goal      string `yaml:"goal" toml:"goal" json:"goal" validate:"required"`
	K         int    `yaml:"k" toml:"k" json:"k" validate:"gt=0"`
	MaxDepth  int    `yaml:"max_depth" toml:"max_depth" json:"max_depth" validate:"gte=0"`
	Direction string `yaml:"direction" toml:"direction" json:"direction" validate:"omitempty,oneof=outgoing incoming"`
}

// File is a decoded workload.
type File struct {
	// Timeout bounds the whole run, as a Go duration string ("30s"). Empty means none.
	Timeout string  `yaml:"timeout" toml:"timeout" json:"timeout" validate:"omitempty,duration"`
	Graph   Graph   `yaml:"graph" toml:"graph" json:"graph"`
	Queries []Query `yaml:"queries" toml:"queries" json:"queries" validate:"required,min=1,unique=Name,dive"`
}

// FormatOf maps a file extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads, decodes and validates the file at path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse decodes data in the given format and validates the result.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("config: decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("config: decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown toml keys %v", ErrInvalid, undecoded)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks the struct tags of f.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// TimeoutDuration returns the parsed timeout, 0 when none is set.
// A malformed value yields an error wrapping ErrInvalid.
func (f *File) TimeoutDuration() (time.Duration, error) {
	if f.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(f.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %v", ErrInvalid, err)
	}

	return d, nil
}

// BuildGraph builds a core.Graph from the graph section.
func (f *File) BuildGraph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(f.Graph.Directed)}
	if f.Graph.MultiEdges {
		opts = append(opts, core.WithMultiEdges())
	}
	if f.Graph.Loops {
		opts = append(opts, core.WithLoops())
	}

	g := core.NewGraph(opts...)
	for i, e := range f.Graph.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("config: edge %d (%s->%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// ParsedDirection parses q.Direction; empty means core.Outgoing.
func (q Query) ParsedDirection() (core.Direction, error) {
	return core.ParseDirection(q.Direction)
}
