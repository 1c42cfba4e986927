package typeschema

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the YAML generator configuration kept next to a project:
//
//	exclude:
//	  - "**/generated/**"
//	extra:
//	  $id: https://example.com/config.json
//	  title: Config
type Config struct {
	Exclude []string       `yaml:"exclude"`
	Extra   map[string]any `yaml:"extra"`
}

// LoadConfig reads a YAML config. Unknown fields are rejected so typos fail
// loudly; an empty document yields the zero config.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Config
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}
		return nil, err
	}
	return &c, nil
}

// Options translates the config into Create options. An explicit empty
// exclude list in the YAML disables exclusion, matching WithExclude.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Exclude != nil {
		opts = append(opts, WithExclude(c.Exclude...))
	}
	for k, v := range c.Extra {
		opts = append(opts, WithExtra(k, v))
	}
	return opts
}
