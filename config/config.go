// Package config builds mux routers and CORS policies from YAML
// documents, so hosts can keep routing options out of code:
//
//	prefix: /api
//	handle_options: true
//	cors:
//	  allow_origin: "*"
//	  allow_headers: [Content-Type, Authorization]
//	  max_age: 3600
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wasmgate/canhttp/mux"
)

// Config declares router options and an optional CORS policy.
type Config struct {
	// Prefix is the global path prefix applied to every route
	// registered on the built router.
	Prefix string `yaml:"prefix"`

	// HandleOptions enables automatic OPTIONS pre-flight synthesis.
	HandleOptions bool `yaml:"handle_options"`

	// CORS, when present, declares the cross-origin response policy.
	CORS *CORS `yaml:"cors"`
}

// CORS declares a mux.Cors policy. AllowOrigin "*" allows any origin;
// an empty AllowOrigin leaves the policy inert.
type CORS struct {
	AllowOrigin      string   `yaml:"allow_origin"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	ExposeHeaders    []string `yaml:"expose_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           *int     `yaml:"max_age"`
	VaryOrigin       bool     `yaml:"vary_origin"`
}

// Load parses a YAML document. Unknown fields are rejected so typos in
// option names fail at setup instead of being silently ignored.
func Load(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if cfg.CORS != nil {
		for _, name := range cfg.CORS.AllowMethods {
			if _, err := mux.ParseMethod(name); err != nil {
				return nil, fmt.Errorf("config: cors allow_methods: %w", err)
			}
		}
	}
	return &cfg, nil
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Load(data)
}

// Router returns a route table with the declared prefix and OPTIONS
// behaviour applied.
func (c *Config) Router() *mux.Router {
	return mux.NewRouter().
		SetGlobalPrefix(c.Prefix).
		HandleOptions(c.HandleOptions)
}

// Cors builds the declared policy, or nil when the document has no cors
// section.
func (c *Config) Cors() *mux.Cors {
	if c.CORS == nil {
		return nil
	}

	policy := mux.NewCors()
	switch c.CORS.AllowOrigin {
	case "":
	case "*":
		policy.AnyOrigin()
	default:
		policy.AllowOrigin(c.CORS.AllowOrigin)
	}

	if len(c.CORS.AllowMethods) > 0 {
		methods := make([]mux.Method, 0, len(c.CORS.AllowMethods))
		for _, name := range c.CORS.AllowMethods {
			method, err := mux.ParseMethod(name)
			if err != nil {
				continue
			}
			methods = append(methods, method)
		}
		policy.AllowMethods(methods...)
	}
	if len(c.CORS.AllowHeaders) > 0 {
		policy.AllowHeaders(c.CORS.AllowHeaders...)
	}
	if len(c.CORS.ExposeHeaders) > 0 {
		policy.ExposeHeaders(c.CORS.ExposeHeaders...)
	}
	policy.Credentials(c.CORS.AllowCredentials)
	if c.CORS.MaxAge != nil {
		policy.MaxAge(*c.CORS.MaxAge)
	}
	policy.VaryOrigin(c.CORS.VaryOrigin)
	return policy
}
