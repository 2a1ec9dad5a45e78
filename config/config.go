// Package config holds the data store client configuration and its loaders.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/viant/afs"
	"github.com/viant/scy"

	"github.com/viant/datastore/schema"
)

// Config is the construction contract of the data store client. All four
// values are required; Config is immutable once validated.
type Config struct {
	ServiceSecret string `json:"serviceSecret" yaml:"serviceSecret" env:"DATASTORE_SERVICE_SECRET"`
	ServiceToken  string `json:"serviceToken" yaml:"serviceToken" env:"DATASTORE_SERVICE_TOKEN"`
	ServiceSlug   string `json:"serviceSlug" yaml:"serviceSlug" env:"DATASTORE_SERVICE_SLUG"`
	URL           string `json:"url" yaml:"url" env:"DATASTORE_URL"`
}

// New builds a validated Config from the four required values.
func New(serviceSecret, serviceToken, serviceSlug, storeURL string) (*Config, error) {
	cfg := &Config{
		ServiceSecret: serviceSecret,
		ServiceToken:  serviceToken,
		ServiceSlug:   serviceSlug,
		URL:           storeURL,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the required values in fixed order: serviceToken,
// serviceSlug, url, serviceSecret. The first missing value wins.
func (c *Config) Validate() error {
	if c.ServiceToken == "" {
		return schema.NewNoServiceToken()
	}
	if c.ServiceSlug == "" {
		return schema.NewNoServiceSlug()
	}
	if c.URL == "" {
		return schema.NewNoMicroserviceUrl()
	}
	if c.ServiceSecret == "" {
		return schema.NewNoServiceSecret()
	}
	return nil
}

// FromEnv loads and validates the configuration from DATASTORE_* variables.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a JSON configuration document from location, which may be any
// URL the afs service understands. A "|<kmsKey>" suffix marks the document
// as scy-encrypted, e.g. "file:///etc/store.json.enc|blowfish://default".
func Load(ctx context.Context, location string) (*Config, error) {
	URL, key, encrypted := strings.Cut(location, "|")
	if encrypted {
		return loadSecure(ctx, URL, key)
	}
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %q: %w", URL, err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", URL, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadSecure(ctx context.Context, URL, key string) (*Config, error) {
	resource := scy.NewResource(Config{}, URL, key)
	secret, err := scy.New().Load(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("failed to load secure config %q: %w", URL, err)
	}
	cfg, ok := secret.Target.(*Config)
	if !ok {
		return nil, fmt.Errorf("unexpected secure config type %T", secret.Target)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
