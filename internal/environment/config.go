package environment

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Config is the on-disk and wire shape of a descriptor.
type Config struct {
	Name         string      `json:"name,omitempty"`
	Production   bool        `json:"production"`
	APIServerURL string      `json:"api_server_url"`
	Auth0        Auth0Config `json:"auth0"`
}

type Auth0Config struct {
	DomainPrefix string `json:"domain_prefix"`
	Audience     string `json:"audience"`
	ClientID     string `json:"client_id"`
	CallbackURL  string `json:"callback_url"`
}

// Validate reports every missing or malformed field, joined.
func (c Config) Validate() error {
	var errs []error
	if err := validateURL("api_server_url", c.APIServerURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateRequired("auth0.domain_prefix", c.Auth0.DomainPrefix); err != nil {
		errs = append(errs, err)
	}
	if err := validateRequired("auth0.audience", c.Auth0.Audience); err != nil {
		errs = append(errs, err)
	}
	if err := validateRequired("auth0.client_id", c.Auth0.ClientID); err != nil {
		errs = append(errs, err)
	}
	if err := validateURL("auth0.callback_url", c.Auth0.CallbackURL); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func validateRequired(field string, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(field + " required")
	}
	return nil
}

func validateURL(field string, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errors.New(field + " required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return errors.New(field + " must be an absolute URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: unsupported scheme %q", field, u.Scheme)
	}
	return nil
}
