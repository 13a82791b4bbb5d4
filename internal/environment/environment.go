// Package environment holds the process-wide environment descriptor: the API
// server base URL plus the Auth0 parameters the frontend needs to start a
// login.
//
// An Environment is built once by New (or one of its callers: Development,
// Select, Default, LoadConfig) and handed to consumers explicitly. It has no
// setters; every accessor returns a copy.
package environment

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

type Environment struct {
	name       string
	production bool
	apiBase    url.URL
	auth       Auth
}

type Auth struct {
	domainPrefix string
	audience     string
	clientID     string
	callbackURL  string
}

// New validates cfg and returns the descriptor it describes.
func New(cfg Config) (Environment, error) {
	if err := cfg.Validate(); err != nil {
		return Environment{}, err
	}
	base, err := url.Parse(strings.TrimSpace(cfg.APIServerURL))
	if err != nil {
		return Environment{}, err
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = defaultName(cfg.Production)
	}
	return Environment{
		name:       name,
		production: cfg.Production,
		apiBase:    *base,
		auth: Auth{
			domainPrefix: strings.TrimSpace(cfg.Auth0.DomainPrefix),
			audience:     strings.TrimSpace(cfg.Auth0.Audience),
			clientID:     strings.TrimSpace(cfg.Auth0.ClientID),
			callbackURL:  strings.TrimSpace(cfg.Auth0.CallbackURL),
		},
	}, nil
}

func defaultName(production bool) string {
	if production {
		return "production"
	}
	return "development"
}

func (e Environment) Name() string { return e.name }
func (e Environment) Production() bool { return e.production }
func (e Environment) Auth() Auth { return e.auth }
func (e Environment) APIServerURL() string {
	u := e.apiBase
	return u.String()
}

// IsZero reports whether e was never built by New.
func (e Environment) IsZero() bool {
	return e == Environment{}
}

// Endpoint joins elem onto the API server base URL. Dot segments are
// resolved against the base path and never climb above it, so
// Endpoint("..", "admin") under https://h/api is https://h/api/admin.
func (e Environment) Endpoint(elem ...string) string {
	u := e.apiBase
	if len(elem) == 0 {
		return u.String()
	}
	joined := strings.Join(elem, "/")
	rel := path.Clean("/" + joined)
	if rel != "/" && strings.HasSuffix(joined, "/") {
		rel += "/"
	}
	return u.JoinPath(rel).String()
}

// Config returns the descriptor in its decodable form. New(e.Config())
// yields an equal Environment.
func (e Environment) Config() Config {
	return Config{
		Name:         e.name,
		Production:   e.production,
		APIServerURL: e.APIServerURL(),
		Auth0: Auth0Config{
			DomainPrefix: e.auth.domainPrefix,
			Audience:     e.auth.audience,
			ClientID:     e.auth.clientID,
			CallbackURL:  e.auth.callbackURL,
		},
	}
}

func (e Environment) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Config())
}

func (a Auth) DomainPrefix() string { return a.domainPrefix }
func (a Auth) Audience() string { return a.audience }
func (a Auth) ClientID() string { return a.clientID }
func (a Auth) CallbackURL() string { return a.callbackURL }
