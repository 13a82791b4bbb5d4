package environment

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

const (
	EnvFileVar      = "COFFEESHOP_ENV_FILE"
	ProductionVar   = "COFFEESHOP_PRODUCTION"
	APIServerURLVar = "COFFEESHOP_API_SERVER_URL"
	DomainPrefixVar = "AUTH0_DOMAIN_PREFIX"
	AudienceVar     = "AUTH0_AUDIENCE"
	ClientIDVar     = "AUTH0_CLIENT_ID"
	CallbackURLVar  = "AUTH0_CALLBACK_URL"
)

var ErrSchema = errors.New("environment schema validation failed")

//go:embed schemas/environment.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// LoadConfig reads a JSON descriptor from path, checks it against the
// embedded schema and builds the Environment.
func LoadConfig(path string) (Environment, error) {
	cfg, err := readConfig(path)
	if err != nil {
		return Environment{}, err
	}
	return New(cfg)
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := validateSchema(data); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func validateSchema(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	if len(result.Errors()) == 0 {
		return ErrSchema
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}

// FromEnv overlays non-empty environment variables on base. A nil lookup
// reads the process environment.
func FromEnv(base Config, lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := base
	overlay := map[string]*string{
		APIServerURLVar: &cfg.APIServerURL,
		DomainPrefixVar: &cfg.Auth0.DomainPrefix,
		AudienceVar:     &cfg.Auth0.Audience,
		ClientIDVar:     &cfg.Auth0.ClientID,
		CallbackURLVar:  &cfg.Auth0.CallbackURL,
	}
	for key, dst := range overlay {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	if v, ok := lookup(ProductionVar); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return base, fmt.Errorf("%s: %w", ProductionVar, err)
		}
		cfg.Production = b
	}
	return cfg, nil
}

func loadProduction(lookup func(string) (string, bool)) (Environment, error) {
	var cfg Config
	if path, ok := lookup(EnvFileVar); ok && strings.TrimSpace(path) != "" {
		loaded, err := readConfig(strings.TrimSpace(path))
		if err != nil {
			return Environment{}, err
		}
		cfg = loaded
	}
	cfg, err := FromEnv(cfg, lookup)
	if err != nil {
		return Environment{}, err
	}
	cfg.Production = true
	// A file written for a built-in environment must not carry its name
	// into a production process.
	name := strings.ToLower(strings.TrimSpace(cfg.Name))
	if _, known := builtin[name]; known || name == "" {
		cfg.Name = "production"
	}
	env, err := New(cfg)
	if err != nil {
		return Environment{}, fmt.Errorf("production environment: %w", err)
	}
	return env, nil
}
