package environment

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownEnvironment = errors.New("unknown environment")

const (
	devAPIServerURL = "http://127.0.0.1:5000"
	devDomainPrefix = "dev-pai0lgcg"
	devAudience     = "dev"
	devClientID     = "Vl0lIqq5S3cS22S5ZWjFPt1gc87jpCGe"
	devCallbackURL  = "http://localhost:8100"
)

// Development is the descriptor for a local stack: the Flask API on :5000
// and the Ionic app on :8100.
func Development() Environment {
	return mustNew(Config{
		Name:         "development",
		Production:   false,
		APIServerURL: devAPIServerURL,
		Auth0: Auth0Config{
			DomainPrefix: devDomainPrefix,
			Audience:     devAudience,
			ClientID:     devClientID,
			CallbackURL:  devCallbackURL,
		},
	})
}

// Only descriptors whose values are known at build time live here.
var builtin = map[string]func() Environment{
	"development": Development,
	"dev":         Development,
}

// Select returns the built-in descriptor registered under name.
func Select(name string) (Environment, error) {
	build, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Environment{}, fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}
	return build(), nil
}

// Names lists the canonical names Select accepts, without aliases.
func Names() []string {
	seen := map[string]bool{}
	var out []string
	for _, build := range builtin {
		name := build().Name()
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func mustNew(cfg Config) Environment {
	env, err := New(cfg)
	if err != nil {
		panic("environment: invalid built-in descriptor " + cfg.Name + ": " + err.Error())
	}
	return env
}
