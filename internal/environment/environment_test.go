package environment

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		Name:         "staging",
		Production:   true,
		APIServerURL: "https://api.example.com",
		Auth0: Auth0Config{
			DomainPrefix: "tenant",
			Audience:     "coffee",
			ClientID:     "client-123",
			CallbackURL:  "https://app.example.com",
		},
	}
}

func TestNewOK(t *testing.T) {
	env, err := New(validConfig())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if env.Name() != "staging" || !env.Production() {
		t.Fatalf("unexpected env: %+v", env.Config())
	}
	if env.APIServerURL() != "https://api.example.com" {
		t.Fatalf("api url: %s", env.APIServerURL())
	}
	auth := env.Auth()
	if auth.DomainPrefix() != "tenant" || auth.Audience() != "coffee" || auth.ClientID() != "client-123" || auth.CallbackURL() != "https://app.example.com" {
		t.Fatalf("unexpected auth: %+v", env.Config().Auth0)
	}
}

func TestNewTrimsValues(t *testing.T) {
	cfg := validConfig()
	cfg.Auth0.ClientID = "  client-123 \n"
	cfg.APIServerURL = " https://api.example.com "
	env, err := New(cfg)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if env.Auth().ClientID() != "client-123" {
		t.Fatalf("client id not trimmed: %q", env.Auth().ClientID())
	}
	if env.APIServerURL() != "https://api.example.com" {
		t.Fatalf("api url not trimmed: %q", env.APIServerURL())
	}
}

func TestNewDefaultName(t *testing.T) {
	cfg := validConfig()
	cfg.Name = ""
	env, err := New(cfg)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if env.Name() != "production" {
		t.Fatalf("name: %s", env.Name())
	}
	cfg.Production = false
	env, err = New(cfg)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if env.Name() != "development" {
		t.Fatalf("name: %s", env.Name())
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	cfg := validConfig()
	cfg.Auth0.Audience = ""
	env, err := New(cfg)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !env.IsZero() {
		t.Fatalf("expected zero environment on error")
	}
}

func TestZeroEnvironment(t *testing.T) {
	var env Environment
	if !env.IsZero() {
		t.Fatalf("expected zero")
	}
	if Development().IsZero() {
		t.Fatalf("development should not be zero")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	env, err := New(validConfig())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	again, err := New(env.Config())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if again != env {
		t.Fatalf("round trip changed descriptor: %+v vs %+v", again.Config(), env.Config())
	}
}

func TestRepeatedReadsIdentical(t *testing.T) {
	env := Development()
	first := env.Config()
	for i := 0; i < 5; i++ {
		if env.Config() != first {
			t.Fatalf("read %d differs", i)
		}
		if env.APIServerURL() != first.APIServerURL {
			t.Fatalf("api url changed on read %d", i)
		}
	}
}

func TestAccessorCopiesDoNotLeak(t *testing.T) {
	env := Development()
	auth := env.Auth()
	auth.clientID = "changed"
	if env.Auth().ClientID() != devClientID {
		t.Fatalf("mutating a returned Auth changed the descriptor")
	}
	cfg := env.Config()
	cfg.APIServerURL = "http://elsewhere"
	if env.APIServerURL() != devAPIServerURL {
		t.Fatalf("mutating a returned Config changed the descriptor")
	}
}

func TestEndpoint(t *testing.T) {
	env := Development()
	tests := []struct {
		elem []string
		want string
	}{
		{nil, "http://127.0.0.1:5000"},
		{[]string{"drinks"}, "http://127.0.0.1:5000/drinks"},
		{[]string{"drinks-detail"}, "http://127.0.0.1:5000/drinks-detail"},
		{[]string{"drinks", "3"}, "http://127.0.0.1:5000/drinks/3"},
		{[]string{"/drinks/"}, "http://127.0.0.1:5000/drinks/"},
	}
	for _, tt := range tests {
		if got := env.Endpoint(tt.elem...); got != tt.want {
			t.Errorf("Endpoint(%q) = %q, want %q", tt.elem, got, tt.want)
		}
	}
}

func TestEndpointTargetsBaseURL(t *testing.T) {
	env := Development()
	for _, p := range []string{"drinks", "drinks-detail", "drinks/1"} {
		u, err := url.Parse(env.Endpoint(p))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if u.Scheme+"://"+u.Host != "http://127.0.0.1:5000" {
			t.Fatalf("endpoint %q left the api server: %s", p, u)
		}
	}
}

func TestEndpointKeepsBasePath(t *testing.T) {
	cfg := validConfig()
	cfg.APIServerURL = "https://example.com/api/"
	env, err := New(cfg)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := env.Endpoint("drinks"); got != "https://example.com/api/drinks" {
		t.Fatalf("got %s", got)
	}
}

func TestEndpointStaysUnderBasePath(t *testing.T) {
	cfg := validConfig()
	cfg.APIServerURL = "https://example.com/api"
	env, err := New(cfg)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	tests := []struct {
		elem []string
		want string
	}{
		{[]string{"..", "admin"}, "https://example.com/api/admin"},
		{[]string{"../../admin"}, "https://example.com/api/admin"},
		{[]string{"drinks", "..", "..", "x"}, "https://example.com/api/x"},
		{[]string{"./drinks", "3"}, "https://example.com/api/drinks/3"},
		{[]string{".."}, "https://example.com/api/"},
	}
	for _, tt := range tests {
		if got := env.Endpoint(tt.elem...); got != tt.want {
			t.Errorf("Endpoint(%q) = %q, want %q", tt.elem, got, tt.want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Development())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		`"production":false`,
		`"api_server_url":"http://127.0.0.1:5000"`,
		`"domain_prefix":"dev-pai0lgcg"`,
		`"audience":"dev"`,
		`"client_id":"Vl0lIqq5S3cS22S5ZWjFPt1gc87jpCGe"`,
		`"callback_url":"http://localhost:8100"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	env, err := New(cfg)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if env != Development() {
		t.Fatalf("decoded descriptor differs")
	}
}
