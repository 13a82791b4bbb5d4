package environment

import (
	"strings"

	"golang.org/x/oauth2"
)

const auth0Suffix = ".auth0.com"

// Domain is the Auth0 tenant host. A bare prefix gets the auth0.com suffix;
// anything already containing a dot is a full host.
func (a Auth) Domain() string {
	if strings.Contains(a.domainPrefix, ".") {
		return a.domainPrefix
	}
	return a.domainPrefix + auth0Suffix
}

// LoginURL is the /authorize link for the implicit flow the frontend uses.
// An empty state is omitted.
func (a Auth) LoginURL(state string) string {
	cfg := oauth2.Config{
		ClientID:    a.clientID,
		RedirectURL: a.callbackURL,
		Endpoint: oauth2.Endpoint{
			AuthURL: "https://" + a.Domain() + "/authorize",
		},
	}
	return cfg.AuthCodeURL(state,
		oauth2.SetAuthURLParam("audience", a.audience),
		oauth2.SetAuthURLParam("response_type", "token"),
	)
}
