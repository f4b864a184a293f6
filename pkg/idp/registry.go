/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package idp resolves client ids to third-party identity providers. When a
// registered delegate matches, the authorization flow is proxied to that
// provider instead of being handled natively.
package idp

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// Delegate describes one third-party identity provider the server can hand an
// authorization request over to.
type Delegate struct {
	// ClientID is the client id incoming requests are matched on.
	ClientID string `json:"clientId"`

	// AuthorizationEndpoint of the third-party provider.
	AuthorizationEndpoint string `json:"authorizationEndpoint"`

	// DelegateClientID is the client id this server is registered under at the provider.
	DelegateClientID string `json:"delegateClientId"`

	// RedirectURI the provider sends the browser back to.
	RedirectURI string `json:"redirectUri"`

	// Scopes requested from the provider.
	Scopes []string `json:"scopes,omitempty"`
}

// AuthorizationRedirectURL computes the provider redirect for one authorization
// transaction.
func (d *Delegate) AuthorizationRedirectURL(state, nonce string) string {
	cfg := oauth2.Config{
		ClientID: d.DelegateClientID,
		Endpoint: oauth2.Endpoint{
			AuthURL: d.AuthorizationEndpoint,
		},
		RedirectURL: d.RedirectURI,
		Scopes:      d.Scopes,
	}

	return cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("nonce", nonce))
}

// Registry holds the registered delegates keyed by client id.
type Registry struct {
	delegates map[string]*Delegate
}

// NewRegistry creates a Registry from the given delegates.
func NewRegistry(delegates []*Delegate) *Registry {
	m := make(map[string]*Delegate, len(delegates))

	for _, d := range delegates {
		m[d.ClientID] = d
	}

	return &Registry{delegates: m}
}

// NewRegistryFromFile reads a JSON array of delegates from path.
func NewRegistryFromFile(path string) (*Registry, error) {
	b, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read identity provider delegates: %w", err)
	}

	var delegates []*Delegate

	if err = json.Unmarshal(b, &delegates); err != nil {
		return nil, fmt.Errorf("unmarshal identity provider delegates: %w", err)
	}

	return NewRegistry(delegates), nil
}

// Resolve returns the delegate registered for clientID, if any.
func (r *Registry) Resolve(clientID string) (*Delegate, bool) {
	d, ok := r.delegates[clientID]

	return d, ok
}
