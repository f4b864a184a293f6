/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialpattern

import (
	"encoding/json"
	"fmt"
	"os"
)

// Registry is an in-memory credential pattern catalog, typically loaded once at
// startup from a JSON file.
type Registry struct {
	patterns map[string]*Pattern
}

// NewRegistry creates a Registry from the given patterns.
func NewRegistry(patterns []*Pattern) *Registry {
	m := make(map[string]*Pattern, len(patterns))

	for _, p := range patterns {
		m[p.CredentialType] = p
	}

	return &Registry{patterns: m}
}

// NewRegistryFromFile reads a JSON array of patterns from path.
func NewRegistryFromFile(path string) (*Registry, error) {
	b, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read credential patterns: %w", err)
	}

	var patterns []*Pattern

	if err = json.Unmarshal(b, &patterns); err != nil {
		return nil, fmt.Errorf("unmarshal credential patterns: %w", err)
	}

	return NewRegistry(patterns), nil
}

// Resolve returns the pattern registered for credentialType.
func (r *Registry) Resolve(credentialType string) (*Pattern, error) {
	p, ok := r.patterns[credentialType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, credentialType)
	}

	return p, nil
}
