/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credentialpattern holds the catalog that maps a credential type to the
// artifacts the authorization flow needs: the presentation definition a wallet
// must satisfy, the validation rule passed to the presentation verifier, the
// wallet redirect URI and the sub-credentials required before issuance.
package credentialpattern

import (
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when a credential type has no registered pattern.
var ErrNotFound = errors.New("credential pattern not found")

// Pattern is the specification of one credential type.
type Pattern struct {
	// CredentialType is the type identifier, e.g. CTWalletSameAuthorisedInTime.
	CredentialType string `json:"credentialType"`

	// PresentationDefinition describes the credentials a wallet must present.
	// Nil when this type authenticates with a bare ID token.
	PresentationDefinition json.RawMessage `json:"presentationDefinition,omitempty"`

	// ValidationRule is the serialized rule set handed to the presentation verifier.
	ValidationRule json.RawMessage `json:"validationRule,omitempty"`

	// RedirectURI is the wallet endpoint the signed request object points at.
	RedirectURI string `json:"redirectUri"`

	// SubCredentials lists credential types that must be presented before this
	// one can be issued. Non-empty means issuance requires a vp_token round.
	SubCredentials []string `json:"subCredentials,omitempty"`
}

// RequiresPresentation reports whether a wallet response for this pattern must
// carry a vp_token.
func (p *Pattern) RequiresPresentation() bool {
	return len(p.PresentationDefinition) > 0
}

// RequiresSubCredentials reports whether issuance of this type is gated on
// presenting other credentials first.
func (p *Pattern) RequiresSubCredentials() bool {
	return len(p.SubCredentials) > 0
}
