/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package signer signs request objects and access/ID token claim sets with the
// issuer's EC key. Key management beyond loading a single signing key (HSM,
// remote KMS, rotation) is out of scope.
package signer

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Signer signs claim sets as compact JWTs using ES256.
type Signer struct {
	key jwk.Key
}

// New creates a Signer from an EC P-256 private key. keyID becomes the kid
// header of every produced JWT.
func New(privateKey *ecdsa.PrivateKey, keyID string) (*Signer, error) {
	key, err := jwk.FromRaw(privateKey)
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if err = key.Set(jwk.KeyIDKey, keyID); err != nil {
		return nil, fmt.Errorf("set kid: %w", err)
	}

	if err = key.Set(jwk.AlgorithmKey, jwa.ES256); err != nil {
		return nil, fmt.Errorf("set alg: %w", err)
	}

	return &Signer{key: key}, nil
}

// SignClaims signs the given claim set and returns the serialized JWT.
func (s *Signer) SignClaims(_ context.Context, claims map[string]interface{}) (string, error) {
	token := jwt.New()

	for name, value := range claims {
		if err := token.Set(name, value); err != nil {
			return "", fmt.Errorf("set claim %q: %w", name, err)
		}
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.ES256, s.key))
	if err != nil {
		return "", fmt.Errorf("sign claims: %w", err)
	}

	return string(signed), nil
}

// PublicJWK returns the public part of the signing key, for JWKS publication.
func (s *Signer) PublicJWK() (jwk.Key, error) {
	return s.key.PublicKey()
}

// LoadECPrivateKey reads a PEM-encoded EC private key from path. Both SEC 1
// ("EC PRIVATE KEY") and PKCS#8 ("PRIVATE KEY") encodings are accepted.
func LoadECPrivateKey(path string) (*ecdsa.PrivateKey, error) {
	b, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read signing key: %w", err)
	}

	block, _ := pem.Decode(b)
	if block == nil {
		return nil, errors.New("signing key is not PEM encoded")
	}

	switch block.Type {
	case "EC PRIVATE KEY":
		return x509.ParseECPrivateKey(block.Bytes)
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse signing key: %w", err)
		}

		ecKey, ok := key.(*ecdsa.PrivateKey)
		if !ok {
			return nil, errors.New("signing key is not an EC key")
		}

		return ecKey, nil
	default:
		return nil, fmt.Errorf("unsupported PEM block type %q", block.Type)
	}
}

// GenerateECPrivateKey creates an ephemeral P-256 key. Intended for dev mode
// where no key file is configured.
func GenerateECPrivateKey() (*ecdsa.PrivateKey, error) {
	return ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
}
