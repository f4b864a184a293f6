/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signer

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/require"
)

func TestSigner_SignClaims(t *testing.T) {
	privateKey, err := GenerateECPrivateKey()
	require.NoError(t, err)

	s, err := New(privateKey, "key-1")
	require.NoError(t, err)

	signed, err := s.SignClaims(context.Background(), map[string]interface{}{
		"iss":   "did:key:issuer",
		"nonce": "nonce1",
	})
	require.NoError(t, err)

	parsed, err := jwt.Parse([]byte(signed),
		jwt.WithKey(jwa.ES256, privateKey.Public()), jwt.WithValidate(false))
	require.NoError(t, err)

	nonce, ok := parsed.Get("nonce")
	require.True(t, ok)
	require.Equal(t, "nonce1", nonce)
	require.Equal(t, "did:key:issuer", parsed.Issuer())
}

func TestSigner_PublicJWK(t *testing.T) {
	privateKey, err := GenerateECPrivateKey()
	require.NoError(t, err)

	s, err := New(privateKey, "key-1")
	require.NoError(t, err)

	pub, err := s.PublicJWK()
	require.NoError(t, err)
	require.Equal(t, "key-1", pub.KeyID())
}

func TestLoadECPrivateKey(t *testing.T) {
	t.Run("sec1 encoding", func(t *testing.T) {
		privateKey, err := GenerateECPrivateKey()
		require.NoError(t, err)

		der, err := x509.MarshalECPrivateKey(privateKey)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "key.pem")
		require.NoError(t, os.WriteFile(path,
			pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der}), 0o600))

		loaded, err := LoadECPrivateKey(path)
		require.NoError(t, err)
		require.True(t, privateKey.Equal(loaded))
	})

	t.Run("pkcs8 encoding", func(t *testing.T) {
		privateKey, err := GenerateECPrivateKey()
		require.NoError(t, err)

		der, err := x509.MarshalPKCS8PrivateKey(privateKey)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "key.pem")
		require.NoError(t, os.WriteFile(path,
			pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0o600))

		loaded, err := LoadECPrivateKey(path)
		require.NoError(t, err)
		require.True(t, privateKey.Equal(loaded))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadECPrivateKey(filepath.Join(t.TempDir(), "nope.pem"))
		require.ErrorContains(t, err, "read signing key")
	})

	t.Run("not pem", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key.pem")
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

		_, err := LoadECPrivateKey(path)
		require.ErrorContains(t, err, "not PEM encoded")
	})

	t.Run("unsupported block type", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key.pem")
		require.NoError(t, os.WriteFile(path,
			pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte{1}}), 0o600))

		_, err := LoadECPrivateKey(path)
		require.ErrorContains(t, err, "unsupported PEM block type")
	})
}
