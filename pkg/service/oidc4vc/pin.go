/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vc

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// PIN derives the four-digit user PIN for a pre-authorized transaction from its
// nonce. The derivation is deterministic so the offer side and the token side
// compute the same value without sharing state.
func PIN(nonce string) string {
	sum := sha256.Sum256([]byte(nonce))

	return fmt.Sprintf("%04d", binary.BigEndian.Uint32(sum[:4])%10000)
}
