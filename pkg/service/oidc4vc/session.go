/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination session_mocks_test.go -self_package mocks -package oidc4vc_test -source=session.go -mock_names sessionStore=MockSessionStore

package oidc4vc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/walletgate/vc-auth/pkg/restapi/resterr"
)

// ClientSession is the persistent record of one authorization transaction. It
// is created at authorize time, mutated at direct-post (code, user info) and at
// token time (cNonce), and never deleted by the orchestrator.
type ClientSession struct {
	// ID opaque unique identifier, immutable after creation.
	ID string `json:"id"`

	// SessionID correlation id for UI notifications; defaults to Nonce.
	SessionID string `json:"sessionId"`

	// Nonce identifies one authorization transaction; binds the wallet's
	// response to the request and re-associates VCI flows via issuer state.
	Nonce string `json:"nonce"`

	// State CSRF-style correlator, generated when the caller supplies none.
	State string `json:"state"`

	ClientID      string `json:"clientId,omitempty"`
	RedirectURI   string `json:"redirectUri,omitempty"`
	CodeChallenge string `json:"codeChallenge,omitempty"`

	// AuthorizationDetails serialized structured claim describing the
	// requested credential type(s).
	AuthorizationDetails string `json:"authorizationDetails,omitempty"`

	// Request is the signed request-object JWT produced at authorize time.
	Request                string          `json:"request,omitempty"`
	PresentationDefinition json.RawMessage `json:"presentationDefinition,omitempty"`
	RequestID              string          `json:"requestId,omitempty"`

	// ValidationRule serialized rule set for the presentation verifier.
	ValidationRule json.RawMessage `json:"validationRule,omitempty"`

	// Code authorization code, set at most once after a successful direct-post.
	Code string `json:"code,omitempty"`

	// CNonce freshness token, rotated on every token call.
	CNonce          string `json:"cNonce,omitempty"`
	CNonceExpiresIn int64  `json:"cNonceExpiresIn,omitempty"`

	// UserInfo claims extracted from a verified credential or self-issued ID token.
	UserInfo map[string]interface{} `json:"userInfo,omitempty"`
}

type sessionStore interface {
	Save(ctx context.Context, session *ClientSession) error
	FindByNonce(ctx context.Context, nonce string) ([]*ClientSession, error)
	FindByState(ctx context.Context, state string) ([]*ClientSession, error)
	FindByCode(ctx context.Context, code string) ([]*ClientSession, error)
	FindByCNonce(ctx context.Context, cNonce string) ([]*ClientSession, error)
	FindByRequestID(ctx context.Context, requestID string) ([]*ClientSession, error)
}

// SessionManager wraps the session store with creation defaults and
// single-match lookup semantics.
type SessionManager struct {
	store sessionStore
}

// NewSessionManager creates a SessionManager.
func NewSessionManager(store sessionStore) *SessionManager {
	return &SessionManager{store: store}
}

// Create builds a new session for one authorization transaction. An empty
// nonce, state or sessionID is defaulted: nonce and state to fresh UUIDs,
// sessionID to the nonce.
func (sm *SessionManager) Create(ctx context.Context, nonce, state, sessionID string) (*ClientSession, error) {
	if nonce == "" {
		nonce = uuid.NewString()
	}

	if state == "" {
		state = uuid.NewString()
	}

	if sessionID == "" {
		sessionID = nonce
	}

	session := &ClientSession{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Nonce:     nonce,
		State:     state,
	}

	if err := sm.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save client session: %w", err)
	}

	return session, nil
}

// Save persists the session.
func (sm *SessionManager) Save(ctx context.Context, session *ClientSession) error {
	return sm.store.Save(ctx, session)
}

// GetByNonce returns the session identified by nonce.
func (sm *SessionManager) GetByNonce(ctx context.Context, nonce string) (*ClientSession, error) {
	return single(sm.store.FindByNonce(ctx, nonce))("nonce")
}

// GetByState returns the session identified by state.
func (sm *SessionManager) GetByState(ctx context.Context, state string) (*ClientSession, error) {
	return single(sm.store.FindByState(ctx, state))("state")
}

// GetByCode returns the session identified by an authorization code.
func (sm *SessionManager) GetByCode(ctx context.Context, code string) (*ClientSession, error) {
	return single(sm.store.FindByCode(ctx, code))("code")
}

// GetByCNonce returns the session identified by cNonce.
func (sm *SessionManager) GetByCNonce(ctx context.Context, cNonce string) (*ClientSession, error) {
	return single(sm.store.FindByCNonce(ctx, cNonce))("cNonce")
}

// GetByRequestID returns the session identified by requestID.
func (sm *SessionManager) GetByRequestID(ctx context.Context, requestID string) (*ClientSession, error) {
	return single(sm.store.FindByRequestID(ctx, requestID))("requestID")
}

// single reduces a store lookup to exactly one session. Zero matches map to
// ErrDataNotFound. More than one match means the store's uniqueness invariant
// is broken; silently picking the first would let one flow hijack another, so
// it is reported as an error.
func single(sessions []*ClientSession, err error) func(key string) (*ClientSession, error) {
	return func(key string) (*ClientSession, error) {
		if err != nil {
			return nil, fmt.Errorf("find client session by %s: %w", key, err)
		}

		switch len(sessions) {
		case 0:
			return nil, fmt.Errorf("find client session by %s: %w", key, resterr.ErrDataNotFound)
		case 1:
			return sessions[0], nil
		default:
			return nil, fmt.Errorf("find client session by %s: %d sessions share one value", key, len(sessions))
		}
	}
}
