/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -self_package mocks -package oidc4vc_test -source=service.go -mock_names presentationVerifier=MockPresentationVerifier,tokenSigner=MockTokenSigner,patternRegistry=MockPatternRegistry,delegateResolver=MockDelegateResolver,eventService=MockEventService,callbackMarker=MockCallbackMarker

// Package oidc4vc orchestrates the authorization flow for credential issuance
// (OID4VCI) and presentation (OID4VP): authorize, request-by-reference,
// direct-post, token and callback.
package oidc4vc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/walletgate/vc-auth/internal/logfields"
	"github.com/walletgate/vc-auth/pkg/credentialpattern"
	"github.com/walletgate/vc-auth/pkg/event/spi"
	"github.com/walletgate/vc-auth/pkg/idp"
	"github.com/walletgate/vc-auth/pkg/verifier"
)

var logger = log.New("oidc4vc-service")

const (
	defaultTokenTTL  = time.Hour
	defaultCNonceTTL = 5 * time.Minute
)

type presentationVerifier interface {
	VerifyPresentation(
		ctx context.Context,
		vpToken string,
		presentationDefinition, validationRule json.RawMessage,
		sessionID string,
	) (*verifier.Result, error)
}

type tokenSigner interface {
	SignClaims(ctx context.Context, claims map[string]interface{}) (string, error)
}

type patternRegistry interface {
	Resolve(credentialType string) (*credentialpattern.Pattern, error)
}

type delegateResolver interface {
	Resolve(clientID string) (*idp.Delegate, bool)
}

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type callbackMarker interface {
	SetIfNotExist(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	SessionStore         sessionStore
	PresentationVerifier presentationVerifier
	TokenSigner          tokenSigner
	PatternRegistry      patternRegistry
	DelegateResolver     delegateResolver
	EventService         eventService
	EventTopic           string
	CallbackMarker       callbackMarker

	// IssuerDID is the DID the server signs request objects and tokens under.
	IssuerDID string

	// IssuerURI is the server's own authority URI, used as the request object's
	// client_id and as the token audience.
	IssuerURI string

	// DefaultWalletRedirectURL receives error redirects when no session is
	// available to supply one.
	DefaultWalletRedirectURL string

	TokenTTL  time.Duration
	CNonceTTL time.Duration
}

// Service implements the authorization flow operations.
type Service struct {
	sessionManager       *SessionManager
	presentationVerifier presentationVerifier
	tokenSigner          tokenSigner
	patternRegistry      patternRegistry
	delegateResolver     delegateResolver
	eventSvc             eventService
	eventTopic           string
	callbackMarker       callbackMarker

	issuerDID                string
	issuerURI                string
	defaultWalletRedirectURL string
	tokenTTL                 time.Duration
	cNonceTTL                time.Duration
}

// NewService creates Service.
func NewService(config *Config) *Service {
	tokenTTL := config.TokenTTL
	if tokenTTL == 0 {
		tokenTTL = defaultTokenTTL
	}

	cNonceTTL := config.CNonceTTL
	if cNonceTTL == 0 {
		cNonceTTL = defaultCNonceTTL
	}

	return &Service{
		sessionManager:           NewSessionManager(config.SessionStore),
		presentationVerifier:     config.PresentationVerifier,
		tokenSigner:              config.TokenSigner,
		patternRegistry:          config.PatternRegistry,
		delegateResolver:         config.DelegateResolver,
		eventSvc:                 config.EventService,
		eventTopic:               config.EventTopic,
		callbackMarker:           config.CallbackMarker,
		issuerDID:                config.IssuerDID,
		issuerURI:                config.IssuerURI,
		defaultWalletRedirectURL: config.DefaultWalletRedirectURL,
		tokenTTL:                 tokenTTL,
		cNonceTTL:                cNonceTTL,
	}
}

// sendEvent publishes a flow-progress event. Delivery is best-effort: a publish
// failure is logged and never fails the operation that triggered it.
func (s *Service) sendEvent(ctx context.Context, eventType spi.EventType, session *ClientSession, payload interface{}) {
	if s.eventSvc == nil {
		return
	}

	event := spi.NewEvent(uuid.NewString(), s.issuerURI, eventType)

	if session != nil {
		event.SessionID = session.SessionID
	}

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			logger.Warnc(ctx, "Failed to marshal event payload", log.WithError(err),
				logfields.WithEvent(string(eventType)))

			return
		}

		event.DataContentType = "application/json"
		event.Data = data
	}

	if err := s.eventSvc.Publish(ctx, s.eventTopic, event); err != nil {
		logger.Warnc(ctx, "Failed to publish event", log.WithError(err),
			logfields.WithEvent(string(eventType)), logfields.WithTopic(s.eventTopic))
	}
}

// parseToken decodes a JWT without verifying its signature. Signature and trust
// chain checks are the verifier service's concern; the orchestrator only needs
// the claim set.
func parseToken(raw string) (jwt.Token, error) {
	token, err := jwt.Parse([]byte(raw), jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return nil, fmt.Errorf("parse jwt: %w", err)
	}

	return token, nil
}

func jsonOf(claims map[string]interface{}) (string, error) {
	raw, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}

	return string(raw), nil
}

// tokenStringClaim returns a string claim from a parsed token, or empty.
func tokenStringClaim(token jwt.Token, name string) string {
	v, ok := token.Get(name)
	if !ok {
		return ""
	}

	str, ok := v.(string)
	if !ok {
		return ""
	}

	return str
}
