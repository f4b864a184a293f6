/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/walletgate/vc-auth/internal/logfields"
	"github.com/walletgate/vc-auth/pkg/credentialpattern"
	"github.com/walletgate/vc-auth/pkg/event/spi"
	"github.com/walletgate/vc-auth/pkg/restapi/resterr"
)

const requestURIPath = "/request_uri/"

// Authorize accepts an incoming authorization request, persists its session and
// either hands the flow over to a delegate identity provider or answers with a
// signed request object served by reference.
func (s *Service) Authorize(ctx context.Context, req *AuthorizationRequest) (*AuthorizeResult, error) {
	session, err := s.resolveSession(ctx, req)
	if err != nil {
		return nil, err
	}

	session.ClientID = req.ClientID
	session.RedirectURI = req.RedirectURI
	session.CodeChallenge = req.CodeChallenge
	session.AuthorizationDetails = req.AuthorizationDetails

	if req.Nonce != "" {
		session.Nonce = req.Nonce
	}

	if req.State != "" {
		session.State = req.State
	}

	if err = s.sessionManager.Save(ctx, session); err != nil {
		return nil, resterr.NewSystemError(resterr.ClientSessionStoreComponent, "Save", err)
	}

	if delegate, ok := s.delegateResolver.Resolve(req.ClientID); ok {
		logger.Infoc(ctx, "Delegating authorization request",
			logfields.WithClientID(req.ClientID), logfields.WithSessionID(session.SessionID))

		s.sendEvent(ctx, spi.AuthorizationInitiated, session, map[string]string{
			"clientId": req.ClientID,
			"delegate": delegate.AuthorizationEndpoint,
		})

		return &AuthorizeResult{
			RedirectURL: delegate.AuthorizationRedirectURL(session.State, session.Nonce),
		}, nil
	}

	if !lo.Contains(strings.Split(req.Scope, " "), scopeOpenID) {
		return nil, resterr.NewValidationError(resterr.BadRequest, "scope",
			fmt.Errorf("scope must contain %s", scopeOpenID))
	}

	flow, pattern, err := s.resolveFlow(req)
	if err != nil {
		return nil, err
	}

	responseType := resolveResponseType(flow, pattern)

	requestObject, err := s.buildRequestObject(session, pattern, responseType)
	if err != nil {
		return nil, err
	}

	signedRequest, err := s.signRequestObject(ctx, requestObject)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.TokenSignerComponent, "SignClaims", err)
	}

	session.Request = signedRequest
	session.RequestID = requestIDFromURI(requestObject.RequestURI)
	session.PresentationDefinition = requestObject.PresentationDefinition
	session.ValidationRule = resolveValidationRule(pattern, s.patternRegistry)

	if err = s.sessionManager.Save(ctx, session); err != nil {
		return nil, resterr.NewSystemError(resterr.ClientSessionStoreComponent, "Save", err)
	}

	logger.Infoc(ctx, "Authorization request accepted",
		logfields.WithFlow(string(flow)),
		logfields.WithCredentialType(pattern.CredentialType),
		logfields.WithResponseType(requestObject.ResponseType),
		logfields.WithSessionID(session.SessionID))

	s.sendEvent(ctx, spi.AuthorizationInitiated, session, map[string]string{
		"flow":           string(flow),
		"credentialType": pattern.CredentialType,
		"responseType":   requestObject.ResponseType,
	})

	if req.Redirect != nil && !*req.Redirect {
		return &AuthorizeResult{RequestObject: requestObject}, nil
	}

	return &AuthorizeResult{
		RedirectURL: redirectTarget(req) + "?request_uri=" + url.QueryEscape(requestObject.RequestURI),
	}, nil
}

// RequestObjectByID returns the signed request object generated at authorize
// time for the given request id.
func (s *Service) RequestObjectByID(ctx context.Context, id string) (string, error) {
	session, err := s.sessionManager.GetByRequestID(ctx, id)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return "", resterr.NewCustomError(resterr.DoesntExist,
				fmt.Errorf("request object not found: %w", err))
		}

		return "", resterr.NewSystemError(resterr.ClientSessionStoreComponent, "GetByRequestID", err)
	}

	return session.Request, nil
}

// resolveSession re-associates a credential-issuance flow with its originating
// session via issuer state, or creates a new session.
func (s *Service) resolveSession(ctx context.Context, req *AuthorizationRequest) (*ClientSession, error) {
	if req.IssuerState == "" {
		session, err := s.sessionManager.Create(ctx, req.Nonce, req.State, "")
		if err != nil {
			return nil, resterr.NewSystemError(resterr.ClientSessionStoreComponent, "Create", err)
		}

		return session, nil
	}

	token, err := parseToken(req.IssuerState)
	if err != nil {
		return nil, resterr.NewValidationError(resterr.BadRequest, "issuer_state", err)
	}

	nonce := tokenStringClaim(token, "nonce")

	session, err := s.sessionManager.GetByNonce(ctx, nonce)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return nil, resterr.NewCustomError(resterr.DoesntExist,
				fmt.Errorf("no session for issuer state: %w", err))
		}

		return nil, resterr.NewSystemError(resterr.ClientSessionStoreComponent, "GetByNonce", err)
	}

	logger.Debugc(ctx, "Re-associated session via issuer state", logfields.WithNonce(nonce))

	return session, nil
}

// resolveFlow determines the protocol family and the credential pattern the
// request is about. A credential type inside authorization_details selects the
// issuance flow; a scope token matching the catalog selects presentation.
func (s *Service) resolveFlow(req *AuthorizationRequest) (Flow, *credentialpattern.Pattern, error) {
	if credentialType := credentialTypeFromAuthorizationDetails(req.AuthorizationDetails); credentialType != "" {
		pattern, err := s.patternRegistry.Resolve(credentialType)
		if err != nil {
			return "", nil, resterr.NewValidationError(resterr.BadRequest, "authorization_details",
				fmt.Errorf("resolve credential type %s: %w", credentialType, err))
		}

		return FlowVCI, pattern, nil
	}

	for _, scopeToken := range strings.Split(req.Scope, " ") {
		if scopeToken == scopeOpenID || scopeToken == "" {
			continue
		}

		pattern, err := s.patternRegistry.Resolve(scopeToken)
		if err != nil {
			if errors.Is(err, credentialpattern.ErrNotFound) {
				continue
			}

			return "", nil, resterr.NewSystemError(resterr.CredentialPatternRegistryComponent, "Resolve", err)
		}

		return FlowVP, pattern, nil
	}

	return "", nil, resterr.NewValidationError(resterr.BadRequest, "scope",
		errors.New("credential ID required in authorization_details for VCI or scope for VP"))
}

// resolveResponseType applies the decision table: presentation flows answer
// with vp_token when the pattern declares a presentation definition, issuance
// flows when it declares required sub-credentials; id_token otherwise.
func resolveResponseType(flow Flow, pattern *credentialpattern.Pattern) ResponseType {
	switch flow {
	case FlowVP:
		if pattern.RequiresPresentation() {
			return ResponseTypeVPToken
		}
	case FlowVCI:
		if pattern.RequiresSubCredentials() {
			return ResponseTypeVPToken
		}
	}

	return ResponseTypeIDToken
}

func (s *Service) buildRequestObject(
	session *ClientSession,
	pattern *credentialpattern.Pattern,
	responseType ResponseType,
) (*RequestObject, error) {
	requestID := uuid.NewString()

	requestObject := &RequestObject{
		ISS:          s.issuerDID,
		ClientID:     s.issuerURI,
		ResponseType: string(responseType),
		ResponseMode: responseModeDirectPost,
		Scope:        scopeOpenID,
		Nonce:        session.Nonce,
		State:        session.State,
		RequestURI:   s.issuerURI + requestURIPath + requestID,
		RedirectURI:  pattern.RedirectURI,
	}

	if responseType == ResponseTypeVPToken {
		presentationDefinition, err := resolvePresentationDefinition(pattern, s.patternRegistry)
		if err != nil {
			return nil, err
		}

		requestObject.PresentationDefinition = presentationDefinition
	}

	return requestObject, nil
}

func (s *Service) signRequestObject(ctx context.Context, requestObject *RequestObject) (string, error) {
	raw, err := json.Marshal(requestObject)
	if err != nil {
		return "", fmt.Errorf("marshal request object: %w", err)
	}

	var claims map[string]interface{}

	if err = json.Unmarshal(raw, &claims); err != nil {
		return "", fmt.Errorf("unmarshal request object claims: %w", err)
	}

	return s.tokenSigner.SignClaims(ctx, claims)
}

// resolvePresentationDefinition returns the pattern's own presentation
// definition, falling back to the first sub-credential's definition for
// issuance flows gated on presenting another credential.
func resolvePresentationDefinition(
	pattern *credentialpattern.Pattern,
	registry patternRegistry,
) (json.RawMessage, error) {
	if pattern.RequiresPresentation() {
		return pattern.PresentationDefinition, nil
	}

	if !pattern.RequiresSubCredentials() {
		return nil, nil
	}

	subPattern, err := registry.Resolve(pattern.SubCredentials[0])
	if err != nil {
		return nil, resterr.NewValidationError(resterr.BadRequest, "authorization_details",
			fmt.Errorf("resolve sub-credential %s: %w", pattern.SubCredentials[0], err))
	}

	return subPattern.PresentationDefinition, nil
}

// resolveValidationRule mirrors resolvePresentationDefinition for the rule set
// handed to the presentation verifier.
func resolveValidationRule(pattern *credentialpattern.Pattern, registry patternRegistry) json.RawMessage {
	if len(pattern.ValidationRule) > 0 || !pattern.RequiresSubCredentials() {
		return pattern.ValidationRule
	}

	subPattern, err := registry.Resolve(pattern.SubCredentials[0])
	if err != nil {
		return nil
	}

	return subPattern.ValidationRule
}

// credentialTypeFromAuthorizationDetails extracts the most specific type from
// the first authorization_details entry: the last element of its types array.
func credentialTypeFromAuthorizationDetails(authorizationDetails string) string {
	if authorizationDetails == "" {
		return ""
	}

	types := gjson.Get(authorizationDetails, "0.types").Array()
	if len(types) == 0 {
		return ""
	}

	return types[len(types)-1].String()
}

// redirectTarget prefers the caller's declared authorization endpoint from
// client_metadata over its redirect_uri.
func redirectTarget(req *AuthorizationRequest) string {
	if endpoint := gjson.Get(req.ClientMetadata, "authorization_endpoint").String(); endpoint != "" {
		return endpoint
	}

	return req.RedirectURI
}

func requestIDFromURI(requestURI string) string {
	if idx := strings.LastIndex(requestURI, "/"); idx >= 0 {
		return requestURI[idx+1:]
	}

	return requestURI
}
