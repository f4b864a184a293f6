/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vc

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/walletgate/vc-auth/internal/logfields"
	"github.com/walletgate/vc-auth/pkg/event/spi"
	"github.com/walletgate/vc-auth/pkg/restapi/resterr"
)

// Token exchanges an authorization code, or a pre-authorized code plus PIN,
// for signed access and ID tokens.
func (s *Service) Token(ctx context.Context, req *TokenRequest) (*TokenResponse, error) {
	if req.PreAuthorizedCode != "" {
		return s.preAuthorizedCodeGrant(ctx, req)
	}

	return s.authorizationCodeGrant(ctx, req)
}

func (s *Service) preAuthorizedCodeGrant(ctx context.Context, req *TokenRequest) (*TokenResponse, error) {
	token, err := parseToken(req.PreAuthorizedCode)
	if err != nil {
		return nil, resterr.NewValidationError(resterr.BadRequest, "pre-authorized_code", err)
	}

	nonce := tokenStringClaim(token, "nonce")

	session, err := s.sessionManager.GetByNonce(ctx, nonce)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return nil, resterr.NewValidationError(resterr.BadRequest, "pre-authorized_code",
				errors.New("Client session not found"))
		}

		return nil, resterr.NewSystemError(resterr.ClientSessionStoreComponent, "GetByNonce", err)
	}

	if req.UserPin == "" {
		return nil, resterr.NewValidationError(resterr.BadRequest, "user_pin",
			errors.New("user_pin is required"))
	}

	if subtle.ConstantTimeCompare([]byte(req.UserPin), []byte(PIN(session.Nonce))) != 1 {
		s.sendEvent(ctx, spi.PINValidationFailed, session, nil)

		return nil, resterr.NewOIDCError("invalid_grant", errors.New("User Pin is not correct"))
	}

	return s.issueTokens(ctx, session, req, false)
}

func (s *Service) authorizationCodeGrant(ctx context.Context, req *TokenRequest) (*TokenResponse, error) {
	if req.Code == "" {
		return nil, resterr.NewValidationError(resterr.BadRequest, "code",
			errors.New("code is required"))
	}

	session, err := s.sessionManager.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return nil, resterr.NewValidationError(resterr.BadRequest, "code",
				errors.New("Client session not found"))
		}

		return nil, resterr.NewSystemError(resterr.ClientSessionStoreComponent, "GetByCode", err)
	}

	switch req.GrantType {
	case grantTypeAuthorizationCode:
		if session.CodeChallenge != "" {
			if computeCodeChallenge(req.CodeVerifier) != session.CodeChallenge {
				return nil, resterr.NewValidationError(resterr.BadRequest, "code_verifier",
					errors.New("Not valid code challenge"))
			}
		}
	case grantTypePreAuthorizedCode:
		// code lookup succeeded without the PIN flow, no PKCE on this grant
	default:
		return nil, resterr.NewValidationError(resterr.BadRequest, "grant_type",
			fmt.Errorf("unsupported grant type %s", req.GrantType))
	}

	return s.issueTokens(ctx, session, req, true)
}

// issueTokens signs the access and ID tokens, rotates the session's cNonce and
// publishes the token-issued event.
func (s *Service) issueTokens(
	ctx context.Context,
	session *ClientSession,
	req *TokenRequest,
	withAuthorizationDetails bool,
) (*TokenResponse, error) {
	clientID := req.ClientID
	if clientID == "" {
		clientID = s.issuerDID
	}

	now := time.Now()
	cNonce := uuid.NewString()
	cNonceExpiresIn := int64(s.cNonceTTL.Seconds())
	expiresIn := int64(s.tokenTTL.Seconds())

	claims := map[string]interface{}{
		"iss":                s.issuerDID,
		"aud":                s.issuerURI,
		"sub":                clientID,
		"client_id":          clientID,
		"iat":                now.Unix(),
		"exp":                now.Add(s.tokenTTL).Unix(),
		"c_nonce":            cNonce,
		"c_nonce_expires_in": cNonceExpiresIn,
	}

	if session.UserInfo != nil {
		claims["claims"] = session.UserInfo
	}

	if withAuthorizationDetails && session.AuthorizationDetails != "" &&
		gjson.Valid(session.AuthorizationDetails) {
		claims["authorization_details"] = json.RawMessage(session.AuthorizationDetails)
	}

	accessToken, err := s.tokenSigner.SignClaims(ctx, claims)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.TokenSignerComponent, "SignClaims", err)
	}

	idToken, err := s.tokenSigner.SignClaims(ctx, map[string]interface{}{
		"iss":   s.issuerDID,
		"aud":   s.issuerURI,
		"sub":   clientID,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
		"nonce": session.Nonce,
	})
	if err != nil {
		return nil, resterr.NewSystemError(resterr.TokenSignerComponent, "SignClaims", err)
	}

	session.CNonce = cNonce
	session.CNonceExpiresIn = cNonceExpiresIn

	if err = s.sessionManager.Save(ctx, session); err != nil {
		return nil, resterr.NewSystemError(resterr.ClientSessionStoreComponent, "Save", err)
	}

	s.sendEvent(ctx, spi.TokenIssued, session, map[string]string{
		"clientId":  clientID,
		"grantType": req.GrantType,
	})

	logger.Infoc(ctx, "Tokens issued",
		logfields.WithClientID(clientID),
		logfields.WithGrantType(req.GrantType),
		logfields.WithSessionID(session.SessionID))

	return &TokenResponse{
		AccessToken:     accessToken,
		IDToken:         idToken,
		TokenType:       "Bearer",
		ExpiresIn:       expiresIn,
		CNonce:          cNonce,
		CNonceExpiresIn: cNonceExpiresIn,
	}, nil
}

// computeCodeChallenge applies the S256 PKCE transform: unpadded base64url of
// the verifier's SHA-256 digest.
func computeCodeChallenge(codeVerifier string) string {
	digest := sha256.Sum256([]byte(codeVerifier))

	return base64.RawURLEncoding.EncodeToString(digest[:])
}
