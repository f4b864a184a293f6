/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vc

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/tidwall/gjson"

	"github.com/walletgate/vc-auth/internal/logfields"
	"github.com/walletgate/vc-auth/pkg/event/spi"
	"github.com/walletgate/vc-auth/pkg/restapi/resterr"
)

const (
	errTypeInvalidRequest = "invalid_request"
	errTypeAccessDenied   = "access_denied"
)

// DirectPost processes the wallet's authorization response. Validation and
// protocol failures do not surface as errors; they come back as tagged results
// carrying the redirect the wallet must follow.
func (s *Service) DirectPost(ctx context.Context, req *DirectPostRequest) (*DirectPostResult, error) {
	if (req.IDToken == "") == (req.VPToken == "") {
		return nil, resterr.NewValidationError(resterr.BadRequest, "id_token",
			errors.New("exactly one of id_token and vp_token must be supplied"))
	}

	raw := req.IDToken
	if raw == "" {
		raw = req.VPToken
	}

	token, err := parseToken(raw)
	if err != nil {
		return nil, resterr.NewValidationError(resterr.BadRequest, "id_token", err)
	}

	session, err := s.sessionByState(ctx, req.State)
	if err != nil {
		return nil, err
	}

	if session.State != req.State {
		return nil, resterr.NewValidationError(resterr.BadRequest, "state",
			errors.New("State value is not correct"))
	}

	// An empty nonce claim in the presented token is accepted. Some wallets
	// omit it, and the session was already selected by state.
	if nonce := tokenStringClaim(token, "nonce"); nonce != "" && nonce != session.Nonce {
		return s.validationFailedResult(session, req, "Nonce value is not correct"), nil
	}

	if req.VPToken != "" {
		result, verifyErr := s.verifyPresentation(ctx, session, req)
		if verifyErr != nil {
			return nil, verifyErr
		}

		if result != nil {
			return result, nil
		}
	} else {
		session.UserInfo = claimsOf(token)
	}

	return s.issueCode(ctx, session, req)
}

// DirectPostEPassport is the passport-specific variant: id_token only, strict
// nonce equality, and every failure redirects the wallet instead of returning
// an HTTP error.
func (s *Service) DirectPostEPassport(ctx context.Context, req *DirectPostRequest) (*DirectPostResult, error) {
	if req.IDToken == "" {
		return s.validationFailedResult(nil, req, "id_token is required"), nil
	}

	token, err := parseToken(req.IDToken)
	if err != nil {
		return s.validationFailedResult(nil, req, "id_token is not a valid JWT"), nil
	}

	session, err := s.sessionManager.GetByState(ctx, req.State)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return s.validationFailedResult(nil, req, "Client session not found"), nil
		}

		return nil, resterr.NewSystemError(resterr.ClientSessionStoreComponent, "GetByState", err)
	}

	if session.State != req.State {
		return s.validationFailedResult(session, req, "State value is not correct"), nil
	}

	if tokenStringClaim(token, "nonce") != session.Nonce {
		return s.validationFailedResult(session, req, "Nonce value is not correct"), nil
	}

	session.UserInfo = claimsOf(token)

	return s.issueCode(ctx, session, req)
}

func (s *Service) sessionByState(ctx context.Context, state string) (*ClientSession, error) {
	session, err := s.sessionManager.GetByState(ctx, state)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return nil, resterr.NewValidationError(resterr.BadRequest, "state",
				errors.New("Client session not found"))
		}

		return nil, resterr.NewSystemError(resterr.ClientSessionStoreComponent, "GetByState", err)
	}

	return session, nil
}

// verifyPresentation runs the external verifier over the vp_token. A nil result
// with nil error means verification passed and userInfo has been filled.
func (s *Service) verifyPresentation(
	ctx context.Context,
	session *ClientSession,
	req *DirectPostRequest,
) (*DirectPostResult, error) {
	s.sendEvent(ctx, spi.WalletResponseReceived, session, nil)

	report, err := s.presentationVerifier.VerifyPresentation(ctx,
		req.VPToken, session.PresentationDefinition, session.ValidationRule, session.SessionID)
	if err != nil {
		return nil, resterr.NewSystemError(resterr.PresentationVerifierComponent, "VerifyPresentation", err)
	}

	if !report.Verified {
		logger.Warnc(ctx, "Presentation verification failed",
			logfields.WithSessionID(session.SessionID))

		s.sendEvent(ctx, spi.PresentationVerificationFailed, session, map[string]string{
			"message": report.Message,
		})

		return s.protocolErrorResult(session, req, errTypeAccessDenied, report.Message), nil
	}

	s.sendEvent(ctx, spi.PresentationVerified, session, nil)

	userInfo, err := credentialSubjectClaims(req.VPToken)
	if err != nil {
		return nil, resterr.NewValidationError(resterr.BadRequest, "vp_token", err)
	}

	session.UserInfo = userInfo

	return nil, nil
}

// issueCode generates the authorization code, persists it and builds the
// success redirect.
func (s *Service) issueCode(ctx context.Context, session *ClientSession, req *DirectPostRequest) (*DirectPostResult, error) {
	session.Code = uuid.NewString()

	if err := s.sessionManager.Save(ctx, session); err != nil {
		return nil, resterr.NewSystemError(resterr.ClientSessionStoreComponent, "Save", err)
	}

	s.sendEvent(ctx, spi.HolderAuthenticated, session, map[string]string{
		"code":  session.Code,
		"state": session.State,
	})

	logger.Infoc(ctx, "Holder authenticated",
		logfields.WithSessionID(session.SessionID), logfields.WithState(session.State))

	return &DirectPostResult{
		Status: DirectPostAuthenticated,
		RedirectURL: fmt.Sprintf("%s?code=%s&state=%s",
			s.redirectBase(session, req), url.QueryEscape(session.Code), url.QueryEscape(session.State)),
	}, nil
}

// validationFailedResult builds the invalid_request redirect. State is echoed
// back on this branch.
func (s *Service) validationFailedResult(session *ClientSession, req *DirectPostRequest, description string) *DirectPostResult {
	redirectURL := fmt.Sprintf("%s?error=%s&error_description=%s&state=%s",
		s.redirectBase(session, req), errTypeInvalidRequest,
		url.QueryEscape(description), url.QueryEscape(req.State))

	return &DirectPostResult{
		Status:           DirectPostValidationFailed,
		RedirectURL:      redirectURL,
		ErrorType:        errTypeInvalidRequest,
		ErrorDescription: description,
	}
}

// protocolErrorResult builds the redirect for a protocol-defined failure such
// as access_denied. State is intentionally not echoed on this branch.
func (s *Service) protocolErrorResult(session *ClientSession, req *DirectPostRequest, errType, description string) *DirectPostResult {
	redirectURL := fmt.Sprintf("%s?error=%s&error_description=%s",
		s.redirectBase(session, req), errType, url.QueryEscape(description))

	return &DirectPostResult{
		Status:           DirectPostProtocolError,
		RedirectURL:      redirectURL,
		ErrorType:        errType,
		ErrorDescription: description,
	}
}

// redirectBase selects the endpoint to send the wallet back to: the redirect
// URI posted with the response, then the one recorded on the session, then the
// configured default.
func (s *Service) redirectBase(session *ClientSession, req *DirectPostRequest) string {
	if req.RedirectURI != "" {
		return req.RedirectURI
	}

	if session != nil && session.RedirectURI != "" {
		return session.RedirectURI
	}

	return s.defaultWalletRedirectURL
}

// claimsOf flattens a parsed token into a claim map.
func claimsOf(token jwt.Token) map[string]interface{} {
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return nil
	}

	return claims
}

// credentialSubjectClaims extracts the credentialSubject of the first
// verifiable credential inside a presentation token. The credential may be
// embedded as a JSON object or as a nested JWT string.
func credentialSubjectClaims(vpToken string) (map[string]interface{}, error) {
	token, err := parseToken(vpToken)
	if err != nil {
		return nil, fmt.Errorf("parse vp_token: %w", err)
	}

	claims := claimsOf(token)

	raw, err := jsonOf(claims)
	if err != nil {
		return nil, err
	}

	credential := gjson.Get(raw, "vp.verifiableCredential.0")
	if !credential.Exists() {
		return nil, errors.New("vp_token carries no verifiable credential")
	}

	subject := credential.Get("credentialSubject")

	if !subject.Exists() && credential.Type == gjson.String {
		vcToken, vcErr := parseToken(credential.String())
		if vcErr != nil {
			return nil, fmt.Errorf("parse embedded credential: %w", vcErr)
		}

		vcRaw, vcErr := jsonOf(claimsOf(vcToken))
		if vcErr != nil {
			return nil, vcErr
		}

		subject = gjson.Get(vcRaw, "vc.credentialSubject")
		if !subject.Exists() {
			subject = gjson.Get(vcRaw, "credentialSubject")
		}
	}

	if !subject.Exists() {
		return nil, errors.New("credential carries no credentialSubject")
	}

	userInfo, ok := subject.Value().(map[string]interface{})
	if !ok {
		return nil, errors.New("credentialSubject is not an object")
	}

	return userInfo, nil
}
