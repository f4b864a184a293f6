/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vc

import (
	"encoding/json"
)

// Flow is the protocol family an authorization transaction belongs to.
type Flow string

const (
	// FlowVCI credential issuance (OID4VCI).
	FlowVCI = Flow("VCI")
	// FlowVP presentation of existing credentials (OID4VP).
	FlowVP = Flow("VP")
)

// ResponseType is the response type requested from the wallet.
type ResponseType string

const (
	ResponseTypeIDToken = ResponseType("id_token")
	ResponseTypeVPToken = ResponseType("vp_token")
)

const (
	grantTypeAuthorizationCode = "authorization_code"
	grantTypePreAuthorizedCode = "pre-authorized_code"

	scopeOpenID = "openid"

	responseModeDirectPost = "direct_post"
)

// AuthorizationRequest carries the parameters of GET /authorize.
type AuthorizationRequest struct {
	Scope                string
	ResponseType         string
	ClientID             string
	RedirectURI          string
	State                string
	Nonce                string
	Request              string
	AuthorizationDetails string
	ClientMetadata       string
	IssuerState          string
	CodeChallenge        string
	CodeChallengeMethod  string

	// Redirect selects between a 302 to the wallet (nil or true) and an inline
	// 200 response carrying the unsigned request object (explicitly false).
	Redirect *bool
}

// RequestObject is the authorization request the server signs and serves by
// reference to the wallet.
type RequestObject struct {
	ISS                    string          `json:"iss"`
	ClientID               string          `json:"client_id"`
	ResponseType           string          `json:"response_type"`
	ResponseMode           string          `json:"response_mode"`
	Scope                  string          `json:"scope"`
	Nonce                  string          `json:"nonce"`
	State                  string          `json:"state"`
	RequestURI             string          `json:"request_uri"`
	RedirectURI            string          `json:"redirect_uri"`
	PresentationDefinition json.RawMessage `json:"presentation_definition,omitempty"`
}

// AuthorizeResult is the outcome of the authorize operation. Exactly one of
// RedirectURL and RequestObject is set.
type AuthorizeResult struct {
	// RedirectURL points the wallet (or a delegate identity provider) at the
	// next step of the flow.
	RedirectURL string

	// RequestObject is returned inline when the caller asked for redirect=false.
	RequestObject *RequestObject
}

// DirectPostRequest carries the wallet's direct-post authorization response.
type DirectPostRequest struct {
	RedirectURI            string
	IDToken                string
	VPToken                string
	State                  string
	PresentationSubmission string
}

// DirectPostStatus tags the outcome of a direct-post operation.
type DirectPostStatus string

const (
	// DirectPostAuthenticated holder authenticated, code issued.
	DirectPostAuthenticated = DirectPostStatus("authenticated")
	// DirectPostValidationFailed token/nonce verification failed; the wallet is
	// redirected with error=invalid_request.
	DirectPostValidationFailed = DirectPostStatus("validation_failed")
	// DirectPostProtocolError a protocol-defined error such as access_denied.
	DirectPostProtocolError = DirectPostStatus("protocol_error")
)

// DirectPostResult is the tagged result of a direct-post operation. RedirectURL
// is always populated; the HTTP boundary translates the tag into the final
// response without inspecting the URL.
type DirectPostResult struct {
	Status      DirectPostStatus
	RedirectURL string

	// ErrorType and ErrorDescription are set for the non-authenticated tags.
	ErrorType        string
	ErrorDescription string
}

// TokenRequest carries the parameters of POST /token.
type TokenRequest struct {
	GrantType           string
	ClientID            string
	Code                string
	CodeVerifier        string
	ClientAssertionType string
	PreAuthorizedCode   string
	UserPin             string
}

// TokenResponse is the successful outcome of the token operation.
type TokenResponse struct {
	AccessToken     string `json:"access_token"`
	IDToken         string `json:"id_token"`
	TokenType       string `json:"token_type"`
	ExpiresIn       int64  `json:"expires_in"`
	CNonce          string `json:"c_nonce"`
	CNonceExpiresIn int64  `json:"c_nonce_expires_in"`
}
