/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vc

// AuthorizationParams are the query parameters of GET /authorize.
type AuthorizationParams struct {
	Scope                string `query:"scope"`
	ResponseType         string `query:"response_type"`
	ClientID             string `query:"client_id"`
	RedirectURI          string `query:"redirect_uri"`
	State                string `query:"state"`
	Nonce                string `query:"nonce"`
	Request              string `query:"request"`
	AuthorizationDetails string `query:"authorization_details"`
	ClientMetadata       string `query:"client_metadata"`
	IssuerState          string `query:"issuer_state"`
	CodeChallenge        string `query:"code_challenge"`
	CodeChallengeMethod  string `query:"code_challenge_method"`
	Redirect             *bool  `query:"redirect"`
}

// DirectPostParams are the form parameters of POST /direct_post and
// POST /direct_post/epassport.
type DirectPostParams struct {
	RedirectURI            string `form:"redirect_uri"`
	IDToken                string `form:"id_token"`
	VPToken                string `form:"vp_token"`
	State                  string `form:"state"`
	PresentationSubmission string `form:"presentation_submission"`
}

// TokenParams are the form parameters of POST /token.
type TokenParams struct {
	GrantType           string `form:"grant_type"`
	ClientID            string `form:"client_id"`
	Code                string `form:"code"`
	CodeVerifier        string `form:"code_verifier"`
	ClientAssertionType string `form:"client_assertion_type"`
	PreAuthorizedCode   string `form:"pre-authorized_code"`
	UserPin             string `form:"user_pin"`
}
