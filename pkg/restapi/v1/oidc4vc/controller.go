/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package oidc4vc_test -source=controller.go -mock_names flowService=MockFlowService

package oidc4vc

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"

	"github.com/walletgate/vc-auth/pkg/restapi/resterr"
	oidc4vcsvc "github.com/walletgate/vc-auth/pkg/service/oidc4vc"
)

const requestObjectContentType = "application/oauth-authz-req+jwt"

type flowService interface {
	Authorize(ctx context.Context, req *oidc4vcsvc.AuthorizationRequest) (*oidc4vcsvc.AuthorizeResult, error)
	RequestObjectByID(ctx context.Context, id string) (string, error)
	DirectPost(ctx context.Context, req *oidc4vcsvc.DirectPostRequest) (*oidc4vcsvc.DirectPostResult, error)
	DirectPostEPassport(ctx context.Context, req *oidc4vcsvc.DirectPostRequest) (*oidc4vcsvc.DirectPostResult, error)
	Token(ctx context.Context, req *oidc4vcsvc.TokenRequest) (*oidc4vcsvc.TokenResponse, error)
	Callback(ctx context.Context, params map[string]string) error
}

// Config holds configuration options for Controller.
type Config struct {
	FlowService flowService
	Tracer      trace.Tracer
}

// Controller for the authorization flow API.
type Controller struct {
	flowService flowService
	tracer      trace.Tracer
}

// NewController creates a new Controller instance.
func NewController(config *Config) *Controller {
	return &Controller{
		flowService: config.FlowService,
		tracer:      config.Tracer,
	}
}

// RegisterHandlers binds the authorization flow endpoints to the router.
func RegisterHandlers(router *echo.Echo, c *Controller) {
	router.GET("/authorize", c.Authorize)
	router.GET("/request_uri/:id", c.RequestObject)
	router.POST("/direct_post", c.DirectPost)
	router.POST("/direct_post/epassport", c.DirectPostEPassport)
	router.POST("/token", c.Token)
	router.GET("/callback", c.Callback)
}

// Authorize handles the authorization request (GET /authorize).
func (c *Controller) Authorize(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "Authorize")
	defer span.End()

	var params AuthorizationParams

	if err := e.Bind(&params); err != nil {
		return resterr.NewValidationError(resterr.BadRequest, "request", err)
	}

	result, err := c.flowService.Authorize(ctx, &oidc4vcsvc.AuthorizationRequest{
		Scope:                params.Scope,
		ResponseType:         params.ResponseType,
		ClientID:             params.ClientID,
		RedirectURI:          params.RedirectURI,
		State:                params.State,
		Nonce:                params.Nonce,
		Request:              params.Request,
		AuthorizationDetails: params.AuthorizationDetails,
		ClientMetadata:       params.ClientMetadata,
		IssuerState:          params.IssuerState,
		CodeChallenge:        params.CodeChallenge,
		CodeChallengeMethod:  params.CodeChallengeMethod,
		Redirect:             params.Redirect,
	})
	if err != nil {
		return err
	}

	if result.RequestObject != nil {
		return e.JSON(http.StatusOK, result.RequestObject)
	}

	return e.Redirect(http.StatusFound, result.RedirectURL)
}

// RequestObject serves the signed request object by reference (GET /request_uri/:id).
func (c *Controller) RequestObject(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "RequestObject")
	defer span.End()

	request, err := c.flowService.RequestObjectByID(ctx, e.Param("id"))
	if err != nil {
		return err
	}

	return e.Blob(http.StatusOK, requestObjectContentType, []byte(request))
}

// DirectPost handles the wallet's authorization response (POST /direct_post).
func (c *Controller) DirectPost(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "DirectPost")
	defer span.End()

	params, err := bindDirectPostParams(e)
	if err != nil {
		return err
	}

	result, err := c.flowService.DirectPost(ctx, params)
	if err != nil {
		return err
	}

	return e.Redirect(http.StatusFound, result.RedirectURL)
}

// DirectPostEPassport handles the passport authorization response
// (POST /direct_post/epassport).
func (c *Controller) DirectPostEPassport(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "DirectPostEPassport")
	defer span.End()

	params, err := bindDirectPostParams(e)
	if err != nil {
		return err
	}

	result, err := c.flowService.DirectPostEPassport(ctx, params)
	if err != nil {
		return err
	}

	return e.Redirect(http.StatusFound, result.RedirectURL)
}

// Token exchanges a code for signed tokens (POST /token).
func (c *Controller) Token(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "Token")
	defer span.End()

	var params TokenParams

	if err := e.Bind(&params); err != nil {
		return resterr.NewValidationError(resterr.BadRequest, "request", err)
	}

	resp, err := c.flowService.Token(ctx, &oidc4vcsvc.TokenRequest{
		GrantType:           params.GrantType,
		ClientID:            params.ClientID,
		Code:                params.Code,
		CodeVerifier:        params.CodeVerifier,
		ClientAssertionType: params.ClientAssertionType,
		PreAuthorizedCode:   params.PreAuthorizedCode,
		UserPin:             params.UserPin,
	})
	if err != nil {
		return err
	}

	e.SetCookie(&http.Cookie{Name: "access_token", Value: resp.AccessToken, Path: "/", HttpOnly: true})
	e.SetCookie(&http.Cookie{Name: "id_token", Value: resp.IDToken, Path: "/", HttpOnly: true})

	return e.JSON(http.StatusOK, resp)
}

// Callback records the delegate identity provider's return leg (GET /callback).
func (c *Controller) Callback(e echo.Context) error {
	ctx, span := c.tracer.Start(e.Request().Context(), "Callback")
	defer span.End()

	params := make(map[string]string)

	for name, values := range e.QueryParams() {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}

	if err := c.flowService.Callback(ctx, params); err != nil {
		return err
	}

	return e.NoContent(http.StatusOK)
}

func bindDirectPostParams(e echo.Context) (*oidc4vcsvc.DirectPostRequest, error) {
	var params DirectPostParams

	if err := e.Bind(&params); err != nil {
		return nil, resterr.NewValidationError(resterr.BadRequest, "request", err)
	}

	return &oidc4vcsvc.DirectPostRequest{
		RedirectURI:            params.RedirectURI,
		IDToken:                params.IDToken,
		VPToken:                params.VPToken,
		State:                  params.State,
		PresentationSubmission: params.PresentationSubmission,
	}, nil
}
