/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package verifier is a thin client for the external presentation verification
// service. Semantic validation of verifiable presentations (claims matching,
// presentation definition evaluation, trust chain checks) happens entirely on
// the remote side; this client only frames the request and decodes the report.
package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/trustbloc/logutil-go/pkg/log"
)

var logger = log.New("presentation-verifier")

const verifyPresentationEndpoint = "/presentations/verify"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Result is the verification report returned by the verifier service.
type Result struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message,omitempty"`
}

type verifyRequest struct {
	VPToken                string          `json:"vp_token"`
	PresentationDefinition json.RawMessage `json:"presentation_definition,omitempty"`
	ValidationRule         json.RawMessage `json:"validation_rule,omitempty"`
	SessionID              string          `json:"session_id,omitempty"`
}

// Config holds configuration options for Client.
type Config struct {
	HTTPClient HTTPClient
	HostURL    string
}

// Client calls the external presentation verifier.
type Client struct {
	httpClient HTTPClient
	hostURL    string
}

// NewClient creates a new Client instance.
func NewClient(config *Config) *Client {
	return &Client{
		httpClient: config.HTTPClient,
		hostURL:    config.HostURL,
	}
}

// VerifyPresentation submits the vp_token with the stored presentation
// definition and validation rule and returns the verifier's report.
func (c *Client) VerifyPresentation(
	ctx context.Context,
	vpToken string,
	presentationDefinition, validationRule json.RawMessage,
	sessionID string,
) (*Result, error) {
	body, err := json.Marshal(&verifyRequest{
		VPToken:                vpToken,
		PresentationDefinition: presentationDefinition,
		ValidationRule:         validationRule,
		SessionID:              sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.hostURL+verifyPresentationEndpoint,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("create verify request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send verify request: %w", err)
	}

	defer closeResponseBody(resp.Body)

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read verify response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verifier returned status %d: %s", resp.StatusCode, respBytes)
	}

	result := &Result{}

	if err = json.Unmarshal(respBytes, result); err != nil {
		return nil, fmt.Errorf("unmarshal verify response: %w", err)
	}

	return result, nil
}

func closeResponseBody(respBody io.Closer) {
	if err := respBody.Close(); err != nil {
		logger.Error("failed to close response body", log.WithError(err))
	}
}
