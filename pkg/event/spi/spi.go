/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"time"
)

const (
	// AuthorizationEventTopic authorization flow topic name.
	AuthorizationEventTopic = "vc-auth"
)

// EventType event type.
type EventType string

const (
	// AuthorizationInitiated published when a new authorization request is accepted.
	AuthorizationInitiated = EventType("authorization_initiated")
	// WalletResponseReceived published when a direct-post response carrying a vp_token arrives.
	WalletResponseReceived = EventType("wallet_response_received")
	// PresentationVerified published after the presentation verifier reports success.
	PresentationVerified = EventType("presentation_verified")
	// PresentationVerificationFailed published after the presentation verifier reports failure.
	PresentationVerificationFailed = EventType("presentation_verification_failed")
	// HolderAuthenticated published when an authorization code is issued; carries code and state.
	HolderAuthenticated = EventType("holder_authenticated")
	// PINValidationFailed published when a pre-authorized code exchange supplies a wrong PIN.
	PINValidationFailed = EventType("pin_validation_failed")
	// TokenIssued published when access/ID tokens are issued.
	TokenIssued = EventType("token_issued")
	// CallbackReceived published once per transport session on the callback endpoint.
	CallbackReceived = EventType("callback_received")
)

type Payload []byte

type Event struct {
	// SpecVersion is spec version(required).
	SpecVersion string `json:"specVersion"`

	// ID identifies the event(required).
	ID string `json:"id"`

	// Source is URI for producer(required).
	Source string `json:"source"`

	// Type defines event type(required).
	Type EventType `json:"type"`

	// Time defines time of occurrence(required).
	Time time.Time `json:"time"`

	// DataContentType is data content type(optional).
	DataContentType string `json:"dataContentType,omitempty"`

	// Data defines message(optional).
	Data []byte `json:"data,omitempty"`

	// SessionID correlates the event with one authorization session(optional).
	SessionID string `json:"sessionId,omitempty"`
}

// Copy an event.
func (m *Event) Copy() *Event {
	return &Event{
		SpecVersion:     m.SpecVersion,
		ID:              m.ID,
		Source:          m.Source,
		Type:            m.Type,
		Time:            m.Time,
		DataContentType: m.DataContentType,
		Data:            m.Data,
		SessionID:       m.SessionID,
	}
}

// NewEventWithPayload creates a new Event with payload.
func NewEventWithPayload(uuid string, source string, eventType EventType, payload Payload) *Event {
	event := NewEvent(uuid, source, eventType)

	event.Data = payload

	// all components publish json
	event.DataContentType = "application/json"

	return event
}

// NewEvent creates a new Event and sets all required fields.
func NewEvent(uuid string, source string, eventType EventType) *Event {
	return &Event{
		SpecVersion: "1.0",
		ID:          uuid,
		Source:      source,
		Type:        eventType,
		Time:        time.Now(),
	}
}
