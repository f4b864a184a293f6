/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldClientID       = "clientID"
	FieldCode           = "code"
	FieldCredentialType = "credentialType"
	FieldEvent          = "event"
	FieldFlow           = "flow"
	FieldGrantType      = "grantType"
	FieldNonce          = "nonce"
	FieldRedirectURI    = "redirectURI"
	FieldRequestID      = "requestID"
	FieldResponseType   = "responseType"
	FieldSessionID      = "sessionID"
	FieldState          = "state"
	FieldTopic          = "topic"
	FieldUserLogLevel   = "userLogLevel"
)

// WithClientID sets the ClientID field.
func WithClientID(clientID string) zap.Field {
	return zap.String(FieldClientID, clientID)
}

// WithCode sets the authorization code field.
func WithCode(code string) zap.Field {
	return zap.String(FieldCode, code)
}

// WithCredentialType sets the CredentialType field.
func WithCredentialType(credentialType string) zap.Field {
	return zap.String(FieldCredentialType, credentialType)
}

// WithEvent sets the Event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithFlow sets the Flow field.
func WithFlow(flow string) zap.Field {
	return zap.String(FieldFlow, flow)
}

// WithGrantType sets the GrantType field.
func WithGrantType(grantType string) zap.Field {
	return zap.String(FieldGrantType, grantType)
}

// WithNonce sets the Nonce field.
func WithNonce(nonce string) zap.Field {
	return zap.String(FieldNonce, nonce)
}

// WithRedirectURI sets the RedirectURI field.
func WithRedirectURI(redirectURI string) zap.Field {
	return zap.String(FieldRedirectURI, redirectURI)
}

// WithRequestID sets the RequestID field.
func WithRequestID(requestID string) zap.Field {
	return zap.String(FieldRequestID, requestID)
}

// WithResponseType sets the ResponseType field.
func WithResponseType(responseType string) zap.Field {
	return zap.String(FieldResponseType, responseType)
}

// WithSessionID sets the SessionID field.
func WithSessionID(sessionID string) zap.Field {
	return zap.String(FieldSessionID, sessionID)
}

// WithState sets the State field.
func WithState(state string) zap.Field {
	return zap.String(FieldState, state)
}

// WithTopic sets the Topic field.
func WithTopic(topic string) zap.Field {
	return zap.String(FieldTopic, topic)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}

// WithUserLogLevel sets the user log level field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}
