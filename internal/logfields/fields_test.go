/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trustbloc/logutil-go/pkg/log"
)

func TestStandardFields(t *testing.T) {
	const module = "test_module"

	t.Run("json fields", func(t *testing.T) {
		stdOut := newMockWriter()

		logger := log.New(module, log.WithStdOut(stdOut), log.WithEncoding(log.JSON))

		clientID := "did:key:z6Mk"
		code := "someAuthCode"
		credentialType := "CTWalletSameAuthorisedInTime"
		event := &mockObject{
			Field1: "event1",
			Field2: 123,
		}
		flow := "VCI"
		grantType := "authorization_code"
		nonce := "someNonce"
		redirectURI := "https://wallet.example.com/cb"
		requestID := "someRequestID"
		responseType := "vp_token"
		sessionID := "someSessionID"
		state := "someState"

		logger.Info(
			"Some message",
			WithClientID(clientID),
			WithCode(code),
			WithCredentialType(credentialType),
			WithEvent(event),
			WithFlow(flow),
			WithGrantType(grantType),
			WithNonce(nonce),
			WithRedirectURI(redirectURI),
			WithRequestID(requestID),
			WithResponseType(responseType),
			WithSessionID(sessionID),
			WithState(state),
		)

		l := unmarshalLogData(t, stdOut.Bytes())

		require.Equal(t, clientID, l.ClientID)
		require.Equal(t, code, l.Code)
		require.Equal(t, credentialType, l.CredentialType)
		require.Equal(t, event, l.Event)
		require.Equal(t, flow, l.Flow)
		require.Equal(t, grantType, l.GrantType)
		require.Equal(t, nonce, l.Nonce)
		require.Equal(t, redirectURI, l.RedirectURI)
		require.Equal(t, requestID, l.RequestID)
		require.Equal(t, responseType, l.ResponseType)
		require.Equal(t, sessionID, l.SessionID)
		require.Equal(t, state, l.State)
	})
}

type mockObject struct {
	Field1 string
	Field2 int
}

type logData struct {
	Level  string `json:"level"`
	Time   string `json:"time"`
	Logger string `json:"logger"`
	Caller string `json:"caller"`
	Msg    string `json:"msg"`
	Error  string `json:"error"`

	ClientID       string      `json:"clientID"`
	Code           string      `json:"code"`
	CredentialType string      `json:"credentialType"`
	Event          *mockObject `json:"event"`
	Flow           string      `json:"flow"`
	GrantType      string      `json:"grantType"`
	Nonce          string      `json:"nonce"`
	RedirectURI    string      `json:"redirectURI"`
	RequestID      string      `json:"requestID"`
	ResponseType   string      `json:"responseType"`
	SessionID      string      `json:"sessionID"`
	State          string      `json:"state"`
}

func unmarshalLogData(t *testing.T, b []byte) *logData {
	t.Helper()

	l := &logData{}

	require.NoError(t, json.Unmarshal(b, l))

	return l
}

type mockWriter struct {
	*bytes.Buffer
}

func (m *mockWriter) Sync() error {
	return nil
}

func newMockWriter() *mockWriter {
	return &mockWriter{Buffer: bytes.NewBuffer(nil)}
}
