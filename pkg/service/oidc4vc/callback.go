/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vc

import (
	"context"
	"errors"

	"github.com/walletgate/vc-auth/internal/logfields"
	"github.com/walletgate/vc-auth/pkg/event/spi"
	"github.com/walletgate/vc-auth/pkg/restapi/resterr"
)

const callbackMarkerPrefix = "callback:"

// Callback records the delegate identity provider's return leg and notifies
// listeners once. Repeat calls for the same session are absorbed by a durable
// marker so listeners observe at most one notification.
func (s *Service) Callback(ctx context.Context, params map[string]string) error {
	code, ok := params["code"]
	if !ok || code == "" {
		return resterr.NewValidationError(resterr.BadRequest, "code",
			errors.New("code is required"))
	}

	session, err := s.sessionManager.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, resterr.ErrDataNotFound) {
			return resterr.NewValidationError(resterr.BadRequest, "code",
				errors.New("Client session not found"))
		}

		return resterr.NewSystemError(resterr.ClientSessionStoreComponent, "GetByCode", err)
	}

	first, err := s.callbackMarker.SetIfNotExist(ctx, callbackMarkerPrefix+session.ID, s.tokenTTL)
	if err != nil {
		return resterr.NewSystemError(resterr.CallbackMarkerComponent, "SetIfNotExist", err)
	}

	if !first {
		logger.Debugc(ctx, "Callback already processed", logfields.WithSessionID(session.SessionID))

		return nil
	}

	s.sendEvent(ctx, spi.CallbackReceived, session, params)

	return nil
}
