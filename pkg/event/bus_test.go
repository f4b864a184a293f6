/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/walletgate/vc-auth/pkg/event/spi"
)

const (
	uuid      = "uuid"
	jsonMsg   = "{}"
	sourceURL = "https://test.com"
	topic     = "test-topic"
)

func TestBus_Publish(t *testing.T) {
	eb := NewBus()
	require.NotNil(t, eb)

	t.Run("success", func(t *testing.T) {
		msgChan, err := eb.Subscribe(context.Background(), topic)
		require.NoError(t, err)

		var mutex sync.Mutex
		receivedMessages := make(map[string]*spi.Event)

		go func() {
			for msg := range msgChan {
				mutex.Lock()
				receivedMessages[msg.ID] = msg
				mutex.Unlock()
			}
		}()

		msg := spi.NewEventWithPayload(uuid, sourceURL, spi.HolderAuthenticated, []byte(jsonMsg))

		require.NoError(t, eb.Publish(context.Background(), topic, msg))

		time.Sleep(50 * time.Millisecond)

		mutex.Lock()
		m, ok := receivedMessages[msg.ID]
		mutex.Unlock()

		require.True(t, ok)
		require.Equal(t, msg.ID, m.ID)
	})

	t.Run("success - no subscribers", func(t *testing.T) {
		msg := spi.NewEventWithPayload(uuid, sourceURL, spi.TokenIssued, []byte(jsonMsg))

		require.NoError(t, eb.Publish(context.Background(), "no-subscribers-topic", msg))

		time.Sleep(50 * time.Millisecond)
	})

	require.True(t, eb.IsConnected())
	require.NoError(t, eb.Close())
	require.False(t, eb.IsConnected())
}

func TestBus_Error(t *testing.T) {
	t.Run("error - subscribe when closed", func(t *testing.T) {
		eb := NewBus()
		require.NotNil(t, eb)
		require.NoError(t, eb.Close())

		msgChan, err := eb.Subscribe(context.Background(), topic)
		require.True(t, errors.Is(err, ErrBusClosed))
		require.Nil(t, msgChan)
	})

	t.Run("error - publish when closed", func(t *testing.T) {
		eb := NewBus()
		require.NotNil(t, eb)
		require.NoError(t, eb.Close())

		err := eb.Publish(context.Background(), topic, spi.NewEvent(uuid, sourceURL, spi.TokenIssued))
		require.True(t, errors.Is(err, ErrBusClosed))
	})

	t.Run("close twice", func(t *testing.T) {
		eb := NewBus()
		require.NoError(t, eb.Close())
		require.NoError(t, eb.Close())
	})
}
