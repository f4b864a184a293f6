/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil_test

import (
	"context"
	"testing"

	"github.com/alexliesenfeld/health"
	"github.com/stretchr/testify/require"

	"github.com/walletgate/vc-auth/pkg/observability/health/healthutil"
)

func TestResponseTimeInterceptor(t *testing.T) {
	responseTimes := map[string]healthutil.ResponseTimeState{}

	interceptor := healthutil.ResponseTimeInterceptor(responseTimes)

	next := &mockInterceptor{}

	interceptor(next.InterceptorFunc())(context.Background(), "test", health.CheckState{})
	interceptor(next.InterceptorFunc())(context.Background(), "test", health.CheckState{})

	require.True(t, next.Called)
	require.Contains(t, responseTimes, "test")
}

type mockInterceptor struct {
	Called bool
}

func (m *mockInterceptor) InterceptorFunc() health.InterceptorFunc {
	return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
		m.Called = true

		return state
	}
}
