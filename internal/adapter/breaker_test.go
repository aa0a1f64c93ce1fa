// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircuitBreaker(t *testing.T) {
	breaker := newCircuitBreaker("riot-test", 30*time.Second, 3)

	require.IsType(t, &circuitBreakerWrapper{}, breaker)
	wrapper := breaker.(*circuitBreakerWrapper)
	assert.Equal(t, "riot-test", wrapper.breaker.Name())
	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	breaker := newCircuitBreaker("success", time.Minute, 3)

	called := false
	err := breaker.Execute(func() error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestCircuitBreaker_Execute_WrapsError(t *testing.T) {
	breaker := newCircuitBreaker("wrap", time.Minute, 3)
	cause := errors.New("dial tcp: connection refused")

	err := breaker.Execute(func() error { return cause })

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "breaker (wrap)")
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := newCircuitBreaker("trip", time.Minute, 2)
	cause := errors.New("boom")

	_ = breaker.Execute(func() error { return cause })
	_ = breaker.Execute(func() error { return cause })

	called := false
	err := breaker.Execute(func() error {
		called = true
		return nil
	})

	assert.False(t, called, "open breaker must not call through")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestCircuitBreaker_CancellationIsNotFailure(t *testing.T) {
	breaker := newCircuitBreaker("cancel", time.Minute, 1)

	for i := 0; i < 3; i++ {
		err := breaker.Execute(func() error { return context.Canceled })
		assert.ErrorIs(t, err, context.Canceled)
	}

	assert.Equal(t, gobreaker.StateClosed, breaker.(*circuitBreakerWrapper).breaker.State())
}
