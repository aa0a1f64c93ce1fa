// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// halfOpenProbes is how many calls may pass while the breaker is half-open.
const halfOpenProbes = 1

// circuitBreaker guards the Riot API against call storms while it is down.
type circuitBreaker interface {
	Execute(fn func() error) error
}

type circuitBreakerWrapper struct {
	breaker *gobreaker.CircuitBreaker
}

// newCircuitBreaker opens after maxFailures consecutive transport failures
// and probes again after timeout. Cancellation by the caller is not a
// failure of the upstream.
func newCircuitBreaker(name string, timeout time.Duration, maxFailures uint32) circuitBreaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: halfOpenProbes,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &circuitBreakerWrapper{
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (g *circuitBreakerWrapper) Execute(fn func() error) error {
	_, err := g.breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if err != nil {
		return fmt.Errorf("breaker (%s): %w", g.breaker.Name(), err)
	}
	return nil
}
