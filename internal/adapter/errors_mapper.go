// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/sony/gobreaker"
)

// mapTransportError classifies a failed upstream call into one of the
// sentinels of this package while keeping the cause in the chain.
func mapTransportError(endpoint string, err error) error {
	var netErr net.Error

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %s: %w", ErrCircuitOpen, endpoint, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s: %w", ErrUpstreamTimeout, endpoint, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %s: %w", ErrUpstreamTimeout, endpoint, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, endpoint, err)
	}
}
