// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	contentTypeJSON = "application/json"

	// maxBodySize bounds request bodies; every accepted body is a single
	// short identifier.
	maxBodySize = 64 << 10
)

// decodeJSONBody fills dst from the request body. An empty body decodes as
// an empty object so that the missing field is reported instead.
func decodeJSONBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	if len(body) > maxBodySize {
		return fmt.Errorf("%w: body exceeds %d bytes", errInvalidJSON, maxBodySize)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return nil
}
