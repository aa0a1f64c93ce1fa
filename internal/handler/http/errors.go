// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidJSON is returned by decodeJSONBody when the request body is
// present but is not a JSON object matching the expected request.
var errInvalidJSON = errors.New("invalid JSON was passed")
