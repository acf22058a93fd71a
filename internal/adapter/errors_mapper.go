// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps well-known HTTP statuses to the sentinel errors of this
// package. Any other non-2xx status is reported as [ErrServer] when it is a
// 5xx and as a plain error otherwise.
var statusErrors = map[int]error{
	http.StatusBadRequest:   ErrBadRequest,
	http.StatusUnauthorized: ErrUnauthorized,
	http.StatusForbidden:    ErrForbidden,
	http.StatusNotFound:     ErrNotFound,
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	if err, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", err, body)
	}
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrServer, code, body)
	}
	return fmt.Errorf("http %d: %s", code, body)
}
