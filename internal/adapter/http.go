// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-record-sync/internal/modelsync"
	"github.com/MKhiriev/go-record-sync/models"
)

// Remote resource names, one per synchronized entity.
const (
	ResourceBloodSugars      = models.ResourceBloodSugars
	ResourceMedicalHistories = models.ResourceMedicalHistories
	ResourceFacilities       = models.ResourceFacilities
)

// HTTPTransport is the remote API of one entity. T is the local record type
// and P its wire payload.
type HTTPTransport[T modelsync.Record, P any] struct {
	client      *Client
	resource    string
	toPayload   func(T) P
	fromPayload func(P) T
}

// NewHTTPTransport returns the transport of resource. toPayload and
// fromPayload translate between local records and wire payloads.
func NewHTTPTransport[T modelsync.Record, P any](client *Client, resource string, toPayload func(T) P, fromPayload func(P) T) *HTTPTransport[T, P] {
	return &HTTPTransport[T, P]{
		client:      client,
		resource:    resource,
		toPayload:   toPayload,
		fromPayload: fromPayload,
	}
}

// NewBloodSugarTransport returns the transport of blood sugar measurements.
func NewBloodSugarTransport(client *Client) *HTTPTransport[models.BloodSugarMeasurement, models.BloodSugarPayload] {
	return NewHTTPTransport(client, ResourceBloodSugars,
		models.BloodSugarMeasurement.ToPayload, models.BloodSugarFromPayload)
}

// NewMedicalHistoryTransport returns the transport of medical histories.
func NewMedicalHistoryTransport(client *Client) *HTTPTransport[models.MedicalHistory, models.MedicalHistoryPayload] {
	return NewHTTPTransport(client, ResourceMedicalHistories,
		models.MedicalHistory.ToPayload, models.MedicalHistoryFromPayload)
}

// NewFacilityTransport returns the transport of facilities.
func NewFacilityTransport(client *Client) *HTTPTransport[models.Facility, models.FacilityPayload] {
	return NewHTTPTransport(client, ResourceFacilities,
		models.Facility.ToPayload, models.FacilityFromPayload)
}

func (t *HTTPTransport[T, P]) path() string {
	return "/api/v1/" + t.resource + "/sync"
}

// Push sends records in one request and returns the per-record rejections
// reported by the server.
func (t *HTTPTransport[T, P]) Push(ctx context.Context, records []T) ([]models.ValidationError, error) {
	body := models.PushRequest[P]{Records: make([]P, 0, len(records))}
	for _, r := range records {
		body.Records = append(body.Records, t.toPayload(r))
	}

	var result models.PushResponse
	resp, err := t.client.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(t.path())
	if err != nil {
		t.client.logger.Err(err).Str("func", "HTTPTransport.Push").Str("resource", t.resource).Msg("push request failed")
		return nil, fmt.Errorf("%s push request: %w", t.resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		t.client.logger.Err(err).
			Str("func", "HTTPTransport.Push").
			Str("resource", t.resource).
			Int("status", resp.StatusCode()).
			Msg("push rejected")
		return nil, err
	}

	return result.Errors, nil
}

// Pull fetches at most batchSize records following cursor. A page shorter
// than batchSize is the last one.
func (t *HTTPTransport[T, P]) Pull(ctx context.Context, batchSize int, cursor *string) (modelsync.PullPage[T], error) {
	req := t.client.authedRequest(ctx).
		SetQueryParam("limit", strconv.Itoa(batchSize))
	if cursor != nil {
		req.SetQueryParam("process_token", *cursor)
	}

	var result models.PullResponse[P]
	resp, err := req.SetResult(&result).Get(t.path())
	if err != nil {
		t.client.logger.Err(err).Str("func", "HTTPTransport.Pull").Str("resource", t.resource).Msg("pull request failed")
		return modelsync.PullPage[T]{}, fmt.Errorf("%s pull request: %w", t.resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		t.client.logger.Err(err).
			Str("func", "HTTPTransport.Pull").
			Str("resource", t.resource).
			Int("status", resp.StatusCode()).
			Msg("pull rejected")
		return modelsync.PullPage[T]{}, err
	}

	page := modelsync.PullPage[T]{
		Records:    make([]T, 0, len(result.Records)),
		NextCursor: result.ProcessToken,
		Final:      len(result.Records) < batchSize,
	}
	for _, p := range result.Records {
		page.Records = append(page.Records, t.fromPayload(p))
	}

	return page, nil
}
