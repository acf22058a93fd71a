// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/internal/validators"
	"github.com/MKhiriev/go-record-sync/models"
)

// MaxPullLimit caps the page size a single pull may ask for. The agent
// refuses batch sizes above it.
const MaxPullLimit = config.MaxBatchSize

// payloadChecker decodes one pushed payload and validates it. It returns the
// record id and the validation messages; no messages means the payload is
// accepted.
type payloadChecker func(ctx context.Context, raw json.RawMessage) (string, []string)

type recordService struct {
	repo     store.SyncRecordRepository
	checkers map[string]payloadChecker
	logger   *logger.Logger
}

// NewRecordService returns the push/pull service over repo. Payloads of every
// known resource are checked with validator.
func NewRecordService(repo store.SyncRecordRepository, validator validators.Validator, log *logger.Logger) RecordService {
	return &recordService{
		repo: repo,
		checkers: map[string]payloadChecker{
			models.ResourceBloodSugars: checkerFor(validator, func(p models.BloodSugarPayload) string {
				return p.ID
			}),
			models.ResourceMedicalHistories: checkerFor(validator, func(p models.MedicalHistoryPayload) string {
				return p.ID
			}),
			models.ResourceFacilities: checkerFor(validator, func(p models.FacilityPayload) string {
				return p.ID
			}),
		},
		logger: log,
	}
}

func checkerFor[P any](validator validators.Validator, idOf func(P) string) payloadChecker {
	return func(ctx context.Context, raw json.RawMessage) (string, []string) {
		var payload P
		if err := json.Unmarshal(raw, &payload); err != nil {
			return rawRecordID(raw), []string{fmt.Sprintf("malformed payload: %v", err)}
		}
		return idOf(payload), validators.Messages(validator.Validate(ctx, payload))
	}
}

// rawRecordID extracts the id of a payload that does not decode into its
// entity type, so the rejection can still be addressed to the record.
func rawRecordID(raw json.RawMessage) string {
	var withID struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &withID); err != nil {
		return ""
	}
	return withID.ID
}

func (s *recordService) Push(ctx context.Context, resource string, records []json.RawMessage) ([]models.ValidationError, error) {
	check, ok := s.checkers[resource]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}
	if len(records) == 0 {
		return nil, ErrNoRecordsProvided
	}

	var (
		accepted []models.SyncRecord
		rejected []models.ValidationError
		// a record pushed twice in one batch is stored or reported once
		acceptedAt  = make(map[string]int)
		rejectedIDs = make(map[string]struct{})
	)

	for i, raw := range records {
		id, messages := check(ctx, raw)
		if id == "" {
			return nil, fmt.Errorf("%w: record %d", ErrRecordWithoutID, i)
		}

		if len(messages) > 0 {
			if _, seen := rejectedIDs[id]; !seen {
				rejectedIDs[id] = struct{}{}
				rejected = append(rejected, models.ValidationError{ID: id, Messages: messages})
			}
			continue
		}

		record := models.SyncRecord{Entity: resource, ID: id, Payload: raw}
		if at, seen := acceptedAt[id]; seen {
			accepted[at] = record
			continue
		}
		acceptedAt[id] = len(accepted)
		accepted = append(accepted, record)
	}

	accepted = withoutRejected(accepted, rejectedIDs)

	if err := s.repo.SaveRecords(ctx, resource, accepted); err != nil {
		s.logger.Err(err).Str("func", "recordService.Push").Str("resource", resource).Msg("error saving pushed records")
		return nil, fmt.Errorf("error saving %s: %w", resource, err)
	}

	s.logger.Debug().Str("func", "recordService.Push").
		Str("resource", resource).
		Int("accepted", len(accepted)).
		Int("rejected", len(rejected)).
		Msg("push handled")

	return rejected, nil
}

// withoutRejected drops accepted copies of ids that were also rejected in the
// same batch, so a record is either stored or reported, never both.
func withoutRejected(accepted []models.SyncRecord, rejectedIDs map[string]struct{}) []models.SyncRecord {
	if len(rejectedIDs) == 0 {
		return accepted
	}

	kept := accepted[:0]
	for _, r := range accepted {
		if _, rejected := rejectedIDs[r.ID]; !rejected {
			kept = append(kept, r)
		}
	}
	return kept
}

func (s *recordService) Pull(ctx context.Context, resource string, processToken string, limit int) (models.PullResponse[json.RawMessage], error) {
	if _, ok := s.checkers[resource]; !ok {
		return models.PullResponse[json.RawMessage]{}, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}
	if limit <= 0 {
		return models.PullResponse[json.RawMessage]{}, ErrInvalidLimit
	}
	limit = min(limit, MaxPullLimit)

	key, err := DecodeProcessToken(processToken)
	if err != nil {
		return models.PullResponse[json.RawMessage]{}, err
	}

	records, err := s.repo.RecordsAfter(ctx, resource, key, limit)
	if err != nil {
		s.logger.Err(err).Str("func", "recordService.Pull").Str("resource", resource).Msg("error reading records")
		return models.PullResponse[json.RawMessage]{}, fmt.Errorf("error reading %s: %w", resource, err)
	}

	response := models.PullResponse[json.RawMessage]{
		Records: make([]json.RawMessage, 0, len(records)),
		// an empty page leaves the agent where it was
		ProcessToken: processToken,
	}
	for _, r := range records {
		response.Records = append(response.Records, r.Payload)
	}

	if len(records) > 0 {
		last := records[len(records)-1]
		response.ProcessToken = EncodeProcessToken(models.PageKey{UpdatedAt: last.ServerUpdatedAt, ID: last.ID})
	}

	return response, nil
}

// EncodeProcessToken serializes a page position into the opaque token handed
// to agents.
func EncodeProcessToken(key models.PageKey) string {
	if key.IsZero() {
		return ""
	}

	raw, err := json.Marshal(key)
	if err != nil {
		// PageKey holds a time and a string, both always marshal
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeProcessToken parses a token produced by [EncodeProcessToken]. The
// empty token decodes into the zero key.
func DecodeProcessToken(token string) (models.PageKey, error) {
	if token == "" {
		return models.PageKey{}, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return models.PageKey{}, fmt.Errorf("%w: %w", ErrInvalidProcessToken, err)
	}

	var key models.PageKey
	if err = json.Unmarshal(raw, &key); err != nil {
		return models.PageKey{}, fmt.Errorf("%w: %w", ErrInvalidProcessToken, err)
	}
	if key.IsZero() {
		return models.PageKey{}, ErrInvalidProcessToken
	}
	return key, nil
}
