// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/mock"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/internal/validators"
	"github.com/MKhiriev/go-record-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	facilityA = "0190f5a4-7c2b-7d4e-8a61-3c2d1e0f9b01"
	facilityB = "0190f5a4-7c2b-7d4e-8a61-3c2d1e0f9b02"
)

func facilityJSON(t *testing.T, id, name string) json.RawMessage {
	t.Helper()
	stamp := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(models.FacilityPayload{
		ID:        id,
		Name:      name,
		District:  "Bathinda",
		State:     "Punjab",
		CreatedAt: stamp,
		UpdatedAt: stamp,
	})
	require.NoError(t, err)
	return raw
}

func newTestRecordService(t *testing.T) (RecordService, *mock.MockSyncRecordRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRecordRepository(ctrl)
	return NewRecordService(repo, validators.NewRecordValidator(), logger.Nop()), repo
}

func idsOf(records []models.SyncRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

// ── Push ─────────────────────────────────────────────────────────────────────

func TestRecordService_Push_StoresValidRecords(t *testing.T) {
	svc, repo := newTestRecordService(t)
	ctx := context.Background()

	a := facilityJSON(t, facilityA, "CHC Bathinda")
	b := facilityJSON(t, facilityB, "PHC Goniana")

	repo.EXPECT().SaveRecords(ctx, models.ResourceFacilities, []models.SyncRecord{
		{Entity: models.ResourceFacilities, ID: facilityA, Payload: a},
		{Entity: models.ResourceFacilities, ID: facilityB, Payload: b},
	}).Return(nil)

	rejected, err := svc.Push(ctx, models.ResourceFacilities, []json.RawMessage{a, b})
	require.NoError(t, err)
	assert.Empty(t, rejected)
}

func TestRecordService_Push_ReportsInvalidRecords(t *testing.T) {
	svc, repo := newTestRecordService(t)
	ctx := context.Background()

	valid := facilityJSON(t, facilityA, "CHC Bathinda")
	unnamed := facilityJSON(t, facilityB, "")
	malformed := json.RawMessage(`{"id":"0190f5a4-7c2b-7d4e-8a61-3c2d1e0f9b03","name":42}`)

	repo.EXPECT().SaveRecords(ctx, models.ResourceFacilities, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, records []models.SyncRecord) error {
			assert.Equal(t, []string{facilityA}, idsOf(records))
			return nil
		})

	rejected, err := svc.Push(ctx, models.ResourceFacilities, []json.RawMessage{valid, unnamed, malformed})
	require.NoError(t, err)
	require.Len(t, rejected, 2)

	assert.Equal(t, facilityB, rejected[0].ID)
	assert.Equal(t, []string{validators.ErrEmptyName.Error()}, rejected[0].Messages)

	assert.Equal(t, "0190f5a4-7c2b-7d4e-8a61-3c2d1e0f9b03", rejected[1].ID)
	require.Len(t, rejected[1].Messages, 1)
	assert.Contains(t, rejected[1].Messages[0], "malformed payload")
}

func TestRecordService_Push_DuplicateIDsInBatch(t *testing.T) {
	svc, repo := newTestRecordService(t)
	ctx := context.Background()

	first := facilityJSON(t, facilityA, "old name")
	second := facilityJSON(t, facilityA, "new name")
	broken := facilityJSON(t, facilityB, "")
	fixed := facilityJSON(t, facilityB, "PHC Goniana")

	repo.EXPECT().SaveRecords(ctx, models.ResourceFacilities, []models.SyncRecord{
		{Entity: models.ResourceFacilities, ID: facilityA, Payload: second},
	}).Return(nil)

	rejected, err := svc.Push(ctx, models.ResourceFacilities, []json.RawMessage{first, broken, second, fixed, broken})
	require.NoError(t, err)
	require.Len(t, rejected, 1, "a rejected id is reported once and never stored")
	assert.Equal(t, facilityB, rejected[0].ID)
}

func TestRecordService_Push_RequestErrors(t *testing.T) {
	svc, _ := newTestRecordService(t)
	ctx := context.Background()

	_, err := svc.Push(ctx, "patients", []json.RawMessage{facilityJSON(t, facilityA, "x")})
	assert.ErrorIs(t, err, ErrUnknownResource)

	_, err = svc.Push(ctx, models.ResourceFacilities, nil)
	assert.ErrorIs(t, err, ErrNoRecordsProvided)

	_, err = svc.Push(ctx, models.ResourceFacilities, []json.RawMessage{json.RawMessage(`{"name":"no id"}`)})
	assert.ErrorIs(t, err, ErrRecordWithoutID)
}

func TestRecordService_Push_StoreFailure(t *testing.T) {
	svc, repo := newTestRecordService(t)
	ctx := context.Background()

	repo.EXPECT().SaveRecords(ctx, models.ResourceFacilities, gomock.Any()).Return(store.ErrTemporary)

	_, err := svc.Push(ctx, models.ResourceFacilities, []json.RawMessage{facilityJSON(t, facilityA, "x")})
	assert.ErrorIs(t, err, store.ErrTemporary)
}

// ── Pull ─────────────────────────────────────────────────────────────────────

func TestRecordService_Pull_PagesThroughKeyset(t *testing.T) {
	svc, repo := newTestRecordService(t)
	ctx := context.Background()

	stamp := time.Date(2026, 5, 1, 8, 0, 0, 123000, time.UTC)
	a := facilityJSON(t, facilityA, "A")
	b := facilityJSON(t, facilityB, "B")

	gomock.InOrder(
		repo.EXPECT().RecordsAfter(ctx, models.ResourceFacilities, models.PageKey{}, 2).Return([]models.SyncRecord{
			{Entity: models.ResourceFacilities, ID: facilityA, Payload: a, ServerUpdatedAt: stamp},
			{Entity: models.ResourceFacilities, ID: facilityB, Payload: b, ServerUpdatedAt: stamp},
		}, nil),
		repo.EXPECT().RecordsAfter(ctx, models.ResourceFacilities, models.PageKey{UpdatedAt: stamp, ID: facilityB}, 2).
			Return(nil, nil),
	)

	page, err := svc.Pull(ctx, models.ResourceFacilities, "", 2)
	require.NoError(t, err)
	assert.Equal(t, []json.RawMessage{a, b}, page.Records)
	require.NotEmpty(t, page.ProcessToken)

	next, err := svc.Pull(ctx, models.ResourceFacilities, page.ProcessToken, 2)
	require.NoError(t, err)
	assert.Empty(t, next.Records)
	assert.NotNil(t, next.Records, "an empty page encodes as an empty list")
	assert.Equal(t, page.ProcessToken, next.ProcessToken, "an empty page keeps the position")
}

func TestRecordService_Pull_CapsLimit(t *testing.T) {
	svc, repo := newTestRecordService(t)
	ctx := context.Background()

	repo.EXPECT().RecordsAfter(ctx, models.ResourceBloodSugars, models.PageKey{}, MaxPullLimit).Return(nil, nil)

	_, err := svc.Pull(ctx, models.ResourceBloodSugars, "", MaxPullLimit*10)
	require.NoError(t, err)
}

func TestRecordService_Pull_RequestErrors(t *testing.T) {
	svc, _ := newTestRecordService(t)
	ctx := context.Background()

	_, err := svc.Pull(ctx, "patients", "", 10)
	assert.ErrorIs(t, err, ErrUnknownResource)

	_, err = svc.Pull(ctx, models.ResourceFacilities, "", 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = svc.Pull(ctx, models.ResourceFacilities, "%%%", 10)
	assert.ErrorIs(t, err, ErrInvalidProcessToken)
}

// ── process token ────────────────────────────────────────────────────────────

func TestProcessTokenRoundTrip(t *testing.T) {
	key := models.PageKey{UpdatedAt: time.Date(2026, 5, 1, 8, 0, 0, 1000, time.UTC), ID: facilityA}

	token := EncodeProcessToken(key)
	got, err := DecodeProcessToken(token)
	require.NoError(t, err)
	assert.True(t, key.UpdatedAt.Equal(got.UpdatedAt))
	assert.Equal(t, key.ID, got.ID)

	assert.Empty(t, EncodeProcessToken(models.PageKey{}))

	zero, err := DecodeProcessToken("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = DecodeProcessToken("e30") // base64 of "{}"
	assert.ErrorIs(t, err, ErrInvalidProcessToken)
}
