// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/mock"
	"github.com/MKhiriev/go-record-sync/internal/service"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/internal/validators"
	"github.com/MKhiriev/go-record-sync/models"
)

var testApp = config.ServerApp{
	TokenSignKey: "sign-key",
	TokenIssuer:  "record-sync",
	Version:      "1.2.3",
}

const sugarID = "0190f5a4-7c2b-7d4e-8a61-3c2d1e0f9b31"

func newTestRouter(t *testing.T) (*chi.Mux, *mock.MockSyncRecordRepository) {
	t.Helper()
	return newLoggingTestRouter(t, logger.Nop())
}

func newLoggingTestRouter(t *testing.T, log *logger.Logger) (*chi.Mux, *mock.MockSyncRecordRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRecordRepository(ctrl)

	appInfo, err := service.NewAppInfoService(testApp, logger.Nop())
	require.NoError(t, err)

	services := &service.Services{
		RecordService:  service.NewRecordService(repo, validators.NewRecordValidator(), logger.Nop()),
		AppInfoService: appInfo,
	}
	return NewHandler(services, testApp, log).Init(), repo
}

func bearer(t *testing.T, approved bool, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testApp.TokenIssuer, "user-1", approved, ttl, testApp.TokenSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func bloodSugarJSON(t *testing.T, id string, value float64) json.RawMessage {
	t.Helper()
	stamp := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(models.BloodSugarPayload{
		ID:           id,
		PatientID:    "7f0c1c1e-3f55-4f0e-9e0b-5d6a2b1c0a22",
		ReadingType:  models.ReadingRandom,
		ReadingValue: value,
		RecordedAt:   stamp,
		CreatedAt:    stamp,
		UpdatedAt:    stamp,
	})
	require.NoError(t, err)
	return raw
}

func pushBody(t *testing.T, records ...json.RawMessage) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(models.PushRequest[json.RawMessage]{Records: records})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

// ── version / trace id ───────────────────────────────────────────────────────

func TestVersionRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestTraceIDIsEchoed(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")

	rr := serve(router, req)
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodDelete, "/api/version", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestAuth(t *testing.T) {
	foreign, err := utils.GenerateJWTToken("someone-else", "user-1", true, time.Hour, testApp.TokenSignKey)
	require.NoError(t, err)
	forged, err := utils.GenerateJWTToken(testApp.TokenIssuer, "user-1", true, time.Hour, "other-key")
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{name: "no header", authorization: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer header", authorization: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authorization: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
		{name: "expired", authorization: bearer(t, true, -time.Minute), wantStatus: http.StatusUnauthorized},
		{name: "foreign issuer", authorization: "Bearer " + foreign.SignedString, wantStatus: http.StatusUnauthorized},
		{name: "wrong signature", authorization: "Bearer " + forged.SignedString, wantStatus: http.StatusUnauthorized},
		{name: "not approved for patient data", authorization: bearer(t, false, time.Hour), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/blood_sugars/sync?limit=10", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}

			rr := serve(router, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestReferenceDataNeedsNoApproval(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().RecordsAfter(gomock.Any(), models.ResourceFacilities, models.PageKey{}, 10).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/sync?limit=10", nil)
	req.Header.Set("Authorization", bearer(t, false, time.Hour))

	rr := serve(router, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

// ── push ─────────────────────────────────────────────────────────────────────

func TestPushRecords(t *testing.T) {
	router, repo := newTestRouter(t)

	good := bloodSugarJSON(t, sugarID, 120)
	bad := bloodSugarJSON(t, "0190f5a4-7c2b-7d4e-8a61-3c2d1e0f9b32", -4)

	repo.EXPECT().SaveRecords(gomock.Any(), models.ResourceBloodSugars, []models.SyncRecord{
		{Entity: models.ResourceBloodSugars, ID: sugarID, Payload: good},
	}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/blood_sugars/sync", pushBody(t, good, bad))
	req.Header.Set("Authorization", bearer(t, true, time.Hour))

	rr := serve(router, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp models.PushResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "0190f5a4-7c2b-7d4e-8a61-3c2d1e0f9b32", resp.Errors[0].ID)
	assert.NotEmpty(t, resp.Errors[0].Messages)
}

func TestPushRecords_LogsSubject(t *testing.T) {
	var buf bytes.Buffer
	router, repo := newLoggingTestRouter(t, &logger.Logger{Logger: zerolog.New(&buf)})
	repo.EXPECT().SaveRecords(gomock.Any(), models.ResourceBloodSugars, gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/blood_sugars/sync",
		pushBody(t, bloodSugarJSON(t, sugarID, 99), bloodSugarJSON(t, "0190f5a4-7c2b-7d4e-8a61-3c2d1e0f9b32", -4)))
	req.Header.Set("Authorization", bearer(t, true, time.Hour))

	rr := serve(router, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var pushed map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if entry["message"] == "records pushed" {
			pushed = entry
		}
	}
	require.NotNil(t, pushed, "push summary was not logged")
	assert.Equal(t, "user-1", pushed["subject"])
	assert.Equal(t, models.ResourceBloodSugars, pushed["resource"])
	assert.EqualValues(t, 2, pushed["records"])
	assert.EqualValues(t, 1, pushed["rejected"])
}

func TestPushRecords_AllAcceptedEncodesEmptyErrors(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().SaveRecords(gomock.Any(), models.ResourceBloodSugars, gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/blood_sugars/sync", pushBody(t, bloodSugarJSON(t, sugarID, 99)))
	req.Header.Set("Authorization", bearer(t, true, time.Hour))

	rr := serve(router, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"errors":[]}`, rr.Body.String())
}

func TestPushRecords_Failures(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       io.Reader
		storeErr   error
		wantStatus int
	}{
		{
			name:       "invalid json",
			path:       "/api/v1/blood_sugars/sync",
			body:       bytes.NewBufferString(`{"records": [`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no records",
			path:       "/api/v1/blood_sugars/sync",
			body:       bytes.NewBufferString(`{"records": []}`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown resource",
			path:       "/api/v1/patients/sync",
			body:       bytes.NewBufferString(`{"records": [{"id": "x"}]}`),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "store temporarily down",
			path:       "/api/v1/blood_sugars/sync",
			storeErr:   store.ErrTemporary,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newTestRouter(t)

			body := tt.body
			if tt.storeErr != nil {
				repo.EXPECT().SaveRecords(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.storeErr)
				body = pushBody(t, bloodSugarJSON(t, sugarID, 99))
			}

			req := httptest.NewRequest(http.MethodPost, tt.path, body)
			req.Header.Set("Authorization", bearer(t, true, time.Hour))

			rr := serve(router, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ── pull ─────────────────────────────────────────────────────────────────────

func TestPullRecords(t *testing.T) {
	router, repo := newTestRouter(t)

	stamp := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	payload := bloodSugarJSON(t, sugarID, 130)
	token := service.EncodeProcessToken(models.PageKey{UpdatedAt: stamp, ID: "previous"})

	repo.EXPECT().
		RecordsAfter(gomock.Any(), models.ResourceBloodSugars, models.PageKey{UpdatedAt: stamp, ID: "previous"}, 25).
		Return([]models.SyncRecord{{Entity: models.ResourceBloodSugars, ID: sugarID, Payload: payload, ServerUpdatedAt: stamp}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blood_sugars/sync?limit=25&process_token="+token, nil)
	req.Header.Set("Authorization", bearer(t, true, time.Hour))

	rr := serve(router, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var page models.PullResponse[models.BloodSugarPayload]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	require.Len(t, page.Records, 1)
	assert.Equal(t, sugarID, page.Records[0].ID)
	assert.Equal(t, service.EncodeProcessToken(models.PageKey{UpdatedAt: stamp, ID: sugarID}), page.ProcessToken)
}

func TestPullRecords_DefaultLimit(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().RecordsAfter(gomock.Any(), models.ResourceFacilities, models.PageKey{}, defaultPullLimit).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/sync", nil)
	req.Header.Set("Authorization", bearer(t, true, time.Hour))

	rr := serve(router, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"records":[],"process_token":""}`, rr.Body.String())
}

func TestPullRecords_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "limit is not a number", query: "limit=ten"},
		{name: "negative limit", query: "limit=-1"},
		{name: "corrupt process token", query: "limit=5&process_token=%25%25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/facilities/sync?"+tt.query, nil)
			req.Header.Set("Authorization", bearer(t, true, time.Hour))

			rr := serve(router, req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

// ── gzip ─────────────────────────────────────────────────────────────────────

func TestGZip_RequestAndResponse(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().SaveRecords(gomock.Any(), models.ResourceBloodSugars, gomock.Any()).Return(nil)

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := io.Copy(zw, pushBody(t, bloodSugarJSON(t, sugarID, 101)))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/blood_sugars/sync", &compressed)
	req.Header.Set("Authorization", bearer(t, true, time.Hour))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	rr := serve(router, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":[]}`, string(body))
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: service.ErrUnknownResource, want: http.StatusNotFound},
		{err: service.ErrInvalidProcessToken, want: http.StatusBadRequest},
		{err: utils.ErrInvalidJSONBody, want: http.StatusBadRequest},
		{err: store.ErrTemporary, want: http.StatusServiceUnavailable},
		{err: store.ErrExecutingQuery, want: http.StatusInternalServerError},
		{err: assert.AnError, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), tt.err.Error())
	}
}
