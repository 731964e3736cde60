// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-uo-client/internal/adapter"
	"github.com/MKhiriev/go-uo-client/internal/config"
	"github.com/MKhiriev/go-uo-client/internal/crypto"
	"github.com/MKhiriev/go-uo-client/internal/logger"
	"github.com/MKhiriev/go-uo-client/internal/mock"
	"github.com/MKhiriev/go-uo-client/internal/protocol"
	"github.com/MKhiriev/go-uo-client/internal/protocol/protocoltest"
	"github.com/MKhiriev/go-uo-client/internal/retry"
	"github.com/MKhiriev/go-uo-client/internal/uotype"
	"github.com/MKhiriev/go-uo-client/models"
)

func testUserObject(t *testing.T, fn uotype.Function) *models.UserObject {
	t.Helper()
	keys, err := crypto.NewCommKeys(bytes.Repeat([]byte{0x00}, 32), bytes.Repeat([]byte{0x01}, 32))
	require.NoError(t, err)
	desc, err := uotype.Pack(fn, uotype.AppKeyClient, uotype.CommKeyClient)
	require.NoError(t, err)
	return &models.UserObject{ID: 0x13, Type: desc, CommKeys: keys, APIKey: "TEST_API"}
}

// respondWith answers adapter calls the way the remote service would.
func respondWith(t *testing.T, svc *protocoltest.Service) func(context.Context, string, string, models.ProcessDataRequest) ([]byte, error) {
	return func(_ context.Context, apiKey, requestID string, req models.ProcessDataRequest) ([]byte, error) {
		assert.Equal(t, svc.UO.APIKey, apiKey)
		assert.Equal(t, requestID, req.Nonce)
		return json.Marshal(svc.Respond(req))
	}
}

func envelopeBody(t *testing.T, env models.ResponseEnvelope) []byte {
	t.Helper()
	body, err := json.Marshal(env)
	require.NoError(t, err)
	return body
}

func newTestProcessDataService(ctrl *gomock.Controller, maxAttempts int) (ProcessDataService, *mock.MockServiceAdapter) {
	a := mock.NewMockServiceAdapter(ctrl)
	svc := NewProcessDataService(a, NewStrategyFactory(config.ClientRetry{MaxAttempts: maxAttempts}), logger.Nop())
	return svc, a
}

// ── Success ─────────────────────────────────────────────────────────────────

func TestProcessData_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a := newTestProcessDataService(ctrl, 3)
	uo := testUserObject(t, uotype.FunctionPlainAES)

	fake := &protocoltest.Service{UO: *uo, Op: func(data []byte) ([]byte, error) {
		assert.Equal(t, []byte("hello"), data)
		return []byte("world"), nil
	}}
	a.EXPECT().ProcessData(gomock.Any(), "TEST_API", gomock.Any(), gomock.Any()).DoAndReturn(respondWith(t, fake))

	resp, err := svc.ProcessData(context.Background(), models.ProcessDataCall{UserObject: uo, Data: []byte("hello")})
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), resp.ProtectedData)
	assert.Equal(t, uint32(0x13), resp.UserObjectID)
	assert.Equal(t, uint16(protocol.StatusOK), resp.StatusCode)
}

func TestProcessData_EnvelopeShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a := newTestProcessDataService(ctrl, 1)
	uo := testUserObject(t, uotype.FunctionRandomData)
	fake := &protocoltest.Service{UO: *uo}

	a.EXPECT().ProcessData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, apiKey, requestID string, req models.ProcessDataRequest) ([]byte, error) {
			assert.Equal(t, "ProcessData", req.Function)
			assert.Equal(t, "1.0", req.Version)
			assert.Equal(t, "00000013", req.ObjectID)
			assert.Contains(t, req.Data, "Packet0_RANDOMDATA_0000")
			assert.Len(t, requestID, 36)
			return respondWith(t, fake)(ctx, apiKey, requestID, req)
		})

	_, err := svc.ProcessData(context.Background(), models.ProcessDataCall{UserObject: uo})
	require.NoError(t, err)
}

func TestProcessData_FreshNonceEachAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a := newTestProcessDataService(ctrl, 3)
	uo := testUserObject(t, uotype.FunctionPlainAES)

	var seen []protocol.Nonce
	calls := 0
	fake := &protocoltest.Service{UO: *uo, Op: func([]byte) ([]byte, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("crypto function check")
		}
		return []byte("ok"), nil
	}}
	a.EXPECT().ProcessData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(ctx context.Context, apiKey, requestID string, req models.ProcessDataRequest) ([]byte, error) {
			payload := req.Data[len("Packet0_PLAINAES_0000"):]
			decoded, err := protocoltest.DecodeRequest(uo.CommKeys, payload)
			require.NoError(t, err)
			seen = append(seen, decoded.Nonce)
			return respondWith(t, fake)(ctx, apiKey, requestID, req)
		})

	resp, err := svc.ProcessData(context.Background(), models.ProcessDataCall{UserObject: uo, Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), resp.ProtectedData)

	require.Len(t, seen, 3)
	assert.NotEqual(t, seen[0], seen[1])
	assert.NotEqual(t, seen[1], seen[2])
}

// ── Retry classification ────────────────────────────────────────────────────

func TestProcessData_RetryableStatusExhaustsBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a := newTestProcessDataService(ctrl, 3)
	uo := testUserObject(t, uotype.FunctionPlainAES)

	a.EXPECT().ProcessData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(3).
		Return(envelopeBody(t, models.ResponseEnvelope{Status: "6f00", StatusDetail: "check failed"}), nil)

	_, err := svc.ProcessData(context.Background(), models.ProcessDataCall{UserObject: uo})
	require.ErrorIs(t, err, retry.ErrRetryFailed)

	var statusErr *protocol.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, protocol.StatusCryptoFunctionCheck, statusErr.Code)

	var retryErr *retry.Error
	require.ErrorAs(t, err, &retryErr)
	assert.Equal(t, 3, retryErr.Attempts)
}

func TestProcessData_NonRetryableStatusAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a := newTestProcessDataService(ctrl, 5)
	uo := testUserObject(t, uotype.FunctionPlainAES)

	a.EXPECT().ProcessData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
		Return(envelopeBody(t, models.ResponseEnvelope{Status: "4001", StatusDetail: "security"}), nil)

	_, err := svc.ProcessData(context.Background(), models.ProcessDataCall{UserObject: uo})
	require.ErrorIs(t, err, retry.ErrRetryAborted)

	var statusErr *protocol.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "security", statusErr.Detail)
}

func TestProcessData_AdapterErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCalls int
		want      error
	}{
		{name: "transport", err: fmt.Errorf("%w: connection refused", adapter.ErrTransport), wantCalls: 2, want: retry.ErrRetryFailed},
		{name: "throttled", err: adapter.NewHTTPError(http.StatusTooManyRequests, ""), wantCalls: 2, want: retry.ErrRetryFailed},
		{name: "unavailable", err: adapter.NewHTTPError(http.StatusServiceUnavailable, ""), wantCalls: 2, want: retry.ErrRetryFailed},
		{name: "unauthorized", err: adapter.NewHTTPError(http.StatusUnauthorized, ""), wantCalls: 1, want: retry.ErrRetryAborted},
		{name: "not found", err: adapter.NewHTTPError(http.StatusNotFound, ""), wantCalls: 1, want: retry.ErrRetryAborted},
		{name: "bad request", err: adapter.NewHTTPError(http.StatusBadRequest, ""), wantCalls: 1, want: retry.ErrRetryAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, a := newTestProcessDataService(ctrl, 2)
			uo := testUserObject(t, uotype.FunctionPlainAES)

			a.EXPECT().ProcessData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(tt.wantCalls).Return(nil, tt.err)

			_, err := svc.ProcessData(context.Background(), models.ProcessDataCall{UserObject: uo})
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestProcessData_CorruptedResponseAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a := newTestProcessDataService(ctrl, 5)
	uo := testUserObject(t, uotype.FunctionPlainAES)

	a.EXPECT().ProcessData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
		Return([]byte(`{"status":"9000","result":"zz"}`), nil)

	_, err := svc.ProcessData(context.Background(), models.ProcessDataCall{UserObject: uo})
	assert.ErrorIs(t, err, retry.ErrRetryAborted)
	assert.ErrorIs(t, err, protocol.ErrCorruptedResponse)
}

func TestProcessData_StaleNonceAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a := newTestProcessDataService(ctrl, 5)
	uo := testUserObject(t, uotype.FunctionPlainAES)

	// a well-formed answer to some other request
	stale, err := protocoltest.EncodeResult(uo.CommKeys, protocoltest.ResponseMarker, uo.ID, protocol.Nonce{9, 9, 9, 9, 9, 9, 9, 9}, nil, []byte("old"))
	require.NoError(t, err)
	a.EXPECT().ProcessData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
		Return(envelopeBody(t, models.ResponseEnvelope{Status: "9000", Result: stale}), nil)

	_, err = svc.ProcessData(context.Background(), models.ProcessDataCall{UserObject: uo})
	assert.ErrorIs(t, err, retry.ErrRetryAborted)
	assert.ErrorIs(t, err, protocol.ErrCorruptedResponse)
}

func TestProcessData_NoKeysAbortsWithoutCalling(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestProcessDataService(ctrl, 5)
	uo := testUserObject(t, uotype.FunctionPlainAES)
	uo.CommKeys = crypto.CommKeys{}

	_, err := svc.ProcessData(context.Background(), models.ProcessDataCall{UserObject: uo})
	assert.ErrorIs(t, err, retry.ErrRetryAborted)
	assert.ErrorIs(t, err, protocol.ErrIllegalState)
}

func TestProcessData_NilUserObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestProcessDataService(ctrl, 1)

	_, err := svc.ProcessData(context.Background(), models.ProcessDataCall{})
	assert.ErrorIs(t, err, ErrInvalidUserObject)

	_, err = svc.ProcessDataAsync(context.Background(), models.ProcessDataCall{}).Result()
	assert.ErrorIs(t, err, ErrInvalidUserObject)
	assert.ErrorIs(t, err, retry.ErrRetryAborted)
}

func TestProcessData_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a := newTestProcessDataService(ctrl, -1)
	uo := testUserObject(t, uotype.FunctionPlainAES)

	ctx, cancel := context.WithCancel(context.Background())
	a.EXPECT().ProcessData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).DoAndReturn(
		func(context.Context, string, string, models.ProcessDataRequest) ([]byte, error) {
			cancel()
			return nil, adapter.ErrTransport
		})

	_, err := svc.ProcessData(ctx, models.ProcessDataCall{UserObject: uo})
	assert.ErrorIs(t, err, retry.ErrRetryCancelled)
}

// ── Async ───────────────────────────────────────────────────────────────────

func TestProcessDataAsync_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a := newTestProcessDataService(ctrl, 1)
	uo := testUserObject(t, uotype.FunctionPlainAES)
	fake := &protocoltest.Service{UO: *uo}

	a.EXPECT().ProcessData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(respondWith(t, fake))

	h := svc.ProcessDataAsync(context.Background(), models.ProcessDataCall{UserObject: uo, Data: []byte("echo")})
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("async call did not finish")
	}
	resp, err := h.Result()
	require.NoError(t, err)
	assert.Equal(t, []byte("echo"), resp.ProtectedData)
	assert.True(t, h.IsDone())
}

func TestProcessDataAsync_CancelDuringWait(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServiceAdapter(ctrl)
	svc := NewProcessDataService(a, NewStrategyFactory(config.ClientRetry{
		MaxAttempts: -1,
		Backoff:     config.BackoffConstant,
		BackoffBase: time.Hour,
	}), logger.Nop())
	uo := testUserObject(t, uotype.FunctionPlainAES)

	attempted := make(chan struct{})
	a.EXPECT().ProcessData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).DoAndReturn(
		func(context.Context, string, string, models.ProcessDataRequest) ([]byte, error) {
			close(attempted)
			return nil, adapter.NewHTTPError(http.StatusServiceUnavailable, "")
		})

	h := svc.ProcessDataAsync(context.Background(), models.ProcessDataCall{UserObject: uo})
	<-attempted
	h.Cancel()

	_, err := h.Result()
	assert.ErrorIs(t, err, retry.ErrRetryCancelled)
	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)
}

// ── Strategy factory ────────────────────────────────────────────────────────

func TestNewStrategyFactory(t *testing.T) {
	for _, kind := range []string{config.BackoffNone, "jitter"} {
		simple := NewStrategyFactory(config.ClientRetry{MaxAttempts: 2, Backoff: kind, BackoffBase: time.Second})()
		assert.IsType(t, &retry.SimpleStrategy{}, simple, kind)

		simple.OnFail(errors.New("x"))
		assert.Zero(t, simple.Wait(), kind)
		assert.True(t, simple.ShouldContinue(), kind)
		simple.OnFail(errors.New("x"))
		assert.False(t, simple.ShouldContinue(), kind)
	}

	for _, kind := range []string{config.BackoffConstant, config.BackoffExponential, config.BackoffFibonacci} {
		factory := NewStrategyFactory(config.ClientRetry{MaxAttempts: 3, Backoff: kind, BackoffBase: 10 * time.Millisecond})
		s := factory()
		assert.IsType(t, &retry.BackoffStrategy{}, s, kind)
		assert.NotSame(t, s, factory(), kind)

		s.OnFail(errors.New("x"))
		assert.Equal(t, 10*time.Millisecond, s.Wait(), kind)
	}
}
