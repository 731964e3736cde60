// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-uo-client/internal/config"
	"github.com/MKhiriev/go-uo-client/internal/crypto"
	"github.com/MKhiriev/go-uo-client/internal/logger"
	"github.com/MKhiriev/go-uo-client/internal/protocol"
	"github.com/MKhiriev/go-uo-client/internal/protocol/protocoltest"
	"github.com/MKhiriev/go-uo-client/internal/uotype"
	"github.com/MKhiriev/go-uo-client/models"
)

// newTestAdapter creates an httpServiceAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServiceAdapter {
	t.Helper()
	a, err := NewHTTPServiceAdapter(config.ClientAdapter{
		Endpoint:       serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServiceAdapter)
}

func testUserObject(t *testing.T) *models.UserObject {
	t.Helper()
	keys, err := crypto.NewCommKeys(bytes.Repeat([]byte{0x00}, 32), bytes.Repeat([]byte{0x01}, 32))
	require.NoError(t, err)
	desc, err := uotype.Pack(uotype.FunctionPlainAES, uotype.AppKeyClient, uotype.CommKeyClient)
	require.NoError(t, err)
	return &models.UserObject{ID: 0x13, Type: desc, CommKeys: keys, APIKey: "TEST_API"}
}

// newFakeService serves svc through the protocoltest router.
func newFakeService(t *testing.T, svc *protocoltest.Service, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	h := protocoltest.NewHandler(svc, nil)
	if calls != nil {
		h.Intercept = func(http.ResponseWriter, *http.Request, int) bool {
			calls.Add(1)
			return true
		}
	}
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func buildEnvelope(t *testing.T, uo *models.UserObject, data []byte) (protocol.Request, models.ProcessDataRequest) {
	t.Helper()
	req, err := protocol.NewRequestBuilder(uo).WithData(data).Build()
	require.NoError(t, err)
	return req, req.Envelope("req-1")
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:11180", want: "http://localhost:11180"},
		{in: "https://hsm.example.com/", want: "https://hsm.example.com"},
		{in: "  http://127.0.0.1:8080  ", want: "http://127.0.0.1:8080"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServiceAdapter_InvalidEndpoint(t *testing.T) {
	_, err := NewHTTPServiceAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── ProcessData ─────────────────────────────────────────────────────────────

func TestProcessData_RoundTrip(t *testing.T) {
	uo := testUserObject(t)
	srv := newFakeService(t, &protocoltest.Service{UO: *uo}, nil)
	a := newTestAdapter(t, srv.URL)

	req, env := buildEnvelope(t, uo, []byte("hello"))
	body, err := a.ProcessData(context.Background(), uo.APIKey, env.Nonce, env)
	require.NoError(t, err)

	resp, err := protocol.NewResponseParser(uo).Parse(body)
	require.NoError(t, err)
	require.NoError(t, req.Verify(resp))
	assert.Equal(t, []byte("hello"), resp.ProtectedData)
}

func TestProcessData_RequestShape(t *testing.T) {
	uo := testUserObject(t)
	_, env := buildEnvelope(t, uo, []byte{1, 2, 3})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/1.0/TEST_API/ProcessData/req-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.ProcessDataRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, env, got)
		assert.Equal(t, "00000013", got.ObjectID)

		_, _ = w.Write([]byte(`{"status":"9000"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	body, err := a.ProcessData(context.Background(), uo.APIKey, "req-1", env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"9000"}`, string(body))
}

func TestProcessData_NonOKStatusIsNotATransportError(t *testing.T) {
	uo := testUserObject(t)
	svc := &protocoltest.Service{UO: *uo, Op: func([]byte) ([]byte, error) {
		return nil, assert.AnError
	}}
	srv := newFakeService(t, svc, nil)
	a := newTestAdapter(t, srv.URL)

	_, env := buildEnvelope(t, uo, []byte("x"))
	body, err := a.ProcessData(context.Background(), uo.APIKey, env.Nonce, env)
	require.NoError(t, err)

	_, err = protocol.NewResponseParser(uo).Parse(body)
	var se *protocol.StatusError
	require.ErrorAs(t, err, &se)
	assert.True(t, se.Retryable())
}

func TestProcessData_HTTPErrors(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.ProcessData(context.Background(), "k", "id", models.ProcessDataRequest{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestProcessData_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ProcessData(context.Background(), "k", "id", models.ProcessDataRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTeapot, httpErr.StatusCode)
	assert.False(t, httpErr.Permanent())
}

func TestHTTPError_Permanent(t *testing.T) {
	for code, want := range map[int]bool{
		http.StatusBadRequest:          true,
		http.StatusUnauthorized:        true,
		http.StatusForbidden:           true,
		http.StatusNotFound:            true,
		http.StatusConflict:            false,
		http.StatusTooManyRequests:     false,
		http.StatusInternalServerError: false,
		http.StatusServiceUnavailable:  false,
	} {
		assert.Equal(t, want, (&HTTPError{StatusCode: code}).Permanent(), "status %d", code)
	}
}

func TestProcessData_WrongAPIKey(t *testing.T) {
	uo := testUserObject(t)
	srv := newFakeService(t, &protocoltest.Service{UO: *uo}, nil)
	a := newTestAdapter(t, srv.URL)

	_, env := buildEnvelope(t, uo, []byte("x"))
	_, err := a.ProcessData(context.Background(), "OTHER", env.Nonce, env)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProcessData_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.ProcessData(context.Background(), "k", "id", models.ProcessDataRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestProcessData_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	// the handler must return before Close can finish
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	a := newTestAdapter(t, srv.URL)
	start := time.Now()
	_, err := a.ProcessData(ctx, "k", "id", models.ProcessDataRequest{})
	assert.ErrorIs(t, err, ErrTransport)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestProcessData_RateLimited(t *testing.T) {
	uo := testUserObject(t)
	var calls atomic.Int32
	srv := newFakeService(t, &protocoltest.Service{UO: *uo}, &calls)

	a, err := NewHTTPServiceAdapter(config.ClientAdapter{
		Endpoint:       srv.URL,
		RequestTimeout: 5 * time.Second,
		RateLimit:      20,
		RateBurst:      1,
	}, logger.Nop())
	require.NoError(t, err)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, env := buildEnvelope(t, uo, []byte{byte(i)})
		_, err := a.ProcessData(context.Background(), uo.APIKey, env.Nonce, env)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), calls.Load())
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}
