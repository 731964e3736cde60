package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-uo-client/internal/config"
	"github.com/MKhiriev/go-uo-client/internal/logger"
	"github.com/MKhiriev/go-uo-client/internal/metrics"
	"github.com/MKhiriev/go-uo-client/internal/utils"
	"github.com/MKhiriev/go-uo-client/models"
)

const processDataPath = "/1.0/{apiKey}/ProcessData/{requestID}"

type httpServiceAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServiceAdapter constructs a resty implementation of
// [ServiceAdapter]. It normalises and validates adapterCfg.Endpoint,
// configures the base URL and request timeout, and paces requests when
// adapterCfg.RateLimit is positive.
//
// Returns an error if the endpoint is empty or cannot be parsed as a URL.
func NewHTTPServiceAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter endpoint: %w", err)
	}

	client := utils.NewHTTPClient().
		WithRateLimit(adapterCfg.RateLimit, adapterCfg.RateBurst).
		WithRequestIDHeader()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServiceAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ProcessData implements [ServiceAdapter]. It POSTs req as JSON to
// /1.0/{apiKey}/ProcessData/{requestID} and returns the response body.
func (h *httpServiceAdapter) ProcessData(ctx context.Context, apiKey, requestID string, req models.ProcessDataRequest) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{
			"apiKey":    apiKey,
			"requestID": requestID,
		}).
		SetBody(req).
		Post(processDataPath)
	if err != nil {
		metrics.RecordHTTPRequest("error")
		h.logger.Err(err).
			Str("func", "httpServiceAdapter.ProcessData").
			Str("request_id", requestID).
			Msg("process data request failed")
		return nil, fmt.Errorf("%w: process data request: %w", ErrTransport, err)
	}

	metrics.RecordHTTPRequest(strconv.Itoa(resp.StatusCode()))
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().
			Str("func", "httpServiceAdapter.ProcessData").
			Str("request_id", requestID).
			Int("http_status", resp.StatusCode()).
			Msg("process data rejected")
		return nil, err
	}

	return resp.Body(), nil
}
