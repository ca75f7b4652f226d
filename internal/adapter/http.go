package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-stock-dashboard/internal/config"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/utils"
	"github.com/MKhiriev/go-stock-dashboard/models"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// TraceIDHeader carries the per-request trace identifier.
const TraceIDHeader = "X-Trace-ID"

// Multipart field names expected by the API.
const (
	fieldFile         = "historical_demand"
	fieldOrderCost    = "custo_pedido"
	fieldHoldingCost  = "custo_estocagem"
	fieldProductName  = "nome_produto"
	fieldLeadTime     = "lead_time"
	fieldServiceLevel = "service_level"
)

type httpServerAdapter struct {
	client   *utils.HTTPClient
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout and the
// outbound rate limit.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, adapterCfg.RateLimit),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
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

// Login implements [ServerAdapter]. The API follows the OAuth2 password flow,
// so the email travels in the "username" form field.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.Token, error) {
	req := h.request(ctx, "").
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		})

	body, err := h.do(req, http.MethodPost, "/api/auth/login", "login")
	if err != nil {
		return models.Token{}, err
	}

	var token models.Token
	if err = decode(payload(body, "data"), &token); err != nil {
		return models.Token{}, fmt.Errorf("decode login response: %w", err)
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return models.Token{}, fmt.Errorf("login response: %w: empty access token", ErrInvalidResponse)
	}

	return token, nil
}

// Register implements [ServerAdapter]. The created user is read from "user",
// "data" or the bare body, whichever is present.
func (h *httpServerAdapter) Register(ctx context.Context, registerRequest models.RegisterRequest) (models.User, error) {
	req := h.request(ctx, "").
		SetHeader("Content-Type", "application/json").
		SetBody(registerRequest)

	body, err := h.do(req, http.MethodPost, "/api/auth/register", "register")
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decode(payload(body, "user", "data"), &user); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	return user, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context, token string) (models.User, error) {
	body, err := h.do(h.request(ctx, token), http.MethodGet, "/api/auth/me", "me")
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decode(payload(body, "data"), &user); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}

	return user, nil
}

// Optimize implements [ServerAdapter].
func (h *httpServerAdapter) Optimize(ctx context.Context, token string, params models.EOQParams) (models.OptimizationResult, error) {
	fields := map[string]string{
		fieldOrderCost:   formatFloat(params.OrderCost),
		fieldHoldingCost: formatFloat(params.HoldingCost),
	}
	if name := strings.TrimSpace(params.ProductName); name != "" {
		fields[fieldProductName] = name
	}

	return h.upload(ctx, token, "/api/optimize", "optimize", params.FilePath, fields)
}

// CalculateROP implements [ServerAdapter]. The service level is sent as a
// fraction.
func (h *httpServerAdapter) CalculateROP(ctx context.Context, token string, params models.ROPParams) (models.OptimizationResult, error) {
	fields := map[string]string{
		fieldLeadTime:     strconv.Itoa(params.LeadTime),
		fieldServiceLevel: formatFloat(params.ServiceLevelFraction()),
	}
	if name := strings.TrimSpace(params.ProductName); name != "" {
		fields[fieldProductName] = name
	}

	return h.upload(ctx, token, "/api/calculate-rop", "calculate rop", params.FilePath, fields)
}

// History implements [ServerAdapter]. Both a bare array and a
// {success, data} envelope are accepted.
func (h *httpServerAdapter) History(ctx context.Context, token string) ([]models.HistoryRecord, error) {
	body, err := h.do(h.request(ctx, token), http.MethodGet, "/api/history", "history")
	if err != nil {
		return nil, err
	}

	records := make([]models.HistoryRecord, 0)
	if err = decode(payload(body, "data"), &records); err != nil {
		return nil, fmt.Errorf("decode history response: %w", err)
	}

	return records, nil
}

// DeleteHistory implements [ServerAdapter].
func (h *httpServerAdapter) DeleteHistory(ctx context.Context, token string, id int64) error {
	req := h.request(ctx, token).
		SetPathParam("id", strconv.FormatInt(id, 10))

	_, err := h.do(req, http.MethodDelete, "/api/history/{id}", "delete history")
	return err
}

func (h *httpServerAdapter) upload(ctx context.Context, token, path, op, filePath string, fields map[string]string) (models.OptimizationResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return models.OptimizationResult{}, fmt.Errorf("%s: %w: %w", op, ErrFileUnreadable, err)
	}
	defer file.Close()

	req := h.request(ctx, token).
		SetMultipartFormData(fields).
		SetFileReader(fieldFile, filepath.Base(filePath), file)

	body, err := h.do(req, http.MethodPost, path, op)
	if err != nil {
		return models.OptimizationResult{}, err
	}

	var result models.OptimizationResult
	if err = decode(payload(body, "data"), &result); err != nil {
		return models.OptimizationResult{}, fmt.Errorf("decode %s response: %w", op, err)
	}

	return result, nil
}

// request builds every outgoing request. The bearer header is set only for a
// non-empty token; nothing is shared between requests.
func (h *httpServerAdapter) request(ctx context.Context, token string) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader(TraceIDHeader, h.traceIDs.Generate())

	if token = strings.TrimSpace(token); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) do(req *resty.Request, method, path, op string) ([]byte, error) {
	traceID := req.Header.Get(TraceIDHeader)

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("op", op).Str("trace_id", traceID).Msg("request failed")
		return nil, fmt.Errorf("%s request: %w: %w", op, ErrRequestFailed, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).
			Str("op", op).
			Str("trace_id", traceID).
			Int("status", resp.StatusCode()).
			Msg("request rejected")
		return nil, err
	}

	h.logger.Debug().
		Str("op", op).
		Str("trace_id", traceID).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("request completed")

	return resp.Body(), nil
}

// payload returns the first present, non-null member of an enveloped body
// among keys, or the body itself when it is not enveloped.
func payload(body []byte, keys ...string) []byte {
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return body
	}

	for _, key := range keys {
		if v := root.Get(key); v.Exists() && v.Type != gjson.Null {
			return []byte(v.Raw)
		}
	}

	return body
}

func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
