package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"smartshop/contract"
	"smartshop/errors"
	"strings"
	"time"
)

// DefaultTimeout bounds every request end to end. There is no other cancellation.
const DefaultTimeout = 30 * time.Second

// APIError is a non-2xx answer of a backend.
// It matches errors.ErrUnauthorized on 401 and errors.ErrBackend whenever the backend explained itself.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend answered %d", e.Status)
	}
	return fmt.Sprintf("backend answered %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case errors.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case errors.ErrBackend:
		return e.Message != ""
	default:
		return false
	}
}

// Transport issues JSON requests against one backend host.
type Transport struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option tweaks a Transport at construction.
type Option func(*Transport)

// WithRoundTripper routes every request through rt, e.g. to trace traffic.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(t *Transport) { t.http.Transport = rt }
}

func NewTransport(baseURL string, timeout time.Duration, log *slog.Logger, opts ...Option) *Transport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// DoJSON sends body (if any) as JSON and decodes a 2xx answer into out (if any).
func (t *Transport) DoJSON(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}
	raw, err := t.send(ctx, method, path, query, token, reader, "application/json")
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// DoEnvelope is DoJSON for console endpoints: a 2xx answer must also carry success=true.
func (t *Transport) DoEnvelope(ctx context.Context, method, path, token string, body, out any) error {
	var raw json.RawMessage
	if err := t.DoJSON(ctx, method, path, nil, token, body, &raw); err != nil {
		return err
	}
	if err := checkEnvelope(raw); err != nil {
		return err
	}
	return decode(raw, out)
}

// Part is one file field of a multipart upload.
type Part struct {
	Field    string
	Filename string
	Content  io.Reader
}

// DoMultipart uploads a file together with plain form fields.
func (t *Transport) DoMultipart(ctx context.Context, path, token string, part Part, fields map[string]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	fileWriter, err := writer.CreateFormFile(part.Field, part.Filename)
	if err != nil {
		return err
	}
	if _, err = io.Copy(fileWriter, part.Content); err != nil {
		return fmt.Errorf("reading %s: %w", part.Filename, err)
	}
	for name, value := range fields {
		if err = writer.WriteField(name, value); err != nil {
			return err
		}
	}
	if err = writer.Close(); err != nil {
		return err
	}

	raw, err := t.send(ctx, http.MethodPost, path, nil, token, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}
	if err = checkEnvelope(raw); err != nil {
		return err
	}
	return decode(raw, out)
}

func (t *Transport) send(ctx context.Context, method, path string, query url.Values, token string, body io.Reader, contentType string) ([]byte, error) {
	endpoint := t.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	t.log.Debug("API request", "method", method, "url", endpoint)
	resp, err := t.http.Do(req)
	if err != nil {
		t.log.Error("API request failed", "method", method, "url", endpoint, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s %s: %w", method, path, err)
	}
	t.log.Debug("API response", "status", resp.StatusCode, "url", endpoint)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			t.log.Warn("Unauthorized access", "url", endpoint)
		case http.StatusInternalServerError:
			t.log.Error("Server error", "url", endpoint, "error", apiErr.Message)
		default:
			t.log.Warn("API error", "status", resp.StatusCode, "url", endpoint, "error", apiErr.Message)
		}
		return nil, apiErr
	}
	return raw, nil
}

func decode(raw []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidResponse, err)
	}
	return nil
}

func checkEnvelope(raw []byte) error {
	var envelope contract.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidResponse, err)
	}
	if !envelope.Success {
		return fmt.Errorf("%w: %s", errors.ErrBackend, envelope.Error)
	}
	return nil
}

// errorMessage pulls the human readable reason out of an error body, if any.
func errorMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}
