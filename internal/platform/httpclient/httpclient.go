// Package httpclient es el cliente de la API de adoptme (lo usa el CLI, p.ej. seed).
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"adoptme/internal/platform/respond"
)

const (
	DefaultTimeout = 30 * time.Second

	maxBodyBytes = 1 << 20
)

// Client envuelve *http.Client con BaseURL de la API.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New crea un Client contra baseURL (p.ej. http://localhost:8080).
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	u, err := url.ParseRequestURI(strings.TrimSpace(baseURL))
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(u.String(), "/"),
	}, nil
}

// APIError es una respuesta no-2xx. Message sale del campo "error" del sobre si existe.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status=%d: %s", e.StatusCode, e.Message)
}

// Envelope es el sobre de respuesta con el payload sin decodificar.
type Envelope struct {
	Status  string          `json:"status"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// DoEnvelope hace un request JSON y decodifica el sobre. Si out != nil, decodifica ahí el payload.
func (c *Client) DoEnvelope(ctx context.Context, method, path string, in any, out any) (Envelope, error) {
	var env Envelope
	if c == nil || c.HTTP == nil {
		return env, errors.New("httpclient: nil client")
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return env, fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return env, fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return env, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if decodeErr != nil {
			msg = strings.TrimSpace(string(raw))
		}
		return env, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return env, fmt.Errorf("httpclient: unmarshal envelope: %w", decodeErr)
	}
	if env.Status != respond.StatusSuccess {
		return env, &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}

	if out != nil && len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, out); err != nil {
			return env, fmt.Errorf("httpclient: unmarshal payload: %w", err)
		}
	}
	return env, nil
}

func (c *Client) resolve(path string) string {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}

// GenerateResult es el payload de POST /api/mocks/generateData.
type GenerateResult struct {
	Users int `json:"users"`
	Pets  int `json:"pets"`
}

// GenerateMockData pide al servidor que genere e inserte datos de prueba.
func (c *Client) GenerateMockData(ctx context.Context, users, pets int) (GenerateResult, string, error) {
	var res GenerateResult
	env, err := c.DoEnvelope(ctx, http.MethodPost, "/api/mocks/generateData", map[string]int{
		"users": users,
		"pets":  pets,
	}, &res)
	return res, env.Message, err
}
