package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyJSON
	bodyForm
)

// HTTPClient implements Client over plain HTTP/JSON against a single
// configured origin. One instance is shared by all flows.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given origin, e.g.
// "http://127.0.0.1:8080". The timeout applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// send performs one request and classifies the outcome. A transport failure
// becomes *NetworkError; otherwise the status code and raw body are handed
// back for the caller to interpret, since the backend has no uniform
// response envelope.
func (c *HTTPClient) send(ctx context.Context, method, path string, query url.Values, kind bodyKind, payload any) (int, []byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	var contentType string
	switch kind {
	case bodyJSON:
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	case bodyForm:
		form, ok := payload.(url.Values)
		if !ok {
			return 0, nil, fmt.Errorf("form payload must be url.Values, got %T", payload)
		}
		body = strings.NewReader(form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return 0, nil, fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &NetworkError{Err: err}
	}
	return resp.StatusCode, data, nil
}

// serverError wraps a non-200 outcome, extracting the optional
// {"error": ...} shape some endpoints use.
func serverError(status int, body []byte) *ServerError {
	var payload struct {
		Error string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(body, &payload) == nil {
		msg = payload.Error
	}
	return &ServerError{Status: status, Message: msg, Body: string(body)}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	payload := map[string]string{"email": email, "password": password}
	status, body, err := c.send(ctx, http.MethodPost, "/login", nil, bodyJSON, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return serverError(status, body)
	}
	return nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, email, password string) error {
	payload := map[string]string{"email": email, "password": password}
	status, body, err := c.send(ctx, http.MethodPost, "/create_profile", nil, bodyJSON, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return serverError(status, body)
	}
	return nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, email string) (*Profile, error) {
	query := url.Values{"email": {email}}
	status, body, err := c.send(ctx, http.MethodGet, "/get_profile", query, bodyNone, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, serverError(status, body)
	}

	var p Profile
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &DecodeError{Err: err}
	}
	p.Email = email
	return &p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, profile *Profile) error {
	status, body, err := c.send(ctx, http.MethodPost, "/update_profile", nil, bodyJSON, profile)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return serverError(status, body)
	}
	return nil
}

// DeleteAccount walks the known route variants in order, stopping at the
// first 200. The backend's deletion routes have been inconsistent across
// deployments, so the variants and their order are part of the contract:
//
//  1. POST /delete_profile, JSON body
//  2. DELETE /delete_profile?email=
//  3. POST /delete_account, JSON body
//  4. POST /delete_profile, form body
//
// On failure the last variant's outcome is returned unmasked, keeping the
// raw "HTTP <code>: <body>" detail diagnosable.
func (c *HTTPClient) DeleteAccount(ctx context.Context, email string) error {
	jsonPayload := map[string]string{"email": email}

	var lastErr error
	attempts := []func(context.Context) (int, []byte, error){
		func(ctx context.Context) (int, []byte, error) {
			return c.send(ctx, http.MethodPost, "/delete_profile", nil, bodyJSON, jsonPayload)
		},
		func(ctx context.Context) (int, []byte, error) {
			return c.send(ctx, http.MethodDelete, "/delete_profile", url.Values{"email": {email}}, bodyNone, nil)
		},
		func(ctx context.Context) (int, []byte, error) {
			return c.send(ctx, http.MethodPost, "/delete_account", nil, bodyJSON, jsonPayload)
		},
		func(ctx context.Context) (int, []byte, error) {
			return c.send(ctx, http.MethodPost, "/delete_profile", nil, bodyForm, url.Values{"email": {email}})
		},
	}

	for _, attempt := range attempts {
		status, body, err := attempt(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		if status == http.StatusOK {
			return nil
		}
		lastErr = serverError(status, body)
	}
	return lastErr
}

func (c *HTTPClient) GetEntry(ctx context.Context, month, day int) (*Entry, error) {
	query := url.Values{
		"month": {strconv.Itoa(month)},
		"day":   {strconv.Itoa(day)},
	}
	status, body, err := c.send(ctx, http.MethodGet, "/get_entry", query, bodyNone, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, serverError(status, body)
	}

	var e Entry
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &e, nil
}

func (c *HTTPClient) RegisterDevice(ctx context.Context, email, deviceToken string) error {
	payload := map[string]string{"email": email, "device_token": deviceToken}
	status, body, err := c.send(ctx, http.MethodPost, "/register_device", nil, bodyJSON, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return serverError(status, body)
	}
	return nil
}
