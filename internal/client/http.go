package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/contactbook/internal/model"
)

// DefaultTimeout bounds every request made by HTTP.
const DefaultTimeout = 10 * time.Second

// ResponseError is a non-2xx answer from the server.
type ResponseError struct {
	Status  int
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded %d", e.Status)
	}
	return fmt.Sprintf("server responded %d: %s", e.Status, e.Message)
}

var _ API = (*HTTP)(nil)

// HTTP implements API over the REST surface mounted at baseURL, for
// example http://localhost:8080/api.
type HTTP struct {
	baseURL string
	client  *http.Client
}

func NewHTTP(baseURL string, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTP{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type contactBody struct {
	ID    model.ContactID `json:"id,omitempty"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Phone string          `json:"phone"`
}

func (b contactBody) toModel() model.Contact {
	return model.Contact{ID: b.ID, Name: b.Name, Email: b.Email, Phone: b.Phone}
}

func (h *HTTP) List(ctx context.Context) ([]model.Contact, error) {
	var body []contactBody
	if err := h.do(ctx, http.MethodGet, "/contacts", nil, &body); err != nil {
		return nil, err
	}
	contacts := make([]model.Contact, 0, len(body))
	for _, b := range body {
		contacts = append(contacts, b.toModel())
	}
	return contacts, nil
}

func (h *HTTP) Create(ctx context.Context, fields model.ContactFields) (model.Contact, error) {
	var out contactBody
	in := contactBody{Name: fields.Name, Email: fields.Email, Phone: fields.Phone}
	if err := h.do(ctx, http.MethodPost, "/contacts", in, &out); err != nil {
		return model.Contact{}, err
	}
	return out.toModel(), nil
}

func (h *HTTP) Update(ctx context.Context, id model.ContactID, fields model.ContactFields) (model.Contact, error) {
	var out contactBody
	in := contactBody{Name: fields.Name, Email: fields.Email, Phone: fields.Phone}
	if err := h.do(ctx, http.MethodPut, contactPath(id), in, &out); err != nil {
		return model.Contact{}, err
	}
	return out.toModel(), nil
}

func (h *HTTP) Delete(ctx context.Context, id model.ContactID) error {
	return h.do(ctx, http.MethodDelete, contactPath(id), nil, nil)
}

func contactPath(id model.ContactID) string {
	return "/contacts/" + strconv.FormatInt(int64(id), 10)
}

func (h *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
			return fmt.Errorf("failed to decode %d response: %w", resp.StatusCode, err)
		}
		return &ResponseError{Status: resp.StatusCode, Message: e.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
