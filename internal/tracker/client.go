package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Record mirrors the attendance record shape returned by the backend.
type Record struct {
	ID            string     `json:"id"`
	StaffID       string     `json:"staff_id"`
	Date          string     `json:"date"`
	CheckInAt     time.Time  `json:"check_in_at"`
	CheckOutAt    *time.Time `json:"check_out_at,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Status        string     `json:"status"`
	WorkedMinutes *int       `json:"worked_minutes,omitempty"`
}

// IsOpen reports whether the record still awaits a check-out.
func (r Record) IsOpen() bool {
	return r.CheckOutAt == nil
}

// markRequest is the body of POST /api/attendance/markattendance.
type markRequest struct {
	Action    string  `json:"action"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Notes     string  `json:"notes,omitempty"`
}

// AttendanceAPI is the backend surface the tracker drives.
type AttendanceAPI interface {
	// Mark submits a check-in or check-out action.
	Mark(ctx context.Context, action string, pos Position, notes string) (Record, error)

	// History returns the caller's attendance records, newest first.
	History(ctx context.Context) ([]Record, error)
}

// Client is the HTTP implementation of AttendanceAPI.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates an attendance API client. Geolocation can take tens of
// seconds, so the HTTP timeout only covers the network call itself.
func NewClient(baseURL string, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
	}
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Mark implements AttendanceAPI.
func (c *Client) Mark(ctx context.Context, action string, pos Position, notes string) (Record, error) {
	body, err := json.Marshal(markRequest{
		Action:    action,
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Notes:     notes,
	})
	if err != nil {
		return Record{}, fmt.Errorf("failed to encode mark request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/attendance/markattendance", bytes.NewReader(body))
	if err != nil {
		return Record{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Record{}, err
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp)
	if err != nil {
		return Record{}, err
	}

	var record Record
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return Record{}, fmt.Errorf("unexpected mark response shape: %w", err)
	}

	return record, nil
}

// History implements AttendanceAPI. A response whose data is neither an
// array nor a paginated object is treated as empty rather than an error.
func (c *Client) History(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/attendance/getattendance", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	// Bare array.
	var records []Record
	if err := json.Unmarshal(env.Data, &records); err == nil {
		return records, nil
	}

	// Paginated object.
	var page struct {
		Records []Record `json:"records"`
	}
	if err := json.Unmarshal(env.Data, &page); err == nil {
		return page.Records, nil
	}

	return nil, nil
}

func decodeEnvelope(resp *http.Response) (envelope, error) {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return envelope{}, err
	}

	var env envelope
	// Keep the status code as the source of truth; the message is only
	// decoration on the error.
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return envelope{}, &RequestError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	return env, nil
}
