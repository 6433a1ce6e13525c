// Package planner implements the gateway to the external AI planning
// service. It assembles the profile + exercise catalog payload, performs the
// HTTP call with bounded connect and total timeouts, and decodes the
// structured week response.
//
// The gateway trusts the AI service's output: it checks only that a `days`
// array is present and decodable, never the internal consistency of the
// returned values (sets/reps ranges etc.).
//
// Error semantics (all distinguishable by the caller):
//   - ErrUnavailable:     the service could not be reached (dial/timeout)
//   - ErrUpstream:        the service answered with a non-200 status
//   - ErrInvalidResponse: 200 but the body is not a valid plan payload
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Sentinel errors returned by the gateway. Callers map these to distinct
// HTTP status codes (503 / 502 / 500).
var (
	ErrUnavailable     = errors.New("planning service unavailable")
	ErrUpstream        = errors.New("planning service error")
	ErrInvalidResponse = errors.New("invalid planning service response")
)

// Profile is the subset of the user profile sent upstream.
type Profile struct {
	Goal           string          `json:"goal"`
	Level          string          `json:"level"`
	DaysPerWeek    int             `json:"days_per_week"`
	SessionMinutes int             `json:"session_minutes"`
	Equipment      string          `json:"equipment"`
	Constraints    string          `json:"constraints"`
	Availability   json.RawMessage `json:"availability,omitempty"`
}

// CatalogExercise is one candidate exercise offered to the planner.
type CatalogExercise struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	Equipment   string `json:"equipment"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`
}

// PlanRequest is the payload for POST /generate_plan.
type PlanRequest struct {
	UserID    string            `json:"user_id"`
	WeekStart string            `json:"week_start"`
	Profile   Profile           `json:"profile"`
	Exercises []CatalogExercise `json:"exercises"`
}

// DaySummary is one day of the previous week as reported to /adjust_plan:
// the planned session plus the user's log (status defaults to "pending"
// when no log exists).
type DaySummary struct {
	Date          string  `json:"date"`
	Title         string  `json:"title"`
	Status        string  `json:"status"`
	FatigueRating *int    `json:"fatigue_rating"`
	Notes         *string `json:"notes"`
}

// PreviousPlan carries last week's principles and day-by-day outcomes.
type PreviousPlan struct {
	WeekStart  string          `json:"week_start"`
	Principles json.RawMessage `json:"principles"`
	Days       []DaySummary    `json:"days"`
}

// LogsSummary aggregates last week's logs for the adjustment request.
// AverageFatigue is omitted when no day carried a rating.
type LogsSummary struct {
	CompletedDays  int      `json:"completed_days"`
	TotalDays      int      `json:"total_days"`
	CompletionRate int      `json:"completion_rate"`
	AverageFatigue *float64 `json:"average_fatigue"`
}

// AdjustRequest is the payload for POST /adjust_plan.
type AdjustRequest struct {
	PlanRequest
	PreviousPlan PreviousPlan `json:"previous_plan"`
	LogsSummary  LogsSummary  `json:"logs_summary"`
}

// Session is one prescribed exercise in the AI response. RestSec defaults
// to 60 when the service omits it.
type Session struct {
	Exercise string     `json:"exercise"`
	Sets     int        `json:"sets"`
	Reps     FlexString `json:"reps"`
	RestSec  *int       `json:"rest_sec"`
	Notes    string     `json:"notes"`
}

// Day is one day in the AI response. EstimatedMinutes defaults to 45 when
// the service omits it.
type Day struct {
	Date             string    `json:"date"`
	Title            string    `json:"title"`
	EstimatedMinutes *int      `json:"estimated_minutes"`
	Sessions         []Session `json:"sessions"`
}

// WeekPlan is the decoded AI response: an ordered week of days plus the
// opaque principles/notes documents, persisted verbatim.
type WeekPlan struct {
	Days       []Day           `json:"days"`
	Principles json.RawMessage `json:"principles"`
	Notes      json.RawMessage `json:"notes"`
}

// FlexString decodes a JSON string or number into a string. The AI service
// sends reps either way ("8-12" or 10).
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Service is the pluggable plan provider consumed by the plan service.
// The HTTP client below is the production implementation; tests substitute
// a stub to avoid network access.
type Service interface {
	GeneratePlan(ctx context.Context, req PlanRequest) (*WeekPlan, error)
	AdjustPlan(ctx context.Context, req AdjustRequest) (*WeekPlan, error)
}

// Client calls the AI planning service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL. connectTimeout bounds
// the TCP dial; timeout bounds the whole request including the response
// body.
func NewClient(baseURL string, connectTimeout, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
			},
		},
	}
}

// GeneratePlan requests a fresh week from /generate_plan.
func (c *Client) GeneratePlan(ctx context.Context, req PlanRequest) (*WeekPlan, error) {
	return c.post(ctx, "/generate_plan", req)
}

// AdjustPlan requests next week's adjusted plan from /adjust_plan.
func (c *Client) AdjustPlan(ctx context.Context, req AdjustRequest) (*WeekPlan, error) {
	return c.post(ctx, "/adjust_plan", req)
}

// post sends the JSON payload and decodes the week plan, mapping transport
// and payload failures to the package sentinels.
func (c *Client) post(ctx context.Context, path string, payload any) (*WeekPlan, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", ErrInvalidResponse, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrUpstream, resp.StatusCode)
	}

	return DecodeWeekPlan(raw)
}

// DecodeWeekPlan parses an AI response body. A payload without a decodable
// `days` array is rejected with ErrInvalidResponse.
func DecodeWeekPlan(raw []byte) (*WeekPlan, error) {
	// Probe for the days key first so a structurally valid body with the
	// wrong shape is reported the same way as unparseable JSON.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if _, ok := probe["days"]; !ok {
		return nil, fmt.Errorf("%w: missing days", ErrInvalidResponse)
	}

	var plan WeekPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if plan.Days == nil {
		return nil, fmt.Errorf("%w: days is null", ErrInvalidResponse)
	}
	return &plan, nil
}

// Minutes returns a day's estimated duration, applying the 45 minute
// default for absent values.
func (d Day) Minutes() int {
	if d.EstimatedMinutes == nil {
		return 45
	}
	return *d.EstimatedMinutes
}

// Rest returns a session's rest seconds, applying the 60 second default
// for absent values.
func (s Session) Rest() int {
	if s.RestSec == nil {
		return 60
	}
	return *s.RestSec
}
