package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
	"github.com/fitai-one/go-fitness-backend/internal/repo"
	"github.com/fitai-one/go-fitness-backend/internal/services"
)

const testDayID = "141add05-4415-4938-b5a1-17e0d3171aff"

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	r.ServeHTTP(w, req)
	return w
}

func TestSaveLog_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := newTestHandlers(stubPlanSvc{}, stubLogSvc{}, stubDashSvc{})
	r := gin.New()
	r.POST("/logs", h.SaveLog)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{bad`},
		{"missing plan_day_id", `{"status":"done"}`},
		{"missing status", `{"plan_day_id":"` + testDayID + `"}`},
		{"non-uuid day id", `{"plan_day_id":"day-1","status":"done"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/logs", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestSaveLog_CreatedVsUpdated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		created    bool
		wantStatus int
	}{
		{"first log", true, http.StatusCreated},
		{"overwrite", false, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotStatus string
			var gotFatigue *int
			h := newTestHandlers(stubPlanSvc{}, stubLogSvc{
				save: func(_ context.Context, userID, planDayID, status string, fatigue *int, notes *string) (*domain.WorkoutLog, bool, error) {
					gotStatus, gotFatigue = status, fatigue
					return &domain.WorkoutLog{ID: "l1", UserID: userID, PlanDayID: planDayID, Status: status}, tc.created, nil
				},
			}, stubDashSvc{})
			r := gin.New()
			r.POST("/logs", h.SaveLog)

			w := postJSON(r, "/logs", `{"plan_day_id":"`+testDayID+`","status":"partial","fatigue_rating":4}`)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if gotStatus != "partial" || gotFatigue == nil || *gotFatigue != 4 {
				t.Fatalf("service got status=%q fatigue=%v", gotStatus, gotFatigue)
			}
			var resp SaveLogResponse
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if !resp.Success || resp.Created != tc.created || resp.Log == nil {
				t.Fatalf("unexpected body: %+v", resp)
			}
		})
	}
}

func TestSaveLog_ServiceErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"bad status value", services.ErrInvalidInput, http.StatusBadRequest},
		{"unknown day", services.ErrDayNotFound, http.StatusNotFound},
		{"foreign day", services.ErrForbiddenDay, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandlers(stubPlanSvc{}, stubLogSvc{
				save: func(context.Context, string, string, string, *int, *string) (*domain.WorkoutLog, bool, error) {
					return nil, false, tc.err
				},
			}, stubDashSvc{})
			r := gin.New()
			r.POST("/logs", h.SaveLog)

			w := postJSON(r, "/logs", `{"plan_day_id":"`+testDayID+`","status":"done"}`)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}

func TestListLogs_PassesQueryAndWrapsStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotWeek string
	var gotLimit int
	avg := 2.5
	h := newTestHandlers(stubPlanSvc{}, stubLogSvc{
		list: func(_ context.Context, _, weekStart string, limit int) ([]repo.LogRow, services.LogStats, error) {
			gotWeek, gotLimit = weekStart, limit
			return []repo.LogRow{{Status: domain.StatusDone}},
				services.LogStats{TotalLogged: 1, Completed: 1, AverageFatigue: &avg}, nil
		},
	}, stubDashSvc{})
	r := gin.New()
	r.GET("/logs", h.ListLogs)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs?week_start=2026-08-31&limit=10", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotWeek != "2026-08-31" || gotLimit != 10 {
		t.Fatalf("service got week=%q limit=%d", gotWeek, gotLimit)
	}
	var resp ListLogsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || len(resp.Logs) != 1 || resp.Stats.Completed != 1 {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if resp.Stats.AverageFatigue == nil || *resp.Stats.AverageFatigue != 2.5 {
		t.Fatalf("average fatigue = %v", resp.Stats.AverageFatigue)
	}
}

func TestListLogs_DefaultLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotLimit int
	h := newTestHandlers(stubPlanSvc{}, stubLogSvc{
		list: func(_ context.Context, _, _ string, limit int) ([]repo.LogRow, services.LogStats, error) {
			gotLimit = limit
			return nil, services.LogStats{}, nil
		},
	}, stubDashSvc{})
	r := gin.New()
	r.GET("/logs", h.ListLogs)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs?limit=oops", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotLimit != 50 {
		t.Fatalf("default limit = %d, want 50", gotLimit)
	}
}
