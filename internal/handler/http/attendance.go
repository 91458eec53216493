package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/attendance"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/middleware"
	"github.com/petrodesk/petrodesk-backend-go/internal/handler/http/response"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/jwt"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/sse"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	GetOpenSession(w http.ResponseWriter, r *http.Request)
	GetStreamToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	jwtService        jwt.Service
	hub               *sse.Hub
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, jwtService jwt.Service, hub *sse.Hub) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		jwtService:        jwtService,
		hub:               hub,
	}
}

// Mark implements AttendanceHandler. The staff ID always comes from the
// access token, never from the request body.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.StaffID = middleware.UserID(r)

	record, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		slog.Error("Mark attendance service error", "error", err, "staff_id", req.StaffID, "action", req.Action)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance marked", "staff_id", req.StaffID, "action", req.Action)
	response.Success(w, record)
}

// GetAttendance implements AttendanceHandler. Staff see their own records;
// admins see every staff member under them.
func (h *AttendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{
		StaffID:  r.URL.Query().Get("staff_id"),
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
		Page:     intQueryParam(r, "page", 1),
		PerPage:  intQueryParam(r, "per_page", 20),
	}

	userID := middleware.UserID(r)

	var (
		result attendance.ListAttendanceResponse
		err    error
	)
	switch middleware.UserRole(r) {
	case string(user.RoleStaff):
		result, err = h.attendanceService.GetMyAttendance(r.Context(), userID, filter)
	case string(user.RoleAdmin):
		result, err = h.attendanceService.ListAttendance(r.Context(), userID, filter)
	default:
		// Attendance records belong to a station; super-admins have none.
		response.HandleError(w, user.ErrAdminRequired)
		return
	}
	if err != nil {
		slog.Error("GetAttendance service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOpenSession implements AttendanceHandler. Returns the caller's open
// attendance record, or null data when off duty.
func (h *AttendanceHandlerImpl) GetOpenSession(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.GetOpenSession(r.Context(), middleware.UserID(r))
	if err != nil {
		slog.Error("GetOpenSession service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// GetStreamToken implements AttendanceHandler. EventSource cannot send an
// Authorization header, so the dashboard first exchanges its access token
// for a short-lived stream token passed as a query parameter.
func (h *AttendanceHandlerImpl) GetStreamToken(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateStreamToken(userID)
	if err != nil {
		slog.Error("GetStreamToken error", "error", err)
		response.InternalServerError(w, "Failed to generate stream token")
		return
	}

	response.Success(w, attendance.StreamTokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Stream implements AttendanceHandler. Pushes live check-in and check-out
// events to admin dashboards over SSE.
func (h *AttendanceHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, err := h.jwtService.ValidateStreamToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(attendance.TopicAttendance)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":\"%s\"}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
