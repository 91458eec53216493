package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/attendance"
)

// maxOpenHours is how long an open session may live before the sweeper
// closes it.
const maxOpenHours = 16

type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceSvc: attendanceSvc}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_attendances", 1*time.Hour, j.AutoCloseStaleAttendances)
}

// AutoCloseStaleAttendances closes open sessions whose check-in is older
// than maxOpenHours. Staff who forget to check out get a capped session
// instead of one that grows forever.
func (j *AttendanceJobs) AutoCloseStaleAttendances(ctx context.Context) error {
	closed, err := j.attendanceSvc.AutoCloseStale(ctx, maxOpenHours)
	if err != nil {
		return err
	}

	if closed > 0 {
		slog.Info("Cron: auto-closed stale attendance sessions", "count", closed)
	}
	return nil
}
