package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend serves the two attendance endpoints against an in-memory
// record list and counts mark requests.
type fakeBackend struct {
	mu        sync.Mutex
	records   []Record
	markCalls int
	failMark  bool
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/attendance/getattendance", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeEnvelope(w, http.StatusOK, b.records)
	})

	mux.HandleFunc("/api/attendance/markattendance", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.markCalls++

		if b.failMark {
			writeError(w, http.StatusConflict, "already checked in")
			return
		}

		var req markRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		now := time.Now().UTC()
		switch req.Action {
		case "checkin":
			if len(b.records) > 0 && b.records[0].IsOpen() {
				writeError(w, http.StatusConflict, "already checked in")
				return
			}
			rec := Record{ID: "rec-1", CheckInAt: now, Status: "open"}
			if req.Notes != "" {
				rec.Notes = &req.Notes
			}
			b.records = append([]Record{rec}, b.records...)
			writeEnvelope(w, http.StatusOK, rec)
		case "checkout":
			if len(b.records) == 0 || !b.records[0].IsOpen() {
				writeError(w, http.StatusConflict, "not checked in")
				return
			}
			b.records[0].CheckOutAt = &now
			b.records[0].Status = "closed"
			writeEnvelope(w, http.StatusOK, b.records[0])
		default:
			writeError(w, http.StatusBadRequest, "invalid action")
		}
	})

	return mux
}

func (b *fakeBackend) marks() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.markCalls
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func fixedPosition() Geolocator {
	return GeolocatorFunc(func(ctx context.Context) (Position, error) {
		return Position{Latitude: 12.97, Longitude: 77.59}, nil
	})
}

func failingPosition() Geolocator {
	return GeolocatorFunc(func(ctx context.Context) (Position, error) {
		return Position{}, errors.New("permission denied")
	})
}

func TestCheckInCheckOutLifecycle(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	tr := NewTracker(NewClient(server.URL, "token", server.Client()), fixedPosition())
	defer tr.Close()

	require.Equal(t, OffDuty, tr.State())

	require.NoError(t, tr.CheckIn(context.Background(), "Morning shift"))
	assert.Equal(t, OnDuty, tr.State())
	assert.False(t, tr.CheckInAt().IsZero())

	history := tr.History()
	require.Len(t, history, 1)
	assert.True(t, history[0].IsOpen())
	require.NotNil(t, history[0].Notes)
	assert.Equal(t, "Morning shift", *history[0].Notes)

	require.NoError(t, tr.CheckOut(context.Background()))
	assert.Equal(t, OffDuty, tr.State())
	assert.Equal(t, time.Duration(0), tr.Elapsed())

	history = tr.History()
	require.Len(t, history, 1)
	assert.False(t, history[0].IsOpen())
}

func TestConcurrentTransitionRejected(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	entered := make(chan struct{})
	release := make(chan struct{})
	gated := GeolocatorFunc(func(ctx context.Context) (Position, error) {
		close(entered)
		<-release
		return Position{Latitude: 12.97, Longitude: 77.59}, nil
	})

	tr := NewTracker(NewClient(server.URL, "token", server.Client()), gated)
	defer tr.Close()

	done := make(chan error, 1)
	go func() {
		done <- tr.CheckIn(context.Background(), "")
	}()

	<-entered
	assert.Equal(t, Transitioning, tr.State())
	assert.ErrorIs(t, tr.CheckIn(context.Background(), ""), ErrTransitionInFlight)
	assert.ErrorIs(t, tr.CheckOut(context.Background()), ErrTransitionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, OnDuty, tr.State())
}

func TestDoubleCheckInRejected(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	tr := NewTracker(NewClient(server.URL, "token", server.Client()), fixedPosition())
	defer tr.Close()

	require.NoError(t, tr.CheckIn(context.Background(), ""))

	err := tr.CheckIn(context.Background(), "")
	assert.ErrorIs(t, err, ErrAlreadyOnDuty)
	assert.Equal(t, OnDuty, tr.State())
}

func TestLocationFailureAbortsBeforeNetwork(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	tr := NewTracker(NewClient(server.URL, "token", server.Client()), failingPosition())
	defer tr.Close()

	err := tr.CheckIn(context.Background(), "")

	var locErr *LocationError
	require.ErrorAs(t, err, &locErr)
	assert.Equal(t, OffDuty, tr.State())
	assert.Equal(t, 0, backend.marks(), "no network call may be issued when location fails")
}

func TestMarkFailureRollsBack(t *testing.T) {
	backend := &fakeBackend{failMark: true}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	tr := NewTracker(NewClient(server.URL, "token", server.Client()), fixedPosition())
	defer tr.Close()

	err := tr.CheckIn(context.Background(), "")

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusConflict, reqErr.StatusCode)
	assert.Equal(t, OffDuty, tr.State())
}

func TestResumeFromOpenRecord(t *testing.T) {
	checkIn := time.Now().UTC().Add(-30 * time.Minute)
	backend := &fakeBackend{records: []Record{{ID: "rec-9", CheckInAt: checkIn, Status: "open"}}}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	tr := NewTracker(NewClient(server.URL, "token", server.Client()), fixedPosition())
	defer tr.Close()

	require.NoError(t, tr.Resume(context.Background()))
	assert.Equal(t, OnDuty, tr.State())
	assert.WithinDuration(t, checkIn, tr.CheckInAt(), time.Second)
}

func TestResumeFromClosedRecord(t *testing.T) {
	closed := time.Now().UTC()
	backend := &fakeBackend{records: []Record{{ID: "rec-9", CheckInAt: closed.Add(-8 * time.Hour), CheckOutAt: &closed, Status: "closed"}}}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	tr := NewTracker(NewClient(server.URL, "token", server.Client()), fixedPosition())
	defer tr.Close()

	require.NoError(t, tr.Resume(context.Background()))
	assert.Equal(t, OffDuty, tr.State())
}

func TestElapsedRederivedFromClock(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	current := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	tr := NewTracker(NewClient(server.URL, "token", server.Client()), fixedPosition(), WithClock(now))
	defer tr.Close()

	require.NoError(t, tr.Resume(context.Background()))

	// Seed an open session at the fake clock's current instant.
	backend.mu.Lock()
	backend.records = []Record{{ID: "rec-1", CheckInAt: current, Status: "open"}}
	backend.mu.Unlock()
	require.NoError(t, tr.Resume(context.Background()))

	// Jump the clock a full hour. Elapsed must match exactly even though
	// no ticks fired in between.
	mu.Lock()
	current = current.Add(time.Hour)
	mu.Unlock()

	assert.Equal(t, time.Hour, tr.Elapsed())
	assert.Equal(t, "1h 0m 0s", FormatElapsed(tr.Elapsed()))
}

func TestHistoryNonArrayTreatedAsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]string{"unexpected": "shape"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "token", server.Client())

	records, err := client.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0h 0m 0s", FormatElapsed(0))
	assert.Equal(t, "0h 0m 59s", FormatElapsed(59*time.Second))
	assert.Equal(t, "1h 0m 0s", FormatElapsed(time.Hour))
	assert.Equal(t, "2h 5m 9s", FormatElapsed(2*time.Hour+5*time.Minute+9*time.Second))
	assert.Equal(t, "0h 0m 0s", FormatElapsed(-time.Second))
}
