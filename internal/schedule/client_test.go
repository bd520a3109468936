package schedule_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/schedule"
)

// fastBackOff keeps retry tests from sleeping.
func fastBackOff() backoff.BackOff {
	return backoff.NewConstantBackOff(time.Millisecond)
}

func newTestClient(url string, opts ...schedule.ClientOption) *schedule.Client {
	opts = append([]schedule.ClientOption{schedule.WithBackOff(fastBackOff)}, opts...)
	return schedule.NewClient(url, opts...)
}

const sampleResponse = `[
  {
    "TrainDate": "2025-05-24",
    "DailyTrainInfo": {
      "TrainNo": "1254",
      "TrainTypeName": {"Zh_tw": "區間車", "En": "Local Train"},
      "EndingStationID": "7000",
      "EndingStationName": {"Zh_tw": "花蓮", "En": "Hualien"}
    },
    "OriginStopTime": {"StationID": "0910", "DepartureTime": "14:05"},
    "DestinationStopTime": {"StationID": "1000", "ArrivalTime": "14:25"}
  }
]`

func TestClient_Lookup_PostsRequestAndDecodes(t *testing.T) {
	var got schedule.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	trips, err := newTestClient(srv.URL).Lookup(context.Background(), schedule.Request{
		Start: "0910", End: "1000", Date: "2025-05-24",
	})

	require.NoError(t, err)
	assert.Equal(t, schedule.Request{Start: "0910", End: "1000", Date: "2025-05-24"}, got)
	require.Len(t, trips, 1)
	assert.Equal(t, "1254", trips[0].DailyTrainInfo.TrainNo)
	assert.Equal(t, "14:25", trips[0].DestinationStopTime.ArrivalTime)
}

func TestClient_Lookup_ClientErrorSurfacesDetailWithoutRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"查詢日期超出可查詢範圍"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, schedule.WithMaxRetries(3)).Lookup(context.Background(), schedule.Request{
		Start: "0910", End: "1000", Date: "2099-01-01",
	})

	require.ErrorIs(t, err, domain.ErrQueryFailed)
	var qe *domain.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "查詢日期超出可查詢範圍", qe.Detail)
	assert.Equal(t, http.StatusBadRequest, qe.Status)
	assert.EqualValues(t, 1, calls.Load(), "4xx must not be retried")
}

func TestClient_Lookup_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	trips, err := newTestClient(srv.URL, schedule.WithMaxRetries(3)).Lookup(context.Background(), schedule.Request{
		Start: "0910", End: "1000", Date: "2025-05-24",
	})

	require.NoError(t, err)
	assert.Len(t, trips, 1)
	assert.EqualValues(t, 3, calls.Load())
}

func TestClient_Lookup_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, schedule.WithMaxRetries(2)).Lookup(context.Background(), schedule.Request{
		Start: "0910", End: "1000", Date: "2025-05-24",
	})

	var qe *domain.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), qe.Detail, "no body: fall back to status text")
	assert.EqualValues(t, 3, calls.Load(), "one attempt plus two retries")
}

func TestClient_Lookup_TimeoutIsReportedAsQueryFailed(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := newTestClient(srv.URL,
		schedule.WithTimeout(20*time.Millisecond),
		schedule.WithMaxRetries(1),
	).Lookup(context.Background(), schedule.Request{Start: "0910", End: "1000", Date: "2025-05-24"})

	require.ErrorIs(t, err, domain.ErrQueryFailed)
	var qe *domain.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "schedule lookup timed out", qe.Detail)
}

func TestClient_Lookup_BudgetBoundsAllAttempts(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	// Per-attempt timeout left at its default; only the budget can stop this.
	start := time.Now()
	_, err := newTestClient(srv.URL,
		schedule.WithBudget(150*time.Millisecond),
		schedule.WithMaxRetries(10),
	).Lookup(context.Background(), schedule.Request{Start: "0910", End: "1000", Date: "2025-05-24"})
	elapsed := time.Since(start)

	var qe *domain.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "schedule lookup timed out", qe.Detail)
	assert.Less(t, elapsed, 2*time.Second)
	assert.EqualValues(t, 1, calls.Load(), "the hanging attempt used the whole budget")
}

func TestClient_Lookup_CallerCancellationIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		cancel()
		<-r.Context().Done()
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, schedule.WithMaxRetries(3)).Lookup(ctx, schedule.Request{
		Start: "0910", End: "1000", Date: "2025-05-24",
	})

	var qe *domain.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "schedule lookup cancelled", qe.Detail)
	assert.EqualValues(t, 1, calls.Load())
}

func TestClient_Lookup_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Lookup(context.Background(), schedule.Request{Start: "0910", End: "1000", Date: "2025-05-24"})

	var qe *domain.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "malformed schedule response", qe.Detail)
}
