package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"todo-backend/pkg/gcalendar"
)

// rewriteTransport redirects every request to the test server host.
type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func TestCalendarClient(t *testing.T) {
	t.Run("Rejects Non Service Account Credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected credentials parsing failure")
		}
	})

	t.Run("Create Event", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.Path, "/calendars/primary/events") {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			var body map[string]interface{}
			json.NewDecoder(r.Body).Decode(&body)
			if body["summary"] != "Call dentist" {
				t.Errorf("unexpected summary: %v", body["summary"])
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "evt-1", "summary": "Call dentist", "htmlLink": "http://cal/evt-1"}`))
		}))
		defer ts.Close()

		httpClient := &http.Client{Transport: &rewriteTransport{
			Transport: http.DefaultTransport,
			Host:      strings.TrimPrefix(ts.URL, "http://"),
		}}
		client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
		if err != nil {
			t.Fatalf("client init: %v", err)
		}

		due := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Call dentist",
			StartTime: due.Add(-time.Hour),
			EndTime:   due,
			Timezone:  "UTC",
		})
		if err != nil {
			t.Fatalf("create event: %v", err)
		}
		if event.ID != "evt-1" {
			t.Errorf("unexpected event id: %s", event.ID)
		}
	})

	t.Run("Create Event Server Error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		httpClient := &http.Client{Transport: &rewriteTransport{
			Transport: http.DefaultTransport,
			Host:      strings.TrimPrefix(ts.URL, "http://"),
		}}
		client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
		if err != nil {
			t.Fatalf("client init: %v", err)
		}

		_, err = client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "x",
			StartTime: time.Now(),
			EndTime:   time.Now().Add(time.Hour),
		})
		if err == nil {
			t.Errorf("expected error on server failure")
		}
	})
}
