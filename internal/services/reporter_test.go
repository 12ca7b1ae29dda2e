package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestReportPayload(t *testing.T) {
	var got reportPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	br := NewBackendReporter(srv.URL, 2*time.Second)
	if err := br.Report(context.Background(), "E1", 94.0); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	if got.EmployeeID != "E1" {
		t.Errorf("expected employee_id E1, got %q", got.EmployeeID)
	}
	if got.Score != 94 {
		t.Errorf("expected score 94, got %d", got.Score)
	}
}

func TestReportRoundsScore(t *testing.T) {
	var got reportPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	br := NewBackendReporter(srv.URL, 2*time.Second)
	if err := br.Report(context.Background(), "E2", 93.5); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if got.Score != 94 {
		t.Errorf("expected rounded score 94, got %d", got.Score)
	}
}

func TestReportNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	br := NewBackendReporter(srv.URL, 2*time.Second)
	if err := br.Report(context.Background(), "E3", 80); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}

func TestReportUnreachableBackend(t *testing.T) {
	br := NewBackendReporter("http://127.0.0.1:1/save_credibility_score", time.Second)
	if err := br.Report(context.Background(), "E4", 75); err == nil {
		t.Fatal("expected error for unreachable backend")
	}
}
