package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestSessionStoreSingleSessionPerUser(t *testing.T) {
	storeSession("sess-old", 42)
	storeSession("sess-new", 42)
	defer dropSession("sess-new")

	if _, ok := lookupSession("sess-old"); ok {
		t.Fatal("older session for the same user should have been evicted")
	}
	if id, ok := lookupSession("sess-new"); !ok || id != 42 {
		t.Fatalf("expected session for user 42, got %d (found=%v)", id, ok)
	}
}

// Logout, GetCurrentUser and new logins all touch the session store from
// their own goroutines, so hammering them together must stay safe under the
// race detector.
func TestSessionStoreConcurrentHandlers(t *testing.T) {
	const workers = 16
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		sessionID := fmt.Sprintf("conc-%d", i)
		userID := 1000 + i
		storeSession(sessionID, userID)

		wg.Add(3)
		go func(id string) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
				req.AddCookie(&http.Cookie{Name: "session_id", Value: id})
				Logout(httptest.NewRecorder(), req)
			}
		}(sessionID)

		go func(id string, user int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				storeSession(id, user)
			}
		}(sessionID, userID)

		go func(id string) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				// Unknown session: rejected from the store alone, no
				// database round trip.
				req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
				req.AddCookie(&http.Cookie{Name: "session_id", Value: id + "-missing"})
				rec := httptest.NewRecorder()
				GetCurrentUser(rec, req)
				if rec.Code != http.StatusUnauthorized {
					t.Errorf("expected 401 for unknown session, got %d", rec.Code)
					return
				}
			}
		}(sessionID)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		dropSession(fmt.Sprintf("conc-%d", i))
	}
}
