package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// BackendReporter posts a session's final aggregate score to the external
// record keeping system. Delivery is at-most-once: a single POST with a
// bounded timeout, failures are the caller's to log and drop.
type BackendReporter struct {
	url    string
	client *http.Client
}

type reportPayload struct {
	EmployeeID string `json:"employee_id"`
	Score      int    `json:"score_de_credibilite"`
}

func NewBackendReporter(url string, timeout time.Duration) *BackendReporter {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BackendReporter{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Report sends the rounded score for one employee. Any non-2xx status is an
// error; the caller never retries.
func (br *BackendReporter) Report(ctx context.Context, employeeID string, score float64) error {
	payload := reportPayload{
		EmployeeID: employeeID,
		Score:      int(math.Round(score)),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not encode report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, br.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := br.client.Do(req)
	if err != nil {
		return fmt.Errorf("report request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("backend rejected report: HTTP %d", resp.StatusCode)
	}
	return nil
}
