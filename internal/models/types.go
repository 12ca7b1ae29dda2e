package models

import "time"

const (
	StatusAnalyzed = "analyzed"
	StatusError    = "error"

	GazeLeft   = "left"
	GazeCenter = "center"
	GazeRight  = "right"
)

// Observation holds the behavioral signals extracted from a single frame.
type Observation struct {
	LookingAway         bool
	GazeDirection       string
	FaceDetected        bool
	SuspiciousMovements int
	HeadMovement        bool
	PersonStoodUp       bool
	Brightness          float64
	Contrast            float64
}

// NeutralObservation is the defined fallback when extraction fails.
func NeutralObservation() Observation {
	return Observation{
		LookingAway:         false,
		GazeDirection:       GazeCenter,
		FaceDetected:        false,
		SuspiciousMovements: 0,
		HeadMovement:        false,
		PersonStoodUp:       false,
	}
}

// AnalysisResult is the per-frame payload sent back over the WebSocket.
type AnalysisResult struct {
	LookingAway         bool   `json:"looking_away"`
	SuspiciousMovements int    `json:"suspicious_movements"`
	PersonStoodUp       bool   `json:"person_stood_up"`
	CameraBlocked       bool   `json:"camera_blocked"`
	CredibilityScore    int    `json:"credibility_score"`
	GazeDirection       string `json:"gaze_direction"`
	HeadMovement        bool   `json:"head_movement"`
	FaceDetected        bool   `json:"face_detected"`
	Status              string `json:"status"`
}

// InitMessage is the identity binding message sent by the client.
type InitMessage struct {
	Type       string `json:"type"`
	EmployeeID string `json:"employee_id"`
}

type HealthStatus struct {
	Status           string        `json:"status"`
	GoBackend        string        `json:"go_backend"`
	ExtractorService bool          `json:"extractor_service"`
	ActiveSessions   int           `json:"active_sessions"`
	Uptime           time.Duration `json:"uptime"`
	Version          string        `json:"version,omitempty"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
	Code      string `json:"code,omitempty"`
}
