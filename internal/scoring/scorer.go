package scoring

import (
	"math"

	"AI_PROCTOR/go-backend/internal/models"
)

const (
	minScore = 20.0
	maxScore = 100.0

	lookingAwayPenalty   = 3.0
	movementPenalty      = 2.0
	stoodUpPenalty       = 15.0
	cameraBlockedPenalty = 10.0
	noFacePenalty        = 5.0

	// A clean frame recovers half a point.
	regenStep = 0.5

	// Consecutive frames without a face before it starts costing points.
	noFaceThreshold = 10

	// Camera obstruction heuristic: a frame this dark and this flat counts
	// toward the blocked counter, anything else decays it.
	blockedBrightness = 30.0
	blockedContrast   = 15.0
	blockedTrigger    = 5.0
	blockedDecay      = 0.5
)

// Scorer keeps the running credibility state of one session. It is owned by
// the session's goroutine and is not safe for concurrent use.
type Scorer struct {
	score          float64
	blockedCounter float64
	noFaceFrames   int
}

func NewScorer() *Scorer {
	return &Scorer{score: maxScore}
}

// Score is the integer score as reported to clients. Internal precision is
// kept in the float, only the reported value is truncated.
func (s *Scorer) Score() int {
	return int(s.score)
}

// Update folds one observation into the running score and returns the full
// analysis result for that frame. Deductions are additive within a frame,
// regeneration only applies when nothing was deducted.
func (s *Scorer) Update(obs models.Observation) models.AnalysisResult {
	cameraBlocked := s.updateCameraBlocked(obs.Brightness, obs.Contrast)

	if obs.FaceDetected {
		s.noFaceFrames = 0
	} else {
		s.noFaceFrames++
	}

	deduction := 0.0
	if obs.LookingAway {
		deduction += lookingAwayPenalty
	}
	if obs.SuspiciousMovements > 0 {
		deduction += movementPenalty * float64(obs.SuspiciousMovements)
	}
	if obs.PersonStoodUp {
		deduction += stoodUpPenalty
	}
	if cameraBlocked {
		deduction += cameraBlockedPenalty
	}
	if !obs.FaceDetected && s.noFaceFrames > noFaceThreshold {
		deduction += noFacePenalty
	}

	if deduction > 0 {
		s.score = math.Max(minScore, s.score-deduction)
	} else if s.score < maxScore {
		s.score = math.Min(maxScore, s.score+regenStep)
	}

	return models.AnalysisResult{
		LookingAway:         obs.LookingAway,
		SuspiciousMovements: obs.SuspiciousMovements,
		PersonStoodUp:       obs.PersonStoodUp,
		CameraBlocked:       cameraBlocked,
		CredibilityScore:    int(s.score),
		GazeDirection:       obs.GazeDirection,
		HeadMovement:        obs.HeadMovement,
		FaceDetected:        obs.FaceDetected,
		Status:              models.StatusAnalyzed,
	}
}

// ErrorResult is reported when extraction failed for a frame. The score and
// all counters stay untouched, the client just sees status "error".
func (s *Scorer) ErrorResult() models.AnalysisResult {
	obs := models.NeutralObservation()
	return models.AnalysisResult{
		LookingAway:         obs.LookingAway,
		SuspiciousMovements: obs.SuspiciousMovements,
		PersonStoodUp:       obs.PersonStoodUp,
		CameraBlocked:       false,
		CredibilityScore:    int(s.score),
		GazeDirection:       obs.GazeDirection,
		HeadMovement:        obs.HeadMovement,
		FaceDetected:        obs.FaceDetected,
		Status:              models.StatusError,
	}
}

func (s *Scorer) updateCameraBlocked(brightness, contrast float64) bool {
	if brightness < blockedBrightness && contrast < blockedContrast {
		s.blockedCounter++
	} else {
		s.blockedCounter = math.Max(0, s.blockedCounter-blockedDecay)
	}
	return s.blockedCounter > blockedTrigger
}
