package scoring

import (
	"testing"

	"AI_PROCTOR/go-backend/internal/models"
)

func cleanObs() models.Observation {
	return models.Observation{
		GazeDirection: models.GazeCenter,
		FaceDetected:  true,
		Brightness:    120,
		Contrast:      50,
	}
}

func darkObs() models.Observation {
	obs := cleanObs()
	obs.Brightness = 10
	obs.Contrast = 5
	return obs
}

func TestInitialScore(t *testing.T) {
	s := NewScorer()
	if s.Score() != 100 {
		t.Fatalf("expected initial score 100, got %d", s.Score())
	}
}

func TestDeductionAdditivity(t *testing.T) {
	s := NewScorer()

	obs := cleanObs()
	obs.LookingAway = true
	obs.SuspiciousMovements = 2

	result := s.Update(obs)
	// 3 for looking away + 2*2 for movements = 7
	if result.CredibilityScore != 93 {
		t.Fatalf("expected score 93 after 7 point deduction, got %d", result.CredibilityScore)
	}
}

func TestLookingAwaySequence(t *testing.T) {
	s := NewScorer()

	obs := cleanObs()
	obs.LookingAway = true
	obs.GazeDirection = models.GazeLeft

	expected := []int{97, 94, 91}
	for i, want := range expected {
		result := s.Update(obs)
		if result.CredibilityScore != want {
			t.Errorf("frame %d: expected score %d, got %d", i+1, want, result.CredibilityScore)
		}
	}
}

func TestRegeneration(t *testing.T) {
	s := NewScorer()

	// Drive the score down to 80 with one heavy frame.
	obs := cleanObs()
	obs.SuspiciousMovements = 10
	result := s.Update(obs)
	if result.CredibilityScore != 80 {
		t.Fatalf("setup: expected score 80, got %d", result.CredibilityScore)
	}

	// Ten clean frames recover exactly 5 points.
	for i := 0; i < 10; i++ {
		result = s.Update(cleanObs())
	}
	if result.CredibilityScore != 85 {
		t.Fatalf("expected score 85 after ten clean frames, got %d", result.CredibilityScore)
	}
}

func TestRegenerationNeverOvershoots(t *testing.T) {
	s := NewScorer()

	obs := cleanObs()
	obs.LookingAway = true
	s.Update(obs) // 97

	var result models.AnalysisResult
	for i := 0; i < 20; i++ {
		result = s.Update(cleanObs())
	}
	if result.CredibilityScore != 100 {
		t.Fatalf("expected score capped at 100, got %d", result.CredibilityScore)
	}
}

func TestScoreFloor(t *testing.T) {
	s := NewScorer()

	obs := cleanObs()
	obs.PersonStoodUp = true

	var result models.AnalysisResult
	for i := 0; i < 10; i++ {
		result = s.Update(obs)
	}
	if result.CredibilityScore != 20 {
		t.Fatalf("expected score floored at 20, got %d", result.CredibilityScore)
	}
}

func TestScoreTruncation(t *testing.T) {
	s := NewScorer()

	obs := cleanObs()
	obs.LookingAway = true
	s.Update(obs) // 97.0

	// One clean frame puts the internal score at 97.5, reported as 97.
	result := s.Update(cleanObs())
	if result.CredibilityScore != 97 {
		t.Fatalf("expected truncated score 97, got %d", result.CredibilityScore)
	}

	// The half point was retained internally: one more clean frame lands on 98.
	result = s.Update(cleanObs())
	if result.CredibilityScore != 98 {
		t.Fatalf("expected score 98, got %d", result.CredibilityScore)
	}
}

func TestCameraBlockedHysteresis(t *testing.T) {
	s := NewScorer()

	// Five dark frames are not enough.
	for i := 0; i < 5; i++ {
		result := s.Update(darkObs())
		if result.CameraBlocked {
			t.Fatalf("camera reported blocked after only %d dark frames", i+1)
		}
	}

	// The sixth one trips the counter.
	result := s.Update(darkObs())
	if !result.CameraBlocked {
		t.Fatal("expected camera blocked after six dark frames")
	}

	// A single bright frame decays the counter by 0.5, it does not reset it.
	result = s.Update(cleanObs())
	if !result.CameraBlocked {
		t.Fatal("single bright frame should not clear the blocked state")
	}

	// Two more bright frames bring the counter back under the trigger.
	s.Update(cleanObs())
	result = s.Update(cleanObs())
	if result.CameraBlocked {
		t.Fatal("expected camera unblocked after counter decayed")
	}
}

func TestNoFaceDeduction(t *testing.T) {
	s := NewScorer()

	obs := cleanObs()
	obs.FaceDetected = false

	// No penalty for the first ten frames without a face.
	var result models.AnalysisResult
	for i := 0; i < 10; i++ {
		result = s.Update(obs)
		if result.CredibilityScore != 100 {
			t.Fatalf("frame %d: unexpected deduction, score %d", i+1, result.CredibilityScore)
		}
	}

	// Frame eleven starts costing 5 per frame.
	result = s.Update(obs)
	if result.CredibilityScore != 95 {
		t.Fatalf("expected score 95 on frame eleven, got %d", result.CredibilityScore)
	}

	// Finding a face resets the streak.
	s.Update(cleanObs())
	result = s.Update(obs)
	if result.CredibilityScore < 95 {
		t.Fatalf("no-face streak did not reset, score %d", result.CredibilityScore)
	}
}

func TestErrorResultKeepsScore(t *testing.T) {
	s := NewScorer()

	obs := cleanObs()
	obs.LookingAway = true
	s.Update(obs) // 97

	result := s.ErrorResult()
	if result.Status != models.StatusError {
		t.Fatalf("expected status error, got %q", result.Status)
	}
	if result.CredibilityScore != 97 {
		t.Fatalf("error result changed reported score: %d", result.CredibilityScore)
	}
	if result.FaceDetected || result.LookingAway || result.CameraBlocked {
		t.Fatal("error result should carry the neutral observation")
	}
	if result.GazeDirection != models.GazeCenter {
		t.Fatalf("expected neutral gaze center, got %q", result.GazeDirection)
	}

	// The internal state is untouched.
	if s.Score() != 97 {
		t.Fatalf("error result mutated score: %d", s.Score())
	}
}

func TestScoreBounds(t *testing.T) {
	s := NewScorer()

	sequence := []models.Observation{
		cleanObs(), darkObs(), cleanObs(),
		{LookingAway: true, GazeDirection: models.GazeRight, SuspiciousMovements: 4, PersonStoodUp: true, Brightness: 80, Contrast: 40},
		{GazeDirection: models.GazeCenter, Brightness: 5, Contrast: 2},
	}

	for i := 0; i < 50; i++ {
		result := s.Update(sequence[i%len(sequence)])
		if result.CredibilityScore < 20 || result.CredibilityScore > 100 {
			t.Fatalf("step %d: score %d out of bounds", i, result.CredibilityScore)
		}
	}
}
