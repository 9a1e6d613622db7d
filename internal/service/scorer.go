package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/leadpulse/leadpulse/internal/domain"
)

// Score bounds after clamping
const (
	MinScore = 20
	MaxScore = 100
)

// Scorer assigns a rule-based quality score to incoming submissions.
// The jitter source is seedable so scoring is reproducible in tests.
type Scorer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewScorer creates a scorer with a time-seeded jitter source
func NewScorer() *Scorer {
	return NewScorerWithSeed(time.Now().UnixNano())
}

// NewScorerWithSeed creates a scorer with a fixed jitter seed
func NewScorerWithSeed(seed int64) *Scorer {
	return &Scorer{rnd: rand.New(rand.NewSource(seed))}
}

// Score computes the submission score: a base of 50 adjusted by firmographic
// and channel signals, plus a small jitter, clamped to [20, 100].
func (s *Scorer) Score(sub *domain.LeadSubmission) int {
	score := 50

	if strings.TrimSpace(sub.Company) != "" {
		score += 10
	}

	switch strings.ToLower(sub.UTMSource) {
	case "google", "facebook", "meta":
		score += 15
	case "organic", "direct":
		score += 5
	}

	if sub.FBC != "" || sub.FBP != "" {
		score += 10
	}
	if sub.GCLID != "" {
		score += 10
	}

	s.mu.Lock()
	score += s.rnd.Intn(20) - 10
	s.mu.Unlock()

	if score < MinScore {
		score = MinScore
	}
	if score > MaxScore {
		score = MaxScore
	}
	return score
}
