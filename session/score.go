package session

// ScorePolicy shapes the focus score curve: a fast warm-up, a steady
// stretch and a slow tail, with a cap on each.
type ScorePolicy struct {
	WarmupMinutes int
	WarmupRate    int
	SteadyUntil   int
	SteadyCap     int
	TailEvery     int
	Max           int
}

// DefaultScorePolicy awards 2 points a minute for the first 15 minutes, 1 a
// minute up to 70 points by the hour and 1 for every 6 minutes after that,
// up to 100.
var DefaultScorePolicy = ScorePolicy{
	WarmupMinutes: 15,
	WarmupRate:    2,
	SteadyUntil:   60,
	SteadyCap:     70,
	TailEvery:     6,
	Max:           100,
}

// Score returns the focus score after m whole minutes of work.
func (p ScorePolicy) Score(m int) int {
	if m <= 0 {
		return 0
	}

	score := min(m, p.WarmupMinutes) * p.WarmupRate

	if m > p.WarmupMinutes {
		score = min(score+min(m, p.SteadyUntil)-p.WarmupMinutes, p.SteadyCap)
	}

	if m > p.SteadyUntil && p.TailEvery > 0 {
		score += (m - p.SteadyUntil) / p.TailEvery
	}

	return min(score, p.Max)
}
