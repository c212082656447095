package srs

// Params holds the tunables of the scheduler.
type Params struct {
	InitialEaseFactor float64
	MinEaseFactor     float64
	MaxEaseFactor     float64

	// CorrectEaseBonus is added after a correct answer; IncorrectEasePenalty
	// is subtracted after a miss.
	CorrectEaseBonus     float64
	IncorrectEasePenalty float64

	FirstInterval  int
	SecondInterval int

	HistoryLimit int
	// DifficultMinAttempts is the history length a word needs before it can
	// count as difficult.
	DifficultMinAttempts int
}

// NewDefaultParams returns the stock scheduling parameters.
func NewDefaultParams() *Params {
	return &Params{
		InitialEaseFactor:    2.5,
		MinEaseFactor:        1.3,
		MaxEaseFactor:        3.0,
		CorrectEaseBonus:     0.1,
		IncorrectEasePenalty: 0.2,
		FirstInterval:        1,
		SecondInterval:       6,
		HistoryLimit:         20,
		DifficultMinAttempts: 3,
	}
}
