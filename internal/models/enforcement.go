package models

import "time"

// Mode is an enforcement mode.
type Mode string

const (
	ModeOff      Mode = "off"
	ModeCoaching Mode = "coaching"
	ModeModerate Mode = "moderate"
	ModeStrict   Mode = "strict"
)

// Modes lists every valid enforcement mode.
var Modes = []Mode{ModeOff, ModeCoaching, ModeModerate, ModeStrict}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	for _, v := range Modes {
		if v == m {
			return true
		}
	}

	return false
}

// BreakType is the kind of break that follows a work session.
type BreakType string

const (
	ShortBreak BreakType = "short"
	LongBreak  BreakType = "long"
)

// BreakTypeFor selects the break that follows the count-th pomodoro: every
// interval-th session earns a long break.
func BreakTypeFor(count, interval int) BreakType {
	if interval > 0 && count > 0 && count%interval == 0 {
		return LongBreak
	}

	return ShortBreak
}

// EnforcementState tracks violations and the project bound to the current
// session. It outlives the session when a break is required.
type EnforcementState struct {
	Updated           time.Time  `json:"updated"`
	LastSessionEnd    *time.Time `json:"last_session_end,omitempty"`
	Project           string     `json:"project,omitempty"`
	Goal              string     `json:"goal,omitempty"`
	BreakTypeRequired BreakType  `json:"break_type_required,omitempty"`
	Violations        int        `json:"violations"`
	BreakRequired     bool       `json:"break_required"`
}
