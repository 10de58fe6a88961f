package config

import "github.com/ayoisaiah/werk/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing config file failed",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration",
	}

	errShortBreakTooLong = &apperr.Error{
		Message: "short break duration (%v) must be less than work duration (%v)",
	}

	errLongBreakTooShort = &apperr.Error{
		Message: "long break duration (%v) must be greater than short break duration (%v)",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v",
	}

	errInvalidReminder = &apperr.Error{
		Message: "reminder interval must be between 0 and %d minutes",
	}

	errInvalidLongBreakInterval = &apperr.Error{
		Message: "long break interval must be between %d and %d sessions",
	}

	errInvalidThreshold = &apperr.Error{
		Message: "distraction threshold must be at least 1, got %d",
	}

	errInvalidRatio = &apperr.Error{
		Message: "early stop ratio must be greater than 0 and at most 1, got %v",
	}

	errEmptyMsg = &apperr.Error{
		Message: "%s message cannot be empty",
	}
)
