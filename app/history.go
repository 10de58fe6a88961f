package app

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/werk/internal/archive"
	"github.com/ayoisaiah/werk/internal/pathutil"
	"github.com/ayoisaiah/werk/internal/timeutil"
)

const defaultPeriod = timeutil.Period7Days

// historyRange resolves the reporting window. Explicit --since or --until
// dates take precedence over the period.
func historyRange(
	period, since, until string,
	now time.Time,
) (start, end time.Time, err error) {
	if since == "" && until == "" {
		p := timeutil.Period(period)
		if p == "" {
			p = defaultPeriod
		}

		return p.Bounds(now)
	}

	if since != "" {
		start, err = timeutil.FromStr(since, now)
		if err != nil {
			return start, end, err
		}
	}

	end = now

	if until != "" {
		end, err = timeutil.FromStr(until, now)
		if err != nil {
			return start, end, err
		}
	}

	if !start.IsZero() && end.Before(start) {
		return start, end, errInvalidRange.Fmt(
			start.Format(time.DateOnly),
			end.Format(time.DateOnly),
		)
	}

	return start, end, nil
}

// historyAction lists archived sessions for the requested window.
func historyAction(ctx *cli.Context) error {
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	since, until, err := historyRange(
		ctx.String("period"),
		ctx.String("since"),
		ctx.String("until"),
		time.Now(),
	)
	if err != nil {
		return err
	}

	records, err := archive.New(pathutil.ArchiveDir()).List(since, until)
	if err != nil {
		return err
	}

	return printer.History(records)
}
