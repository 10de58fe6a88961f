package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/timeutil"
	"github.com/ayoisaiah/werk/internal/ui"
)

const noSessionsMsg = "No sessions found for the specified time range"

type historyDoc struct {
	Sessions     []models.ArchiveRecord `json:"sessions"`
	Count        int                    `json:"count"`
	TotalSeconds int64                  `json:"total_seconds"`
	Pomodoros    int                    `json:"pomodoros"`
	EarlyStops   int                    `json:"early_stops"`
}

func summarise(records []models.ArchiveRecord) historyDoc {
	doc := historyDoc{
		Sessions: records,
		Count:    len(records),
	}

	if doc.Sessions == nil {
		doc.Sessions = []models.ArchiveRecord{}
	}

	for i := range records {
		doc.TotalSeconds += records[i].DurationSeconds

		if records[i].EarlyStop {
			doc.EarlyStops++
		}
	}

	doc.Pomodoros = doc.Count - doc.EarlyStops

	return doc
}

// History prints archived sessions with their totals.
func (p *Printer) History(records []models.ArchiveRecord) error {
	doc := summarise(records)

	if p.json {
		return p.writeJSON(doc)
	}

	if len(records) == 0 {
		p.info(noSessionsMsg)
		return nil
	}

	tableBody := make([][]string, 0, len(records)+1)
	tableBody = append(tableBody, []string{
		"#", "DATE", "DURATION", "GOAL", "PROJECT", "POMODORO", "STATUS",
	})

	for i := range records {
		r := records[i]

		status := ui.Green("completed")
		if r.EarlyStop {
			status = ui.Red("early")
		}

		tableBody = append(tableBody, []string{
			strconv.Itoa(i + 1),
			r.StartTime.Local().Format("Jan 02, 2006 " + p.timeFormat),
			timeutil.HumanDuration(r.Duration()),
			r.Goal,
			ui.Magenta(r.Project),
			fmt.Sprintf("#%d", r.PomodoroCount),
			status,
		})
	}

	if err := ui.PrintTable(p.w, tableBody); err != nil {
		return err
	}

	p.info(
		"%d session(s), %s in total, %d stopped early",
		doc.Count,
		timeutil.HumanDuration(time.Duration(doc.TotalSeconds)*time.Second),
		doc.EarlyStops,
	)

	return nil
}
