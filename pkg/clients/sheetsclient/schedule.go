package sheetsclient

import (
	"fmt"

	"github.com/SojoC/nexo-ppeam/pkg/core/scheduler"
)

// scheduleHeader is the fixed column layout of a published week tab
var scheduleHeader = []interface{}{
	"Date", "Day", "Location", "Time", "Participant A", "Participant B", "Note",
}

// PublishWeek writes a weekly schedule to the spreadsheet, one row per slot.
// The tab is titled with the week's date range; an existing tab with the same
// title is overwritten in place.
func (c *Client) PublishWeek(spreadsheetID string, week *scheduler.WeekSchedule) error {
	if len(week.Days) == 0 {
		return fmt.Errorf("cannot publish an empty week")
	}

	tabTitle := fmt.Sprintf("%s - %s",
		week.Days[0].Date.Format("Mon Jan 02 2006"),
		week.Days[len(week.Days)-1].Date.Format("Mon Jan 02 2006"),
	)

	exists, err := c.sheetExists(spreadsheetID, tabTitle)
	if err != nil {
		return err
	}
	if !exists {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create schedule tab: %w", err)
		}
	}

	rows := buildScheduleRows(week)

	writeRange := fmt.Sprintf("%s!A1", tabTitle)
	if err := c.UpdateValues(spreadsheetID, writeRange, rows); err != nil {
		return fmt.Errorf("failed to write schedule to tab %q: %w", tabTitle, err)
	}

	return nil
}

// buildScheduleRows flattens a week into sheet rows: a header row, then one
// row per slot per location per day. Days without assignments still get a
// marker row so the published table accounts for every date.
func buildScheduleRows(week *scheduler.WeekSchedule) [][]interface{} {
	rows := [][]interface{}{scheduleHeader}

	for _, day := range week.Days {
		dateStr := day.Date.Format(scheduler.ISODateFormat)

		if len(day.Assignments) == 0 {
			rows = append(rows, []interface{}{
				dateStr, day.DayName, "", "", "", "", "no locations selected",
			})
			continue
		}

		for _, assignment := range day.Assignments {
			for _, slot := range assignment.Slots {
				nameA, nameB := "", ""
				if slot.ParticipantA != nil {
					nameA = slot.ParticipantA.Name
				}
				if slot.ParticipantB != nil {
					nameB = slot.ParticipantB.Name
				}
				rows = append(rows, []interface{}{
					dateStr, day.DayName, assignment.LocationName,
					slot.TimeLabel, nameA, nameB, day.Note,
				})
			}
		}
	}

	return rows
}
