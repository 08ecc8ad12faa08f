package sheetsclient

import (
	"fmt"
	"strings"
	"time"
)

// ScheduleRow is one date of a published schedule
type ScheduleRow struct {
	Date   string     // Format: "Mon Jan 02 2006"
	Shifts [][]string // Employee names per shift column
}

// Schedule is a published month laid out as date rows by shift columns
type Schedule struct {
	Month       string // Format: "2006-01"
	ShiftLabels []string
	Rows        []ScheduleRow
}

// PublishSchedule writes the schedule to a tab titled after the month, e.g. "March 2026".
// A missing tab is created; an existing tab is cleared and overwritten.
func (c *Client) PublishSchedule(spreadsheetID string, schedule *Schedule) error {
	tabTitle, err := TabTitle(schedule.Month)
	if err != nil {
		return fmt.Errorf("failed to generate tab title: %w", err)
	}

	exists, err := c.SheetExists(spreadsheetID, tabTitle)
	if err != nil {
		return err
	}

	if exists {
		if err := c.ClearValues(spreadsheetID, fmt.Sprintf("'%s'", tabTitle)); err != nil {
			return fmt.Errorf("failed to clear existing tab: %w", err)
		}
	} else {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	}

	if err := c.UpdateValues(spreadsheetID, fmt.Sprintf("'%s'!A1", tabTitle), scheduleValues(schedule)); err != nil {
		return fmt.Errorf("failed to write schedule to tab: %w", err)
	}

	return nil
}

// TabTitle formats a "2006-01" month as "January 2006"
func TabTitle(month string) (string, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", fmt.Errorf("invalid month: %w", err)
	}
	return t.Format("January 2006"), nil
}

// scheduleValues lays out a header row followed by one row per date.
// Multiple employees on one shift share a cell, comma separated.
func scheduleValues(schedule *Schedule) [][]interface{} {
	header := []interface{}{"Date"}
	for _, label := range schedule.ShiftLabels {
		header = append(header, label)
	}

	values := make([][]interface{}, 0, len(schedule.Rows)+1)
	values = append(values, header)

	for _, row := range schedule.Rows {
		sheetRow := []interface{}{row.Date}
		for i := range schedule.ShiftLabels {
			cell := ""
			if i < len(row.Shifts) {
				cell = strings.Join(row.Shifts[i], ", ")
			}
			sheetRow = append(sheetRow, cell)
		}
		values = append(values, sheetRow)
	}

	return values
}
