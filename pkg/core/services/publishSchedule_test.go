package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/internal/config"
)

func TestPublishSchedule_WritesSheetAndMarksPublished(t *testing.T) {
	mock := storedMarchSchedule()
	publisher := &mockPublisher{}
	cfg := &config.Config{ScheduleSheetID: "sheet123"}

	result, err := PublishSchedule(context.Background(), mock, publisher, nil, cfg, zap.NewNop(), "2026-03", true, false)
	require.NoError(t, err)

	assert.Equal(t, "published", mock.statusUpdates["m1"])
	assert.Equal(t, "published", result.View.Status)
	assert.Equal(t, "sheet123", result.SheetID)

	require.NotNil(t, publisher.published)
	assert.Equal(t, "sheet123", publisher.sheetID)
	assert.Equal(t, "2026-03", publisher.published.Month)
	assert.Equal(t, []string{"Opening", "Closing"}, publisher.published.ShiftLabels)
	require.Len(t, publisher.published.Rows, 31)
	assert.Equal(t, "Sun Mar 01 2026", publisher.published.Rows[0].Date)
	assert.Equal(t, [][]string{{"Carol"}, {"Alice", "Bob"}}, publisher.published.Rows[0].Shifts)
	assert.Equal(t, [][]string{{}, {}}, publisher.published.Rows[30].Shifts)
}

func TestPublishSchedule_StatusOnly(t *testing.T) {
	mock := storedMarchSchedule()

	result, err := PublishSchedule(context.Background(), mock, nil, nil, nil, zap.NewNop(), "2026-03", false, false)
	require.NoError(t, err)

	assert.Equal(t, "published", mock.statusUpdates["m1"])
	assert.Empty(t, result.SheetID)
	assert.Empty(t, result.NotifiedEmails)
}

func TestPublishSchedule_AlreadyPublishedKeepsStatus(t *testing.T) {
	mock := storedMarchSchedule()
	mock.months[0].Status = "published"

	_, err := PublishSchedule(context.Background(), mock, nil, nil, nil, zap.NewNop(), "2026-03", false, false)
	require.NoError(t, err)
	assert.Empty(t, mock.statusUpdates)
}

func TestPublishSchedule_SheetRequiresSheetID(t *testing.T) {
	mock := storedMarchSchedule()

	_, err := PublishSchedule(context.Background(), mock, &mockPublisher{}, nil, &config.Config{}, zap.NewNop(), "2026-03", true, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, mock.statusUpdates)
}

func TestPublishSchedule_SheetErrorLeavesDraft(t *testing.T) {
	mock := storedMarchSchedule()
	publisher := &mockPublisher{err: errors.New("quota exceeded")}
	cfg := &config.Config{ScheduleSheetID: "sheet123"}

	_, err := PublishSchedule(context.Background(), mock, publisher, nil, cfg, zap.NewNop(), "2026-03", true, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Empty(t, mock.statusUpdates)
}

func TestPublishSchedule_NotifiesEmployeesWithEmailAndShifts(t *testing.T) {
	mock := storedMarchSchedule()
	sender := &mockSender{}

	result, err := PublishSchedule(context.Background(), mock, nil, sender, nil, zap.NewNop(), "2026-03", false, true)
	require.NoError(t, err)

	// Carol has no email address
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, result.NotifiedEmails)
	assert.Empty(t, result.FailedEmails)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "alice@example.com", sender.sent[0].to)
	assert.Equal(t, "Your shifts for March 2026", sender.sent[0].subject)
	assert.Contains(t, sender.sent[0].body, "Hi Alice,")
	assert.Contains(t, sender.sent[0].body, "Sun Mar 01 2026  Closing (18:00-22:00)")
	assert.Contains(t, sender.sent[0].body, "Mon Mar 02 2026  Opening (08:00-12:00)")
	assert.Contains(t, sender.sent[0].body, "You have 2 shifts this month.")
}

func TestPublishSchedule_CollectsEmailFailures(t *testing.T) {
	mock := storedMarchSchedule()
	sender := &mockSender{failFor: map[string]bool{"alice@example.com": true}}

	result, err := PublishSchedule(context.Background(), mock, nil, sender, nil, zap.NewNop(), "2026-03", false, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"bob@example.com"}, result.NotifiedEmails)
	require.Len(t, result.FailedEmails, 1)
	assert.Equal(t, "e1", result.FailedEmails[0].EmployeeID)
	assert.Equal(t, "Alice", result.FailedEmails[0].EmployeeName)
	assert.Contains(t, result.FailedEmails[0].Error, "mailbox unavailable")
	assert.Equal(t, "published", mock.statusUpdates["m1"])
}

func TestPublishSchedule_NotifyRequiresSender(t *testing.T) {
	_, err := PublishSchedule(context.Background(), storedMarchSchedule(), nil, nil, nil, zap.NewNop(), "2026-03", false, true)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPublishSchedule_UnknownMonth(t *testing.T) {
	_, err := PublishSchedule(context.Background(), storedMarchSchedule(), nil, nil, nil, zap.NewNop(), "2030-01", false, false)
	assert.ErrorIs(t, err, ErrMonthNotFound)
}
