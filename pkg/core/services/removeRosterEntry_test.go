package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/pkg/db"
)

func publishedMarchSchedule() *mockDB {
	mock := storedMarchSchedule()
	mock.months[0].Status = "published"
	return mock
}

func TestRemoveEmployee(t *testing.T) {
	mock := storedMarchSchedule()

	removed, err := RemoveEmployee(context.Background(), mock, zap.NewNop(), "e1", false)
	require.NoError(t, err)

	assert.Equal(t, "Alice", removed.Name)
	assert.Equal(t, []string{"e1"}, mock.deletedEmployees)
}

func TestRemoveEmployee_PublishedScheduleNeedsForce(t *testing.T) {
	mock := publishedMarchSchedule()

	_, err := RemoveEmployee(context.Background(), mock, zap.NewNop(), "e1", false)
	assert.ErrorIs(t, err, ErrMonthPublished)
	assert.Contains(t, err.Error(), "2026-03")
	assert.Empty(t, mock.deletedEmployees)

	_, err = RemoveEmployee(context.Background(), mock, zap.NewNop(), "e1", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, mock.deletedEmployees)
}

func TestRemoveEmployee_NotOnPublishedSchedule(t *testing.T) {
	mock := publishedMarchSchedule()
	mock.employees = append(mock.employees, db.Employee{ID: "e4", Name: "Dave"})

	_, err := RemoveEmployee(context.Background(), mock, zap.NewNop(), "e4", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"e4"}, mock.deletedEmployees)
}

func TestRemoveEmployee_Errors(t *testing.T) {
	mock := newMockDB()
	_, err := RemoveEmployee(context.Background(), mock, zap.NewNop(), "e9", false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	mock.deleteErr = errors.New("connection reset")
	_, err = RemoveEmployee(context.Background(), mock, zap.NewNop(), "e1", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to remove employee")
}

func TestRemoveShiftType(t *testing.T) {
	mock := storedMarchSchedule()

	removed, err := RemoveShiftType(context.Background(), mock, zap.NewNop(), "s2", false)
	require.NoError(t, err)

	assert.Equal(t, "Opening", removed.Label)
	assert.Equal(t, []string{"s2"}, mock.deletedShiftTypes)
}

func TestRemoveShiftType_PublishedScheduleNeedsForce(t *testing.T) {
	mock := publishedMarchSchedule()

	_, err := RemoveShiftType(context.Background(), mock, zap.NewNop(), "s1", false)
	assert.ErrorIs(t, err, ErrMonthPublished)
	assert.Empty(t, mock.deletedShiftTypes)

	_, err = RemoveShiftType(context.Background(), mock, zap.NewNop(), "s1", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, mock.deletedShiftTypes)
}

func TestRemoveShiftType_Unknown(t *testing.T) {
	_, err := RemoveShiftType(context.Background(), newMockDB(), zap.NewNop(), "s9", false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
