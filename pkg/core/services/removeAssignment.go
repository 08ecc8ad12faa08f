package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// RemoveAssignmentStore defines the database operations needed to remove an assignment
type RemoveAssignmentStore interface {
	DeleteAssignment(ctx context.Context, assignmentID string) error
}

// RemoveAssignment deletes a single stored assignment as a manual correction
func RemoveAssignment(ctx context.Context, database RemoveAssignmentStore, logger *zap.Logger, assignmentID string) error {
	if assignmentID == "" {
		return fmt.Errorf("%w: assignment ID is required", ErrInvalidInput)
	}

	if err := database.DeleteAssignment(ctx, assignmentID); err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}

	logger.Info("Assignment removed", zap.String("assignment_id", assignmentID))
	return nil
}
