package services

import (
	"context"
	"database/sql"
	"time"

	"locshare/internal/logging"
	"locshare/internal/server/models"
	"locshare/internal/server/repositories/repomanager"
)

// auditTimeout bounds the background history write so a stuck store cannot
// pile up goroutines.
const auditTimeout = 5 * time.Second

// AuditRecorder appends rows to the history table after successful
// create/delete mutations. Recording is fire-and-forget: it runs on its own
// goroutine with its own deadline, and a failed write is logged but never
// aborts or delays the primary mutation.
type AuditRecorder struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	logger logging.Logger
}

// NewAuditRecorder constructs an AuditRecorder writing through the given store.
func NewAuditRecorder(db *sql.DB, rm repomanager.RepositoryManager, logger logging.Logger) *AuditRecorder {
	return &AuditRecorder{db: db, rm: rm, logger: logger.With("module", "audit")}
}

// Record schedules one history row. It returns immediately.
func (a *AuditRecorder) Record(objectType models.ObjectType, actionType models.ActionType, objectID int64, details string) {
	event := &models.Event{
		ObjectType: objectType,
		ActionType: actionType,
		ObjectID:   objectID,
		Details:    details,
	}

	go func() {
		// Detached from the request context on purpose: the mutation is
		// already committed, cancelling it must not lose the record.
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()

		repo := a.rm.Events(a.db)
		if err := repo.Insert(ctx, event); err != nil {
			a.logger.Error(ctx, "recording audit event",
				"object_type", string(objectType), "action_type", string(actionType),
				"object_id", objectID, "error", err.Error())
		}
	}()
}
