package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rkondo/realrent/internal/models"
)

// AuditRepo persists the mutation audit trail (registrations, property
// create/delete, notebook runs).
type AuditRepo struct {
	DB *sql.DB
}

func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{DB: db}
}

// Log records one action. Callers treat failures as non-fatal.
func (r *AuditRepo) Log(ctx context.Context, userID int, action, entity string, entityID int, detail string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO audit_logs (user_id, action, entity, entity_id, detail)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, action, entity, entityID, detail)
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries up to limit.
func (r *AuditRepo) ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, action, entity, entity_id, COALESCE(detail, ''), created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	logs := []models.AuditLog{}
	for rows.Next() {
		var l models.AuditLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.Entity, &l.EntityID, &l.Detail, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

// PurgeOlderThan deletes entries created before the cutoff and reports how
// many were removed. The retention scheduler calls this daily.
func (r *AuditRepo) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM audit_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge audit logs: %w", err)
	}
	return res.RowsAffected()
}
