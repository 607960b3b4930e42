package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/rkondo/realrent/internal/repo"
	"github.com/robfig/cron/v3"
)

// purgeSchedule runs the retention job once a day, off-peak.
const purgeSchedule = "30 3 * * *"

// StartAuditRetention schedules a daily purge of audit log rows older than
// retentionDays. The returned cron can be stopped on shutdown.
func StartAuditRetention(auditRepo *repo.AuditRepo, retentionDays int) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(purgeSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		n, err := auditRepo.PurgeOlderThan(ctx, cutoff)
		if err != nil {
			slog.Error("audit retention purge failed", "err", err)
			return
		}
		slog.Info("audit retention purge", "removed", n, "cutoff", cutoff)
	})
	if err != nil {
		// The expression is a constant; this only trips if it is edited badly.
		slog.Error("audit retention schedule invalid", "err", err)
		return c
	}

	c.Start()
	return c
}
