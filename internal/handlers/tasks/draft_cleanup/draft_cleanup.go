package draft_cleanup

import (
	"context"
	"time"

	"amerex/pkg/logger"
)

type Service interface {
	CleanupExpiredDrafts(ctx context.Context) (int64, error)
}

type DraftCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDraftCleanup(log logger.Logger, service Service, interval time.Duration) *DraftCleanup {
	return &DraftCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DraftCleanup) TTL() time.Duration {
	return d.interval
}

func (d *DraftCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	removed, err := d.service.CleanupExpiredDrafts(ctxWithTimeout)

	if removed > 0 {
		d.log.With(
			logger.NewField("expired_drafts", removed),
		).Info("draft cleanup")
	}

	return err
}

func (d *DraftCleanup) Info() string {
	return "draft cleanup"
}
