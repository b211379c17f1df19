package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
)

// WatchNotifications refetches the notification feed every interval until
// ctx is done, calling onNew with notifications not seen before. It is the
// only periodic remote activity.
func (d *Dispatcher) WatchNotifications(ctx context.Context, interval time.Duration, onNew func([]models.Notification)) {
	a, err := d.adapter()
	if err != nil || interval <= 0 {
		return
	}

	seen := map[string]bool{}
	for _, n := range a.Notifications.Cached() {
		seen[n.ID] = true
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.Notifications.Refresh(ctx); err != nil {
				d.log.Warn(ctx, "notification refresh failed", "error", err)
				continue
			}

			var fresh []models.Notification
			for _, n := range a.Notifications.Cached() {
				if !seen[n.ID] {
					seen[n.ID] = true
					fresh = append(fresh, n)
				}
			}
			if len(fresh) > 0 && onNew != nil {
				onNew(fresh)
			}

		case <-ctx.Done():
			return
		}
	}
}
