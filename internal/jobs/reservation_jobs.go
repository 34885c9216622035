package jobs

import (
	"context"
	"time"

	"itemshare-backend/internal/logger"
)

// CompleteEndedReservations moves APPROVED reservations whose window
// has fully passed into the COMPLETED state. The reservation engine
// itself never performs this transition; it is housekeeping only, and
// the temporal classifier does not depend on it.
func (jr *JobRunner) CompleteEndedReservations() {
	jr.runWithRecovery("CompleteEndedReservations", func() {
		ctx := context.Background()

		count, err := jr.store.Reservations().CompleteEnded(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to complete ended reservations", "error", err)
			return
		}

		logger.Info("Marked reservations as completed", "count", count)
	})
}
