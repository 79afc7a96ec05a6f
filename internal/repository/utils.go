package repository

import (
	"context"

	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error.
// Rolling back an already committed transaction is expected in deferred calls and stays silent.
func SafeRollback(ctx context.Context, tx ProgressionTx) {
	if err := tx.Rollback(ctx); err != nil {
		if err.Error() != domain.ErrMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
