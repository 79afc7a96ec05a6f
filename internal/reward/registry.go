package reward

import (
	"context"

	"github.com/osse101/HeroArena_Go/internal/repository"
)

// Registry issues unique token identifiers and records which account holds each one.
// Identifiers strictly increase and are never reused.
type Registry interface {
	IssueIdentifier(ctx context.Context) (int64, error)
	AssignOwner(ctx context.Context, tokenID int64, accountID string) error
}

// Storage transactions carry the registry so ownership commits with the mint
var _ Registry = repository.ProgressionTx(nil)
