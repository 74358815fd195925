package commands

import (
	"errors"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/guard"
)

var ErrPurgeExpiredBatchesCommandIsNotConstructed = errors.New(
	"PurgeExpiredBatchesCommand must be created via NewPurgeExpiredBatchesCommand constructor",
)

// PurgeExpiredBatchesCommand removes batches created before a cutoff.
type PurgeExpiredBatchesCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewPurgeExpiredBatchesCommand(cutoff time.Time) (PurgeExpiredBatchesCommand, error) {
	if err := requireTime("cutoff", cutoff); err != nil {
		return PurgeExpiredBatchesCommand{}, err
	}

	return PurgeExpiredBatchesCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredBatchesCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredBatchesCommandIsNotConstructed)
}

func (c PurgeExpiredBatchesCommand) Cutoff() time.Time {
	return c.cutoff
}
