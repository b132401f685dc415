package commands

import (
	"errors"

	"parcelms/internal/pkg/guard"
)

var ErrLinkDriversCommandIsNotConstructed = errors.New(
	"LinkDriversCommand must be created via NewLinkDriversCommand constructor",
)

// LinkDriversCommand triggers the batch email-link sweep over unlinked driver
// profiles. Run periodically so profiles created before their driver account
// pick up the link without waiting for an assignment.
type LinkDriversCommand struct {
	guard guard.ConstructorGuard
}

// NewLinkDriversCommand creates a command to sweep unlinked driver profiles.
func NewLinkDriversCommand() LinkDriversCommand {
	return LinkDriversCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *LinkDriversCommand) Validate() error {
	return c.guard.Validate(ErrLinkDriversCommandIsNotConstructed)
}
