package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrSeedMenuCommandIsNotConstructed = errors.New(
		"SeedMenuCommand must be created via NewSeedMenuCommand constructor",
	)
)

// SeedMenuCommand populates the product catalog with the default menu when
// the catalog is empty. Run once at startup; a non-empty catalog makes it a
// no-op, so repeated runs are safe.
//
// Example:
//
//	cmd := NewSeedMenuCommand()
//	handler := NewSeedMenuCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("menu seeding failed: %w", err)
//	}
type SeedMenuCommand struct {
	guard guard.ConstructorGuard
}

// NewSeedMenuCommand creates a command to seed the default menu.
// This is a parameterless command; the default catalog is fixed.
func NewSeedMenuCommand() SeedMenuCommand {
	command := SeedMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrSeedMenuCommandIsNotConstructed if validation fails.
func (c *SeedMenuCommand) Validate() error {
	return c.guard.Validate(ErrSeedMenuCommandIsNotConstructed)
}
