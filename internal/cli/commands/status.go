package commands

import (
	"context"
	"fmt"

	"LostAndFound/internal/cli/bootstrap"
	"LostAndFound/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the current session" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	sess, cleanup, err := bootstrap.OpenSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := sess.Provider.Err(); err != nil {
		fmt.Fprintf(Out, "Session check failed: %v\n", err)
		return nil
	}
	id := sess.Provider.Identity()
	if id == nil {
		fmt.Fprintln(Out, "Not signed in")
		return nil
	}
	fmt.Fprintf(Out, "Signed in as %s (id %d)\n", id.Email, id.ID)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
