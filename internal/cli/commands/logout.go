package commands

import (
	"context"
	"fmt"

	"LostAndFound/internal/cli/bootstrap"
	"LostAndFound/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Drop the stored session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	sess, cleanup, err := bootstrap.OpenSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := sess.Auth.SignOut(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Signed out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
