package commands

import (
	"context"
	"fmt"

	"LostAndFound/internal/cli/bootstrap"
	"LostAndFound/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Sign in as an administrator and store the session" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	sess, cleanup, err := bootstrap.OpenSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := sess.Auth.SignIn(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Signed in as %s\n", id.Email)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
