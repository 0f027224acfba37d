package commands

import (
	"context"
	"errors"
	"fmt"

	"LostAndFound/internal/cli/bootstrap"
	"LostAndFound/internal/cli/view"
	"LostAndFound/internal/config"
)

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string        { return "item-delete" }
func (itemDeleteCmd) Description() string { return "Remove an item and its stored photo" }
func (itemDeleteCmd) Usage() string       { return "item-delete <id>" }

func (itemDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	sess, cleanup, err := bootstrap.OpenSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	items, err := sess.API.ListItems(ctx)
	if err != nil {
		return err
	}
	list := view.NewListState(sess.API, sess.Admin())
	list.SetItems(items)

	if err := list.Remove(ctx, args[0]); err != nil {
		return errors.New(view.TranslateError(err))
	}
	fmt.Fprintf(Out, "Deleted item %s\n", args[0])
	return nil
}

func init() { RegisterCmd(itemDeleteCmd{}) }
