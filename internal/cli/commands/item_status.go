package commands

import (
	"context"
	"errors"
	"fmt"

	"LostAndFound/internal/cli/bootstrap"
	"LostAndFound/internal/cli/view"
	"LostAndFound/internal/config"
)

// setItemStatus drives the list reducer to move one item to the target
// status. The reducer enforces admin mode before touching the network.
func setItemStatus(ctx context.Context, cfg *config.Config, id, target string) error {
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

	for _, it := range items {
		if it.ID != id {
			continue
		}
		if it.Status == target {
			fmt.Fprintf(Out, "Item %s is already %s\n", id, target)
			return nil
		}
		if err := list.ToggleStatus(ctx, id); err != nil {
			return errors.New(view.TranslateError(err))
		}
		fmt.Fprintf(Out, "Item %s is now %s\n", id, target)
		return nil
	}
	return fmt.Errorf("unknown item %q", id)
}

type itemClaimCmd struct{}

func (itemClaimCmd) Name() string        { return "item-claim" }
func (itemClaimCmd) Description() string { return "Mark an item as returned to its owner" }
func (itemClaimCmd) Usage() string       { return "item-claim <id>" }

func (itemClaimCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return setItemStatus(ctx, cfg, args[0], "claimed")
}

type itemUnclaimCmd struct{}

func (itemUnclaimCmd) Name() string        { return "item-unclaim" }
func (itemUnclaimCmd) Description() string { return "Put an item back into the unclaimed pool" }
func (itemUnclaimCmd) Usage() string       { return "item-unclaim <id>" }

func (itemUnclaimCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return setItemStatus(ctx, cfg, args[0], "unclaimed")
}

func init() {
	RegisterCmd(itemClaimCmd{})
	RegisterCmd(itemUnclaimCmd{})
}
