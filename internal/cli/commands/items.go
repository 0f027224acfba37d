package commands

import (
	"context"
	"flag"
	"fmt"

	"LostAndFound/internal/cli/bootstrap"
	"LostAndFound/internal/cli/view"
	"LostAndFound/internal/config"
)

const dateOnly = "2006-01-02"

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "List items, optionally filtered" }
func (itemsCmd) Usage() string       { return "items [--filter <text>] [--status all|unclaimed|claimed]" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	fs.SetOutput(Out)
	textFilter := fs.String("filter", "", "substring match against name or found location")
	statusFilter := fs.String("status", "all", "all, unclaimed or claimed")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 {
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
	list.TextFilter = *textFilter
	list.StatusFilter = *statusFilter

	filtered := list.Filtered()
	if len(filtered) == 0 {
		fmt.Fprintln(Out, "No items")
		return nil
	}
	for _, it := range filtered {
		img := ""
		if it.ImageURL != "" {
			img = "  image=" + it.ImageURL
		}
		fmt.Fprintf(Out, "- %s  %s  found=%s@%s  keep-until=%s  [%s]%s\n",
			it.ID, it.Name,
			it.FoundDate.Format(dateOnly), it.FoundLocation,
			it.ExpirationDate.Format(dateOnly), it.Status, img)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(filtered))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
