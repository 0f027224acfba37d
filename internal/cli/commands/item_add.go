package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"LostAndFound/internal/cli/bootstrap"
	"LostAndFound/internal/cli/view"
	"LostAndFound/internal/config"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Register a found item, optionally with a photo" }
func (itemAddCmd) Usage() string {
	return "item-add --name <n> --found-location <l> --storage-location <l> --found-date <date> --expires <date> [--description <d>] [--image <path>]"
}

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("item-add", flag.ContinueOnError)
	fs.SetOutput(Out)
	form := &view.ItemForm{}
	fs.StringVar(&form.Name, "name", "", "item name")
	fs.StringVar(&form.FoundLocation, "found-location", "", "where the item was found")
	fs.StringVar(&form.StorageLocation, "storage-location", "", "where the item is kept")
	fs.StringVar(&form.FoundDate, "found-date", "", "when it was found (2006-01-02 or RFC3339)")
	fs.StringVar(&form.ExpirationDate, "expires", "", "keep-until date (2006-01-02)")
	fs.StringVar(&form.Status, "status", "", "unclaimed or claimed (default unclaimed)")
	fs.StringVar(&form.Description, "description", "", "free-form description")
	fs.StringVar(&form.ImagePath, "image", "", "path to a photo to upload")
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

	id, err := form.Submit(ctx, sess.API, sess.Admin())
	if err != nil {
		return errors.New(view.TranslateError(err))
	}
	fmt.Fprintf(Out, "Created item %s\n", id)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
