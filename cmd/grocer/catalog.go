// ABOUTME: "grocer catalog" subcommand: list distinct items or fuzzy-search them
// ABOUTME: Runs without starting a conversation

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/grocer-go/internal/cart"
	"github.com/mauromedda/grocer-go/internal/catalog"
	"github.com/mauromedda/grocer-go/internal/dataset"
)

const catalogUsage = "usage: grocer catalog [--data dir] [--limit n] list | search <pattern>"

func runCatalog(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("grocer catalog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataDir := fs.String("data", "", "Directory with groceries.csv (default: built-in data)")
	limit := fs.Int("limit", 10, "Maximum search results")
	if err := fs.Parse(argv); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errors.New(catalogUsage)
	}

	corpus, err := dataset.Load(ctx, *dataDir)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}
	cat := catalog.New(corpus.Groceries)

	var names []string
	switch rest[0] {
	case "list":
		names = cat.Names()
	case "search":
		if len(rest) < 2 {
			return fmt.Errorf("search needs a pattern; %s", catalogUsage)
		}
		names = cat.Search(strings.Join(rest[1:], " "), *limit)
	default:
		return fmt.Errorf("unknown catalog command %q; %s", rest[0], catalogUsage)
	}

	for _, name := range names {
		price, _ := cat.Price(name)
		fmt.Fprintf(stdout, "%s\t%s\n", name, cart.FormatPrice(price))
	}
	return nil
}
