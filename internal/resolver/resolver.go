// ABOUTME: Item resolver: ranks catalog rows against a purchase request and walks them with the user
// ABOUTME: Confirms one item, settles the quantity and adds it to the cart on final approval

package resolver

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/mauromedda/grocer-go/internal/cart"
	"github.com/mauromedda/grocer-go/internal/catalog"
	pilog "github.com/mauromedda/grocer-go/internal/log"
	"github.com/mauromedda/grocer-go/internal/vectorspace"
)

// DefaultMaxAttempts is how many distinct candidates are offered before giving up.
const DefaultMaxAttempts = 10

// Prompter is the conversational boundary the walk talks through.
// Ask shows prompt and returns the user's reply; Say shows a line.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
	Say(ctx context.Context, line string) error
}

// Config holds resolver configuration.
type Config struct {
	MaxAttempts int // Candidates offered before giving up (default 10).
}

// Resolver turns purchase requests into cart entries.
type Resolver struct {
	config  Config
	space   *vectorspace.Space
	catalog *catalog.Catalog
	cart    *cart.Cart
	rng     *rand.Rand
}

// New creates a resolver. The catalog must hold the rows the space's
// Catalog matrix was built from, in the same order.
func New(cfg Config, space *vectorspace.Space, cat *catalog.Catalog, c *cart.Cart, rng *rand.Rand) *Resolver {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	return &Resolver{config: cfg, space: space, catalog: cat, cart: c, rng: rng}
}

// Resolve runs the disambiguation walk for input. The returned error is
// non-nil only when the prompter fails (end of input, cancelled context).
func (r *Resolver) Resolve(ctx context.Context, input string, p Prompter) (Outcome, error) {
	q := r.space.Query(input, true)
	ranked := vectorspace.ScoreAll(q, r.space.Catalog)
	quantity, haveQuantity := cart.ExtractQuantity(input)

	presented := make(map[string]bool)
	attempts := 0
	for _, m := range ranked {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}

		row := r.catalog.Row(m.Index)
		if presented[row.Item] {
			continue
		}
		presented[row.Item] = true

		answer, err := p.Ask(ctx, fmt.Sprintf("Did you mean %s? (%s each) (yes/no/cancel): ", row.Item, cart.FormatPrice(row.Price)))
		if err != nil {
			return Outcome{}, err
		}
		attempts++
		pilog.Debug("resolver: candidate %d %q (%.3f) -> %q", attempts, row.Item, m.Score, answer)

		switch normalizeAnswer(answer) {
		case "yes", "y":
			if !haveQuantity {
				quantity, err = r.askQuantity(ctx, p)
				if err != nil {
					return Outcome{}, err
				}
			}
			return r.purchase(ctx, p, row.Item, row.Price, quantity, attempts)
		case "cancel":
			return Outcome{Kind: Canceled, Attempts: attempts}, nil
		}

		if attempts >= r.config.MaxAttempts {
			return Outcome{Kind: NotFound, Attempts: attempts}, nil
		}
	}
	return Outcome{Kind: OutOfStock, Attempts: attempts}, nil
}

func (r *Resolver) askQuantity(ctx context.Context, p Prompter) (int, error) {
	for {
		answer, err := p.Ask(ctx, "How many items do you want to buy? (Specify a number): ")
		if err != nil {
			return 0, err
		}
		if n, ok := cart.ParseQuantity(answer); ok {
			return n, nil
		}
		if err := p.Say(ctx, "Please enter a valid number."); err != nil {
			return 0, err
		}
	}
}

func (r *Resolver) purchase(ctx context.Context, p Prompter, item string, price float64, quantity, attempts int) (Outcome, error) {
	out := Outcome{
		Item:      item,
		UnitPrice: price,
		Quantity:  quantity,
		Total:     price * float64(quantity),
		Attempts:  attempts,
	}
	out.Recommendation, _ = r.catalog.Recommend(item, r.rng)

	// A confirmed candidate is in the cart before the summary is shown;
	// answering no to the summary does not take it out again.
	r.cart.Add(item, price, quantity)

	noun := "item"
	if quantity > 1 {
		noun = "items"
	}
	prompt := fmt.Sprintf("You want to buy %d %s of %s at %s each. This will be %s in total. Is that correct? (yes/no): ",
		quantity, noun, item, cart.FormatPrice(price), cart.FormatPrice(out.Total))
	answer, err := p.Ask(ctx, prompt)
	if err != nil {
		return Outcome{}, err
	}

	switch normalizeAnswer(answer) {
	case "yes", "y":
		out.Kind = Purchased
	default:
		out.Kind = Declined
	}
	return out, nil
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
