// ABOUTME: Result of one disambiguation walk and the lines shown to the user for it

package resolver

import (
	"fmt"

	"github.com/mauromedda/grocer-go/internal/cart"
)

// OutcomeKind classifies how a walk ended.
type OutcomeKind int

const (
	// Purchased: an item was confirmed and added to the cart.
	Purchased OutcomeKind = iota
	// Canceled: the user typed "cancel" at a candidate.
	Canceled
	// Declined: an item was confirmed and added, but the final summary was rejected.
	Declined
	// NotFound: the attempt budget ran out.
	NotFound
	// OutOfStock: every distinct item was offered and denied.
	OutOfStock
)

func (k OutcomeKind) String() string {
	switch k {
	case Purchased:
		return "purchased"
	case Canceled:
		return "canceled"
	case Declined:
		return "declined"
	case NotFound:
		return "not_found"
	case OutOfStock:
		return "out_of_stock"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome describes a finished walk. Item fields are set for Purchased and Declined.
type Outcome struct {
	Kind           OutcomeKind
	Item           string
	UnitPrice      float64
	Quantity       int
	Total          float64
	Recommendation string
	Attempts       int
}

// Lines returns the messages reporting the outcome.
func (o Outcome) Lines() []string {
	switch o.Kind {
	case Purchased:
		lines := []string{fmt.Sprintf("Thank you for your order! The total price is %s. Your items have been added to the cart.",
			cart.FormatPrice(o.Total))}
		if o.Recommendation != "" {
			lines = append(lines, fmt.Sprintf("Based on what other customers have purchased with %s, you might also like %s.",
				o.Item, o.Recommendation))
		}
		return lines
	case Canceled, Declined:
		return []string{"Transaction canceled."}
	case NotFound:
		return []string{"Sorry that I couldn't find what you were looking for. Transaction canceled."}
	default:
		return []string{"Sorry, we don't have that in stock."}
	}
}
