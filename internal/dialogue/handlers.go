// ABOUTME: Intent handlers: canned replies, FAQ, purchases, name memory, stock, cart view/edit, checkout
// ABOUTME: Cart listings print entry lines without the bot prefix

package dialogue

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mauromedda/grocer-go/internal/cart"
	"github.com/mauromedda/grocer-go/internal/intent"
	"github.com/mauromedda/grocer-go/internal/resolver"
	"github.com/mauromedda/grocer-go/internal/session"
)

// stockSample is how many rows viewstock draws before removing repeats.
const stockSample = 3

func (a *Agent) answerQuestion(ctx context.Context, bot botVoice, input string) error {
	if err := bot.Say(ctx, "Let me look that up for you:"); err != nil {
		return err
	}
	answer, _ := a.faq.Answer(input)
	return bot.Say(ctx, answer)
}

func (a *Agent) reply(ctx context.Context, bot botVoice, label intent.Label, random bool) error {
	var (
		text string
		ok   bool
	)
	if random {
		text, ok = a.currentReplies().Pick(string(label), a.rng)
	} else {
		text, ok = a.currentReplies().First(string(label))
	}
	if !ok {
		text = "Sorry, I didn't understand."
	}
	return bot.Say(ctx, text)
}

func (a *Agent) transaction(ctx context.Context, bot botVoice, input string) error {
	if err := bot.Say(ctx, "Okay, let's buy something!"); err != nil {
		return err
	}
	out, err := a.resolver.Resolve(ctx, input, bot)
	if err != nil {
		return err
	}
	if out.Kind == resolver.Purchased {
		a.record(session.RecordPurchase, session.PurchaseData{
			Item: out.Item, Quantity: out.Quantity, UnitPrice: out.UnitPrice, Total: out.Total,
		})
	}
	for _, line := range out.Lines() {
		if err := bot.Say(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

// askName asks for a name until the user confirms one. A remembered name
// skips straight to the greeting.
func (a *Agent) askName(ctx context.Context, term IO) error {
	bot := botVoice{term}
	title := cases.Title(language.English)
	for {
		if name, ok := a.session.Name(); ok {
			return bot.Say(ctx, fmt.Sprintf("Hi there, %s!", name))
		}
		if err := bot.Say(ctx, "What's your name?"); err != nil {
			return err
		}
		raw, err := term.Ask(ctx, userPrompt)
		if err != nil {
			return err
		}
		name := title.String(strings.TrimSpace(raw))
		if err := bot.Say(ctx, fmt.Sprintf("Is %s correct?", name)); err != nil {
			return err
		}
		answer, err := term.Ask(ctx, userPrompt)
		if err != nil {
			return err
		}
		if isYes(answer) {
			a.session.Remember(name)
			err = bot.Say(ctx, "Okay. If you would like to change your name, please tell me to forget.")
		} else {
			err = bot.Say(ctx, "Is that so? In that case, I'd like you to tell me again.")
		}
		if err != nil {
			return err
		}
	}
}

func (a *Agent) viewCart(ctx context.Context, term IO) error {
	bot := botVoice{term}
	if err := bot.Say(ctx, fmt.Sprintf("Now showing %s's cart...", a.session.DisplayName())); err != nil {
		return err
	}
	c := a.session.Cart
	if c.IsEmpty() {
		return bot.Say(ctx, "Your shopping cart is empty. Please let me know if you want to order something.")
	}
	if err := bot.Say(ctx, "Your shopping cart:"); err != nil {
		return err
	}
	for _, e := range c.Entries() {
		if err := term.Say(ctx, e.String()); err != nil {
			return err
		}
	}
	return bot.Say(ctx, fmt.Sprintf("Your total comes to %s.", cart.FormatPrice(c.Total())))
}

func (a *Agent) editCart(ctx context.Context, term IO) error {
	bot := botVoice{term}
	c := a.session.Cart
	if c.IsEmpty() {
		return bot.Say(ctx, "Your shopping cart is empty.")
	}
	if err := bot.Say(ctx, "Your current shopping cart:"); err != nil {
		return err
	}
	for i, e := range c.Entries() {
		if err := term.Say(ctx, fmt.Sprintf("%d. %s", i+1, e)); err != nil {
			return err
		}
	}

	var index int
	for {
		answer, err := bot.Ask(ctx, "Enter the number of the item you want to edit (0 to cancel): ")
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(answer))
		if convErr == nil && n >= 0 && n <= c.Len() {
			index = n
			break
		}
		if err := bot.Say(ctx, "Please enter a valid item number."); err != nil {
			return err
		}
	}
	if index == 0 {
		return bot.Say(ctx, "Edit cancelled.")
	}

	selected, _ := c.Entry(index)
	var quantity int
	for {
		answer, err := bot.Ask(ctx, fmt.Sprintf("Enter the new quantity for %s (0 to remove): ", selected))
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(answer))
		if convErr == nil && n >= 0 {
			quantity = n
			break
		}
		msg := "Please enter a valid number."
		if convErr == nil {
			msg = "Please enter a non-negative quantity."
		}
		if err := bot.Say(ctx, msg); err != nil {
			return err
		}
	}

	if err := c.Edit(index, quantity); err != nil {
		return fmt.Errorf("editing cart: %w", err)
	}
	if quantity == 0 {
		return bot.Say(ctx, fmt.Sprintf("Got it. %s removed from the cart.", selected))
	}
	return bot.Say(ctx, "Understood! Quantity updated.")
}

func (a *Agent) checkout(ctx context.Context, bot botVoice) error {
	c := a.session.Cart
	if c.IsEmpty() {
		return bot.Say(ctx, "Your shopping cart is empty, so there is nothing to checkout. Please let me know if you want to order something.")
	}
	if err := bot.Say(ctx, fmt.Sprintf("Your total comes to %s.", cart.FormatPrice(c.Total()))); err != nil {
		return err
	}
	answer, err := bot.Ask(ctx, "Do you want to proceed with the checkout? (yes/no): ")
	if err != nil {
		return err
	}
	if !isYes(answer) {
		return bot.Say(ctx, "Checkout canceled. No changes have been made to your cart.")
	}

	c.Clear()
	if name, ok := a.session.Name(); ok {
		return bot.Say(ctx, fmt.Sprintf("Thank you, %s! Your items will be delivered.", name))
	}
	return bot.Say(ctx, "Thank you! Your items will be delivered.")
}

func (a *Agent) viewStock(ctx context.Context, bot botVoice) error {
	rows := a.catalog.Sample(stockSample, a.rng)
	if len(rows) == 0 {
		return bot.Say(ctx, "Sorry, we don't have that in stock.")
	}
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = fmt.Sprintf("%s (%s each)", r.Item, cart.FormatPrice(r.Price))
	}
	return bot.Say(ctx, "We have many kinds of items, like "+strings.Join(parts, ", ")+"!\n"+
		"Try placing an order for a specific item and we'll let you know if it's available for purchase.")
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	}
	return false
}
