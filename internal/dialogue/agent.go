// ABOUTME: Conversational agent: classifies each input and dispatches it to an intent handler
// ABOUTME: Owns the session; all reference data is built once from the corpus and never mutated

package dialogue

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/mauromedda/grocer-go/internal/catalog"
	"github.com/mauromedda/grocer-go/internal/dataset"
	"github.com/mauromedda/grocer-go/internal/intent"
	pilog "github.com/mauromedda/grocer-go/internal/log"
	"github.com/mauromedda/grocer-go/internal/resolver"
	"github.com/mauromedda/grocer-go/internal/responses"
	"github.com/mauromedda/grocer-go/internal/session"
	"github.com/mauromedda/grocer-go/internal/textnorm"
	"github.com/mauromedda/grocer-go/internal/vectorspace"
)

// StopPhrase ends the conversation when it is the whole input (any case).
const StopPhrase = "stop"

// Banner is printed once before the first prompt.
var Banner = []string{
	"Welcome to the Grocery Chatbot.",
	"Enter STOP to end the conversation.",
	"Feel free to ask what I can do!",
}

// Options tunes an Agent built from a corpus.
type Options struct {
	Threshold   float64             // Intent and FAQ threshold (default intent.DefaultThreshold).
	MaxAttempts int                 // Disambiguation budget (default resolver.DefaultMaxAttempts).
	Responses   responses.Set       // Canned replies (default responses.Default()).
	RNG         *rand.Rand          // Randomness for replies, stock samples, recommendations.
	Seed        uint64              // Recorded in the transcript header only.
	DataDir     string              // Recorded in the transcript header only.
	Transcript  *session.Transcript // Optional; nil disables recording.
}

// Agent runs one conversation.
type Agent struct {
	opts       Options
	session    *session.Session
	classifier *intent.Classifier
	faq        *intent.FAQ
	catalog    *catalog.Catalog
	resolver   *resolver.Resolver
	rng        *rand.Rand

	mu      sync.RWMutex
	replies responses.Set
}

// New fits the vector space over corpus and wires every component around a
// fresh session.
func New(corpus *dataset.Corpus, opts Options) (*Agent, error) {
	if opts.RNG == nil {
		now := uint64(time.Now().UnixNano())
		opts.RNG = rand.New(rand.NewPCG(now, now>>1))
	}
	replies := opts.Responses
	if replies == nil {
		var err error
		if replies, err = responses.Default(); err != nil {
			return nil, err
		}
	}

	space := vectorspace.Build(textnorm.New(), corpus.IntentTexts(), corpus.Questions(), corpus.ItemNames())
	pilog.Debug("fitted vector space: %d terms over %d intents, %d questions, %d catalog rows",
		space.Model().Dim(), len(space.Intents), len(space.FAQ), len(space.Catalog))

	sess := session.New()
	cat := catalog.New(corpus.Groceries)
	return &Agent{
		opts:       opts,
		session:    sess,
		classifier: intent.NewClassifier(intent.ClassifierConfig{Threshold: opts.Threshold}, space, corpus.Intents),
		faq:        intent.NewFAQ(opts.Threshold, space, corpus.FAQ),
		catalog:    cat,
		resolver:   resolver.New(resolver.Config{MaxAttempts: opts.MaxAttempts}, space, cat, sess.Cart, opts.RNG),
		replies:    replies,
		rng:        opts.RNG,
	}, nil
}

// SetResponses swaps the canned replies. Safe to call while Run is active.
func (a *Agent) SetResponses(set responses.Set) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.replies = set
}

func (a *Agent) currentReplies() responses.Set {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.replies
}

// Session returns the conversation state.
func (a *Agent) Session() *session.Session {
	return a.session
}

// Run prints the banner and serves turns until the stop phrase or end of
// input, then says goodbye. Only errors other than io.EOF are returned.
func (a *Agent) Run(ctx context.Context, term IO) error {
	a.record(session.RecordSessionStart, session.StartData{ID: a.session.ID, DataDir: a.opts.DataDir, Seed: a.opts.Seed})
	term = recorder{io: term, tr: a.opts.Transcript}

	for _, line := range Banner {
		if err := term.Say(ctx, line); err != nil {
			return err
		}
	}

	err := a.loop(ctx, term)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	a.record(session.RecordSessionEnd, session.EndData{CartItems: a.session.Cart.Len(), CartTotal: a.session.Cart.Total()})
	return botVoice{term}.Say(ctx, "It was nice talking to you!")
}

func (a *Agent) loop(ctx context.Context, term IO) error {
	for {
		input, err := term.Ask(ctx, userPrompt)
		if err != nil {
			return err
		}
		stop, err := a.Handle(ctx, term, input)
		if err != nil || stop {
			return err
		}
	}
}

// Handle answers one user input. stop is true for the stop phrase; the
// caller says goodbye.
func (a *Agent) Handle(ctx context.Context, term IO, input string) (stop bool, err error) {
	if strings.EqualFold(input, StopPhrase) {
		return true, nil
	}

	c := a.classifier.Classify(input)
	a.record(session.RecordIntent, session.IntentData{Label: string(c.Label), Score: c.Score})

	bot := botVoice{term}
	switch c.Label {
	case intent.QA:
		err = a.answerQuestion(ctx, bot, input)
	case intent.Greeting, intent.Wellbeing:
		err = a.reply(ctx, bot, c.Label, true)
	case intent.Functions:
		err = a.reply(ctx, bot, c.Label, false)
	case intent.Transaction:
		err = a.transaction(ctx, bot, input)
	case intent.ChangeName:
		if _, ok := a.session.Name(); !ok {
			return false, bot.Say(ctx, "Sorry, I didn't understand.")
		}
		a.session.Forget()
		err = bot.Say(ctx, "Okay, I've forgotten the name you told me.")
	case intent.RepeatName:
		err = a.askName(ctx, term)
	case intent.ViewCart:
		err = a.viewCart(ctx, term)
	case intent.EditCart:
		err = a.editCart(ctx, term)
	case intent.Checkout:
		err = a.checkout(ctx, bot)
	case intent.ViewStock:
		err = a.viewStock(ctx, bot)
	default:
		err = bot.Say(ctx, "Sorry, I didn't understand.")
	}
	return false, err
}

func (a *Agent) record(typ session.RecordType, data session.Payload) {
	if err := a.opts.Transcript.WriteRecord(typ, data); err != nil {
		pilog.Warn("transcript: %v", err)
	}
}
