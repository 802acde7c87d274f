// ABOUTME: Intent labels for routing user messages to conversation handlers.
// ABOUTME: Defines the Label type, the known labels, and the Classification result.

package intent

// Label names the conversational purpose of an utterance. Labels come from
// the intent example table; the constants below are the ones the agent handles.
type Label string

const (
	Greeting    Label = "greeting"
	Wellbeing   Label = "wellbeing"
	Functions   Label = "functions"
	QA          Label = "qa"
	Transaction Label = "transaction"
	ViewStock   Label = "viewstock"
	ViewCart    Label = "viewcart"
	EditCart    Label = "editcart"
	Checkout    Label = "checkout"
	RepeatName  Label = "repeatName"
	ChangeName  Label = "changeName"
	Unknown     Label = "unknown" // No example scored above the threshold
)

// Known returns every label the agent has a handler for.
func Known() []Label {
	return []Label{
		Greeting, Wellbeing, Functions, QA, Transaction, ViewStock,
		ViewCart, EditCart, Checkout, RepeatName, ChangeName,
	}
}

// String returns the label text.
func (l Label) String() string {
	return string(l)
}

// Classification holds the result of intent classification.
type Classification struct {
	Label   Label
	Score   float64 // cosine similarity of the best example; 0..1
	Example string  // matched example utterance, empty for Unknown
	Index   int     // row of the matched example, -1 for Unknown
}
