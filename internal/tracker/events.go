package tracker

import "github.com/ninfea/babylog/internal/telegram"

// EventKind is the closed set of trackable caregiving events.
type EventKind string

const (
	EventFeedLeft  EventKind = "Feed-Left"
	EventFeedRight EventKind = "Feed-Right"
	EventPee       EventKind = "Pee"
	EventPoop      EventKind = "Poop"
	EventNapStart  EventKind = "Nap-Start"
	EventNapEnd    EventKind = "Nap-End"
)

const (
	labelFeedLeft  = "🍼 Feed-Left"
	labelFeedRight = "🍼 Feed-Right"
	labelPee       = "💧 Pee"
	labelPoop      = "💩 Poop"
	labelNapStart  = "😴 Nap-Start"
	labelNapEnd    = "⏰ Nap-End"
)

var kindByLabel = map[string]EventKind{
	labelFeedLeft:  EventFeedLeft,
	labelFeedRight: EventFeedRight,
	labelPee:       EventPee,
	labelPoop:      EventPoop,
	labelNapStart:  EventNapStart,
	labelNapEnd:    EventNapEnd,
}

func KindForLabel(label string) (EventKind, bool) {
	kind, ok := kindByLabel[label]
	return kind, ok
}

// MainKeyboardRows lays out the persistent reply keyboard shown to every
// authorized user.
func MainKeyboardRows() [][]string {
	return [][]string{
		{labelFeedLeft, labelFeedRight},
		{labelPee, labelPoop},
		{labelNapStart, labelNapEnd},
	}
}

const (
	callbackNow          = "NOW"
	callbackCustom       = "CUSTOM"
	callbackOffsetPrefix = "OFFSET:"
)

// TimePickerRows builds the inline picker offered after an event kind is
// chosen: quick offsets relative to the anchor time plus a custom option.
func TimePickerRows() [][]telegram.Button {
	return [][]telegram.Button{
		{
			{Label: "Now", Data: callbackNow},
			{Label: "-5 min", Data: callbackOffsetPrefix + "-5"},
			{Label: "-15 min", Data: callbackOffsetPrefix + "-15"},
			{Label: "-30 min", Data: callbackOffsetPrefix + "-30"},
		},
		{
			{Label: "Custom ⌚️", Data: callbackCustom},
		},
	}
}
