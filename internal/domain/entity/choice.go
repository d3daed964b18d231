package entity

import (
	"encoding/json"
	"strings"
)

// OtherSentinel is the enumeration value that asks the user for free text.
const OtherSentinel = "Autre"

// ChoiceKind tells whether a Choice holds an enumeration value or free text.
type ChoiceKind uint8

const (
	ChoiceNone ChoiceKind = iota
	ChoiceKnown
	ChoiceOther
)

// Choice is either Known(value) from an enumeration or Other(customText).
// The zero value means nothing was selected.
type Choice struct {
	kind  ChoiceKind
	value string
}

// Known selects an enumeration value. An empty value yields the zero Choice.
func Known(value string) Choice {
	if value == "" {
		return Choice{}
	}

	return Choice{kind: ChoiceKnown, value: value}
}

// Other selects free text entered by the user.
func Other(customText string) Choice {
	return Choice{kind: ChoiceOther, value: customText}
}

// ParseChoice builds a Choice from a form selection and its companion custom text field.
func ParseChoice(selected, customText string) Choice {
	switch selected {
	case "":
		return Choice{}
	case OtherSentinel:
		return Other(customText)
	default:
		return Known(selected)
	}
}

func (c Choice) Kind() ChoiceKind { return c.kind }

func (c Choice) IsSelected() bool { return c.kind != ChoiceNone }

func (c Choice) IsOther() bool { return c.kind == ChoiceOther }

// HasText reports whether an Other choice carries non-blank text.
func (c Choice) HasText() bool {
	return strings.TrimSpace(c.value) != ""
}

// Text returns the effective value stored on the restaurant.
func (c Choice) Text() string {
	return c.value
}

// MarshalJSON encodes the choice as its effective text, so logged submissions stay readable.
func (c Choice) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}
