// Package translate renders localized instruction text from a
// (sign, name, exitNumber) triple, mirroring the "en.New() -> ut.New
// -> uni.GetTranslator("en")" wiring the teacher's
// pkg/server/mm_rest/handlers.go uses for validator error messages,
// repurposed here for instruction text instead of validation errors.
// The guidance state machine never concatenates localized strings
// itself; it asks a Translator for a key.
package translate

import (
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// Key identifies one instruction template. guidance.Sign values map
// onto these through pkg/guidance's keyForSign (render.go), so
// pkg/translate never has to import pkg/guidance.
type Key string

const (
	KeyContinue         Key = "continue"
	KeyTurnSlightLeft    Key = "turn_slight_left"
	KeyTurnLeft          Key = "turn_left"
	KeyTurnSharpLeft     Key = "turn_sharp_left"
	KeyTurnSlightRight   Key = "turn_slight_right"
	KeyTurnRight         Key = "turn_right"
	KeyTurnSharpRight    Key = "turn_sharp_right"
	KeyUTurnLeft         Key = "u_turn_left"
	KeyUTurnRight        Key = "u_turn_right"
	KeyKeepLeft          Key = "keep_left"
	KeyKeepRight         Key = "keep_right"
	KeyRoundaboutEnter   Key = "roundabout_enter"
	KeyRoundaboutExit    Key = "roundabout_exit"
	KeyFerry             Key = "ferry"
	KeyLeaveFerry        Key = "leave_ferry"
	KeyFinish            Key = "finish"
)

type template struct {
	bare string // no street name available
	onto string // "{0}" placeholder for the street name
}

var templates = map[Key]template{
	KeyContinue:        {"Continue", "Continue onto {0}"},
	KeyTurnSlightLeft:  {"Turn slight left", "Turn slight left onto {0}"},
	KeyTurnLeft:        {"Turn left", "Turn left onto {0}"},
	KeyTurnSharpLeft:   {"Turn sharp left", "Turn sharp left onto {0}"},
	KeyTurnSlightRight: {"Turn slight right", "Turn slight right onto {0}"},
	KeyTurnRight:       {"Turn right", "Turn right onto {0}"},
	KeyTurnSharpRight:  {"Turn sharp right", "Turn sharp right onto {0}"},
	KeyUTurnLeft:       {"Make a U-turn", "Make a U-turn onto {0}"},
	KeyUTurnRight:      {"Make a U-turn", "Make a U-turn onto {0}"},
	KeyKeepLeft:        {"Keep left", "Keep left to continue on {0}"},
	KeyKeepRight:       {"Keep right", "Keep right to continue on {0}"},
	KeyFerry:           {"Take the ferry", "Take the ferry ({0})"},
	KeyLeaveFerry:      {"Leave the ferry", "Leave the ferry and turn onto {0}"},
	KeyFinish:          {"You have arrived at your destination", "You have arrived at your destination on {0}"},
}

const (
	roundaboutEnterKey    = "roundabout_enter"
	roundaboutExitKey     = "roundabout_exit"
	roundaboutExitOntoKey = "roundabout_exit_onto"
)

// Translator renders instruction text for one locale.
type Translator struct {
	trans ut.Translator
}

// NewEnglish builds the "en" translator, registering one template per
// Key plus the roundabout-exit templates that take an exit number.
func NewEnglish() (*Translator, error) {
	english := en.New()
	uni := ut.New(english, english)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, fmt.Errorf("translate: no \"en\" translator registered")
	}

	for key, tpl := range templates {
		if err := trans.Add(string(key), tpl.bare, false); err != nil {
			return nil, err
		}
		if err := trans.Add(string(key)+"_onto", tpl.onto, false); err != nil {
			return nil, err
		}
	}
	if err := trans.Add(roundaboutEnterKey, "Enter the roundabout", false); err != nil {
		return nil, err
	}
	if err := trans.Add(roundaboutExitKey, "At the roundabout, take exit {0}", false); err != nil {
		return nil, err
	}
	if err := trans.Add(roundaboutExitOntoKey, "At the roundabout, take exit {0} onto {1}", false); err != nil {
		return nil, err
	}

	return &Translator{trans: trans}, nil
}

// Instruction renders key's template, substituting name when it is
// non-empty. Empty names render the bare form: renaming to empty never
// fabricates a street name.
func (t *Translator) Instruction(key Key, name string) (string, error) {
	if name == "" {
		return t.trans.T(string(key))
	}
	return t.trans.T(string(key)+"_onto", name)
}

// RoundaboutEnter renders the fixed "entering a roundabout" text.
func (t *Translator) RoundaboutEnter() (string, error) {
	return t.trans.T(roundaboutEnterKey)
}

// RoundaboutExit renders the exit-number instruction, with the exit
// street name when known.
func (t *Translator) RoundaboutExit(exitNumber int, name string) (string, error) {
	if name == "" {
		return t.trans.T(roundaboutExitKey, fmt.Sprintf("%d", exitNumber))
	}
	return t.trans.T(roundaboutExitOntoKey, fmt.Sprintf("%d", exitNumber), name)
}
