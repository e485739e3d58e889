package guidance

import "github.com/kairoute/turnguide/pkg/translate"

// Describe renders ins through tr. The core itself never concatenates
// localized text (spec §6); this is the one place an Instruction is
// turned into a string, and it does so purely by delegating to the
// translator.
func (ins Instruction) Describe(tr *translate.Translator) (string, error) {
	switch ins.Kind {
	case KindContinue:
		return tr.Instruction(translate.KeyContinue, ins.Name)
	case KindTurn:
		if ins.LeavingFerry {
			return tr.Instruction(translate.KeyLeaveFerry, ins.Name)
		}
		return tr.Instruction(keyForSign(ins.Sign), ins.Name)
	case KindRoundabout:
		if !ins.Exited {
			return tr.RoundaboutEnter()
		}
		return tr.RoundaboutExit(ins.ExitNumber, ins.Name)
	case KindFerry:
		return tr.Instruction(translate.KeyFerry, ins.Name)
	case KindFinish:
		return tr.Instruction(translate.KeyFinish, "")
	default:
		return "", nil
	}
}

func keyForSign(s Sign) translate.Key {
	switch s {
	case SignSlightLeft:
		return translate.KeyTurnSlightLeft
	case SignLeft:
		return translate.KeyTurnLeft
	case SignSharpLeft:
		return translate.KeyTurnSharpLeft
	case SignSlightRight:
		return translate.KeyTurnSlightRight
	case SignRight:
		return translate.KeyTurnRight
	case SignSharpRight:
		return translate.KeyTurnSharpRight
	case SignUTurnLeft:
		return translate.KeyUTurnLeft
	case SignUTurnRight:
		return translate.KeyUTurnRight
	case SignKeepLeft:
		return translate.KeyKeepLeft
	case SignKeepRight:
		return translate.KeyKeepRight
	default:
		return translate.KeyContinue
	}
}
