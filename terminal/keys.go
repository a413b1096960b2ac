package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sombervale/input"
)

// Action is what a terminal key event asks of the frontend
type Action int

const (
	ActionNone Action = iota
	ActionKey
	ActionQuit
	ActionMute
	ActionDebug
)

// Command is a translated key event, Key is only meaningful for ActionKey
type Command struct {
	Action Action
	Key    input.Key
}

var specialKeys = map[tcell.Key]Command{
	tcell.KeyUp:     {ActionKey, input.KeyUp},
	tcell.KeyDown:   {ActionKey, input.KeyDown},
	tcell.KeyLeft:   {ActionKey, input.KeyLeft},
	tcell.KeyRight:  {ActionKey, input.KeyRight},
	tcell.KeyTab:    {ActionKey, input.KeySelect},
	tcell.KeyEnter:  {ActionKey, input.KeyUse},
	tcell.KeyEscape: {Action: ActionQuit},
	tcell.KeyCtrlC:  {Action: ActionQuit},
	tcell.KeyF2:     {Action: ActionDebug},
}

var runeKeys = map[rune]Command{
	'w': {ActionKey, input.KeyUp},
	'k': {ActionKey, input.KeyUp},
	's': {ActionKey, input.KeyDown},
	'j': {ActionKey, input.KeyDown},
	'a': {ActionKey, input.KeyLeft},
	'h': {ActionKey, input.KeyLeft},
	'd': {ActionKey, input.KeyRight},
	'l': {ActionKey, input.KeyRight},
	' ': {ActionKey, input.KeyUse},
	'q': {Action: ActionQuit},
	'm': {Action: ActionMute},
}

// Translate maps a tcell key event onto a frontend command
func Translate(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if cmd, ok := runeKeys[r]; ok {
			return cmd
		}
		return Command{}
	}
	if cmd, ok := specialKeys[ev.Key()]; ok {
		return cmd
	}
	return Command{}
}
