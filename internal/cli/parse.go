// Package cli turns the raw argument list into a model.Configuration.
// Parsing is a single left-to-right pass with no backtracking; the first
// error wins and no partial Configuration is returned.
package cli

import (
	"fmt"
	"strings"

	"github.com/nagbox/nagbox/internal/model"
)

// DefaultMessage is shown when no -m flag is given.
const DefaultMessage = "This could be your text!"

// Parse consumes the full argv (including the program name at index 0) and
// produces a Configuration. Every returned error is a *ParseError.
func Parse(args []string) (*model.Configuration, error) {
	config := &model.Configuration{
		Message:     DefaultMessage,
		MessageType: model.MessageError,
	}

	pos := 1
	for pos < len(args) {
		a := args[pos]
		switch {
		case a == "-m" || a == "--message":
			pos++
			msg, ok := argument(pos, args)
			if !ok {
				return nil, missingArgument("Required argument for -m is missing.")
			}
			config.Message = msg
		case a == "-t" || a == "--type":
			pos++
			value, ok := argument(pos, args)
			if !ok {
				return nil, missingArgument("Required argument for -t is missing.")
			}
			switch {
			case strings.EqualFold(value, "warning"):
				config.MessageType = model.MessageWarning
			case strings.EqualFold(value, "error"):
				config.MessageType = model.MessageError
			default:
				return nil, wrongArgument(fmt.Sprintf("Parameter for -t (%s) was neither warning nor error.", value))
			}
		case a == "-b" || a == "--button":
			button, err := parseButton(&pos, args, model.StrategyTerminal)
			if err != nil {
				return nil, err
			}
			config.Buttons = append(config.Buttons, button)
		case a == "-B" || a == "--button-no-terminal":
			button, err := parseButton(&pos, args, model.StrategyShell)
			if err != nil {
				return nil, err
			}
			config.Buttons = append(config.Buttons, button)
		case a == "--exit-after-action":
			config.ExitAfterAction = true
		case a == "-f" || a == "--font":
			// Fonts are accepted for compatibility but have no effect.
			// The operand must still be consumed to keep the cursor aligned.
			pos++
		case a == "-h" || a == "--help":
			return nil, helpRequested()
		case a == "-v" || a == "--version":
			return nil, versionRequested()
		default:
			return nil, wrongArgument(fmt.Sprintf("Unexpected argument: %s", a))
		}
		pos++
	}

	return config, nil
}

// parseButton consumes LABEL ACTION [ICON] after a button flag. ICON is
// taken only if the next token exists and does not start with '-'; a token
// starting with '-' is left for the main loop as the next flag.
func parseButton(pos *int, args []string, strategy model.Strategy) (model.Button, error) {
	*pos++
	label, ok := argument(*pos, args)
	if !ok {
		return model.Button{}, missingArgument("Missing label for Button.")
	}
	*pos++

	action, ok := argument(*pos, args)
	if !ok {
		return model.Button{}, missingArgument("Missing action for Button.")
	}

	var icon string
	if next, ok := argument(*pos+1, args); ok && !strings.HasPrefix(next, "-") {
		*pos++
		icon = next
	}

	return model.Button{
		Label:   label,
		Icon:    icon,
		Command: model.NewCommand(action, strategy),
	}, nil
}

func argument(pos int, args []string) (string, bool) {
	if pos < len(args) {
		return args[pos], true
	}
	return "", false
}
