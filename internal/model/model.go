// Package model defines the value types a dialog run is built from:
// the parsed Configuration, its Buttons, and the Commands they launch.
package model

// MessageType selects the severity marker shown next to the message.
type MessageType int

const (
	// MessageError is the default severity.
	MessageError MessageType = iota
	// MessageWarning marks the dialog as a warning.
	MessageWarning
)

// Strategy selects how a command is executed when its button is pressed.
type Strategy int

const (
	// StrategyTerminal runs the command inside an interactive terminal
	// emulator via the script+link relaunch protocol.
	StrategyTerminal Strategy = iota
	// StrategyShell runs the command directly with /bin/sh -c.
	StrategyShell
)

// Command is an opaque shell command bound to an execution strategy.
// It carries no mutable state; execution lives in internal/launch.
type Command struct {
	// Text is the literal shell command, passed through unmodified.
	Text string
	// Strategy picks the execution path for Text.
	Strategy Strategy
}

// NewCommand builds a Command. It never fails.
func NewCommand(text string, strategy Strategy) Command {
	return Command{Text: text, Strategy: strategy}
}

// Button is a user-configured action. Identity is positional: buttons are
// displayed and activated in the order their flags appeared on the command
// line.
type Button struct {
	// Label is the button caption.
	Label string
	// Icon is an optional icon name; empty means absent.
	Icon string
	// Command is launched when the button is activated.
	Command Command
}

// Configuration is the process-wide intent derived once from the command
// line. It is not modified after parsing.
type Configuration struct {
	// Message is the dialog text.
	Message string
	// MessageType is the severity of the message.
	MessageType MessageType
	// ExitAfterAction quits the dialog after the first button press.
	ExitAfterAction bool
	// Buttons in command-line order.
	Buttons []Button
}
