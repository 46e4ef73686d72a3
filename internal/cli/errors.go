package cli

// ErrorKind classifies a parse result that is not a usable Configuration.
// Help and version requests are not errors from the user's perspective but
// travel the same path so parsing always yields one result type.
type ErrorKind int

const (
	// KindHelpRequested short-circuits parsing to print the long help.
	KindHelpRequested ErrorKind = iota
	// KindVersionRequested short-circuits parsing to print the version.
	KindVersionRequested
	// KindMissingArgument means a flag's required operand was absent.
	KindMissingArgument
	// KindWrongArgument means an operand was invalid or a token unrecognized.
	KindWrongArgument
)

// ParseError is the failure half of a Parse result.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Message
}

func missingArgument(msg string) *ParseError {
	return &ParseError{Kind: KindMissingArgument, Message: msg}
}

func wrongArgument(msg string) *ParseError {
	return &ParseError{Kind: KindWrongArgument, Message: msg}
}

func helpRequested() *ParseError {
	return &ParseError{Kind: KindHelpRequested}
}

func versionRequested() *ParseError {
	return &ParseError{Kind: KindVersionRequested}
}
