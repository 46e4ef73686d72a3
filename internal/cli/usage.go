package cli

import (
	"errors"
	"fmt"
	"io"
)

// Version writes the one-line version banner.
func Version(w io.Writer, program, version string) {
	fmt.Fprintf(w, "%s %s\n", program, version)
}

// UsageShort writes the single-line usage reminder shown after parse errors.
func UsageShort(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s [-h] [-v] [-b label action [icon]]... [-B label action [icon]]... [-t warning|error] [-m message] [-f font]\n", program)
}

// Help writes the version banner followed by the full option listing.
func Help(w io.Writer, program, version string) {
	Version(w, program, version)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s [OPTION]...\n", program)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -h, --help                                     Prints help information")
	fmt.Fprintln(w, "  -v, --version                                  Prints version information")
	fmt.Fprintln(w, "  -b, --button LABEL ACTION [ICON]               Creates a button; the action runs in a terminal")
	fmt.Fprintln(w, "  -B, --button-no-terminal LABEL ACTION [ICON]   Creates a button; the action runs without a terminal")
	fmt.Fprintln(w, "  -m, --message MSG                              Sets the dialog message")
	fmt.Fprintln(w, "  -t, --type warning|error                       Default: error. Defines the message severity")
	fmt.Fprintln(w, "  -f, --font FONT                                Accepted for compatibility, ignored")
	fmt.Fprintln(w, "  --exit-after-action                            Quit after the first button press")
}

// HandleError prints the response for a failed Parse and returns the process
// exit code: 0 for help/version requests, 1 for real parse errors.
func HandleError(w io.Writer, err error, program, version string) int {
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		fmt.Fprintf(w, "Error while parsing command line: %v\n", err)
		UsageShort(w, program)
		return 1
	}

	switch parseErr.Kind {
	case KindHelpRequested:
		Help(w, program, version)
		return 0
	case KindVersionRequested:
		Version(w, program, version)
		return 0
	default:
		fmt.Fprintf(w, "Error while parsing command line: %s\n", parseErr.Message)
		UsageShort(w, program)
		return 1
	}
}
