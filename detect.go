package asciiart

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ProtocolEnv forces the result of DetectProtocol, e.g. ASCIIART_PROTOCOL=ascii.
const ProtocolEnv = "ASCIIART_PROTOCOL"

// DetectProtocol picks the best preview protocol for stdout: sixel when the
// terminal advertises it, halfblocks on any other color terminal, plain ASCII
// when output is redirected or colors are disabled (NO_COLOR, TERM=dumb).
func DetectProtocol() Protocol {
	if forced := os.Getenv(ProtocolEnv); forced != "" {
		if p, err := ParseProtocol(forced); err == nil && p != Auto {
			return p
		}
	}

	switch {
	case !isInteractiveTerminal():
		return ASCII
	case !colorSupported():
		return ASCII
	case SixelSupported():
		return Sixel
	default:
		return Halfblocks
	}
}

// SixelSupported checks if Sixel protocol is supported in the current environment
func SixelSupported() bool {
	termEnv := strings.ToLower(os.Getenv("TERM"))

	// Check TERM variable
	switch {
	case strings.Contains(termEnv, "sixel"):
		return true
	case strings.Contains(termEnv, "mlterm"):
		return true
	case strings.Contains(termEnv, "foot"):
		return true
	case strings.Contains(termEnv, "yaft"):
		return true
	case strings.Contains(termEnv, "xterm") && os.Getenv("XTERM_VERSION") != "":
		// xterm needs to be started with -ti 340
		return true
	}

	// Check TERM_PROGRAM variable
	switch termProgram() {
	case "iTerm.app", "mintty", "WezTerm", "rio":
		return true
	}
	return strings.Contains(termProgram(), "mlterm")
}

// colorSupported reports whether the environment allows colored output.
func colorSupported() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}

// isInteractiveTerminal checks if stdout is a terminal
func isInteractiveTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func termProgram() string {
	return os.Getenv("TERM_PROGRAM")
}
