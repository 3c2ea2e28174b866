package display

import (
	"fmt"
	"os"

	"github.com/kestrelmedia/tubekit/internal/term"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` _____      _          _    _ _
|_   _|   _| |__   ___| | _(_) |_
  | || | | | '_ \ / _ \ |/ / | __|
  | || |_| | |_) |  __/   <| | |_
  |_| \__,_|_.__/ \___|_|\_\_|\__|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
