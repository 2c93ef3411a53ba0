package display

import (
	"fmt"
	"os"

	"github.com/backmassage/merlinrescue/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` __  __           _ _       ____
|  \/  | ___ _ __| (_)_ __ |  _ \ ___  ___  ___ _   _  ___
| |\/| |/ _ \ '__| | | '_ \| |_) / _ \/ __|/ __| | | |/ _ \
| |  | |  __/ |  | | | | | |  _ <  __/\__ \ (__| |_| |  __/
|_|  |_|\___|_|  |_|_|_| |_|_| \_\___||___/\___|\__,_|\___|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
