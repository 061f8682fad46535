package display

import (
	"fmt"
	"io"

	"github.com/backmassage/pngjpg/internal/term"
)

const banner = `                            _
 _ __  _ __   __ _ (_)_ __   __ _
| '_ \| '_ \ / _`+"`"+` || | '_ \ / _`+"`"+` |
| |_) | | | | (_| || | |_) | (_| |
| .__/|_| |_|\__, |/ | .__/ \__, |
|_|          |___/__/|_|    |___/`

// PrintBanner prints the ASCII art banner, in magenta when colors are on.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Paint(term.Magenta, banner))
	fmt.Fprintln(w)
}
