// Package notify plays a short audible cue when a focus or break
// session runs out.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/timer"
)

// Player emits completion sounds. On macOS it asks the system to play a
// short chime; everywhere else it falls back to the terminal bell.
type Player struct {
	out io.Writer
}

var _ timer.Notifier = (*Player)(nil)

// NewPlayer returns a Player that rings the bell on stdout.
func NewPlayer() *Player {
	return &Player{out: os.Stdout}
}

// NewPlayerWithWriter returns a Player that rings the bell on w.
func NewPlayerWithWriter(w io.Writer) *Player {
	return &Player{out: w}
}

// SessionComplete plays the cue for the phase that just finished.
// Playback is best effort; a machine with no audio still gets the bell.
func (p *Player) SessionComplete(finished models.Phase) {
	_ = p.playSound(finished)
}

// bell writes the terminal bell character as a universal fallback.
func (p *Player) bell() error {
	_, err := fmt.Fprint(p.out, "\a")
	return err
}
