//go:build darwin

package notify

import (
	"os/exec"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
)

// playSound plays session sounds on macOS using afplay.
func (p *Player) playSound(finished models.Phase) error {
	var soundFiles []string

	switch finished {
	case models.PhaseFocus:
		// Work is done, break begins - calm completion sound.
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Tink.aiff",
		}
	case models.PhaseBreak:
		// Break is over, back to work - brighter sound.
		soundFiles = []string{
			"/System/Library/Sounds/Submarine.aiff",
			"/System/Library/Sounds/Ping.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return p.bell()
}
