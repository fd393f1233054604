//go:build !darwin

package notify

import "github.com/mahsaveysi0808-star/Focus-to-do/internal/models"

// playSound falls back to the terminal bell on platforms without a
// bundled system sound.
func (p *Player) playSound(finished models.Phase) error {
	return p.bell()
}
