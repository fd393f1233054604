package timer

import "github.com/mahsaveysi0808-star/Focus-to-do/internal/models"

// SettingsStore is the persistence surface the engine depends on: a flat
// key-value store that survives restarts.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=timer
type SettingsStore interface {
	GetSetting(key string) (string, bool)
	SetSetting(key, value string) error
}

// Notifier receives the completion signal, exactly once per phase
// completion. Fire-and-forget: implementations must not block, and the
// engine never observes the outcome.
type Notifier interface {
	SessionComplete(finished models.Phase)
}
