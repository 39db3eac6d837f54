package processor

import (
	"github.com/rounds-golf/rounds-server/internal/notifier"
)

// Notifier defines the notification operations required by the processor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
