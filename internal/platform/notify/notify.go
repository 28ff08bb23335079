package notify

import "github.com/gen2brain/beeep"

// Notifier posts best-effort desktop notifications.
type Notifier interface {
	Notify(title, message string)
}

type Noop struct{}

func (Noop) Notify(string, string) {}

type Desktop struct{}

func NewDesktop(appName string) Desktop {
	beeep.AppName = appName
	return Desktop{}
}

// Notify swallows failures; tracking must keep working when no notification
// daemon is available.
func (Desktop) Notify(title, message string) {
	_ = beeep.Notify(title, message, "")
}
