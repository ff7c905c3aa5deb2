// Package translate formats user visible messages for the current locale.
package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"

	"golang.org/x/text/message"
)

var (
	mutex   sync.RWMutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		logrus.WithError(err).Debug("bitasm: locale")
	}

	SetLanguage(locales...)
}

// SetLanguage selects the message catalog matching the first usable
// language tag. With no tags, en-US is used.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	mutex.Lock()
	defer mutex.Unlock()
	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	defer mutex.RUnlock()
	return printer.Sprintf(key, args...)
}
