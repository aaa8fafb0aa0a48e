// Package translate formats user-visible messages for the user's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	mutex   sync.Mutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("pcalc: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage overrides the detected locale with a BCP 47 tag.
func SetLanguage(tag string) (err error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return
	}

	mutex.Lock()
	printer = message.NewPrinter(lang)
	mutex.Unlock()

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.Lock()
	p := printer
	mutex.Unlock()

	return p.Sprintf(key, args...)
}

// messageError is an error whose text is translated each time it is read.
type messageError struct {
	key string
}

func (err *messageError) Error() string {
	return From(err.key)
}

// Error returns a sentinel error for an en-US message. The message follows
// later SetLanguage calls; every call returns a distinct error.
func Error(key string) error {
	return &messageError{key: key}
}
