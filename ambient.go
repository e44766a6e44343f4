package numeric

import (
	"os"
	"strings"
	"sync"
)

const fallbackLocale = "en-US"

var ambient = struct {
	mu     sync.RWMutex
	once   sync.Once
	locale string
}{}

// DefaultLocale reports the process wide locale used when an operation has
// none configured. The first call detects it from LC_ALL, LC_MESSAGES, and
// LANG, falling back to en-US. Read it at call boundaries only; threading
// the locale through Options keeps behavior reproducible.
func DefaultLocale() string {
	ambient.once.Do(func() {
		ambient.mu.Lock()
		defer ambient.mu.Unlock()
		if ambient.locale == "" {
			ambient.locale = detectLocale()
		}
	})

	ambient.mu.RLock()
	defer ambient.mu.RUnlock()
	return ambient.locale
}

// SetDefaultLocale overrides the process wide locale. An empty value
// re-detects from the environment.
func SetDefaultLocale(locale string) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		normalized = detectLocale()
	}

	ambient.mu.Lock()
	ambient.locale = normalized
	ambient.mu.Unlock()
}

// detectLocale scans the POSIX locale environment, most specific first.
func detectLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if locale := normalizeSystemLocale(os.Getenv(name)); locale != "" {
			return locale
		}
	}
	return fallbackLocale
}

// normalizeSystemLocale converts POSIX forms like en_US.UTF-8 or de_DE@euro
// to BCP 47. The C and POSIX locales map to the fallback.
func normalizeSystemLocale(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		value = value[:idx]
	}
	if idx := strings.IndexByte(value, '@'); idx >= 0 {
		value = value[:idx]
	}
	if value == "" {
		return ""
	}
	if value == "C" || value == "POSIX" {
		return fallbackLocale
	}
	return normalizeLocale(value)
}
