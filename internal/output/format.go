package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Formatter defines the interface for output formatters.
// Implementations convert a command's result document to output bytes.
type Formatter interface {
	Format(doc any, cfg Config) ([]byte, error)
}

var (
	formatters = make(map[string]Formatter)
	mu         sync.RWMutex
)

// RegisterFormatter registers a formatter by name.
// Called from init() in each formatter file.
func RegisterFormatter(name string, f Formatter) {
	mu.Lock()
	defer mu.Unlock()
	formatters[name] = f
}

// GetFormatter returns the formatter for the given name.
func GetFormatter(name string) (Formatter, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := formatters[name]
	return f, ok
}

// FormatNames returns a sorted list of registered format names.
// Used for flag usage text and validation error messages.
func FormatNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fprint formats doc with the formatter cfg names and writes it to w.
func Fprint(w io.Writer, doc any, cfg Config) error {
	formatter, ok := GetFormatter(cfg.Format)
	if !ok {
		return fmt.Errorf("unknown output format %q (available: %s)", cfg.Format, strings.Join(FormatNames(), ", "))
	}

	out, err := formatter.Format(doc, cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}
