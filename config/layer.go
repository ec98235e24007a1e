package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/magiconair/properties"
)

// Layer is an ordered mapping from key to raw value.
type Layer struct {
	props *properties.Properties
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	p := properties.NewProperties()
	// Placeholders are resolved by Store.Get, not by the properties parser.
	p.DisableExpansion = true
	return &Layer{props: p}
}

// LayerFromMap creates a layer holding m. Keys are inserted in sorted order.
func LayerFromMap(m map[string]string) *Layer {
	l := NewLayer()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		l.Set(k, m[k])
	}
	return l
}

// Get returns the raw value for key.
func (l *Layer) Get(key string) (string, bool) {
	return l.props.Get(key)
}

// Has reports whether key is set.
func (l *Layer) Has(key string) bool {
	_, ok := l.props.Get(key)
	return ok
}

// Set stores value under key, replacing any previous value.
func (l *Layer) Set(key, value string) {
	// With expansion disabled Set does not validate references and cannot fail.
	_, _, _ = l.props.Set(key, value)
}

// Delete removes key.
func (l *Layer) Delete(key string) {
	l.props.Delete(key)
}

// Keys returns the keys in insertion order.
func (l *Layer) Keys() []string {
	return l.props.Keys()
}

// Len returns the number of keys.
func (l *Layer) Len() int {
	return l.props.Len()
}

// Map returns a copy of all key-value pairs.
func (l *Layer) Map() map[string]string {
	return l.props.Map()
}

// Merge overwrites or adds every entry of updates.
func (l *Layer) Merge(updates map[string]string) {
	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		l.Set(k, updates[k])
	}
}

// WriteTo writes the layer in properties format, preceded by a comment header
// when header is not empty.
func (l *Layer) WriteTo(w io.Writer, header string) error {
	if header != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", header); err != nil {
			return err
		}
	}
	for _, k := range l.props.Keys() {
		v, _ := l.props.Get(k)
		trimmed := strings.TrimLeft(v, " ")

		// The parser drops unescaped leading blanks of a value, so they are
		// written as "\ " after the separator.
		entry := properties.NewProperties()
		entry.DisableExpansion = true
		entry.WriteSeparator = " = " + strings.Repeat(`\ `, len(v)-len(trimmed))
		entry.Set(k, trimmed)
		if _, err := entry.Write(w, properties.UTF8); err != nil {
			return err
		}
	}
	return nil
}

// readLayer loads a properties file.
func readLayer(path string) (*Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseLayer(data)
}

func parseLayer(data []byte) (*Layer, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	p.DisableExpansion = true
	return &Layer{props: p}, nil
}
