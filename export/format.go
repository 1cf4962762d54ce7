package export

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// Format names an output encoding.
type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	CSV     Format = "csv"
	Msgpack Format = "msgpack"
	ICS     Format = "ics"
)

var encoders = map[Format]func(io.Writer, Document) error{
	JSON:    writeJSON,
	YAML:    writeYAML,
	CSV:     writeCSV,
	Msgpack: writeMsgpack,
	ICS:     writeICS,
}

var aliases = map[string]Format{
	"yml":  YAML,
	"mp":   Msgpack,
	"ical": ICS,
}

// UnknownFormatError is returned for unsupported format names.
type UnknownFormatError string

func (msg UnknownFormatError) Error() string {
	return fmt.Sprintf("%s: unknown export format", string(msg))
}

// ParseFormat resolves a format name or file extension.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if f, ok := aliases[name]; ok {
		return f, nil
	}
	if _, ok := encoders[Format(name)]; ok {
		return Format(name), nil
	}
	return "", UnknownFormatError(name)
}

// FormatFromPath guesses the format from the extension of path, ignoring
// a trailing .gz.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(strings.TrimSuffix(path, ".gz")))
}

// Formats returns the supported format names.
func Formats() []string {
	out := make([]string, 0, len(encoders))
	for f := range encoders {
		out = append(out, string(f))
	}
	sort.Strings(out)
	return out
}
