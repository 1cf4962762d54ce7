// Package export writes the holidays of a jurisdiction in interchange
// formats.
package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/alpacahq/holidays/calendar"
	"github.com/alpacahq/holidays/jurisdiction"
)

// Holiday is one exported date.
type Holiday struct {
	Date    calendar.Date `json:"date" yaml:"date" csv:"date"`
	Weekday string        `json:"weekday" yaml:"weekday" csv:"weekday"`
	Name    string        `json:"name" yaml:"name" csv:"name"`
}

// Document is the exported view of one configured jurisdiction.
type Document struct {
	Jurisdiction string    `json:"jurisdiction" yaml:"jurisdiction"`
	Name         string    `json:"name" yaml:"name"`
	Subdivision  string    `json:"subdivision,omitempty" yaml:"subdivision,omitempty"`
	Locale       string    `json:"locale" yaml:"locale"`
	Years        []int     `json:"years" yaml:"years"`
	Holidays     []Holiday `json:"holidays" yaml:"holidays"`

	// Generated stamps the ICS output. Zero means now.
	Generated time.Time `json:"-" yaml:"-"`
}

// FromHolidays collects years of h into a Document ordered by date.
func FromHolidays(h *jurisdiction.Holidays, years ...int) Document {
	doc := Document{
		Jurisdiction: h.Code(),
		Name:         h.Name(),
		Subdivision:  h.Subdivision(),
		Locale:       h.Locale(),
		Years:        append([]int(nil), years...),
		Holidays:     []Holiday{},
	}
	for _, year := range years {
		from := calendar.NewDate(year, time.January, 1)
		to := calendar.NewDate(year, time.December, 31)
		for _, e := range h.Range(from, to) {
			doc.Holidays = append(doc.Holidays, Holiday{
				Date:    e.Date,
				Weekday: e.Date.Weekday().String(),
				Name:    e.Label(),
			})
		}
	}
	return doc
}

// Write encodes doc to w in format.
func Write(w io.Writer, format Format, doc Document) error {
	enc, ok := encoders[format]
	if !ok {
		return UnknownFormatError(format)
	}
	return errors.Wrapf(enc(w, doc), "write %s", format)
}

// WriteFile writes doc to path. A path ending in .gz is gzip compressed.
func WriteFile(path string, format Format, doc Document) (err error) {
	if _, ok := encoders[format]; !ok {
		return UnknownFormatError(format)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return Write(f, format, doc)
	}

	zw := gzip.NewWriter(f)
	zw.Name = strings.TrimSuffix(filepath.Base(path), ".gz")
	if err = Write(zw, format, doc); err != nil {
		_ = zw.Close()
		return err
	}
	return errors.Wrapf(zw.Close(), "compress %s", path)
}
