package export

import (
	"io"

	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"
	msgpack "github.com/vmihailenco/msgpack"
	"gopkg.in/yaml.v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeYAML(w io.Writer, doc Document) error {
	buf, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

func writeCSV(w io.Writer, doc Document) error {
	return gocsv.Marshal(&doc.Holidays, w)
}

// msgpack has no text marshaler support, dates travel as strings
type msgpackDocument struct {
	Jurisdiction string           `msgpack:"jurisdiction"`
	Name         string           `msgpack:"name"`
	Subdivision  string           `msgpack:"subdivision"`
	Locale       string           `msgpack:"locale"`
	Years        []int            `msgpack:"years"`
	Holidays     []msgpackHoliday `msgpack:"holidays"`
}

type msgpackHoliday struct {
	Date    string `msgpack:"date"`
	Weekday string `msgpack:"weekday"`
	Name    string `msgpack:"name"`
}

func writeMsgpack(w io.Writer, doc Document) error {
	out := msgpackDocument{
		Jurisdiction: doc.Jurisdiction,
		Name:         doc.Name,
		Subdivision:  doc.Subdivision,
		Locale:       doc.Locale,
		Years:        doc.Years,
		Holidays:     make([]msgpackHoliday, 0, len(doc.Holidays)),
	}
	for _, h := range doc.Holidays {
		out.Holidays = append(out.Holidays, msgpackHoliday{
			Date:    h.Date.String(),
			Weekday: h.Weekday,
			Name:    h.Name,
		})
	}
	return msgpack.NewEncoder(w).Encode(out)
}
