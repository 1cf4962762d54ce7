package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	msgpack "github.com/vmihailenco/msgpack"
	"gopkg.in/yaml.v2"

	"github.com/alpacahq/holidays/calendar"
	"github.com/alpacahq/holidays/jurisdiction"
)

func federalReserve2021(t *testing.T) Document {
	t.Helper()
	h, err := jurisdiction.New("FEDRESERVE", jurisdiction.Options{})
	require.NoError(t, err)
	doc := FromHolidays(h, 2021)
	doc.Generated = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	return doc
}

func TestFromHolidays(t *testing.T) {
	t.Parallel()

	doc := federalReserve2021(t)
	assert.Equal(t, "FEDRESERVE", doc.Jurisdiction)
	assert.Equal(t, "Federal Reserve", doc.Name)
	assert.Equal(t, []int{2021}, doc.Years)
	require.Len(t, doc.Holidays, 12)
	assert.Equal(t, "2021-01-01", doc.Holidays[0].Date.String())
	assert.Equal(t, "Friday", doc.Holidays[0].Weekday)
	assert.Equal(t, "New Year's Day (Observed)", doc.Holidays[11].Name)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in      string
		want    Format
		wantErr bool
	}{
		"ok/ json":          {"json", JSON, false},
		"ok/ extension":     {".yml", YAML, false},
		"ok/ upper case":    {"CSV", CSV, false},
		"ok/ ical alias":    {"ical", ICS, false},
		"ok/ msgpack alias": {"mp", Msgpack, false},
		"ng/ unknown":       {"xml", "", true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.IsType(t, UnknownFormatError(""), err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	f, err := FormatFromPath("out/holidays.ics.gz")
	require.NoError(t, err)
	assert.Equal(t, ICS, f)
	assert.Equal(t, []string{"csv", "ics", "json", "msgpack", "yaml"}, Formats())
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, federalReserve2021(t)))

	var got struct {
		Jurisdiction string `json:"jurisdiction"`
		Holidays     []struct {
			Date string `json:"date"`
			Name string `json:"name"`
		} `json:"holidays"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "FEDRESERVE", got.Jurisdiction)
	require.Len(t, got.Holidays, 12)
	assert.Equal(t, "2021-07-05", got.Holidays[5].Date)
	assert.Equal(t, "Independence Day (Observed)", got.Holidays[5].Name)
	assert.NotContains(t, buf.String(), "Generated")
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, YAML, federalReserve2021(t)))

	var got struct {
		Locale   string `yaml:"locale"`
		Holidays []struct {
			Date    string `yaml:"date"`
			Weekday string `yaml:"weekday"`
		} `yaml:"holidays"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "en", got.Locale)
	require.Len(t, got.Holidays, 12)
	assert.Equal(t, "2021-12-24", got.Holidays[10].Date)
	assert.Equal(t, "Friday", got.Holidays[10].Weekday)
}

func TestWrite_CSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, CSV, federalReserve2021(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "date,weekday,name", lines[0])
	assert.Equal(t, "2021-07-05,Monday,Independence Day (Observed)", lines[6])
}

func TestWrite_Msgpack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Msgpack, federalReserve2021(t)))

	var got msgpackDocument
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "FEDRESERVE", got.Jurisdiction)
	require.Len(t, got.Holidays, 12)
	assert.Equal(t, "2021-06-18", got.Holidays[4].Date)
}

func TestWrite_ICS(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ICS, federalReserve2021(t)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Equal(t, 12, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20210705\r\nDTEND;VALUE=DATE:20210706\r\n")
	assert.Contains(t, out, "UID:20210705-fedreserve@holidays\r\n")
	assert.Contains(t, out, "DTSTAMP:20210101T000000Z\r\n")

	h, err := jurisdiction.New("CA", jurisdiction.Options{Subdivision: "NL"})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, Write(&buf, ICS, FromHolidays(h, 2019)))
	assert.Contains(t, buf.String(), "SUMMARY:Easter Monday\\, St. George's Day\r\n")
	assert.Contains(t, buf.String(), "X-WR-CALNAME:Canada (NL)\r\n")
}

func TestWrite_ICSFolding(t *testing.T) {
	t.Parallel()

	name := strings.Repeat("Lundi de Pâques (observé), ", 4) + "Jour de la Saint-Georges"
	doc := Document{
		Jurisdiction: "CA",
		Name:         "Canada",
		Locale:       "fr",
		Holidays: []Holiday{{
			Date:    calendar.NewDate(2019, time.April, 22),
			Weekday: "Monday",
			Name:    name,
		}},
		Generated: time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ICS, doc))
	out := buf.String()

	folded := 0
	for _, l := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(l), 75, l)
		assert.True(t, utf8.ValidString(l), l)
		if strings.HasPrefix(l, " ") {
			folded++
		}
	}
	assert.Positive(t, folded)

	unfolded := strings.ReplaceAll(out, "\r\n ", "")
	assert.Contains(t, unfolded, "SUMMARY:"+icsEscaper.Replace(name)+"\r\n")
}

func TestFoldICS(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"ok/ short line kept": {"SUMMARY:Canada Day", "SUMMARY:Canada Day"},
		"ok/ exactly 75 kept": {strings.Repeat("a", 75), strings.Repeat("a", 75)},
		"ok/ 76 folds once":   {strings.Repeat("a", 76), strings.Repeat("a", 75) + "\r\n a"},
		"ok/ rune not split":  {strings.Repeat("a", 74) + "é", strings.Repeat("a", 74) + "\r\n é"},
		"ok/ second chunk 74": {strings.Repeat("a", 150), strings.Repeat("a", 75) + "\r\n " + strings.Repeat("a", 74) + "\r\n a"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, foldICS(tt.in))
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, Format("xml"), Document{})
	assert.Equal(t, UnknownFormatError("xml"), err)

	err = WriteFile(filepath.Join(t.TempDir(), "out.xml"), Format("xml"), Document{})
	assert.Equal(t, UnknownFormatError("xml"), err)
}

func TestWriteFile_Gzip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fed.json.gz")
	require.NoError(t, WriteFile(path, JSON, federalReserve2021(t)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	assert.Equal(t, "fed.json", zr.Name)

	var got Document
	require.NoError(t, json.NewDecoder(zr).Decode(&got))
	assert.Len(t, got.Holidays, 12)
	assert.Equal(t, "2021-01-18", got.Holidays[1].Date.String())
}
