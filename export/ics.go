package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	icsProductID = "-//alpacahq//holidays//EN"
	// icsLineLimit is the longest content line in octets, CRLF excluded.
	icsLineLimit = 75
)

var icsEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	"\n", `\n`,
)

// writeICS writes one all-day VEVENT per holiday. Lines end in CRLF and
// are folded at icsLineLimit.
func writeICS(w io.Writer, doc Document) error {
	stamp := doc.Generated
	if stamp.IsZero() {
		stamp = time.Now()
	}
	dtstamp := stamp.UTC().Format("20060102T150405Z")

	bw := bufio.NewWriter(w)
	line := func(format string, args ...interface{}) {
		bw.WriteString(foldICS(fmt.Sprintf(format, args...)))
		bw.WriteString("\r\n")
	}

	calName := doc.Name
	if doc.Subdivision != "" {
		calName = fmt.Sprintf("%s (%s)", doc.Name, doc.Subdivision)
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:%s", icsProductID)
	line("CALSCALE:GREGORIAN")
	line("X-WR-CALNAME:%s", icsEscaper.Replace(calName))
	for _, h := range doc.Holidays {
		uid := strings.ToLower(strings.Join(uidParts(h.Date.Time().Format("20060102"), doc.Jurisdiction, doc.Subdivision), "-")) + "@holidays"
		line("BEGIN:VEVENT")
		line("UID:%s", uid)
		line("DTSTAMP:%s", dtstamp)
		line("DTSTART;VALUE=DATE:%s", h.Date.Time().Format("20060102"))
		line("DTEND;VALUE=DATE:%s", h.Date.AddDays(1).Time().Format("20060102"))
		line("SUMMARY:%s", icsEscaper.Replace(h.Name))
		line("TRANSP:TRANSPARENT")
		line("END:VEVENT")
	}
	line("END:VCALENDAR")
	return bw.Flush()
}

// foldICS splits s into chunks of at most icsLineLimit octets joined by
// CRLF and a space. A UTF-8 sequence is never split.
func foldICS(s string) string {
	if len(s) <= icsLineLimit {
		return s
	}
	var b strings.Builder
	limit := icsLineLimit
	for len(s) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		b.WriteString(s[:cut])
		b.WriteString("\r\n ")
		s = s[cut:]
		// the leading space counts toward the limit
		limit = icsLineLimit - 1
	}
	b.WriteString(s)
	return b.String()
}

func uidParts(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
