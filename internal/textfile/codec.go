// Package textfile implements the line-oriented contacts file: one contact
// per line in the form
//
//	<index> [<phone>] <label>[ - <company>][ - <email>]
//
// The format is meant to be edited by hand, so decoding skips lines it cannot
// read instead of failing the whole load.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// separator joins the optional segments of a line.
const separator = " - "

// linePattern captures phone, label, and the remainder of a line. The
// leading index is required but its value is not kept.
var linePattern = regexp.MustCompile(`^\s*[+-]?\d+\s*\[([^\]]*)\]\s*(\S+)(.*)$`)

// FormatLine renders a contact as a single line without a trailing newline.
// index is the 1-based position in the store.
func FormatLine(index int, c types.Contact) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d [%s] %s", index, c.Phone, c.Label)
	if c.HasCompany() {
		sb.WriteString(separator)
		sb.WriteString(c.Company)
	}
	if c.HasEmail() {
		sb.WriteString(separator)
		sb.WriteString(c.Email)
	}
	return sb.String()
}

// Encode writes contacts to w, one line each, numbered from 1.
func Encode(w io.Writer, contacts []types.Contact) error {
	bw := bufio.NewWriter(w)
	for i, c := range contacts {
		if _, err := bw.WriteString(FormatLine(i+1, c)); err != nil {
			return fmt.Errorf("writing contact %d: %w", i+1, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	return bw.Flush()
}

// ParseLine reads one line. ok is false when the line lacks an index, a
// phone of 1 to MaxPhoneLen characters, or a label.
//
// After the label, a leading separator is dropped. If the rest still holds a
// separator, the text before its first occurrence is the company and the
// text after it the email; otherwise the whole rest is the company.
func ParseLine(line string) (c types.Contact, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return types.Contact{}, false
	}

	phone := m[1]
	if n := utf8.RuneCountInString(phone); n == 0 || n > types.MaxPhoneLen {
		return types.Contact{}, false
	}

	c.Phone = phone
	c.Label = types.Clip(m[2], types.MaxLabelLen)

	rest := strings.TrimLeft(m[3], " \t")
	rest = strings.TrimPrefix(rest, strings.TrimLeft(separator, " "))
	if company, email, found := strings.Cut(rest, separator); found {
		c.Company = types.Clip(company, types.MaxCompanyLen)
		c.Email = types.Clip(email, types.MaxEmailLen)
	} else {
		c.Company = types.Clip(rest, types.MaxCompanyLen)
	}
	return c, true
}

// maxLineLen bounds a line in bytes. Longer lines are skipped as malformed
// so one damaged line cannot fail the whole load.
const maxLineLen = 4096

// Decode reads contacts from r until EOF or until max contacts have been
// read. Lines that ParseLine rejects, and lines longer than maxLineLen, are
// skipped.
func Decode(r io.Reader, max int) ([]types.Contact, error) {
	var contacts []types.Contact
	br := bufio.NewReader(r)
	for len(contacts) < max {
		line, ok, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading contacts: %w", err)
		}
		if !ok {
			continue
		}
		c, ok := ParseLine(line)
		if !ok {
			continue
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// readLine returns the next line without its line ending. ok is false when
// the line exceeds maxLineLen; the whole line is still consumed. io.EOF is
// returned only when no line remains.
func readLine(br *bufio.Reader) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
				return string(buf), !tooLong, nil
			}
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineLen {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), !tooLong, nil
		}
	}
}
