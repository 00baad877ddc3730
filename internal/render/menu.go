package render

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

const rule = "--------------"

// menuEntries lists the menu lines between the rules, in display order.
var menuEntries = []struct {
	text string
	kind Kind
}{
	{"1 - Add Contact", KindAction},
	{"2 - Display Contacts", KindAction},
	{"3 - Delete Contact", KindAction},
	{"0 - Exit", KindExit},
}

// Header returns the menu block, one entry per line, framed by rules.
func Header(s Styler) string {
	var sb strings.Builder
	sb.WriteString(s.Style(KindRule, rule))
	sb.WriteByte('\n')
	for _, e := range menuEntries {
		sb.WriteString(s.Style(e.kind, e.text))
		sb.WriteByte('\n')
	}
	sb.WriteString(s.Style(KindRule, rule))
	sb.WriteByte('\n')
	return sb.String()
}

// ContactLine renders one numbered entry without a trailing newline:
//
//	<n> <phone> - <label>[ - <company>][ - <email>]
func ContactLine(s Styler, index int, c types.Contact) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(index))
	sb.WriteByte(' ')
	sb.WriteString(s.Style(KindPhone, c.Phone))
	sb.WriteString(" - ")
	sb.WriteString(s.Style(KindLabel, c.Label))
	if c.HasCompany() {
		sb.WriteString(" - ")
		sb.WriteString(s.Style(KindCompany, c.Company))
	}
	if c.HasEmail() {
		sb.WriteString(" - ")
		sb.WriteString(s.Style(KindEmail, c.Email))
	}
	return sb.String()
}

// ListTitle heads a non-empty contact list.
const ListTitle = "CONTACT LIST:"

// NoContacts is shown instead of an empty list.
const NoContacts = "No contacts available."

// Contacts renders the whole list, or NoContacts when it is empty.
func Contacts(s Styler, contacts []types.Contact) string {
	if len(contacts) == 0 {
		return NoContacts + "\n"
	}
	var sb strings.Builder
	sb.WriteString(s.Style(KindHeading, ListTitle))
	sb.WriteByte('\n')
	for i, c := range contacts {
		sb.WriteString(ContactLine(s, i+1, c))
		sb.WriteByte('\n')
	}
	return sb.String()
}
