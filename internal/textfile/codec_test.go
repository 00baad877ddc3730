package textfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		contact types.Contact
		want    string
	}{
		{
			name:    "phone and label only",
			index:   1,
			contact: types.Contact{Phone: "555-1234", Label: "Alice"},
			want:    "1 [555-1234] Alice",
		},
		{
			name:    "all fields",
			index:   2,
			contact: types.Contact{Phone: "555-5678", Label: "Bob", Company: "Acme", Email: "bob@acme.com"},
			want:    "2 [555-5678] Bob - Acme - bob@acme.com",
		},
		{
			name:    "company only",
			index:   3,
			contact: types.Contact{Phone: "000", Label: "Carol", Company: "Initech"},
			want:    "3 [000] Carol - Initech",
		},
		{
			name:    "email only",
			index:   4,
			contact: types.Contact{Phone: "111", Label: "Dave", Email: "dave@example.com"},
			want:    "4 [111] Dave - dave@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLine(tt.index, tt.contact))
		})
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   types.Contact
		wantOK bool
	}{
		{
			name:   "phone and label only",
			line:   "1 [555-1234] Alice",
			want:   types.Contact{Phone: "555-1234", Label: "Alice"},
			wantOK: true,
		},
		{
			name:   "company and email",
			line:   "2 [555-5678] Bob - Acme - bob@acme.com",
			want:   types.Contact{Phone: "555-5678", Label: "Bob", Company: "Acme", Email: "bob@acme.com"},
			wantOK: true,
		},
		{
			name:   "trailing text without separator is the company",
			line:   "3 [000] Carol extra",
			want:   types.Contact{Phone: "000", Label: "Carol", Company: "extra"},
			wantOK: true,
		},
		{
			name:   "single segment is the company",
			line:   "4 [111] Dave - Initech",
			want:   types.Contact{Phone: "111", Label: "Dave", Company: "Initech"},
			wantOK: true,
		},
		{
			name:   "email keeps later separators",
			line:   "5 [222] Erin - Acme - erin - work",
			want:   types.Contact{Phone: "222", Label: "Erin", Company: "Acme", Email: "erin - work"},
			wantOK: true,
		},
		{
			name:   "carriage return is dropped",
			line:   "6 [333] Frank - Globex\r",
			want:   types.Contact{Phone: "333", Label: "Frank", Company: "Globex"},
			wantOK: true,
		},
		{
			name:   "phone with spaces",
			line:   "7 [+1 555 0100] Grace",
			want:   types.Contact{Phone: "+1 555 0100", Label: "Grace"},
			wantOK: true,
		},
		{
			name:   "long label is clipped",
			line:   "8 [444] " + strings.Repeat("h", 40),
			want:   types.Contact{Phone: "444", Label: strings.Repeat("h", types.MaxLabelLen)},
			wantOK: true,
		},
		{name: "missing index", line: "[555] Alice"},
		{name: "non-numeric index", line: "x [555] Alice"},
		{name: "missing brackets", line: "1 555 Alice"},
		{name: "empty phone", line: "1 [] Alice"},
		{name: "phone too long", line: "1 [123456789012345] Alice"},
		{name: "missing label", line: "1 [555]"},
		{name: "blank line", line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecodeSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"1 [555-1234] Alice",
		"garbage",
		"",
		"2 [555-5678] Bob - Acme - bob@acme.com",
		"3 [] nobody",
	}, "\n")

	got, err := Decode(strings.NewReader(input), types.DefaultMaxContacts)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].Label)
	assert.Equal(t, "Bob", got[1].Label)
}

func TestDecodeSkipsOverlongLine(t *testing.T) {
	input := "1 [555-1234] Alice\n" +
		"2 [555-0000] " + strings.Repeat("x", 70000) + "\n" +
		"3 [555-5678] Bob"

	got, err := Decode(strings.NewReader(input), types.DefaultMaxContacts)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].Label)
	assert.Equal(t, "Bob", got[1].Label)
}

func TestDecodeOverlongLastLine(t *testing.T) {
	input := "1 [555-1234] Alice\n2 [1] " + strings.Repeat("y", maxLineLen)

	got, err := Decode(strings.NewReader(input), types.DefaultMaxContacts)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Label)
}

func TestDecodeStopsAtMax(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 10; i++ {
		sb.WriteString(FormatLine(i, types.Contact{Phone: "555", Label: "n"}))
		sb.WriteByte('\n')
	}

	got, err := Decode(strings.NewReader(sb.String()), 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	contacts := []types.Contact{
		{Phone: "555-1234", Label: "Alice"},
		{Phone: "555-5678", Label: "Bob", Company: "Acme", Email: "bob@acme.com"},
		{Phone: "000", Label: "Carol", Company: "Initech"},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, contacts))
	assert.Equal(t,
		"1 [555-1234] Alice\n2 [555-5678] Bob - Acme - bob@acme.com\n3 [000] Carol - Initech\n",
		buf.String())

	got, err := Decode(&buf, types.DefaultMaxContacts)
	require.NoError(t, err)
	assert.Equal(t, contacts, got)
}

func TestRoundTripDropsBlocked(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []types.Contact{{Phone: "1", Label: "x", Blocked: true}}))

	got, err := Decode(&buf, types.DefaultMaxContacts)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Blocked)
}
