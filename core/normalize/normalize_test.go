package normalize

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestISBN(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "hyphenated", raw: "978-0-316-49956-0", want: "9780316499560"},
		{name: "check digit x", raw: "0-8044-2957-X", want: "080442957x"},
		{name: "spaces and prefix", raw: " ISBN 1234 5678 ", want: "12345678"},
		{name: "only noise", raw: "n/a", want: ""},
	}

	onlyAllowed := regexp.MustCompile(`^[0-9x]*$`)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ISBN(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, onlyAllowed, got)
			assert.Equal(t, got, ISBN(got), "normalizing twice should be a no-op")
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, Title("the fox"), Title(" The  Fox "))
	assert.Equal(t, "the fox", Title("THE\tFOX\n"))
	assert.Equal(t, "", Title(""))
	assert.Equal(t, "", Title("   "))

	for _, raw := range []string{" The  Fox ", "Iron Flame", "a  b   c"} {
		once := Title(raw)
		assert.Equal(t, once, Title(once))
	}
}

func TestAuthorLikePattern(t *testing.T) {
	assert.Equal(t, "%james%patterson%", AuthorLikePattern("James Patterson"))
	assert.Equal(t, "%trey%gowdy%with%christopher%greyson%", AuthorLikePattern("Trey  Gowdy with Christopher Greyson"))
	assert.Equal(t, "%prince%", AuthorLikePattern(" Prince "))
}

func TestParseAuthors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "by prefix with and",
			raw:  "by James Patterson and Duane Swierczynski",
			want: []string{"James Patterson", "Duane Swierczynski"},
		},
		{
			name: "with collaborator",
			raw:  "Trey Gowdy with Christopher Greyson",
			want: []string{"Trey Gowdy", "Christopher Greyson"},
		},
		{
			name: "commas and colon prefix",
			raw:  "By: Ann Smith, Bob Jones, and Cy Twombly",
			want: []string{"Ann Smith", "Bob Jones", "Cy Twombly"},
		},
		{
			name: "case insensitive duplicates keep first casing",
			raw:  "Stephen King and STEPHEN KING with stephen king",
			want: []string{"Stephen King"},
		},
		{
			name: "separator words inside names are kept",
			raw:  "Wendy Anderson and Sandra Withers",
			want: []string{"Wendy Anderson", "Sandra Withers"},
		},
		{name: "empty", raw: "", want: []string{}},
		{name: "only prefix", raw: "by ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAuthors(tt.raw)
			assert.Equal(t, tt.want, got)
			for _, name := range got {
				assert.NotEmpty(t, name)
				assert.Equal(t, strings.TrimSpace(name), name)
			}
		})
	}
}

func TestMergeKey(t *testing.T) {
	assert.Equal(t, "9780316499560", MergeKey("Anything", []string{"Someone"}, "978-0316499560"))
	assert.Equal(t, "the fox|ann smith,bob jones", MergeKey(" The  Fox", []string{"Ann  Smith", "Bob Jones"}, ""))
	assert.Equal(t, "the fox|", MergeKey("The Fox", nil, "n/a"))
}
