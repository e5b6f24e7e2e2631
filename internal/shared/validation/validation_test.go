package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	require.True(t, ValidEmail("reader@example.com"))
	require.True(t, ValidEmail("first.last@sub.domain.io"))
	require.False(t, ValidEmail("no-at-sign.example.com"))
	require.False(t, ValidEmail("spaces in@example.com"))
	require.False(t, ValidEmail("missing@tld"))
	require.False(t, ValidEmail("a@b."+strings.Repeat("x", 160)))
}

func TestValidPassword(t *testing.T) {
	require.True(t, ValidPassword("Abcd1234"))
	require.False(t, ValidPassword("abc12345"), "missing uppercase")
	require.False(t, ValidPassword("ABCDEFGH"), "missing digit")
	require.False(t, ValidPassword("Ab1"), "too short")
}

func TestValidName(t *testing.T) {
	require.True(t, ValidName("Ada Lovelace"))
	require.True(t, ValidName("O'Brien-Smith"))
	require.False(t, ValidName("A"))
	require.False(t, ValidName("Robert) DROP TABLE"))
	require.False(t, ValidName(strings.Repeat("a", 101)))
}

func TestValidUUID(t *testing.T) {
	require.True(t, ValidUUID("7b1f54ab-32c9-4f1e-9d0a-62c3f7d9a101"))
	require.True(t, ValidUUID("7B1F54AB-32C9-4F1E-9D0A-62C3F7D9A101"))
	require.False(t, ValidUUID("42"))
	require.False(t, ValidUUID("7b1f54ab32c94f1e9d0a62c3f7d9a101"))
}

func TestTitleAndContentBounds(t *testing.T) {
	require.False(t, ValidTitle("ab"))
	require.True(t, ValidTitle("  abc  "), "trimmed length counts")
	require.True(t, ValidTitle(strings.Repeat("t", 200)))
	require.False(t, ValidTitle(strings.Repeat("t", 201)))

	require.False(t, ValidContent("too short"))
	require.True(t, ValidContent(strings.Repeat("c", 10)))
	require.False(t, ValidContent(strings.Repeat("c", 5001)))

	require.True(t, ValidCommentContent("x"))
	require.False(t, ValidCommentContent("   "))
	require.False(t, ValidCommentContent(strings.Repeat("c", 1001)))
}

func TestValidImageURL(t *testing.T) {
	require.True(t, ValidImageURL(""), "optional field")
	require.True(t, ValidImageURL("https://cdn.example.com/cover.png"))
	require.False(t, ValidImageURL("not a url"))
	require.False(t, ValidImageURL("https://example.com/"+strings.Repeat("p", 1100)))
}

func TestValidStatusAndRole(t *testing.T) {
	require.True(t, ValidStatus("active"))
	require.True(t, ValidStatus("suspended"))
	require.False(t, ValidStatus("deleted"))

	require.True(t, ValidRole("user"))
	require.True(t, ValidRole("creator"))
	require.True(t, ValidRole("admin"))
	require.False(t, ValidRole("demo"), "demo is a login path, not an assignable role")
}

func TestParsePageDefaults(t *testing.T) {
	page, err := ParsePage("", "")
	require.NoError(t, err)
	require.Equal(t, Page{Limit: 10, Offset: 0}, page)
}

func TestParsePageRejectsOutOfRange(t *testing.T) {
	_, err := ParsePage("0", "")
	require.Error(t, err)

	_, err = ParsePage("101", "0")
	require.Error(t, err)

	_, err = ParsePage("10", "-1")
	require.Error(t, err)

	_, err = ParsePage("ten", "0")
	require.Error(t, err)

	var fieldErr *FieldError
	_, err = ParsePage("101", "")
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, "limit", fieldErr.Field)
}

func TestParsePageAcceptsBounds(t *testing.T) {
	page, err := ParsePage("100", "90")
	require.NoError(t, err)
	require.Equal(t, Page{Limit: 100, Offset: 90}, page)
}
