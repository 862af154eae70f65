package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingSections(t *testing.T) {
	text := "SUMMARY\nsome text\nWORK EXPERIENCE\nmore\nEDUCATION\nschool"

	missing := missingSections(text)
	assert.Equal(t, []string{"Skills"}, missing)

	assert.Nil(t, missingSections(text+"\nTECHNICAL SKILLS"))
}

func TestContactPresence(t *testing.T) {
	email, phone, linkedin := contactPresence("reach me at jane@example.com or +1 555-010-0199")
	assert.True(t, email)
	assert.True(t, phone)
	assert.False(t, linkedin)

	email, phone, linkedin = contactPresence("see linkedin.com/in/janedoe")
	assert.False(t, email)
	assert.False(t, phone)
	assert.True(t, linkedin)
}

func TestHTMLLeaks(t *testing.T) {
	assert.Empty(t, htmlLeaks("clean text with a < b comparison"))
	assert.Len(t, htmlLeaks("leaked <b>bold</b> markup"), 2)
}

func TestPlaceholders(t *testing.T) {
	assert.Empty(t, placeholders("finished resume"))

	found := placeholders("worked at [Company] as [Title] during [dates]")
	assert.Len(t, found, 3, "placeholder match should be case-insensitive")
}

func TestLayoutWarnings_InvertedExperienceEntry(t *testing.T) {
	lines := []string{
		"Software Engineer 2021 - Present",
		"Example Corp Inc.",
	}
	issues := layoutWarnings(lines)
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0], "inverted experience entry")

	// A pipe in the first line means the row kept its combined format.
	lines[0] = "Software Engineer | 2021 - Present"
	assert.Empty(t, layoutWarnings(lines))
}

func TestLayoutWarnings_ConsecutiveDuplicates(t *testing.T) {
	issues := layoutWarnings([]string{"alpha", "alpha", "beta"})
	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0], "duplicate line")

	assert.Empty(t, layoutWarnings([]string{"alpha", "beta", "alpha"}))
}
