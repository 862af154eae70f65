package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRaw = `Jane Doe
Seattle, WA | +1 555-010-0199 | jane@example.com | linkedin.com/in/janedoe

SUMMARY
Backend engineer with a focus on
distributed data platforms.

TECHNICAL SKILLS
- Languages: Go, Python, SQL
- Data Platform: Kafka, Spark

PROFESSIONAL EXPERIENCE
Example Corp | Software Engineer | Seattle, WA | 2021 - Present
- Built a streaming pipeline and reduced data latency by 35%.
- Improved service reliability to 99.95% through automated failover.

EDUCATION
- Example University | M.S. in Computer Science | 2019 - 2021

CERTIFICATIONS
- AWS Solutions Architect | Amazon | 2022
`

func TestNormalize_FullDocument(t *testing.T) {
	record := Normalize(sampleRaw)

	assert.Equal(t, "Jane Doe", record.Name)
	assert.Contains(t, record.Contact, "jane@example.com")
	assert.Equal(t, "Backend engineer with a focus on distributed data platforms.", record.Summary)

	require.Len(t, record.Skills, 2)
	assert.Equal(t, "Languages", record.Skills[0].Category)
	assert.Equal(t, "Go, Python, SQL", record.Skills[0].Items)

	require.Len(t, record.Experience, 1)
	exp := record.Experience[0]
	assert.Equal(t, "Example Corp", exp.Company)
	assert.Equal(t, "Software Engineer", exp.Title)
	assert.Equal(t, "Seattle, WA", exp.Location)
	assert.Equal(t, "2021 - Present", exp.Dates)
	assert.Len(t, exp.Bullets, 2)

	require.Len(t, record.Education, 1)
	assert.Equal(t, "Example University", record.Education[0].School)

	require.Len(t, record.Certifications, 1)
	assert.Equal(t, "AWS Solutions Architect", record.Certifications[0].Name)
	assert.Equal(t, "Amazon", record.Certifications[0].Issuer)

	assert.Nil(t, record.Projects)
	assert.Nil(t, record.Awards)
}

func TestNormalize_SectionAliases(t *testing.T) {
	raw := `Jane Doe
jane@example.com

Professional Summary
Engineer.

Skills
- Core: Go

Work Experience
Acme | Engineer | Remote | 2020 - 2021
- Shipped things.

EDUCATION
- School | Degree | 2019
`
	record := Normalize(raw)
	assert.Equal(t, "Engineer.", record.Summary)
	assert.Equal(t, "Acme", record.Experience[0].Company)
	assert.Equal(t, "Core", record.Skills[0].Category)
}

func TestNormalize_AlwaysProducesValidRecord(t *testing.T) {
	inputs := []string{
		"",
		"Just a name",
		"Jane\njane@example.com\n\nSUMMARY\ntext",
		sampleRaw,
	}
	for _, raw := range inputs {
		record := Normalize(raw)
		assert.NoError(t, ValidateRecord(record), "input %q should normalize to a valid record", truncate(raw, 20))
	}
}

func TestNormalize_MissingPiecesGetPlaceholders(t *testing.T) {
	record := Normalize("")

	assert.Equal(t, "FULL NAME", record.Name)
	assert.Equal(t, "[To be filled]", record.Summary)
	assert.Equal(t, "[Company]", record.Experience[0].Company)
	assert.Equal(t, "[School]", record.Education[0].School)
	assert.Equal(t, []string{"[To be filled]"}, record.Experience[0].Bullets)
}

func TestNormalize_ExperienceBulletFallback(t *testing.T) {
	raw := `Jane
jane@example.com

EXPERIENCE
Acme | Engineer | Remote | 2020
Beta Corp | Engineer | Remote | 2021
- Did a thing.
`
	record := Normalize(raw)
	require.Len(t, record.Experience, 2)
	assert.Equal(t, []string{"[To be filled]"}, record.Experience[0].Bullets)
	assert.Equal(t, []string{"Did a thing."}, record.Experience[1].Bullets)
}
