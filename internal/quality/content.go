package quality

import (
	"regexp"
	"strings"
)

// sectionKeywords maps each required section to the heading variants that
// count as its presence in the extracted text.
var sectionKeywords = []struct {
	Name    string
	Options []string
}{
	{"Summary", []string{"SUMMARY", "PROFESSIONAL SUMMARY"}},
	{"Skills", []string{"SKILLS", "TECHNICAL SKILLS"}},
	{"Experience", []string{"EXPERIENCE", "PROFESSIONAL EXPERIENCE", "WORK EXPERIENCE"}},
	{"Education", []string{"EDUCATION"}},
}

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?\d[\d()\-\s]{7,}\d)`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/`)
	htmlTagPattern  = regexp.MustCompile(`</?[A-Za-z][^>]*>`)

	placeholderPattern = regexp.MustCompile(
		`(?i)\[(?:To be filled|Dates|Degree|School|Certification|Award|Project|Company|Title|Location)\]`)

	roleTimePattern = regexp.MustCompile(
		`^[A-Za-z][A-Za-z/&,\-\s]{2,70}\s+\d{4}\s*-\s*(?:\d{4}|Present)$`)
	companyHintPattern = regexp.MustCompile(
		`(?i)(?:Inc\.?|LLC|Ltd\.?|Corp\.?|Company|University|College|Institute)`)
)

// missingSections returns the names of required sections whose headings were
// not found in the text.
func missingSections(text string) []string {
	upper := strings.ToUpper(text)
	var missing []string
	for _, section := range sectionKeywords {
		found := false
		for _, option := range section.Options {
			if strings.Contains(upper, option) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, section.Name)
		}
	}
	return missing
}

// contactPresence reports which contact channels appear in the text.
func contactPresence(text string) (hasEmail, hasPhone, hasLinkedin bool) {
	return emailPattern.MatchString(text),
		phonePattern.MatchString(text),
		linkedinPattern.MatchString(text)
}

// missingKeywords returns the keywords not found in the text,
// case-insensitively. An empty keyword list yields nil.
func missingKeywords(text string, keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	lower := strings.ToLower(text)
	var missing []string
	for _, keyword := range keywords {
		if !strings.Contains(lower, strings.ToLower(keyword)) {
			missing = append(missing, keyword)
		}
	}
	return missing
}

// htmlLeaks returns suspected HTML tags that leaked into the rendered text.
func htmlLeaks(text string) []string {
	return htmlTagPattern.FindAllString(text, -1)
}

// placeholders returns placeholder markers (e.g. "[Company]") left in the
// rendered text.
func placeholders(text string) []string {
	return placeholderPattern.FindAllString(text, -1)
}

// layoutWarnings scans extracted lines for suspicious-but-not-fatal layout
// artifacts: experience entries whose role/company order looks inverted, and
// consecutive duplicate lines.
func layoutWarnings(lines []string) []string {
	var issues []string

	for i := 0; i+1 < len(lines); i++ {
		if roleTimePattern.MatchString(lines[i]) &&
			companyHintPattern.MatchString(lines[i+1]) &&
			!strings.Contains(lines[i], "|") {
			issues = append(issues, "Suspected inverted experience entry: "+lines[i]+" -> "+lines[i+1])
		}
	}

	for i := 0; i+1 < len(lines); i++ {
		if lines[i] == lines[i+1] {
			issues = append(issues, "Found consecutive duplicate line: "+lines[i])
		}
	}

	return issues
}
