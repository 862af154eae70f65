package content

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-fitter/internal/types"
)

// sectionAliases maps normalized heading text to the canonical section key.
var sectionAliases = map[string]string{
	"summary":              "summary",
	"professional summary": "summary",
	"skills":               "skills",
	"technical skills":     "skills",
	"experience":           "experience",
	"work experience":      "experience",
	"professional experience": "experience",
	"education":         "education",
	"projects":          "projects",
	"personal projects": "projects",
	"key projects":      "projects",
	"certifications":    "certifications",
	"certificates":      "certifications",
	"awards":            "awards",
	"honors":            "awards",
	"honors and awards": "awards",
}

// Placeholder values used when a section is present but incomplete, so that
// missing information is visible in the output instead of silently dropped.
const (
	placeholderName    = "FULL NAME"
	placeholderContact = "City, State | Phone | Email | LinkedIn"
	placeholderSummary = "[To be filled]"
	placeholderBullet  = "[To be filled]"
)

var headingNoise = regexp.MustCompile(`[^a-zA-Z\s]`)

// Normalize converts free-form resume text into a structured record. Section
// headings are matched by alias, experience entries use
// "Company | Title | Location | Dates" header lines, and pipe-delimited
// lines fill skills, education, certifications and awards. Missing required
// pieces are replaced with visible placeholders; the result always passes
// ValidateRecord.
func Normalize(raw string) *types.ResumeRecord {
	sections := extractSections(raw)
	name, contact := extractHeader(raw)

	summary := strings.Join(sections["summary"], " ")
	if strings.TrimSpace(summary) == "" {
		summary = placeholderSummary
	}

	record := &types.ResumeRecord{
		Name:       name,
		Contact:    contact,
		Summary:    collapseWhitespace(summary),
		Skills:     parseSkills(sections["skills"]),
		Experience: parseExperience(sections["experience"]),
		Education:  parseEducation(sections["education"]),
	}

	if lines := sections["projects"]; len(lines) > 0 {
		record.Projects = parseProjects(lines)
	}
	if lines := sections["certifications"]; len(lines) > 0 {
		record.Certifications = parseCertifications(lines)
	}
	if lines := sections["awards"]; len(lines) > 0 {
		record.Awards = parseAwards(lines)
	}

	return record
}

// normalizeHeading maps a candidate heading line to its canonical section
// key, or "" when the line is not a known heading.
func normalizeHeading(line string) string {
	cleaned := strings.ToLower(strings.TrimSpace(headingNoise.ReplaceAllString(line, "")))
	return sectionAliases[cleaned]
}

func extractSections(raw string) map[string][]string {
	sections := make(map[string][]string)
	current := ""
	for _, line := range strings.Split(raw, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if key := normalizeHeading(stripped); key != "" {
			current = key
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], stripped)
		}
	}
	return sections
}

// extractHeader takes the first non-empty line as the name and scans the
// next few lines for something that looks like contact info.
func extractHeader(raw string) (name, contact string) {
	var nonEmpty []string
	for _, line := range strings.Split(raw, "\n") {
		if stripped := strings.TrimSpace(line); stripped != "" {
			nonEmpty = append(nonEmpty, stripped)
		}
	}
	if len(nonEmpty) == 0 {
		return placeholderName, placeholderContact
	}

	name = strings.TrimPrefix(nonEmpty[0], "Name:")
	name = strings.TrimSpace(name)
	if name == "" || normalizeHeading(name) != "" {
		name = placeholderName
	}

	limit := min(len(nonEmpty), 4)
	for _, line := range nonEmpty[1:limit] {
		line = strings.TrimSpace(strings.TrimPrefix(line, "Contact:"))
		if strings.Contains(line, "@") || strings.Contains(line, "|") ||
			strings.Contains(strings.ToLower(line), "linkedin") {
			contact = line
			break
		}
	}
	if contact == "" {
		contact = placeholderContact
	}
	return name, contact
}

func stripBulletMarker(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "-•* \t"))
}

func parseSkills(lines []string) []types.SkillGroup {
	var skills []types.SkillGroup
	for _, line := range lines {
		payload := stripBulletMarker(line)
		if payload == "" {
			continue
		}
		if category, items, found := strings.Cut(payload, ":"); found {
			skills = append(skills, types.SkillGroup{
				Category: strings.TrimSpace(category),
				Items:    strings.TrimSpace(items),
			})
		} else {
			skills = append(skills, types.SkillGroup{Category: "Core", Items: payload})
		}
	}
	if len(skills) == 0 {
		skills = append(skills, types.SkillGroup{Category: "Core", Items: "[To be filled]"})
	}
	return skills
}

// parseExperience treats lines containing at least two pipes and no bullet
// marker as entry headers ("Company | Title | Location | Dates") and bullet
// lines as belonging to the most recent entry.
func parseExperience(lines []string) []types.Experience {
	var entries []types.Experience
	var current *types.Experience

	flush := func() {
		if current == nil {
			return
		}
		if len(current.Bullets) == 0 {
			current.Bullets = []string{placeholderBullet}
		}
		entries = append(entries, *current)
		current = nil
	}

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		isBullet := strings.HasPrefix(stripped, "-") || strings.HasPrefix(stripped, "•") ||
			strings.HasPrefix(stripped, "*")

		if !isBullet && strings.Count(stripped, "|") >= 1 {
			flush()
			parts := splitPipes(strings.TrimPrefix(stripped, "### "))
			current = &types.Experience{
				Company:  partOr(parts, 0, "[Company]"),
				Title:    partOr(parts, 1, "[Title]"),
				Location: partOr(parts, 2, ""),
				Dates:    partOr(parts, 3, "[Dates]"),
			}
			continue
		}

		if isBullet && current != nil {
			if bullet := stripBulletMarker(stripped); bullet != "" {
				current.Bullets = append(current.Bullets, bullet)
			}
		}
	}
	flush()

	if len(entries) == 0 {
		entries = append(entries, types.Experience{
			Company: "[Company]",
			Title:   "[Title]",
			Dates:   "[Dates]",
			Bullets: []string{placeholderBullet},
		})
	}
	return entries
}

func parseEducation(lines []string) []types.Education {
	var education []types.Education
	for _, line := range lines {
		payload := stripBulletMarker(line)
		if payload == "" {
			continue
		}
		parts := splitPipes(payload)
		education = append(education, types.Education{
			School: partOr(parts, 0, "[School]"),
			Degree: partOr(parts, 1, "[Degree]"),
			Dates:  partOr(parts, 2, "[Dates]"),
		})
	}
	if len(education) == 0 {
		education = append(education, types.Education{
			School: "[School]", Degree: "[Degree]", Dates: "[Dates]",
		})
	}
	return education
}

func parseProjects(lines []string) []types.Project {
	var projects []types.Project
	var current *types.Project

	flush := func() {
		if current != nil {
			projects = append(projects, *current)
			current = nil
		}
	}

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		isBullet := strings.HasPrefix(stripped, "-") || strings.HasPrefix(stripped, "•") ||
			strings.HasPrefix(stripped, "*")

		if !isBullet {
			flush()
			parts := splitPipes(strings.TrimPrefix(stripped, "### "))
			current = &types.Project{
				Name:  partOr(parts, 0, "[Project]"),
				Tech:  partOr(parts, 1, ""),
				Dates: partOr(parts, 2, ""),
			}
			continue
		}
		if current != nil {
			if bullet := stripBulletMarker(stripped); bullet != "" {
				current.Bullets = append(current.Bullets, bullet)
			}
		}
	}
	flush()
	return projects
}

func parseCertifications(lines []string) []types.Certification {
	var certs []types.Certification
	for _, line := range lines {
		payload := stripBulletMarker(line)
		if payload == "" {
			continue
		}
		parts := splitPipes(payload)
		certs = append(certs, types.Certification{
			Name:   partOr(parts, 0, "[Certification]"),
			Issuer: partOr(parts, 1, ""),
			Dates:  partOr(parts, 2, ""),
		})
	}
	return certs
}

func parseAwards(lines []string) []types.Award {
	var awards []types.Award
	for _, line := range lines {
		payload := stripBulletMarker(line)
		if payload == "" {
			continue
		}
		parts := splitPipes(payload)
		awards = append(awards, types.Award{
			Name:         partOr(parts, 0, "[Award]"),
			Organization: partOr(parts, 1, ""),
			Dates:        partOr(parts, 2, ""),
		})
	}
	return awards
}

func splitPipes(s string) []string {
	parts := strings.Split(s, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func partOr(parts []string, index int, fallback string) string {
	if index < len(parts) && parts[index] != "" {
		return parts[index]
	}
	return fallback
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
