package content

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-fitter/internal/types"
)

// LintStatus classifies a lint check outcome. Lint findings are advisory:
// they never block rendering.
type LintStatus string

// Lint statuses.
const (
	LintPass LintStatus = "PASS"
	LintWarn LintStatus = "WARN"
)

// LintResult is one named lint check outcome.
type LintResult struct {
	Name   string     `json:"name"`
	Status LintStatus `json:"status"`
	Detail string     `json:"detail"`
}

// Wording thresholds for bullet lint checks.
const (
	maxBulletWords      = 28
	verbStartThreshold  = 0.60
	quantWarnThreshold  = 0.40
	quantGoodThreshold  = 0.60
	ngramRepeatMinCount = 3
	expBulletMin        = 8
	expBulletMax        = 14
)

// strongVerbs are the action verbs a bullet should open with.
var strongVerbs = map[string]bool{
	"accelerated": true, "achieved": true, "automated": true, "built": true,
	"created": true, "delivered": true, "designed": true, "developed": true,
	"drove": true, "enabled": true, "engineered": true, "established": true,
	"executed": true, "expanded": true, "generated": true, "grew": true,
	"headed": true, "identified": true, "implemented": true, "improved": true,
	"increased": true, "initiated": true, "integrated": true, "introduced": true,
	"launched": true, "led": true, "managed": true, "migrated": true,
	"modernized": true, "optimized": true, "orchestrated": true, "overhauled": true,
	"pioneered": true, "proposed": true, "reduced": true, "redesigned": true,
	"refactored": true, "resolved": true, "revamped": true, "scaled": true,
	"secured": true, "simplified": true, "spearheaded": true, "standardized": true,
	"streamlined": true, "strengthened": true, "supervised": true, "transformed": true,
	"unified": true, "upgraded": true,
}

var digitPattern = regexp.MustCompile(`\d`)

// Lint runs all wording checks over the record's bullets.
func Lint(record *types.ResumeRecord) []LintResult {
	allBullets := record.AllBullets()
	expBullets := record.ExperienceBullets()

	return []LintResult{
		lintBulletLength(allBullets),
		lintVerbStart(allBullets),
		lintQuantification(allBullets),
		lintDuplicatePhrases(allBullets),
		lintBulletCount(expBullets),
	}
}

func lintBulletLength(bullets []string) LintResult {
	var long []string
	for _, bullet := range bullets {
		if words := len(strings.Fields(bullet)); words > maxBulletWords {
			long = append(long, fmt.Sprintf("(%dw) %s", words, truncate(bullet, 80)))
		}
	}
	if len(long) > 0 {
		return LintResult{
			Name:   "bullet_length",
			Status: LintWarn,
			Detail: fmt.Sprintf("%d bullet(s) exceed %d words: %s", len(long), maxBulletWords, strings.Join(long, "; ")),
		}
	}
	return LintResult{
		Name:   "bullet_length",
		Status: LintPass,
		Detail: fmt.Sprintf("All %d bullets are within %d words", len(bullets), maxBulletWords),
	}
}

func lintVerbStart(bullets []string) LintResult {
	if len(bullets) == 0 {
		return LintResult{Name: "bullet_verb_start", Status: LintPass, Detail: "No bullets to check"}
	}

	weak := 0
	for _, bullet := range bullets {
		words := strings.Fields(bullet)
		first := ""
		if len(words) > 0 {
			first = strings.ToLower(strings.TrimRight(words[0], ".,;:"))
		}
		if !strongVerbs[first] {
			weak++
		}
	}

	ratio := 1.0 - float64(weak)/float64(len(bullets))
	if ratio < verbStartThreshold {
		return LintResult{
			Name:   "bullet_verb_start",
			Status: LintWarn,
			Detail: fmt.Sprintf("%d/%d bullets (%.0f%%) do not start with a strong verb", weak, len(bullets), 100-ratio*100),
		}
	}
	return LintResult{
		Name:   "bullet_verb_start",
		Status: LintPass,
		Detail: fmt.Sprintf("%d/%d bullets (%.0f%%) start with a strong verb", len(bullets)-weak, len(bullets), ratio*100),
	}
}

func lintQuantification(bullets []string) LintResult {
	if len(bullets) == 0 {
		return LintResult{Name: "quantification_ratio", Status: LintPass, Detail: "No bullets to check"}
	}

	withNumbers := 0
	for _, bullet := range bullets {
		if digitPattern.MatchString(bullet) {
			withNumbers++
		}
	}

	ratio := float64(withNumbers) / float64(len(bullets))
	detail := fmt.Sprintf("%d/%d (%.0f%%) bullets contain numbers", withNumbers, len(bullets), ratio*100)
	switch {
	case ratio < quantWarnThreshold:
		return LintResult{Name: "quantification_ratio", Status: LintWarn, Detail: detail + " (target >= 40%)"}
	case ratio < quantGoodThreshold:
		return LintResult{Name: "quantification_ratio", Status: LintPass, Detail: detail + " (could improve to 60%+)"}
	default:
		return LintResult{Name: "quantification_ratio", Status: LintPass, Detail: detail}
	}
}

func lintDuplicatePhrases(bullets []string) LintResult {
	counts := make(map[string]int)
	for _, bullet := range bullets {
		words := strings.Fields(strings.ToLower(bullet))
		for i := 0; i+2 < len(words); i++ {
			counts[strings.Join(words[i:i+3], " ")]++
		}
	}

	var repeated []string
	for trigram, count := range counts {
		if count >= ngramRepeatMinCount {
			repeated = append(repeated, fmt.Sprintf("%q (x%d)", trigram, count))
		}
	}
	if len(repeated) > 0 {
		sort.Strings(repeated)
		return LintResult{
			Name:   "duplicate_phrases",
			Status: LintWarn,
			Detail: "Repeated 3-grams found: " + strings.Join(repeated, ", "),
		}
	}
	return LintResult{
		Name:   "duplicate_phrases",
		Status: LintPass,
		Detail: "No 3-gram appears 3+ times",
	}
}

func lintBulletCount(expBullets []string) LintResult {
	count := len(expBullets)
	detail := fmt.Sprintf("%d experience bullets (target %d-%d)", count, expBulletMin, expBulletMax)
	if count >= expBulletMin && count <= expBulletMax {
		return LintResult{Name: "bullet_count", Status: LintPass, Detail: detail}
	}
	return LintResult{Name: "bullet_count", Status: LintWarn, Detail: detail}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
