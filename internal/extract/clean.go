package extract

import (
	"regexp"
	"strings"
)

// noisePatterns match metadata lines that HTML extraction tends to leave
// inside Turkish news bodies: photo credits, bylines, read-time hints,
// bare date lines and wire-agency names.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Kaynak\s*[,:]`),
	regexp.MustCompile(`(?i)^Foto[ğg]raf\s*(altı\s*yazısı|açıklaması)?\s*[,:]`),
	regexp.MustCompile(`(?i)^Yazan\s*[,:]`),
	regexp.MustCompile(`(?i)^Unvan\s*[,:]`),
	regexp.MustCompile(`(?i)^Okuma\s+süresi\s+\d+`),
	regexp.MustCompile(`(?i)^\d{1,2}\s+(Ocak|Şubat|Mart|Nisan|Mayıs|Haziran|Temmuz|Ağustos|Eylül|Ekim|Kasım|Aralık)\s+\d{4}$`),
	regexp.MustCompile(`(?i)^(Getty\s*Images|Reuters|AFP|AP|AA|İHA|DHA)\s*$`),
	regexp.MustCompile(`(?i)^BBC\s+\w+$`),
}

var spaceRun = regexp.MustCompile(`\s+`)

// CleanArticleText drops known noise lines from extracted article text and
// removes lines that repeat the title. Blank lines are kept as paragraph
// separators.
func CleanArticleText(text, title string) string {
	normTitle := ""
	if title != "" {
		normTitle = spaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), " ")
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			kept = append(kept, "")
			continue
		}
		if isNoiseLine(stripped) {
			continue
		}
		if normTitle != "" {
			normLine := spaceRun.ReplaceAllString(strings.ToLower(stripped), " ")
			if normLine == normTitle || strings.Contains(normLine, normTitle) || strings.Contains(normTitle, normLine) {
				continue
			}
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func isNoiseLine(line string) bool {
	for _, pat := range noisePatterns {
		if pat.MatchString(line) {
			return true
		}
	}
	return false
}
