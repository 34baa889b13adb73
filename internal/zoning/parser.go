// Package zoning implements the rule resolution and development-potential
// calculation core: zone code parsing, baseline/suffix/override rule
// merging, envelope calculation, and the final buildable-area synthesis.
// Everything here is pure computation over the immutable rule table.
package zoning

import (
	"regexp"
	"strings"

	"github.com/stwalsh4118/groundwork/api/internal/models"
)

var clausePattern = regexp.MustCompile(`SP:\s*(\d+)`)

// ParseZoneCode decomposes a raw zone code string into base zone, density
// suffix, and override-clause id. Input is case-insensitive and whitespace
// tolerant, and the clause token may appear anywhere in the string.
//
// Parsing fails softly: a string with no identifiable base zone yields a
// ZoneCode whose IsUnknown() is true, never an error. Decomposition is
// lossless; re-parsing Normalized() yields the same components.
func ParseZoneCode(raw string) models.ZoneCode {
	code := strings.ToUpper(strings.TrimSpace(raw))
	zc := models.ZoneCode{Raw: raw}

	if m := clausePattern.FindStringSubmatch(code); m != nil {
		zc.ClauseID = "SP:" + m[1]
		code = strings.TrimSpace(clausePattern.ReplaceAllString(code, ""))
	}

	if strings.HasSuffix(code, models.SuffixEnhancedInfill) {
		zc.Suffix = models.SuffixEnhancedInfill
		code = strings.TrimSuffix(code, models.SuffixEnhancedInfill)
	}

	zc.BaseZone = strings.TrimSpace(code)
	return zc
}
