// Package advisory flags follow-up studies a development application may
// need: heritage/conservation review and arborist reports. The checks are
// keyword heuristics over the address plus coarse site triggers, so every
// finding carries a confidence tag and an Unknown status exists; none of
// this is ever reported as a verified fact.
package advisory

import (
	"fmt"
	"strings"
)

// Status is the outcome of an advisory check.
type Status string

const (
	StatusLikely   Status = "likely"
	StatusPossible Status = "possible"
	StatusUnlikely Status = "unlikely"
	StatusUnknown  Status = "unknown"
)

// Confidence rates how much weight the finding deserves.
type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// Finding is one advisory result with the evidence that produced it.
type Finding struct {
	Status     Status     `json:"status"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"reason"`
}

// Heritage conservation districts and address markers used by the
// fallback keyword check when no registry lookup is available.
var heritageKeywords = []string{
	"OLD OAKVILLE", "BRONTE", "KERR VILLAGE", "DOWNTOWN",
	"HERITAGE DISTRICT", "HISTORIC", "CONSERVATION",
}

// Street-name markers that correlate with mature tree canopy.
var matureVegetationKeywords = []string{
	"FOREST", "WOODS", "GROVE", "GLEN", "CREEK", "VALLEY",
	"HERITAGE", "OLD", "MATURE", "ESTABLISHED",
}

// arboristLotAreaTrigger is the lot area above which an arborist report
// is routinely required.
const arboristLotAreaTrigger = 1000.0

// CheckHeritage classifies the likelihood that a property falls under
// heritage or conservation review, from its address alone.
func CheckHeritage(address string) Finding {
	addr := strings.ToUpper(address)

	for _, kw := range heritageKeywords {
		if strings.Contains(addr, kw) {
			return Finding{
				Status:     StatusPossible,
				Confidence: ConfidenceLow,
				Reason:     fmt.Sprintf("address matches heritage-area keyword %q", kw),
			}
		}
	}

	if addr == "" {
		return Finding{
			Status:     StatusUnknown,
			Confidence: ConfidenceLow,
			Reason:     "no address available for heritage screening",
		}
	}

	return Finding{
		Status:     StatusUnlikely,
		Confidence: ConfidenceLow,
		Reason:     "no heritage-area indicators in the address",
	}
}

// CheckArborist classifies whether an arborist report is likely required,
// from the lot area and address. A nil lot area means the size trigger
// cannot be evaluated.
func CheckArborist(address string, lotArea *float64) Finding {
	if lotArea != nil && *lotArea > arboristLotAreaTrigger {
		return Finding{
			Status:     StatusLikely,
			Confidence: ConfidenceHigh,
			Reason: fmt.Sprintf("lot area %.0f m² exceeds the %.0f m² review trigger",
				*lotArea, arboristLotAreaTrigger),
		}
	}

	addr := strings.ToUpper(address)
	for _, kw := range matureVegetationKeywords {
		if strings.Contains(addr, kw) {
			return Finding{
				Status:     StatusPossible,
				Confidence: ConfidenceLow,
				Reason:     fmt.Sprintf("address matches mature-vegetation keyword %q", kw),
			}
		}
	}

	return Finding{
		Status:     StatusUnknown,
		Confidence: ConfidenceLow,
		Reason:     "cannot determine without site-specific tree survey",
	}
}
