package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	apperrors "vitals/internal/platform/errors"
)

// The scan is a tolerant pattern match over raw text, not a structural XML
// parse: a mangled document still scans as long as the markers survive.
const rootMarker = "<HealthData"

// typeSampleLimit caps how many record openers contribute type labels.
// Record counting and date extraction are not capped.
const typeSampleLimit = 1000

// largeExportRecords triggers the demo-processing warning.
const largeExportRecords = 50000

var (
	recordPattern    = regexp.MustCompile(`<Record\b[^>]*`)
	workoutPattern   = regexp.MustCompile(`<Workout\b`)
	typeAttrPattern  = regexp.MustCompile(`\btype="([^"]*)"`)
	startDatePattern = regexp.MustCompile(`\bstartDate="([^"]*)"`)
	hkPrefixPattern  = regexp.MustCompile(`^HK[A-Za-z]*TypeIdentifier`)
	camelBoundary    = regexp.MustCompile(`([a-z])([A-Z])`)
)

const (
	WarningNoRecords   = "No health records found in export"
	WarningLargeExport = "Large export: processing limited for demo"
	WarningNoHRV       = "HRV data not found in export"
	WarningNoSleep     = "Sleep data not found in export"
	WarningPrivacy     = "No personal data was stored during this scan"
)

const (
	labelHRV   = "Heart Rate Variability SDNN"
	labelSleep = "Sleep Analysis"
)

type DateRange struct {
	Start string
	End   string
}

type ScanResult struct {
	RecordsProcessed int
	DataTypes        []string
	DateRange        DateRange
	Warnings         []string
}

// Scan reports the structural contents of an Apple-Health-style export.
// Nothing from the document is retained past the call.
func Scan(text string) (ScanResult, error) {
	if !strings.Contains(text, rootMarker) {
		return ScanResult{}, apperrors.WithCode(
			fmt.Errorf("%w: missing %s root element", apperrors.ErrMalformedExport, rootMarker),
			apperrors.CodeMalformedExport,
			"export the file from the Health app without editing it",
		)
	}

	records := recordPattern.FindAllString(text, -1)
	result := ScanResult{
		RecordsProcessed: len(records) + len(workoutPattern.FindAllString(text, -1)),
		DataTypes:        collectTypes(records),
		DateRange:        dateRange(text),
	}
	result.Warnings = warnings(result.RecordsProcessed, result.DataTypes)
	return result, nil
}

func collectTypes(records []string) []string {
	if len(records) > typeSampleLimit {
		records = records[:typeSampleLimit]
	}
	seen := map[string]struct{}{}
	for _, tag := range records {
		m := typeAttrPattern.FindStringSubmatch(tag)
		if m == nil {
			continue
		}
		label := SimplifyTypeName(m[1])
		if label != "" {
			seen[label] = struct{}{}
		}
	}
	types := make([]string, 0, len(seen))
	for label := range seen {
		types = append(types, label)
	}
	sort.Strings(types)
	return types
}

// SimplifyTypeName turns an export type identifier into a readable label:
// the HK*TypeIdentifier prefix goes, then a space lands on every lower-to-
// upper boundary so acronym runs such as SDNN stay intact.
func SimplifyTypeName(raw string) string {
	name := hkPrefixPattern.ReplaceAllString(raw, "")
	name = camelBoundary.ReplaceAllString(name, "$1 $2")
	return strings.TrimSpace(name)
}

// dateRange takes the calendar-day portion of the lexicographic minimum and
// maximum startDate values. ISO-formatted dates sort lexicographically in
// date order, so no time parsing is needed.
func dateRange(text string) DateRange {
	var lo, hi string
	for _, m := range startDatePattern.FindAllStringSubmatch(text, -1) {
		v := m[1]
		if lo == "" || v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return DateRange{Start: calendarDay(lo), End: calendarDay(hi)}
}

func calendarDay(stamp string) string {
	if day, _, found := strings.Cut(stamp, " "); found {
		return day
	}
	if len(stamp) > 10 {
		return stamp[:10]
	}
	return stamp
}

func warnings(records int, types []string) []string {
	var out []string
	if records == 0 {
		out = append(out, WarningNoRecords)
	}
	if records > largeExportRecords {
		out = append(out, WarningLargeExport)
	}
	if !containsLabel(types, labelHRV) {
		out = append(out, WarningNoHRV)
	}
	if !containsLabel(types, labelSleep) {
		out = append(out, WarningNoSleep)
	}
	return append(out, WarningPrivacy)
}

func containsLabel(types []string, label string) bool {
	for _, t := range types {
		if t == label {
			return true
		}
	}
	return false
}
