package span

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tOgg1/chatspan/internal/message"
)

// dateDetectionEnabled gates the date pattern. Static feature flag,
// currently off.
const dateDetectionEnabled = false

var detectorLog = logComponent("span.detector")

// detector scans plain text for data spans with a fixed pattern set.
// Immutable once built and safe to share across goroutines; invocation is
// still serialized by the package detection lock because reconciliation as
// a whole is not reentrant.
type detector struct {
	patterns []dataPattern
}

type dataPattern struct {
	kind    DataKind
	re      *regexp.Regexp
	payload func(match string) string
}

// Pattern sources. Compiled with regexp.Compile rather than MustCompile so
// a bad pattern degrades to a nil detector instead of a panic at init.
const (
	linkPattern    = `(?i)\b(?:https?://|www\.)[^\s<>()]+[^\s<>().,;:!?'"]`
	addressPattern = `\b\d{1,5}\s+(?:[A-Z][A-Za-z'-]*\s+){1,3}(?:Street|St|Avenue|Ave|Boulevard|Blvd|Road|Rd|Lane|Ln|Drive|Dr|Court|Ct|Place|Pl|Way|Plaza|Square|Sq)\b`
	phonePattern   = `(?:\+\d{1,3}[\s.-]?)?(?:\(\d{3}\)[\s.-]?|\d{3}[\s.-])\d{3}[\s.-]?\d{4}\b`
	datePattern    = `\b(?:\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4})\b`
)

// newDetector builds a detector instance. allowLinks selects whether the
// link pattern is included; address and phone checks are always on, the
// date check only behind its feature flag.
func newDetector(allowLinks bool) (*detector, error) {
	specs := []struct {
		kind    DataKind
		pattern string
		payload func(string) string
		enabled bool
	}{
		{DataLink, linkPattern, linkPayload, allowLinks},
		{DataAddress, addressPattern, strings.TrimSpace, true},
		{DataPhone, phonePattern, phonePayload, true},
		{DataDate, datePattern, strings.TrimSpace, dateDetectionEnabled},
	}

	d := &detector{patterns: make([]dataPattern, 0, len(specs))}
	for _, spec := range specs {
		if !spec.enabled {
			continue
		}
		re, err := regexp.Compile(spec.pattern)
		if err != nil {
			return nil, fmt.Errorf("compile %s pattern: %w", spec.kind, err)
		}
		d.patterns = append(d.patterns, dataPattern{kind: spec.kind, re: re, payload: spec.payload})
	}
	return d, nil
}

// dataMatch is one raw detector hit before truncation filtering.
type dataMatch struct {
	kind    DataKind
	r       message.Range
	payload string
}

// scan runs every enabled pattern over the text and returns the hits in
// ascending range order per pattern, patterns in registration order.
// Overlap between patterns is not resolved here; style application owns
// collision behavior.
func (d *detector) scan(text string) []dataMatch {
	if text == "" {
		return nil
	}
	var out []dataMatch
	for _, p := range d.patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			matched := text[loc[0]:loc[1]]
			out = append(out, dataMatch{
				kind:    p.kind,
				r:       message.Range{Start: loc[0], End: loc[1]},
				payload: p.payload(matched),
			})
		}
	}
	return out
}

// linkPayload resolves a matched link to an openable URL.
func linkPayload(match string) string {
	match = strings.TrimSpace(match)
	if match == "" {
		return ""
	}
	lower := strings.ToLower(match)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return match
	}
	return "https://" + match
}

// phonePayload resolves a matched phone number to a tel: URI.
func phonePayload(match string) string {
	var b strings.Builder
	b.WriteString("tel:")
	for _, r := range match {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	if b.Len() == len("tel:") {
		return ""
	}
	return b.String()
}
