// Package mask renders user-authored path templates into sanitized
// destination path segments.
//
// A template mixes literal text with {placeholder} tokens, with "/"
// separating directory levels, e.g. "{year}/{month}" or
// "eli_{celex_identifier}". Placeholder values are slugified before
// substitution; literal text is the author's responsibility and passes
// through, though every finished segment is still length-capped.
package mask

import (
	"fmt"
	"strings"
)

// part is one literal or placeholder token within a segment.
type part struct {
	literal     string
	placeholder string
}

// Mask is a parsed, validated path template. It is immutable and is
// reused across every document in a run.
type Mask struct {
	raw      string
	segments [][]part
}

// New parses a template and validates every placeholder against the
// allowed set. An empty template is valid and renders to zero segments.
// Unknown placeholders and unclosed braces are configuration errors,
// reported here so a bad mask fails the run before any document is
// processed.
func New(template string, placeholders []string) (*Mask, error) {
	allowed := make(map[string]bool, len(placeholders))
	for _, name := range placeholders {
		allowed[name] = true
	}

	m := &Mask{raw: template}
	trimmed := strings.Trim(template, "/")
	if trimmed == "" {
		return m, nil
	}

	for _, rawSegment := range strings.Split(trimmed, "/") {
		parts, err := parseSegment(rawSegment, allowed)
		if err != nil {
			return nil, fmt.Errorf("mask %q: %w", template, err)
		}
		m.segments = append(m.segments, parts)
	}
	return m, nil
}

// parseSegment splits one path segment into literal and placeholder parts.
func parseSegment(segment string, allowed map[string]bool) ([]part, error) {
	var parts []part
	for len(segment) > 0 {
		open := strings.IndexByte(segment, '{')
		if open < 0 {
			parts = append(parts, part{literal: segment})
			break
		}
		if open > 0 {
			parts = append(parts, part{literal: segment[:open]})
		}
		end := strings.IndexByte(segment[open:], '}')
		if end < 0 {
			return nil, fmt.Errorf("unclosed placeholder at %q", segment[open:])
		}
		name := segment[open+1 : open+end]
		if name == "" {
			return nil, fmt.Errorf("empty placeholder")
		}
		if !allowed[name] {
			return nil, fmt.Errorf("unknown placeholder {%s}", name)
		}
		parts = append(parts, part{placeholder: name})
		segment = segment[open+end+1:]
	}
	return parts, nil
}

// Render substitutes placeholder values from lookup and returns the
// sanitized segments. lookup reports whether the attribute is present;
// absent attributes render as FallbackToken. Segments that end up empty
// after sanitization also become FallbackToken, so the shape of the
// rendered path never depends on the data.
func (m *Mask) Render(lookup func(name string) (string, bool)) []string {
	if len(m.segments) == 0 {
		return nil
	}

	rendered := make([]string, 0, len(m.segments))
	for _, parts := range m.segments {
		var b strings.Builder
		for _, p := range parts {
			if p.placeholder == "" {
				b.WriteString(p.literal)
				continue
			}
			value, ok := lookup(p.placeholder)
			if !ok {
				b.WriteString(FallbackToken)
				continue
			}
			b.WriteString(Slugify(value))
		}
		rendered = append(rendered, capSegment(b.String()))
	}
	return rendered
}

// IsEmpty reports whether the mask renders to zero segments.
func (m *Mask) IsEmpty() bool {
	return len(m.segments) == 0
}

// Placeholders returns the distinct placeholder names used by the mask,
// in order of first appearance.
func (m *Mask) Placeholders() []string {
	var names []string
	seen := make(map[string]bool)
	for _, parts := range m.segments {
		for _, p := range parts {
			if p.placeholder != "" && !seen[p.placeholder] {
				seen[p.placeholder] = true
				names = append(names, p.placeholder)
			}
		}
	}
	return names
}

// String returns the original template text.
func (m *Mask) String() string {
	return m.raw
}

// capSegment enforces the segment length limit on a fully rendered
// segment. Literal text is author-controlled but a segment combining
// several substituted values can still overflow the limit.
func capSegment(segment string) string {
	segment = strings.Trim(segment, "._-")
	if chars := []rune(segment); len(chars) > MaxSegmentLen {
		// Cut on a rune boundary: literal text may carry multi-byte characters.
		segment = strings.TrimRight(string(chars[:MaxSegmentLen]), "._-")
	}
	if segment == "" {
		return FallbackToken
	}
	return segment
}
