// Package timeutil parses the human day windows and day references typed on
// the command line.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/matchday/pkg/event"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitDays      = map[string]int{
		"":      1,
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseDays parses a lookahead such as "3", "3d", "1w" or "1w2d" into whole
// days and returns it along with a canonical, compact representation. Zero
// is a valid window meaning today only.
func ParseDays(input string) (int, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, "", fmt.Errorf("empty window")
	}
	total := 0
	for len(strings.TrimSpace(remaining)) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		per, ok := unitDays[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += value * per
		remaining = remaining[len(matches[0]):]
	}
	return total, FormatDays(total), nil
}

// FormatDays renders days using week and day tokens.
func FormatDays(days int) string {
	if days <= 0 {
		return "0d"
	}
	var out string
	if w := days / 7; w > 0 {
		out = fmt.Sprintf("%dw", w)
	}
	if d := days % 7; d > 0 {
		out += fmt.Sprintf("%dd", d)
	}
	return out
}

// ParseDay resolves "today", "tomorrow", "yesterday", "+N" (days from
// today) or a YYYY-MM-DD date.
func ParseDay(input string, today event.Date) (event.Date, error) {
	v := strings.ToLower(strings.TrimSpace(input))
	switch v {
	case "today", "":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}
	if strings.HasPrefix(v, "+") {
		n, _, err := ParseDays(v[1:])
		if err != nil {
			return event.Date{}, fmt.Errorf("invalid day %q: %w", input, err)
		}
		return today.AddDays(n), nil
	}
	return event.ParseDate(v)
}
