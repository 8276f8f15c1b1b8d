package services

import (
	"TrailGuide/internal/models"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var comparisonRegex = regexp.MustCompile(`(?i)^(\w+)\s+(eq)\s+['"]([^'"]*)['"]$`)

// ParseFilter turns an expression such as
//
//	enabled eq 'true' and section eq 'red'
//
// into a CurrentFilter. Only eq comparisons joined by "and" are supported.
func ParseFilter(filter string) (models.CurrentFilter, error) {
	var result models.CurrentFilter
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return result, nil
	}

	clauses := regexp.MustCompile(`(?i)\s+and\s+`).Split(filter, -1)
	for _, clause := range clauses {
		matches := comparisonRegex.FindStringSubmatch(strings.TrimSpace(clause))
		if len(matches) != 4 {
			return result, models.NewValidationError(fmt.Sprintf("invalid filter clause %q", clause))
		}
		column := strings.ToLower(matches[1])
		value := matches[3]

		switch column {
		case "enabled", "deleted":
			b, err := ParseFlag(value)
			if err != nil {
				return result, models.NewValidationError(fmt.Sprintf("invalid value %q for %s", value, column))
			}
			if column == "enabled" {
				result.Enabled = &b
			} else {
				result.Deleted = &b
			}
		case "section":
			result.Section = value
		case "category":
			result.Category = value
		default:
			return result, models.NewValidationError(fmt.Sprintf("cannot filter on %s", column))
		}
	}
	return result, nil
}

// ParseFlag accepts the boolean spellings used by query strings and forms.
func ParseFlag(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false, nil
	case "1", "true", "yes", "on":
		return true, nil
	}
	return strconv.ParseBool(value)
}
