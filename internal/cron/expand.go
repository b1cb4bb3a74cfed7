package cron

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Notation patterns, each anchored against the full field string. Numeric
// tokens are limited to one or two digits: longer tokens match no rule and
// fall through to ErrUnrecognizedFormat.
var (
	rangeRe   = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})$`)
	listRe    = regexp.MustCompile(`^\d{1,2}(?:,\d{1,2})+$`)
	steppedRe = regexp.MustCompile(`^(\*|\d{1,2}-\d{1,2})/(\d{1,2})$`)
	singleRe  = regexp.MustCompile(`^\d{1,2}$`)
)

// Expand converts a field notation into the ordered sequence of integers
// from domain that the notation selects. The notation is matched against the
// grammar rules in fixed precedence: wildcard, range, list, stepped, single
// value. Expansion is pure; identical inputs always produce identical
// results.
//
// Range and list handle values outside the domain differently: a range that
// selects nothing yields an empty sequence, while a list whose values are
// all outside the domain fails with ErrNoValidValues. That asymmetry follows
// conventional schedule-syntax tools and is deliberate.
func Expand(notation string, domain []int) ([]int, error) {
	if notation == "*" {
		return append([]int(nil), domain...), nil
	}

	if m := rangeRe.FindStringSubmatch(notation); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if start > end {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRange, notation)
		}
		var values []int
		for _, v := range domain {
			if start <= v && v <= end {
				values = append(values, v)
			}
		}
		return values, nil
	}

	if listRe.MatchString(notation) {
		var values []int
		for _, token := range strings.Split(notation, ",") {
			v, _ := strconv.Atoi(token)
			if slices.Contains(domain, v) {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoValidValues, notation)
		}
		return values, nil
	}

	if m := steppedRe.FindStringSubmatch(notation); m != nil {
		step, _ := strconv.Atoi(m[2])
		if step <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidInterval, notation)
		}
		candidates, err := Expand(m[1], domain)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			return nil, nil
		}
		// Steps are measured from the base's first element, not from zero.
		var values []int
		for _, v := range candidates {
			if (v-candidates[0])%step == 0 {
				values = append(values, v)
			}
		}
		return values, nil
	}

	if singleRe.MatchString(notation) {
		v, _ := strconv.Atoi(notation)
		if !slices.Contains(domain, v) {
			return nil, fmt.Errorf("%w: %q", ErrValueNotInDomain, notation)
		}
		return []int{v}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, notation)
}
