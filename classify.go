package numeric

// resolveDecimal picks which separator occurrence, if any, starts the
// fraction. It returns an index into occ, or -1 when every occurrence
// groups digits.
//
// The table, by occurrence count:
//
//	0            integer, nothing to resolve
//	1  space     grouping
//	1  . or ,    pasted: decimal when 1 or 2 digits trail, else grouping
//	             typed:  decimal when it matches the locale's separator
//	2+ distinct  the final separator is the decimal, the rest group
//	2+ repeated  runs of 3 are grouping cells; any other trailing run
//	             makes the final occurrence the decimal
func resolveDecimal(occ []sepOccurrence, trailing int, mode Mode, localeDecimal rune) int {
	switch len(occ) {
	case 0:
		return -1
	case 1:
		if occ[0].char == ' ' {
			return -1
		}
		if mode == ModePasted {
			if trailing == 1 || trailing == 2 {
				return 0
			}
			return -1
		}
		if occ[0].char == localeDecimal {
			return 0
		}
		return -1
	}

	last := len(occ) - 1
	if occ[last].char == ' ' {
		return -1
	}

	repeated := false
	for _, o := range occ[:last] {
		if o.char == occ[last].char {
			repeated = true
			break
		}
	}
	if !repeated {
		return last
	}

	if trailing == 3 || trailing == 0 {
		return -1
	}
	return last
}
