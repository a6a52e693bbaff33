package core

import "time"

// ruleSet is the compiled form of the q (override) and p (additive) period
// lists: bounds parsed once, input order preserved for tie-breaking.
type ruleSet struct {
	overrides []override
	bonuses   []bonus
}

type override struct {
	fixed      float64
	start, end time.Time
}

type bonus struct {
	extra      float64
	start, end time.Time
}

type window struct {
	start, end time.Time
}

func newRuleSet(q []QPeriod, p []PPeriod) (*ruleSet, error) {
	rs := &ruleSet{
		overrides: make([]override, 0, len(q)),
		bonuses:   make([]bonus, 0, len(p)),
	}
	for _, qp := range q {
		start, err := ParseTimestamp(qp.Start)
		if err != nil {
			return nil, err
		}
		end, err := ParseTimestamp(qp.End)
		if err != nil {
			return nil, err
		}
		rs.overrides = append(rs.overrides, override{fixed: qp.Fixed, start: start, end: end})
	}
	for _, pp := range p {
		start, err := ParseTimestamp(pp.Start)
		if err != nil {
			return nil, err
		}
		end, err := ParseTimestamp(pp.End)
		if err != nil {
			return nil, err
		}
		rs.bonuses = append(rs.bonuses, bonus{extra: pp.Extra, start: start, end: end})
	}
	return rs, nil
}

// effectiveRemanent applies the adjustment rules to one transaction:
// at most one override replaces the base remanent, then every matching
// bonus stacks on top. No match is the identity case, not an error.
//
// Override selection: the match with the latest start wins; identical
// starts fall back to input order, first listed wins.
func (rs *ruleSet) effectiveRemanent(date time.Time, base float64) float64 {
	remanent := base
	chosen := -1
	for i, o := range rs.overrides {
		if !withinRange(date, o.start, o.end) {
			continue
		}
		if chosen < 0 || o.start.After(rs.overrides[chosen].start) {
			chosen = i
		}
	}
	if chosen >= 0 {
		remanent = rs.overrides[chosen].fixed
	}
	for _, b := range rs.bonuses {
		if withinRange(date, b.start, b.end) {
			remanent += b.extra
		}
	}
	return remanent
}

// compileWindows parses the k (grouping) period bounds once.
func compileWindows(k []KPeriod) ([]window, error) {
	windows := make([]window, 0, len(k))
	for _, kp := range k {
		start, err := ParseTimestamp(kp.Start)
		if err != nil {
			return nil, err
		}
		end, err := ParseTimestamp(kp.End)
		if err != nil {
			return nil, err
		}
		windows = append(windows, window{start: start, end: end})
	}
	return windows, nil
}
