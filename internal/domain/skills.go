package domain

import "strings"

// SkillSet is an ordered list of skill names, unique case-insensitively.
type SkillSet []string

// ParseSkillList splits a comma-separated list into a SkillSet, dropping
// blanks and case-insensitive duplicates.
func ParseSkillList(csv string) SkillSet {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return MergeSkills(strings.Split(csv, ","), nil)
}

// MergeSkills concatenates a and b and keeps the first occurrence of each
// skill, compared case-insensitively. The first-seen casing wins.
func MergeSkills(a, b SkillSet) SkillSet {
	seen := make(map[string]bool, len(a)+len(b))
	var out SkillSet
	for _, list := range []SkillSet{a, b} {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			key := strings.ToLower(s)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}

// Contains reports whether the set has skill, ignoring case.
func (s SkillSet) Contains(skill string) bool {
	for _, v := range s {
		if strings.EqualFold(v, strings.TrimSpace(skill)) {
			return true
		}
	}
	return false
}

func (s SkillSet) String() string {
	return strings.Join(s, ", ")
}
