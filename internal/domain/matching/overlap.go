package matching

import "strings"

// SkillOverlap is the Jaccard index over case-folded skill tokens. Two empty
// sets count as a perfect, vacuous match.
func SkillOverlap(resumeSkills, jobSkills []string) float64 {
	a := foldSet(resumeSkills)
	b := foldSet(jobSkills)

	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	inter := 0
	for s := range a {
		if _, ok := b[s]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// DeriveJobSkills credits a job only with skills the resume itself claims:
// the resume's skills that appear verbatim among the description's
// whitespace-separated, case-folded tokens.
func DeriveJobSkills(description string, resumeSkills []string) []string {
	tokens := map[string]struct{}{}
	for _, tok := range strings.Fields(strings.ToLower(description)) {
		tokens[tok] = struct{}{}
	}

	out := make([]string, 0)
	seen := map[string]struct{}{}
	for _, sk := range resumeSkills {
		folded := strings.ToLower(strings.TrimSpace(sk))
		if folded == "" {
			continue
		}
		if _, dup := seen[folded]; dup {
			continue
		}
		if _, ok := tokens[folded]; ok {
			out = append(out, folded)
			seen[folded] = struct{}{}
		}
	}
	return out
}

// MissingSkills is (job skills) minus (resume skills). With skills derived
// by DeriveJobSkills the difference is empty; it is still computed so a
// richer job-skill source changes behavior without touching callers.
func MissingSkills(jobSkills, resumeSkills []string) []string {
	have := foldSet(resumeSkills)

	out := make([]string, 0)
	seen := map[string]struct{}{}
	for _, sk := range jobSkills {
		folded := strings.ToLower(strings.TrimSpace(sk))
		if folded == "" {
			continue
		}
		if _, dup := seen[folded]; dup {
			continue
		}
		if _, ok := have[folded]; !ok {
			out = append(out, folded)
			seen[folded] = struct{}{}
		}
	}
	return out
}

func foldSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		folded := strings.ToLower(strings.TrimSpace(s))
		if folded == "" {
			continue
		}
		set[folded] = struct{}{}
	}
	return set
}
