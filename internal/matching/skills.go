package matching

import (
	"math"
	"strings"

	"github.com/mathieu/talent-match/internal/types"
)

// normalizeSkill lowercases and trims a skill label for comparison. Matching
// is exact-string after normalization, never fuzzy.
func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// skillSet builds a normalized lookup set from a skill list.
func skillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		if n := normalizeSkill(s); n != "" {
			set[n] = true
		}
	}
	return set
}

// EvaluateSkills compares a talent's skill set against an offer's required and
// optional skills. Matched, missing and bonus lists keep the offer's declared
// spelling. An offer with zero required skills scores 100: the absence of an
// explicit requirement is never a penalty.
func EvaluateSkills(talent *types.TalentProfile, offer *types.OfferRequirements) types.SkillsDetail {
	talentSet := skillSet(talent.Competences)

	matched := make([]string, 0, len(offer.CompetencesRequises))
	missing := make([]string, 0)
	seen := make(map[string]bool, len(offer.CompetencesRequises))
	required := 0
	for _, skill := range offer.CompetencesRequises {
		n := normalizeSkill(skill)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		required++
		if talentSet[n] {
			matched = append(matched, strings.TrimSpace(skill))
		} else {
			missing = append(missing, strings.TrimSpace(skill))
		}
	}

	bonus := make([]string, 0)
	seenBonus := make(map[string]bool, len(offer.CompetencesSouhaitees))
	for _, skill := range offer.CompetencesSouhaitees {
		n := normalizeSkill(skill)
		if n == "" || seenBonus[n] || seen[n] {
			continue
		}
		seenBonus[n] = true
		if talentSet[n] {
			bonus = append(bonus, strings.TrimSpace(skill))
		}
	}

	score := 100
	if required > 0 {
		score = int(math.Round(float64(len(matched)) / float64(required) * 100))
	}

	return types.SkillsDetail{
		Matched: matched,
		Missing: missing,
		Bonus:   bonus,
		Score:   score,
	}
}
