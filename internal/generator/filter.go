package generator

import (
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/bestiary"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/entities"
)

// MatchTemplates returns the templates matching every non-"any" filter field.
// A "6+" rating (or any numeric rating of six or more) matches every template
// in the "6+" bucket; other ratings match exactly. An empty result is not an
// error.
func MatchTemplates(templates []bestiary.Template, f entities.Filter) []*bestiary.Template {
	f = normalize(f)

	var out []*bestiary.Template
	for i := range templates {
		t := &templates[i]
		if !matchesChallengeRating(t.ChallengeRating, f.ChallengeRating) {
			continue
		}
		if !f.Type.IsAny() && t.Type != f.Type {
			continue
		}
		if !f.Environment.IsAny() && t.Environment != f.Environment {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesChallengeRating(have, want entities.ChallengeRating) bool {
	if want.IsAny() {
		return true
	}
	if want.Bucket() == entities.CR6Plus {
		return have.Bucket() == entities.CR6Plus
	}
	return have == want
}
