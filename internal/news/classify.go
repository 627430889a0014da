package news

import "strings"

// CategoryFromSource maps a source identifier onto the closed category set.
// Total: any input, including empty, yields a category.
func CategoryFromSource(source string) string {
	if source == "" {
		return CategoryWorld
	}
	s := strings.ToLower(source)

	switch {
	case containsAny(s, "tech", "wired", "verge"):
		return CategoryTechnology
	case containsAny(s, "business", "financial", "economist"):
		return CategoryBusiness
	case containsAny(s, "sport", "espn"):
		return CategorySports
	case containsAny(s, "science", "nature"):
		return CategoryScience
	case containsAny(s, "art", "culture"):
		return CategoryArts
	default:
		return CategoryWorld
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
