package course

import "strings"

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

var AllDifficulties = []Difficulty{
	Beginner,
	Intermediate,
	Advanced,
}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

// ParseDifficulty matches labels case-insensitively; anything unknown is Beginner.
func ParseDifficulty(s string) Difficulty {
	s = strings.TrimSpace(s)
	for _, v := range AllDifficulties {
		if strings.EqualFold(s, string(v)) {
			return v
		}
	}
	return Beginner
}
