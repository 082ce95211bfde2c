package course

func ComputeMetadata(chapters []Chapter) Metadata {
	m := Metadata{
		DifficultyDistribution: make(map[Difficulty]int),
		TotalChapters:          len(chapters),
	}
	for _, ch := range chapters {
		for _, st := range ch.Subtopics {
			m.TotalDuration += st.EstimatedTime
			m.DifficultyDistribution[st.Difficulty]++
			m.TotalSubtopics++
		}
	}
	return m
}
