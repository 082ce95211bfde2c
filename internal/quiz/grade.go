package quiz

// Grade compares answers to questions by position. Extra answers are ignored and missing ones
// count as wrong; the score is floor(100*correct/N), 0 for an empty quiz.
func Grade(questions []Question, answers []int) *SubmitResult {
	res := &SubmitResult{
		TotalQuestions: len(questions),
		Results:        make([]QuestionResult, 0, len(questions)),
	}

	for i, q := range questions {
		r := QuestionResult{
			QuestionID:    q.ID,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
		if i < len(answers) {
			selected := answers[i]
			r.Selected = &selected
			r.IsCorrect = selected == q.CorrectAnswer
		}
		if r.IsCorrect {
			res.CorrectAnswers++
		}
		res.Results = append(res.Results, r)
	}

	if res.TotalQuestions > 0 {
		res.Score = res.CorrectAnswers * 100 / res.TotalQuestions
	}
	res.Passed = res.Score >= PassingScore
	return res
}
