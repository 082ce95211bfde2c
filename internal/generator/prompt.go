package generator

import (
	"fmt"
	"strings"
)

const SystemPrompt = "You are an expert curriculum creator and interactive tutor for an AI-powered learning platform. " +
	"Generate educational content that is engaging, structured, and pedagogically sound."

const (
	ChapterQuizSize = 5
	FinalQuizSize   = 10
)

func BuildOutlinePrompt(topic string) string {
	return fmt.Sprintf(`Generate a comprehensive course structure for the topic: %q

Please provide a JSON response with the following structure:
{
    "title": "Course Title",
    "description": "Brief course description (2-3 sentences)",
    "chapters": [
        {
            "title": "Chapter Title",
            "summary": "2-3 sentence summary of what this chapter covers",
            "subtopics": [
                {
                    "title": "Subtopic Title",
                    "estimated_time": 15,
                    "difficulty": "Beginner"
                }
            ]
        }
    ],
    "glossary": [
        {
            "term": "Key term",
            "definition": "One sentence definition"
        }
    ]
}

Requirements:
- Generate 10-15 chapters
- Each chapter should have 3-6 subtopics
- Estimated time should be realistic (10-45 minutes per subtopic)
- Difficulty levels: "Beginner", "Intermediate", or "Advanced"
- Ensure logical progression from basic to advanced concepts
- Make titles engaging and specific
- The glossary is optional; include up to 15 essential terms

Return only the JSON structure, no additional text.`, topic)
}

func BuildRoadmapPrompt(topic string, outline *Outline) string {
	var b strings.Builder
	for i, ch := range outline.Chapters {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ch.Title)
	}

	return fmt.Sprintf(`Create a learning roadmap in markdown for someone studying %q.
The course is organized in these chapters:
%s
Describe the learning journey as phases (Foundations, Core Skills, Advanced Practice),
map the chapters onto those phases, list the milestones a learner should reach in each phase,
and finish with suggested next steps after the course.
Use proper markdown formatting with headers and lists.`, topic, b.String())
}

func BuildLessonPrompt(req LessonRequest) string {
	level := strings.ToLower(req.Difficulty)
	if level == "" {
		level = "beginner"
	}

	return fmt.Sprintf(`Create detailed lesson content for the subtopic: %q
Context: This is part of a course on %q in the chapter %q
Difficulty Level: %s
Estimated Time: %d minutes

Please provide comprehensive content in markdown format including:

1. **Introduction** (what this subtopic is about)
2. **Core Concepts** (step-by-step explanation)
3. **Examples** (practical examples or code snippets if applicable)
4. **Key Takeaways** (bullet points of main concepts)
5. **Common Mistakes** (what students often get wrong)
6. **Summary** (brief recap)

Make it engaging, educational, and appropriate for the %s level.
Use proper markdown formatting with headers, code blocks, lists, etc.`,
		req.SubtopicTitle, req.Topic, req.ChapterTitle, req.Difficulty, req.EstimatedTime, level)
}

const quizFormat = `{
    "questions": [
        {
            "question": "Question text here",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": 0,
            "explanation": "Brief explanation of why this is correct"
        }
    ]
}`

func BuildChapterQuizPrompt(req ChapterQuizRequest) string {
	return fmt.Sprintf(`Create a %d-question multiple choice quiz for the chapter: %q
Course topic: %q
Subtopics covered: %s

Please provide the quiz in the following JSON format:
%s

Requirements:
- Create exactly %d multiple choice questions
- Each question should have 4 options
- correct_answer should be the index (0-3) of the correct option
- Questions should test understanding, not just memorization
- Cover different subtopics from the chapter
- Include brief explanations for the correct answers

Return only the JSON structure, no additional text.`,
		ChapterQuizSize, req.ChapterTitle, req.Topic, strings.Join(req.Subtopics, ", "), quizFormat, ChapterQuizSize)
}

func BuildFinalQuizPrompt(req FinalQuizRequest) string {
	return fmt.Sprintf(`Create a %d-question final exam for the course: %q
Course topic: %q
Chapters covered: %s

Please provide the exam in the following JSON format:
%s

Requirements:
- Create exactly %d multiple choice questions
- Each question should have 4 options
- correct_answer should be the index (0-3) of the correct option
- Spread the questions across all chapters, favoring concepts that connect several chapters
- Include brief explanations for the correct answers

Return only the JSON structure, no additional text.`,
		FinalQuizSize, req.CourseTitle, req.Topic, strings.Join(req.Chapters, "; "), quizFormat, FinalQuizSize)
}
