package generate

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are an expert educational content creator. Generate high-quality, structured lessons that are engaging and informative.`

func buildLessonUserMessage(topicName string, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d educational lessons for the topic: %q.\n", count, topicName)
	b.WriteString(`
Make each lesson:
- 3-5 minutes of reading time
- Educational and informative
- Progressive in difficulty across the batch
- Include 3-5 key learning points
- Appropriate for self-paced learning`)

	return b.String()
}

const quizSystemPrompt = `You are an expert quiz creator. Generate challenging but fair questions that test comprehension.`

func buildQuizUserMessage(lessonContent string, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on this lesson content, create %d multiple choice quiz questions:\n\n%q\n", count, lessonContent)
	b.WriteString(`
Make questions:
- Test understanding of key concepts
- Have 4 options each
- Include brief explanations
- Vary in difficulty`)

	return b.String()
}
