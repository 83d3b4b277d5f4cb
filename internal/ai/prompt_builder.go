package ai

import (
	"strconv"
	"strings"
)

// BuildAnalysisPrompt builds the SMART coaching prompt for one goal.
// year anchors the quarterly plan and milestone dates.
func BuildAnalysisPrompt(title, description string, year int) string {
	y := strconv.Itoa(year)

	var b strings.Builder

	b.WriteString("You are a goal-setting coach. Analyze this New Year's resolution and help make it SMART ")
	b.WriteString("(Specific, Measurable, Achievable, Relevant, Time-bound).\n\n")

	writeGoal(&b, title, description)

	b.WriteString("\nRespond in JSON format with this exact structure:\n")
	b.WriteString(strings.ReplaceAll(analysisShape, "{{YEAR}}", y))
	b.WriteString("\n\nKeep the plan practical and achievable within ")
	b.WriteString(y)
	b.WriteString(". Use leading indicators for weekly actions and lagging indicators for outcomes. ")
	b.WriteString("Only include 3-4 milestones. Respond with the JSON object only.")

	return b.String()
}

// BuildCategoryPrompt builds the one-word classification prompt.
func BuildCategoryPrompt(title, description string) string {
	var b strings.Builder

	b.WriteString("Categorize this New Year's resolution into exactly ONE of these categories:\n")
	b.WriteString(categoryMenu)
	b.WriteString("\n")

	writeGoal(&b, title, description)

	b.WriteString("\nRespond with ONLY the category name, nothing else. ")
	b.WriteString("Just one word from: health, money_career, family_life_balance, learning, other")

	return b.String()
}

func writeGoal(b *strings.Builder, title, description string) {
	b.WriteString("Resolution: ")
	b.WriteString(strconv.Quote(title))
	b.WriteString("\n")

	if d := strings.TrimSpace(description); d != "" {
		b.WriteString("Description: ")
		b.WriteString(strconv.Quote(d))
		b.WriteString("\n")
	}
}

const categoryMenu = `- health (fitness, exercise, diet, sleep, mental health, wellness, weight loss, meditation, yoga, etc.)
- money_career (job, salary, savings, investing, business, promotion, side hustle, professional development, etc.)
- family_life_balance (relationships, family time, travel, hobbies, social life, work-life balance, relaxation, etc.)
- learning (education, reading, courses, new skills, languages, certifications, creative skills, etc.)
- other (anything that doesn't fit the above categories)
`

const analysisShape = `{
  "category": "one of: health, money_career, family_life_balance, learning, other",
  "isSmart": boolean (true if the goal is already SMART enough),
  "analysis": {
    "specific": { "pass": boolean, "feedback": "brief feedback" },
    "measurable": { "pass": boolean, "feedback": "brief feedback" },
    "achievable": { "pass": boolean, "feedback": "brief feedback" },
    "relevant": { "pass": boolean, "feedback": "brief feedback" },
    "timeBound": { "pass": boolean, "feedback": "brief feedback" }
  },
  "improvedGoal": "A more specific, measurable version of the goal (or the same if already good)",
  "improvedDescription": "A brief description with clear success criteria",
  "identityStatement": "I am the kind of person who ... (one sentence)",
  "quarterlyPlan": [
    { "quarter": "Q1", "focus": "theme", "actions": ["action"], "target": "measurable target by {{YEAR}}-03-31" },
    { "quarter": "Q2", "focus": "theme", "actions": ["action"], "target": "measurable target by {{YEAR}}-06-30" },
    { "quarter": "Q3", "focus": "theme", "actions": ["action"], "target": "measurable target by {{YEAR}}-09-30" },
    { "quarter": "Q4", "focus": "theme", "actions": ["action"], "target": "measurable target by {{YEAR}}-12-31" }
  ],
  "risks": [
    { "risk": "likely obstacle", "mitigation": "if-then plan" }
  ],
  "trackingSystem": {
    "frequency": "daily | weekly | monthly",
    "leadingIndicators": ["action metric"],
    "laggingIndicators": ["outcome metric"],
    "method": "how progress is recorded"
  },
  "minimumViableProgress": {
    "description": "the smallest action that still counts on a bad week",
    "frequency": "how often"
  },
  "categorySpecific": { "key": "fields that only make sense for this category" },
  "suggestedMilestones": [
    { "title": "milestone name", "targetPercent": 25, "targetDate": "{{YEAR}}-03-31" },
    { "title": "milestone name", "targetPercent": 50, "targetDate": "{{YEAR}}-06-30" },
    { "title": "milestone name", "targetPercent": 75, "targetDate": "{{YEAR}}-09-30" },
    { "title": "milestone name", "targetPercent": 100, "targetDate": "{{YEAR}}-12-31" }
  ]
}`
