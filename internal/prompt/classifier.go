package prompt

import "strings"

// TaskType labels a user message so the enhanced prompt path can pick a template.
type TaskType string

const (
	TaskReportGeneration  TaskType = "report_generation"
	TaskMetricExplanation TaskType = "metric_explanation"
	TaskAnalysisGuidance  TaskType = "analysis_guidance"
	TaskGeneral           TaskType = "general"
)

type classifierRule struct {
	task     TaskType
	keywords []string
}

// rules are checked in order; the first rule with any matching keyword wins.
var rules = []classifierRule{
	{task: TaskReportGeneration, keywords: []string{"report", "outline", "summary", "presentation", "document"}},
	{task: TaskMetricExplanation, keywords: []string{"what is", "explain", "meaning", "calculate", "definition"}},
	{task: TaskAnalysisGuidance, keywords: []string{"analyze", "analysis", "insights", "trends", "what should"}},
}

// Classify returns the task type of message using case-insensitive substring
// matching. Messages that match no rule are TaskGeneral.
func Classify(message string) TaskType {
	lower := strings.ToLower(message)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.task
			}
		}
	}
	return TaskGeneral
}
