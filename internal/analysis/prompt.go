package analysis

import "fmt"

// BuildAnalysisPrompt returns the fixed instruction sent with a design document.
func BuildAnalysisPrompt(document string) string {
	return fmt.Sprintf(`You are an experienced game producer who builds detailed kanban boards with granular tasks. Analyse the following Game Design Document and produce a VERY DETAILED development roadmap and kanban board.

IMPORTANT: keep tasks SMALL, at most 1-2 sprints (1-4 weeks) each. Produce at least 8-12 tasks per category.

Document:
%s

Task guidelines:
- Every task is specific and actionable
- Maximum duration: 1-2 sprints
- Split large work into smaller subtasks
- Start with an action verb: "Implement", "Create", "Develop", "Test", ...
- Include setup, development, testing and polish tasks

IMPORTANT - category timing:
For every category give startQuarter and endQuarter for when its work starts and ends:
- Quarters are numbered from 1 to the total (a 1-year project has 4 quarters, 2 years have 8)
- Consider realistic dependencies between categories
- Design usually starts first, followed by Art and Programming in parallel
- Audio/Music comes later in development
- QA/Testing starts in the middle-to-late part of the project
- Some categories naturally overlap

Return ONLY valid JSON in exactly this format:
{
  "overview": {
    "title": "Game name",
    "genre": "Game genre",
    "platform": "Target platforms",
    "teamSize": "Team size",
    "estimatedDuration": "Estimated duration in months",
    "description": "Detailed project description"
  },
  "roadmap": [
    {"phase": "Phase name", "duration": "Duration in months"}
  ],
  "tasks": {
    "programming": {"icon": "💻", "color": "#3b82f6", "startQuarter": 1, "endQuarter": 6,
      "tasks": [{"text": "Programming task", "priority": "high|medium|low"}]},
    "art": {"icon": "🎨", "color": "#8b5cf6", "startQuarter": 1, "endQuarter": 7,
      "tasks": [{"text": "Art task", "priority": "high|medium|low"}]},
    "design": {"icon": "📋", "color": "#10b981", "startQuarter": 1, "endQuarter": 5,
      "tasks": [{"text": "Design task", "priority": "high|medium|low"}]},
    "audio": {"icon": "🎵", "color": "#f59e0b", "startQuarter": 3, "endQuarter": 6,
      "tasks": [{"text": "Audio task", "priority": "high|medium|low"}]}
  }
}`, document)
}
