package analysis

import (
	"gdd-roadmap/internal/model"
	"gdd-roadmap/internal/timeline"
)

// NewBoard builds the task board of a schema. states holds the completed flags by task address.
func NewBoard(s model.ProjectSchema, states map[TaskRef]bool) Board {
	b := Board{Categories: make([]BoardCategory, 0, len(s.Tasks))}
	for _, e := range s.Tasks {
		bc := BoardCategory{
			Key:   e.Key,
			Title: timeline.CategoryTitle(e.Key),
			Icon:  e.Category.Icon.String(),
			Color: e.Category.Color.String(),
			Tasks: make([]BoardTask, 0, len(e.Category.Tasks)),
		}
		for i, t := range e.Category.Tasks {
			done := states[TaskRef{Category: e.Key, Index: i}]
			bc.Tasks = append(bc.Tasks, BoardTask{
				Index:     i,
				Text:      t.Text.String(),
				Priority:  t.Priority.OrDefault(),
				Completed: done,
			})
			if done {
				bc.Completed++
			}
		}
		bc.Total = len(bc.Tasks)
		bc.Percent = percent(bc.Completed, bc.Total)

		b.Total += bc.Total
		b.Completed += bc.Completed
		b.Categories = append(b.Categories, bc)
	}
	b.Percent = percent(b.Completed, b.Total)
	return b
}

func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return done * 100 / total
}
