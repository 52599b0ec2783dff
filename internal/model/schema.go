package model

// ProjectSchema is the structured roadmap returned by the language model.
type ProjectSchema struct {
	Overview Overview   `json:"overview" yaml:"overview"`
	Roadmap  []Phase    `json:"roadmap,omitempty" yaml:"roadmap,omitempty"`
	Tasks    Categories `json:"tasks" yaml:"tasks"`
}

// Overview describes the game project as a whole.
type Overview struct {
	Title             Text `json:"title" yaml:"title"`
	Genre             Text `json:"genre" yaml:"genre"`
	Platform          Text `json:"platform" yaml:"platform"`
	TeamSize          Text `json:"teamSize" yaml:"teamSize"`
	EstimatedDuration Text `json:"estimatedDuration" yaml:"estimatedDuration"`
	Description       Text `json:"description" yaml:"description"`
}

// Phase is a coarse roadmap milestone.
type Phase struct {
	Phase    Text `json:"phase" yaml:"phase"`
	Duration Text `json:"duration" yaml:"duration"`
}

// Category groups the tasks of one discipline (programming, art, design, audio, ...).
type Category struct {
	Icon         Text     `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color        Text     `json:"color,omitempty" yaml:"color,omitempty"`
	StartQuarter *Quarter `json:"startQuarter,omitempty" yaml:"startQuarter,omitempty"`
	EndQuarter   *Quarter `json:"endQuarter,omitempty" yaml:"endQuarter,omitempty"`
	Tasks        []Task   `json:"tasks" yaml:"tasks"`
}

// Timing returns the model-provided quarter range. ok is false when either bound is absent
// or zero.
func (c Category) Timing() (start, end int, ok bool) {
	if c.StartQuarter == nil || c.EndQuarter == nil {
		return 0, 0, false
	}
	start, end = int(*c.StartQuarter), int(*c.EndQuarter)
	if start == 0 || end == 0 {
		return 0, 0, false
	}
	return start, end, true
}

// Task is a single kanban card. Its position inside the category is its only handle.
type Task struct {
	Text     Text     `json:"text" yaml:"text"`
	Priority Priority `json:"priority" yaml:"priority"`
}
