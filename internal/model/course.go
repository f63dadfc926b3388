package model

// Category is the difficulty tier of a Day.
type Category string

const (
	CategoryBasic    Category = "basic"
	CategoryMedium   Category = "medium"
	CategoryAdvanced Category = "advanced"
)

// OrDefault returns c, or CategoryBasic when c is unset.
func (c Category) OrDefault() Category {
	if c == "" {
		return CategoryBasic
	}
	return c
}

// Course is a subject area identified by a stable key, e.g. "html".
type Course struct {
	Key  string `bson:"key" json:"key"`
	Name string `bson:"name" json:"name"`
	Days []Day  `bson:"days" json:"days"`
}

// Day is a numbered lesson unit ("day-N") nested inside a Course.
type Day struct {
	Day         string     `bson:"day" json:"day"`
	Topic       string     `bson:"topic" json:"topic"`
	Description string     `bson:"description" json:"description"`
	Category    Category   `bson:"category" json:"category"`
	Quizzes     []Question `bson:"quizzes" json:"quizzes"`
}

// Question is one multiple-choice item. Answer indexes into Options.
type Question struct {
	ID          int64    `bson:"id" json:"id"`
	Question    string   `bson:"question" json:"question"`
	Options     []string `bson:"options" json:"options"`
	Answer      int      `bson:"answer" json:"answer"`
	Category    string   `bson:"category" json:"category"`
	Explanation string   `bson:"explanation" json:"explanation"`
}

// FindDay returns the first day with the given identifier, or nil.
func (c *Course) FindDay(day string) *Day {
	for i := range c.Days {
		if c.Days[i].Day == day {
			return &c.Days[i]
		}
	}
	return nil
}

// QuestionCount sums the questions across all days.
func (c *Course) QuestionCount() int {
	n := 0
	for _, d := range c.Days {
		n += len(d.Quizzes)
	}
	return n
}

// Clone returns a deep copy of the course.
func (c *Course) Clone() *Course {
	out := &Course{Key: c.Key, Name: c.Name, Days: make([]Day, len(c.Days))}
	for i, d := range c.Days {
		d.Quizzes = cloneQuestions(d.Quizzes)
		out.Days[i] = d
	}
	return out
}

func cloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
