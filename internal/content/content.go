// Package content holds the static, ordered quiz tables. Every accessor returns
// copies so callers can never alter the tables.
package content

import (
	"slices"

	"perception-quiz-service/internal/domain"
)

// CrimeQuestions returns the crime quiz questions in presentation order.
func CrimeQuestions() []domain.QuestionItem {
	out := make([]domain.QuestionItem, len(crimeQuestions))
	for i, q := range crimeQuestions {
		out[i] = cloneQuestion(q)
	}
	return out
}

// Vignettes returns the status quiz vignettes in presentation order.
func Vignettes() []domain.Vignette {
	out := make([]domain.Vignette, len(vignettes))
	for i, v := range vignettes {
		out[i] = cloneVignette(v)
	}
	return out
}

// Pushback returns the objection/response pairs shown after the status quiz.
func Pushback() []domain.PushbackItem {
	return slices.Clone(pushback)
}

// Catalog looks content items up by id.
type Catalog struct {
	questions map[int]domain.QuestionItem
	vignettes map[int]domain.Vignette
}

// NewCatalog indexes the built-in tables.
func NewCatalog() *Catalog {
	return NewCatalogFrom(crimeQuestions, vignettes)
}

// NewCatalogFrom indexes arbitrary tables; useful for tests with small fixtures.
func NewCatalogFrom(questions []domain.QuestionItem, vigs []domain.Vignette) *Catalog {
	c := &Catalog{
		questions: make(map[int]domain.QuestionItem, len(questions)),
		vignettes: make(map[int]domain.Vignette, len(vigs)),
	}
	for _, q := range questions {
		c.questions[q.ID] = cloneQuestion(q)
	}
	for _, v := range vigs {
		c.vignettes[v.ID] = cloneVignette(v)
	}
	return c
}

func (c *Catalog) CrimeQuestion(id int) (domain.QuestionItem, bool) {
	q, ok := c.questions[id]
	if !ok {
		return domain.QuestionItem{}, false
	}
	return cloneQuestion(q), true
}

func (c *Catalog) Vignette(id int) (domain.Vignette, bool) {
	v, ok := c.vignettes[id]
	if !ok {
		return domain.Vignette{}, false
	}
	return cloneVignette(v), true
}

func (c *Catalog) CrimeQuestionCount() int { return len(c.questions) }

func (c *Catalog) VignetteCount() int { return len(c.vignettes) }

func cloneQuestion(q domain.QuestionItem) domain.QuestionItem {
	q.Options = slices.Clone(q.Options)
	q.Sources = slices.Clone(q.Sources)
	return q
}

func cloneVignette(v domain.Vignette) domain.Vignette {
	v.Sources = slices.Clone(v.Sources)
	return v
}
