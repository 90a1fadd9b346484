package progress

import (
	"time"
)

// ContentType mirrors the content_type column values. New kinds of learnable
// content get a value here and nowhere else.
type ContentType string

const (
	TypeHieroglyph  ContentType = "hieroglyph"
	TypeWord        ContentType = "word"
	TypePhrase      ContentType = "phrase"
	TypeGrammarRule ContentType = "grammar_rule"
	TypeLesson      ContentType = "lesson"
)

func (t ContentType) Valid() bool {
	switch t {
	case TypeHieroglyph, TypeWord, TypePhrase, TypeGrammarRule, TypeLesson:
		return true
	}
	return false
}

type Entry struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	ContentType ContentType `json:"content_type"`
	ContentID   int64       `json:"content_id"`
	IsLearned   bool        `json:"is_learned"`
	LearnedAt   *time.Time  `json:"learned_at,omitempty"`
}
