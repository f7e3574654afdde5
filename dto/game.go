package dto

import "strings"

type SubmitAnswerReq struct {
	QuestionID uint32 `json:"question_id"`
	Answer     string `json:"answer"`

	QuestionIDCamel uint32 `json:"questionId"`
}

func (r *SubmitAnswerReq) Normalize() {
	if r.QuestionID == 0 && r.QuestionIDCamel != 0 {
		r.QuestionID = r.QuestionIDCamel
	}
	r.Answer = strings.TrimSpace(r.Answer)
}

type SubmitHintReq struct {
	QuestionID uint32 `json:"question_id"`
	Content    string `json:"content"`

	QuestionIDCamel uint32 `json:"questionId"`
}

func (r *SubmitHintReq) Normalize() {
	if r.QuestionID == 0 && r.QuestionIDCamel != 0 {
		r.QuestionID = r.QuestionIDCamel
	}
	r.Content = strings.TrimSpace(r.Content)
}

// QuestionItemResp is the client-facing question shape. The stored correct
// answer is deliberately absent.
type QuestionItemResp struct {
	ID          uint32 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	World       string `json:"world"`
	IsCompleted bool   `json:"is_completed"`
	CreatedAt   string `json:"created_at"`
}

type SubmitAnswerResp struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	IsCorrect     bool   `json:"is_correct"`
	PointsAwarded int    `json:"points_awarded"`
}

type HintResp struct {
	ID         uint64 `json:"id"`
	Content    string `json:"content"`
	TeamID     uint32 `json:"team_id"`
	TeamName   string `json:"team_name"`
	QuestionID uint32 `json:"question_id"`
	CreatedAt  string `json:"created_at"`
}
