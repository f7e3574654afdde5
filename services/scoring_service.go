package services

import (
	"strings"
	"sync"

	"github.com/antonyth18/enigma-webgame/models"
	"gorm.io/gorm"
)

type SubmitOutcome struct {
	IsCorrect     bool
	AlreadySolved bool
	PointsAwarded int
}

// submitLocks serializes submissions per (team, question) pair across
// requests. The store transaction alone is not enough: two concurrent
// correct submissions for a never-before-solved question could both read
// "not yet solved" and double-award.
var submitLocks sync.Map

func submitLock(teamID, questionID uint32) *sync.Mutex {
	key := uint64(teamID)<<32 | uint64(questionID)
	lock, _ := submitLocks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// AnswerMatches compares a submission against the stored answer with
// whitespace trimmed and case folded.
func AnswerMatches(correct, submitted string) bool {
	return strings.EqualFold(strings.TrimSpace(correct), strings.TrimSpace(submitted))
}

// SubmitAnswer records an attempt and awards points at most once per
// (team, question). The check-insert-increment sequence runs under the
// pair's lock and inside one transaction, so either the attempt row and
// the score increment both commit or neither does.
//
// Every attempt is appended regardless of correctness; an incorrect answer
// is a recorded outcome, not an error.
func SubmitAnswer(db *gorm.DB, teamID, questionID uint32, content string) (*SubmitOutcome, error) {
	lock := submitLock(teamID, questionID)
	lock.Lock()
	defer lock.Unlock()

	var outcome SubmitOutcome

	err := db.Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, questionID).Error; err != nil {
			return err
		}

		outcome.IsCorrect = AnswerMatches(question.CorrectAnswer, content)

		var solved int64
		if err := tx.Model(&models.Answer{}).
			Where("team_id = ? AND question_id = ? AND is_correct = ?", teamID, questionID, true).
			Count(&solved).Error; err != nil {
			return err
		}

		attempt := models.Answer{
			Content:    content,
			IsCorrect:  outcome.IsCorrect,
			TeamID:     teamID,
			QuestionID: questionID,
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		if !outcome.IsCorrect {
			return nil
		}
		if solved > 0 {
			outcome.AlreadySolved = true
			return nil
		}

		outcome.PointsAwarded = question.Points
		return tx.Model(&models.Team{}).Where("id = ?", teamID).
			Update("score", gorm.Expr("score + ?", question.Points)).Error
	})
	if err != nil {
		return nil, err
	}

	if outcome.PointsAwarded > 0 {
		InvalidateLeaderboardCache()
	}
	return &outcome, nil
}
