package services

import (
	"time"

	"github.com/antonyth18/enigma-webgame/models"
	"gorm.io/gorm"
)

// PairedQuestionID locates the question in the counterpart world occupying
// the same ordinal position (by creation id) as q. When the two worlds'
// lists diverge in length the higher-indexed questions have no pair and
// their hints simply do not cross over.
func PairedQuestionID(db *gorm.DB, q *models.Question) (uint32, bool, error) {
	var sameWorld []uint32
	if err := db.Model(&models.Question{}).
		Where("world = ?", q.World).
		Order("id asc").
		Pluck("id", &sameWorld).Error; err != nil {
		return 0, false, err
	}

	index := -1
	for i, id := range sameWorld {
		if id == q.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return 0, false, nil
	}

	var otherWorld []uint32
	if err := db.Model(&models.Question{}).
		Where("world = ?", models.OtherWorld(q.World)).
		Order("id asc").
		Pluck("id", &otherWorld).Error; err != nil {
		return 0, false, err
	}
	if index >= len(otherWorld) {
		return 0, false, nil
	}
	return otherWorld[index], true, nil
}

// SubmitHint appends a hint from the given team addressed at a question.
func SubmitHint(db *gorm.DB, teamID, questionID uint32, content string) (*models.Hint, error) {
	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		return nil, err
	}

	hint := models.Hint{
		Content:    content,
		TeamID:     teamID,
		QuestionID: questionID,
	}
	if err := db.Create(&hint).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Team").First(&hint, hint.ID).Error; err != nil {
		return nil, err
	}
	return &hint, nil
}

// GetHints returns the caller team's hints addressed at the question or at
// its paired counterpart, newest first, optionally limited to those created
// after since.
func GetHints(db *gorm.DB, teamID, questionID uint32, since *time.Time) ([]models.Hint, error) {
	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		return nil, err
	}

	questionIDs := []uint32{question.ID}
	pairedID, ok, err := PairedQuestionID(db, &question)
	if err != nil {
		return nil, err
	}
	if ok {
		questionIDs = append(questionIDs, pairedID)
	}

	query := db.Where("team_id = ? AND question_id IN ?", teamID, questionIDs)
	if since != nil {
		query = query.Where("created_at > ?", *since)
	}

	var hints []models.Hint
	if err := query.Preload("Team").Order("created_at desc").Find(&hints).Error; err != nil {
		return nil, err
	}
	return hints, nil
}
