package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/antonyth18/enigma-webgame/database"
	"github.com/antonyth18/enigma-webgame/dto"
	"github.com/antonyth18/enigma-webgame/models"
	"github.com/antonyth18/enigma-webgame/services"
	"github.com/antonyth18/enigma-webgame/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func sessionIdentity(c *gin.Context) (userID, teamID uint32, portal string) {
	userIDAny, _ := c.Get("user_id")
	teamIDAny, _ := c.Get("team_id")
	userID = userIDAny.(uint32)
	teamID = teamIDAny.(uint32)
	portal = c.GetString("portal")
	return
}

// GetQuestions lists the session world's questions with per-team completion
// flags. The stored correct answer never leaves the server.
func GetQuestions(c *gin.Context) {
	_, teamID, portal := sessionIdentity(c)

	world, ok := models.WorldForPortal(portal)
	if !ok {
		utils.Error(c, utils.CodeMissingPortal, "Invalid or missing portal in session")
		return
	}

	var questions []models.Question
	if err := database.DB.Where("world = ?", world).Order("id asc").Find(&questions).Error; err != nil {
		utils.Error(c, utils.CodeStoreError, "Failed to fetch questions")
		return
	}

	var completedIDs []uint32
	if err := database.DB.Model(&models.Answer{}).
		Where("team_id = ? AND is_correct = ?", teamID, true).
		Distinct().
		Pluck("question_id", &completedIDs).Error; err != nil {
		utils.Error(c, utils.CodeStoreError, "Failed to fetch completion state")
		return
	}
	completed := make(map[uint32]bool, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = true
	}

	items := make([]dto.QuestionItemResp, 0, len(questions))
	for _, q := range questions {
		items = append(items, dto.QuestionItemResp{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			Points:      q.Points,
			World:       string(q.World),
			IsCompleted: completed[q.ID],
			CreatedAt:   q.CreatedAt.Format(time.RFC3339),
		})
	}

	utils.Success(c, "success", gin.H{
		"total":     len(items),
		"questions": items,
	})
}

// SubmitAnswer accepts answers from Upside Down sessions only.
func SubmitAnswer(c *gin.Context) {
	_, teamID, portal := sessionIdentity(c)

	if portal != models.PortalUpsideDown {
		utils.Error(c, utils.CodeForbidden, "Only Upside Down users can submit answers")
		return
	}

	var req dto.SubmitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()
	if req.QuestionID == 0 || req.Answer == "" {
		utils.Error(c, utils.CodeInvalidParams, "Missing question_id or answer")
		return
	}

	outcome, err := services.SubmitAnswer(database.DB, teamID, req.QuestionID, req.Answer)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(c, utils.CodeNotFound, "Question not found")
		return
	}
	if err != nil {
		utils.Error(c, utils.CodeStoreError, "Failed to submit answer")
		return
	}

	resp := dto.SubmitAnswerResp{
		Success:       outcome.IsCorrect,
		IsCorrect:     outcome.IsCorrect,
		PointsAwarded: outcome.PointsAwarded,
	}
	switch {
	case !outcome.IsCorrect:
		resp.Message = "Incorrect answer"
	case outcome.AlreadySolved:
		resp.Message = "Correct! (Already solved, no new points)"
	default:
		resp.Message = "Correct! Points awarded."
	}

	utils.Success(c, "success", resp)
}

// SubmitHint accepts hints from Hawkins Lab sessions only.
func SubmitHint(c *gin.Context) {
	_, teamID, portal := sessionIdentity(c)

	if portal != models.PortalHawkinsLab {
		utils.Error(c, utils.CodeForbidden, "Only Hawkins Lab users can submit hints")
		return
	}

	var req dto.SubmitHintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()
	if req.QuestionID == 0 || req.Content == "" {
		utils.Error(c, utils.CodeInvalidParams, "Missing question_id or content")
		return
	}

	hint, err := services.SubmitHint(database.DB, teamID, req.QuestionID, req.Content)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(c, utils.CodeNotFound, "Question not found")
		return
	}
	if err != nil {
		utils.Error(c, utils.CodeStoreError, "Failed to submit hint")
		return
	}

	utils.Success(c, "Hint submitted", hintToResp(*hint))
}

// GetHints returns the caller team's hints for a question and its paired
// counterpart in the other world, newest first.
func GetHints(c *gin.Context) {
	_, teamID, portal := sessionIdentity(c)

	if _, ok := models.WorldForPortal(portal); !ok {
		utils.Error(c, utils.CodeMissingPortal, "Invalid or missing portal in session")
		return
	}

	questionIDStr := c.Query("question_id")
	if questionIDStr == "" {
		questionIDStr = c.Query("questionId")
	}
	questionID, err := strconv.ParseUint(questionIDStr, 10, 32)
	if err != nil || questionID == 0 {
		utils.Error(c, utils.CodeInvalidParams, "Missing or invalid question_id parameter")
		return
	}

	var since *time.Time
	if sinceStr := c.Query("since"); sinceStr != "" {
		t, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			utils.Error(c, utils.CodeInvalidParams, "Invalid since parameter, expected RFC 3339")
			return
		}
		since = &t
	}

	hints, err := services.GetHints(database.DB, teamID, uint32(questionID), since)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(c, utils.CodeNotFound, "Question not found")
		return
	}
	if err != nil {
		utils.Error(c, utils.CodeStoreError, "Failed to fetch hints")
		return
	}

	items := make([]dto.HintResp, 0, len(hints))
	for _, h := range hints {
		items = append(items, hintToResp(h))
	}
	utils.Success(c, "success", items)
}

func hintToResp(h models.Hint) dto.HintResp {
	resp := dto.HintResp{
		ID:         h.ID,
		Content:    h.Content,
		TeamID:     h.TeamID,
		QuestionID: h.QuestionID,
		CreatedAt:  h.CreatedAt.Format(time.RFC3339),
	}
	if h.Team != nil {
		resp.TeamName = h.Team.Name
	}
	return resp
}
