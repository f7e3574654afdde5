package controllers

import (
	"strconv"

	"github.com/antonyth18/enigma-webgame/database"
	"github.com/antonyth18/enigma-webgame/models"
	"github.com/antonyth18/enigma-webgame/services"
	"github.com/antonyth18/enigma-webgame/utils"
	"github.com/gin-gonic/gin"
)

// GetLeaderboard is public, no session required.
func GetLeaderboard(c *gin.Context) {
	entries, err := services.GetLeaderboard(database.DB)
	if err != nil {
		utils.Error(c, utils.CodeStoreError, "Failed to fetch leaderboard")
		return
	}
	utils.Success(c, "success", entries)
}

func GetMyTeam(c *gin.Context) {
	teamIDAny, _ := c.Get("team_id")
	teamID := teamIDAny.(uint32)

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, utils.CodeNotFound, "Team not found")
		return
	}
	utils.Success(c, "success", team)
}

func GetTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid team id")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, utils.CodeNotFound, "Team not found")
		return
	}

	var members []string
	if err := database.DB.Model(&models.User{}).
		Where("team_id = ?", team.ID).
		Order("id asc").
		Pluck("username", &members).Error; err != nil {
		utils.Error(c, utils.CodeStoreError, "Failed to fetch team members")
		return
	}

	utils.Success(c, "success", gin.H{
		"id":         team.ID,
		"name":       team.Name,
		"code":       team.Code,
		"score":      team.Score,
		"created_at": team.CreatedAt,
		"members":    members,
	})
}
