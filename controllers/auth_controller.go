package controllers

import (
	"errors"
	"strings"

	"github.com/antonyth18/enigma-webgame/database"
	"github.com/antonyth18/enigma-webgame/dto"
	"github.com/antonyth18/enigma-webgame/models"
	"github.com/antonyth18/enigma-webgame/services"
	"github.com/antonyth18/enigma-webgame/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func generateUsername(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	return local + uuid.NewString()[:6]
}

var (
	errTeamCodeTaken = errors.New("team code already taken")
	errTokenIssue    = errors.New("failed to issue token")
)

func Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	// Team, user, world assignment and token land together or not at all.
	// Duplicate emails surface as a unique violation on the user insert,
	// which also closes the check-then-create race.
	var team *models.Team
	var user models.User
	var portal, token string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if req.TeamCode != "" {
			team, err = services.CreateTeamWithCode(tx, req.TeamName, req.TeamCode)
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errTeamCodeTaken
			}
		} else {
			team, err = services.CreateTeamWithGeneratedCode(tx, req.TeamName)
		}
		if err != nil {
			return err
		}

		user = models.User{
			Username: generateUsername(req.Email),
			Email:    req.Email,
			Password: req.Password,
			TeamID:   team.ID,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		// A caller-supplied paired code carries a sub-team discriminator
		// that decides the world outright.
		codePortal := ""
		if req.TeamCode != "" {
			codePortal, _ = services.PortalFromCode(req.TeamCode)
		}
		portal, err = services.AssignWorld(tx, &user, req.Portal, codePortal)
		if err != nil {
			return err
		}

		token, err = utils.GenerateToken(user.ID, team.ID, portal)
		if err != nil {
			return errTokenIssue
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errTeamCodeTaken):
			utils.Error(c, utils.CodeTeamCodeTaken, "Team code already taken")
		case errors.Is(err, services.ErrCodeGenerationFailed):
			utils.Error(c, utils.CodeGenerationFailed, "Failed to generate unique team code")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			utils.Error(c, utils.CodeUserExists, "User already exists")
		case errors.Is(err, errTokenIssue):
			utils.Error(c, utils.CodeTokenError, "Failed to issue token")
		default:
			utils.Error(c, utils.CodeStoreError, "Signup failed")
		}
		return
	}

	utils.Success(c, "Signup success", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"portal":   portal,
		},
		"team": gin.H{
			"id":   team.ID,
			"name": team.Name,
			"code": team.Code,
		},
	})
}

func Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// same message as a wrong password, no user enumeration
		utils.Error(c, utils.CodeInvalidCredentials, "Invalid credentials")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, utils.CodeInvalidCredentials, "Invalid credentials")
		return
	}

	codePortal := ""
	if req.TeamCode != "" {
		team, err := services.ResolveTeamByCode(database.DB, req.TeamCode)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, utils.CodeTeamNotFound, "Team not found. Please check your team code.")
			return
		}
		if err != nil {
			utils.Error(c, utils.CodeStoreError, "Failed to resolve team code")
			return
		}
		if err := services.SwitchTeam(database.DB, &user, team.ID); err != nil {
			utils.Error(c, utils.CodeStoreError, "Failed to switch team")
			return
		}
		// The typed code decides the world, not the code stored on the
		// resolved team row.
		codePortal, _ = services.PortalFromCode(req.TeamCode)
	}

	portal, err := services.AssignWorld(database.DB, &user, req.Portal, codePortal)
	if err != nil {
		utils.Error(c, utils.CodeStoreError, "Failed to assign portal")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.TeamID, portal)
	if err != nil {
		utils.Error(c, utils.CodeTokenError, "Failed to issue token")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, user.TeamID).Error; err != nil {
		utils.Error(c, utils.CodeStoreError, "Failed to load team")
		return
	}

	utils.Success(c, "Login success", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"portal":   portal,
		},
		"team": team,
	})
}

// SelectPortal persists an explicit portal choice and re-issues the token
// so the claim follows the stored world.
func SelectPortal(c *gin.Context) {
	var req dto.SelectPortalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidParams, "Invalid parameters: "+err.Error())
		return
	}

	userIDAny, _ := c.Get("user_id")
	uid := userIDAny.(uint32)
	teamIDAny, _ := c.Get("team_id")
	teamID := teamIDAny.(uint32)

	if err := services.SelectPortal(database.DB, uid, req.Portal); err != nil {
		if errors.Is(err, services.ErrInvalidPortal) {
			utils.Error(c, utils.CodeInvalidPortal, "Invalid portal")
			return
		}
		utils.Error(c, utils.CodeStoreError, "Failed to select portal")
		return
	}

	token, err := utils.GenerateToken(uid, teamID, req.Portal)
	if err != nil {
		utils.Error(c, utils.CodeTokenError, "Failed to issue token")
		return
	}

	utils.Success(c, "Portal selected", gin.H{
		"token":  token,
		"portal": req.Portal,
	})
}
