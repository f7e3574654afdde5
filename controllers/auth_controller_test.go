package controllers_test

import (
	"testing"

	"github.com/antonyth18/enigma-webgame/database"
	"github.com/antonyth18/enigma-webgame/models"
	"github.com/antonyth18/enigma-webgame/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authData struct {
	Token string `json:"token"`
	User  struct {
		ID       uint32 `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Portal   string `json:"portal"`
	} `json:"user"`
	Team struct {
		ID   uint32 `json:"id"`
		Name string `json:"name"`
		Code string `json:"code"`
	} `json:"team"`
}

func TestSignupCreatesUserAndTeam(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email":     "Dustin@Hawkins.gov",
		"password":  "pretzels",
		"team_name": "The Party",
	})

	var data authData
	decodeData(t, w, &data)

	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "dustin@hawkins.gov", data.User.Email)
	assert.NotEmpty(t, data.User.Username)
	assert.Equal(t, "The Party", data.Team.Name)
	assert.Regexp(t, `^ENIG-[0-9A-F]{6}$`, data.Team.Code)

	claims, err := utils.ParseToken(data.Token)
	require.NoError(t, err)
	assert.Equal(t, data.User.ID, claims.UserID)
	assert.Equal(t, data.Team.ID, claims.TeamID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "dustin@hawkins.gov", "password": "pretzels",
	})
	decodeEnvelope(t, w)

	w = doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "dustin@hawkins.gov", "password": "pretzels",
	})
	env := decodeEnvelope(t, w)
	assert.Equal(t, utils.CodeUserExists, env.Code)
}

func TestSignupDuplicateEmailWithUnusedCodeReportsUserExists(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "dustin@hawkins.gov", "password": "pretzels",
	})
	decodeEnvelope(t, w)

	// the duplicate is the email, not the team code
	w = doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "dustin@hawkins.gov", "password": "pretzels", "team_code": "ENIG-A-1234-5678",
	})
	env := decodeEnvelope(t, w)
	assert.Equal(t, utils.CodeUserExists, env.Code)

	// the failed signup's team must not survive the rollback
	var count int64
	require.NoError(t, database.DB.Model(&models.Team{}).
		Where("code = ?", "ENIG-A-1234-5678").Count(&count).Error)
	assert.Zero(t, count)
}

func TestSignupExplicitPortalPersistsWorld(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "el@hawkins.gov", "password": "eggos123", "portal": models.PortalUpsideDown,
	})
	var data authData
	decodeData(t, w, &data)
	assert.Equal(t, models.PortalUpsideDown, data.User.Portal)

	var user models.User
	require.NoError(t, database.DB.Where("email = ?", "el@hawkins.gov").First(&user).Error)
	require.NotNil(t, user.CurrentWorld)
	assert.Equal(t, models.WorldUpsideDown, *user.CurrentWorld)
}

func TestSignupCustomCodeTaken(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "a@x.com", "password": "password1", "team_code": "ENIG-A-1234-5678",
	})
	env := decodeEnvelope(t, w)
	require.Zero(t, env.Code)

	w = doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "b@x.com", "password": "password1", "team_code": "enig-a-1234-5678",
	})
	env = decodeEnvelope(t, w)
	assert.Equal(t, utils.CodeTeamCodeTaken, env.Code)
}

func TestSignupPairedCodeImpliesPortal(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "a@x.com", "password": "password1", "team_code": "ENIG-B-1234-5678",
	})
	var data authData
	decodeData(t, w, &data)
	assert.Equal(t, models.PortalHawkinsLab, data.User.Portal)

	claims, err := utils.ParseToken(data.Token)
	require.NoError(t, err)
	assert.Equal(t, models.PortalHawkinsLab, claims.Portal)
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "a@x.com", "password": "password1",
	})
	decodeEnvelope(t, w)

	// unknown email and wrong password are indistinguishable
	w = doJSON(t, router, "POST", "/api/auth/login", "", map[string]interface{}{
		"email": "nobody@x.com", "password": "password1",
	})
	env := decodeEnvelope(t, w)
	assert.Equal(t, utils.CodeInvalidCredentials, env.Code)
	unknownEmailMsg := env.Msg

	w = doJSON(t, router, "POST", "/api/auth/login", "", map[string]interface{}{
		"email": "a@x.com", "password": "wrong",
	})
	env = decodeEnvelope(t, w)
	assert.Equal(t, utils.CodeInvalidCredentials, env.Code)
	assert.Equal(t, unknownEmailMsg, env.Msg)
}

func TestLoginAlternateCodeResolvesAndAssignsWorld(t *testing.T) {
	router := setupTestAPI(t)

	// register the B sub-team and a user on an unrelated team
	w := doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "owner@x.com", "password": "password1", "team_code": "ENIG-B-1234-5678",
	})
	var owner authData
	decodeData(t, w, &owner)

	w = doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "drifter@x.com", "password": "password1",
	})
	var drifter authData
	decodeData(t, w, &drifter)

	// logging in with the A variant must resolve to the B team and map
	// discriminator A onto the Upside Down
	w = doJSON(t, router, "POST", "/api/auth/login", "", map[string]interface{}{
		"email": "drifter@x.com", "password": "password1", "team_code": "ENIG-A-1234-5678",
	})
	var data authData
	decodeData(t, w, &data)

	assert.Equal(t, owner.Team.ID, data.Team.ID)
	assert.Equal(t, models.PortalUpsideDown, data.User.Portal)

	claims, err := utils.ParseToken(data.Token)
	require.NoError(t, err)
	assert.Equal(t, owner.Team.ID, claims.TeamID)
	assert.Equal(t, models.PortalUpsideDown, claims.Portal)

	var user models.User
	require.NoError(t, database.DB.Where("email = ?", "drifter@x.com").First(&user).Error)
	assert.Equal(t, owner.Team.ID, user.TeamID)
	require.NotNil(t, user.CurrentWorld)
	assert.Equal(t, models.WorldUpsideDown, *user.CurrentWorld)
}

func TestLoginUnknownTeamCode(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "a@x.com", "password": "password1",
	})
	decodeEnvelope(t, w)

	w = doJSON(t, router, "POST", "/api/auth/login", "", map[string]interface{}{
		"email": "a@x.com", "password": "password1", "team_code": "ENIG-A-9999-9999",
	})
	env := decodeEnvelope(t, w)
	assert.Equal(t, utils.CodeTeamNotFound, env.Code)
}

func TestSelectPortal(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "a@x.com", "password": "password1",
	})
	var data authData
	decodeData(t, w, &data)

	w = doJSON(t, router, "POST", "/api/auth/portal", data.Token, map[string]interface{}{
		"portal": models.PortalUpsideDown,
	})
	var portalData struct {
		Token  string `json:"token"`
		Portal string `json:"portal"`
	}
	decodeData(t, w, &portalData)
	assert.Equal(t, models.PortalUpsideDown, portalData.Portal)

	claims, err := utils.ParseToken(portalData.Token)
	require.NoError(t, err)
	assert.Equal(t, models.PortalUpsideDown, claims.Portal)

	var user models.User
	require.NoError(t, database.DB.Where("email = ?", "a@x.com").First(&user).Error)
	require.NotNil(t, user.CurrentWorld)
	assert.Equal(t, models.WorldUpsideDown, *user.CurrentWorld)
}

func TestSelectPortalRejectsUnknownValue(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email": "a@x.com", "password": "password1",
	})
	var data authData
	decodeData(t, w, &data)

	w = doJSON(t, router, "POST", "/api/auth/portal", data.Token, map[string]interface{}{
		"portal": "the_void",
	})
	env := decodeEnvelope(t, w)
	assert.Equal(t, utils.CodeInvalidPortal, env.Code)
}
