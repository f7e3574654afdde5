package services

import (
	"errors"
	"strings"

	"github.com/antonyth18/enigma-webgame/models"
	"github.com/antonyth18/enigma-webgame/utils"
	"gorm.io/gorm"
)

var ErrInvalidPortal = errors.New("invalid portal")

// PortalFromCode returns the portal implied by a code's sub-team
// discriminator: A plays in the Upside Down, B staffs Hawkins Lab.
func PortalFromCode(rawCode string) (string, bool) {
	parts := strings.Split(NormalizeTeamCode(rawCode), "-")
	if len(parts) < 2 || parts[0] != utils.TeamCodePrefix {
		return "", false
	}
	switch parts[1] {
	case "A":
		return models.PortalUpsideDown, true
	case "B":
		return models.PortalHawkinsLab, true
	}
	return "", false
}

// AssignWorld resolves the user's effective portal and persists any world
// change. Precedence: code-implied portal (always overwrites the stored
// world) > explicit request portal > previously persisted world. Unknown
// explicit values are ignored; only the dedicated portal-selection
// operation rejects them. The returned portal may be empty, in which case
// portal-requiring endpoints must refuse the session.
//
// Persisting happens here, before any token is issued, so the claim and
// the stored row cannot diverge.
func AssignWorld(db *gorm.DB, user *models.User, explicitPortal, codePortal string) (string, error) {
	effective := codePortal
	if effective == "" && explicitPortal != "" {
		if _, ok := models.WorldForPortal(explicitPortal); ok {
			effective = explicitPortal
		}
	}
	if effective == "" && user.CurrentWorld != nil {
		if portal, ok := models.PortalForWorld(*user.CurrentWorld); ok {
			effective = portal
		}
	}
	if effective == "" {
		return "", nil
	}

	world, ok := models.WorldForPortal(effective)
	if !ok {
		return "", nil
	}
	if user.CurrentWorld == nil || *user.CurrentWorld != world {
		if err := db.Model(user).Update("current_world", world).Error; err != nil {
			return "", err
		}
		user.CurrentWorld = &world
	}
	return effective, nil
}

// SelectPortal persists an explicit portal choice. Unlike AssignWorld it
// rejects unknown portal values.
func SelectPortal(db *gorm.DB, userID uint32, portal string) error {
	world, ok := models.WorldForPortal(portal)
	if !ok {
		return ErrInvalidPortal
	}
	return db.Model(&models.User{}).Where("id = ?", userID).Update("current_world", world).Error
}
