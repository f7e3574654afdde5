package services

import (
	"errors"
	"strings"

	"github.com/antonyth18/enigma-webgame/models"
	"github.com/antonyth18/enigma-webgame/utils"
	"gorm.io/gorm"
)

// codeGenRetries bounds the generate-then-check loop at signup.
const codeGenRetries = 5

var ErrCodeGenerationFailed = errors.New("failed to generate unique team code")

func NormalizeTeamCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// AlternateTeamCode derives the paired sub-team variant of a code of the
// form ENIG-<S>-<P1>-<P2> by swapping the discriminator S between A and B.
// The transform is its own inverse. Codes of any other shape have no
// alternate.
func AlternateTeamCode(code string) (string, bool) {
	parts := strings.Split(code, "-")
	if len(parts) != 4 || parts[0] != utils.TeamCodePrefix {
		return "", false
	}
	var other string
	switch parts[1] {
	case "A":
		other = "B"
	case "B":
		other = "A"
	default:
		return "", false
	}
	return strings.Join([]string{parts[0], other, parts[2], parts[3]}, "-"), true
}

// ResolveTeamByCode looks a team up by its normalized code, falling back to
// the alternate sub-team code. Teams are provisioned in linked pairs, so
// either variant of a pair must resolve to the registered team.
func ResolveTeamByCode(db *gorm.DB, raw string) (*models.Team, error) {
	code := NormalizeTeamCode(raw)

	var team models.Team
	err := db.Where("code = ?", code).First(&team).Error
	if err == nil {
		return &team, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	alt, ok := AlternateTeamCode(code)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if err := db.Where("code = ?", alt).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// CreateTeamWithGeneratedCode creates a team under a freshly generated
// code, retrying on collision up to the retry budget. Losing the race to a
// concurrent registration of the same code counts as a collision.
func CreateTeamWithGeneratedCode(db *gorm.DB, name string) (*models.Team, error) {
	for attempt := 0; attempt < codeGenRetries; attempt++ {
		code := utils.GenerateTeamCode()

		var count int64
		if err := db.Model(&models.Team{}).Where("code = ?", code).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			continue
		}

		team := models.Team{Name: teamNameOrDefault(name, code), Code: code}
		if err := db.Create(&team).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return nil, err
		}
		return &team, nil
	}
	return nil, ErrCodeGenerationFailed
}

// CreateTeamWithCode creates a team under a caller-supplied code.
// Returns gorm.ErrDuplicatedKey when the code is already taken.
func CreateTeamWithCode(db *gorm.DB, name, rawCode string) (*models.Team, error) {
	code := NormalizeTeamCode(rawCode)

	var count int64
	if err := db.Model(&models.Team{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, gorm.ErrDuplicatedKey
	}

	team := models.Team{Name: teamNameOrDefault(name, code), Code: code}
	if err := db.Create(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func teamNameOrDefault(name, code string) string {
	if name != "" {
		return name
	}
	return "Team-" + code
}

// SwitchTeam re-homes a user onto a different team. No-op when the user is
// already a member.
func SwitchTeam(db *gorm.DB, user *models.User, teamID uint32) error {
	if user.TeamID == teamID {
		return nil
	}
	if err := db.Model(user).Update("team_id", teamID).Error; err != nil {
		return err
	}
	user.TeamID = teamID
	return nil
}
