package services

import (
	"testing"

	"github.com/antonyth18/enigma-webgame/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Hint{},
	))
	return db
}

func createTeam(t *testing.T, db *gorm.DB, name, code string) *models.Team {
	t.Helper()
	team := models.Team{Name: name, Code: code}
	require.NoError(t, db.Create(&team).Error)
	return &team
}

func seedUser(t *testing.T, db *gorm.DB, email string, teamID uint32) *models.User {
	t.Helper()
	user := models.User{
		Username: email,
		Email:    email,
		Password: "password123",
		TeamID:   teamID,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func reloadUser(t *testing.T, db *gorm.DB, id uint32) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	return &user
}

func createQuestion(t *testing.T, db *gorm.DB, title string, points int, answer string, world models.World) *models.Question {
	t.Helper()
	q := models.Question{
		Title:         title,
		Description:   title,
		Points:        points,
		CorrectAnswer: answer,
		World:         world,
	}
	require.NoError(t, db.Create(&q).Error)
	return &q
}
