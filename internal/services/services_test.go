package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/crewbase-dev/crewbase/internal/models"
)

func newTestDB(t *testing.T, modelSet ...interface{}) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(modelSet...))

	return database
}

func userServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	return newTestDB(t, &models.Company{}, &models.User{}, &models.Structure{}, &models.StructureMember{}, &models.News{})
}

func taskServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	return newTestDB(t, &models.Task{}, &models.Motivation{}, &models.Meeting{}, &models.Participant{})
}

func seedTask(t *testing.T, database *gorm.DB, title string) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:      title,
		Content:    "content",
		AssignedBy: 1,
		AssignedTo: 2,
		Deadline:   time.Now().Add(72 * time.Hour),
		Status:     models.TaskCreated,
	}
	require.NoError(t, database.Create(task).Error)
	return task
}
