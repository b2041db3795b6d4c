package db

import (
	"github.com/crewbase-dev/crewbase/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and enables error translation so that
// unique-constraint violations surface as gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
}

// UserServiceModels is the schema owned by the user/team service.
func UserServiceModels() []interface{} {
	return []interface{}{
		&models.Company{},
		&models.User{},
		&models.Structure{},
		&models.StructureMember{},
		&models.News{},
	}
}

// TaskServiceModels is the schema owned by the task/motivation service.
func TaskServiceModels() []interface{} {
	return []interface{}{
		&models.Task{},
		&models.Motivation{},
		&models.Meeting{},
		&models.Participant{},
	}
}

func Migrate(database *gorm.DB, modelSet []interface{}) error {
	migrator := database.Migrator()

	for _, model := range modelSet {
		if !migrator.HasTable(model) {
			if err := database.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
