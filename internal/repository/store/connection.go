package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mvdberg/huisportaal/internal/domain"
	"github.com/mvdberg/huisportaal/internal/repository"
)

// Open connects to the configured backend and migrates the schema.
// TranslateError is on so unique violations come back as
// gorm.ErrDuplicatedKey regardless of driver.
func Open(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(dsn), cfg)
	case "postgres":
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&domain.Account{},
		&domain.Session{},
		&domain.Contact{},
		&domain.FilmEntry{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Account: NewAccountRepository(db),
		Session: NewSessionRepository(db),
		Contact: NewContactRepository(db),
		Film:    NewFilmRepository(db),
	}
}
