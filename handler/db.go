package handler

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio/model"
)

// OpenDB opens the sqlite store and migrates the schema.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.SkillCard{}, &model.Experience{}, &model.Portfolio{}); err != nil {
		return nil, err
	}

	var admins int64
	db.Model(&model.User{}).Count(&admins)
	if admins == 0 {
		log.Println("No admin user exists. Create one manually or through a secure setup process.")
	}

	return db, nil
}
