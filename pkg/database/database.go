package database

import (
	"fmt"
	"log"
	"skillpath_backend/internal/config"
	"skillpath_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Roadmap{},
		&model.Section{},
		&model.Resource{},
		&model.Quiz{},
		&model.Question{},
		&model.QuestionChoice{},
		&model.QuizAttempt{},
		&model.UserProgress{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.Project{},
		&model.ProjectInstance{},
		&model.SavedRoadmap{},
		&model.ChatSession{},
		&model.ChatMessage{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认成就徽章
	var count int64
	db.Model(&model.Achievement{}).Count(&count)
	if count == 0 {
		defaultAchievements := []model.Achievement{
			{Code: "first_quiz", Name: "初试锋芒", Description: "完成第一次测验", Icon: "medal"},
			{Code: "first_pass", Name: "旗开得胜", Description: "第一次通过测验", Icon: "trophy"},
			{Code: "perfect_score", Name: "满分答卷", Description: "测验获得100分", Icon: "star"},
			{Code: "roadmap_complete", Name: "学有所成", Description: "完成一条完整路线", Icon: "flag"},
		}
		for _, a := range defaultAchievements {
			db.Create(&a)
		}
	}

	return db, nil
}
