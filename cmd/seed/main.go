package main

import (
	"log"
	"strings"

	"groupchat-be/internal/config"
	"groupchat-be/internal/model"
	"groupchat-be/pkg/database"
)

// Seeds the default group with a starter topic set. Safe to run repeatedly.
func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var group model.Group
	result := db.Where("name = ?", cfg.Chat.DefaultGroupName).First(&group)
	if result.Error != nil {
		group = model.Group{
			Name:    cfg.Chat.DefaultGroupName,
			OwnerId: "system",
		}
		if err := db.Create(&group).Error; err != nil {
			log.Fatal("Error: Failed to create default group:", err)
		}
		log.Printf("Created default group %q (%s)", group.Name, group.Id)
	} else {
		log.Printf("Default group %q already exists (%s)", group.Name, group.Id)
	}

	starterTopics := []struct {
		Name  string
		Color string
	}{
		{"general", "#6B7280"},
		{"random", "#F59E0B"},
		{"announcements", "#EF4444"},
	}

	for _, t := range starterTopics {
		topic := model.Topic{
			Name:    t.Name,
			NameKey: strings.ToLower(t.Name),
			Color:   t.Color,
			GroupId: group.Id,
		}
		if err := db.Create(&topic).Error; err != nil {
			log.Printf("Topic %q already present, skipping", t.Name)
			continue
		}
		log.Printf("Created topic %q (%s)", topic.Name, topic.Id)
	}

	log.Println("Seeding completed")
}
