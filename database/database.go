package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"contenthub-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Node{},
		&models.Rating{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Node rehydration always goes through the parent link.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_nodes_parent ON nodes(parent_id, parent_type)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for nodes: %v\n", err)
	}

	// Rating replacement looks up the (user, post) pair on every create.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_ratings_user_post ON ratings(user_id, post_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for ratings: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_title ON posts(title)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for posts title: %v\n", err)
	}

	return nil
}

// SeedData can be used to populate the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	testUsers := []models.User{
		{
			ID:       "user-0000-1",
			Name:     "John Doe",
			Email:    "john@example.com",
			Password: "$2a$10$dummy", // This should be properly hashed in real scenarios
			Role:     "user",
		},
		{
			ID:       "user-0000-2",
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Password: "$2a$10$dummy",
			Role:     models.RoleAdmin,
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", user.Email, err)
		}
	}

	testPosts := []models.Post{
		{
			ID:     "post-0000-1",
			UserID: "user-0000-1",
			Title:  "Getting started",
			Source: "https://example.com/getting-started",
			Tags:   models.StringSlice{"intro", "guide"},
			Status: models.StatusPublished,
		},
		{
			ID:     "post-0000-2",
			UserID: "user-0000-2",
			Title:  "Release notes",
			Tags:   models.StringSlice{"changelog"},
			Status: models.StatusDraft,
		},
	}

	for _, post := range testPosts {
		if err := db.Create(&post).Error; err != nil {
			fmt.Printf("Warning: Could not create test post %s: %v\n", post.Title, err)
		}
	}

	fmt.Println("Database seeded with test data")
	return nil
}
