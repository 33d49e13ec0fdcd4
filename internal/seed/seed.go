// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"math/rand"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// seedPassword is the login password of every seeded account.
const seedPassword = "ripple-dev-pw"

// Run populates the database with fake accounts, posts and a follow
// mesh. It also guarantees a bootstrap admin account exists (creating
// it is idempotent: an existing admin is left untouched).
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("clean: %w", err)
		}
	}

	if err := ensureAdmin(db); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("create users: %w", err)
	}

	if err := createPosts(db, users, opts.NumPosts); err != nil {
		return fmt.Errorf("create posts: %w", err)
	}

	if err := createFollowMesh(db, users); err != nil {
		return fmt.Errorf("create follow mesh: %w", err)
	}

	return nil
}

func clean(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE follows, posts, users RESTART IDENTITY CASCADE").Error
}

// ensureAdmin creates the bootstrap admin account if it is missing.
func ensureAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Username: "admin",
		Email:    "admin@ripple.local",
		Password: string(hashed),
		IsAdmin:  true,
	}).Error
}

func createUsers(db *gorm.DB, n int) ([]*models.User, error) {
	// One bcrypt hash shared by all seeded users keeps seeding fast.
	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: string(hashed),
		}
		if err := db.Create(user).Error; err != nil {
			// Collisions from gofakeit are rare; skip and continue.
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []*models.User, n int) error {
	if len(users) == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		author := users[rand.Intn(len(users))]
		post := &models.Post{
			UserID:  author.ID,
			Content: gofakeit.Sentence(gofakeit.Number(3, 20)),
		}
		if err := db.Create(post).Error; err != nil {
			return err
		}
	}
	return nil
}

// createFollowMesh gives every user a handful of random followees,
// exercising the same ON CONFLICT path the API uses.
func createFollowMesh(db *gorm.DB, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	for _, u := range users {
		edges := gofakeit.Number(1, 5)
		for i := 0; i < edges; i++ {
			target := users[rand.Intn(len(users))]
			if target.ID == u.ID {
				continue
			}
			err := db.Exec(
				`INSERT INTO follows (follower_id, followee_id, created_at)
				 VALUES (?, ?, NOW())
				 ON CONFLICT (follower_id, followee_id) DO NOTHING`,
				u.ID, target.ID,
			).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}
