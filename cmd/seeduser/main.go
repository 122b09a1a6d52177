// Creates or updates an admin account with its profile.
// Usage: go run ./cmd/seeduser -email admin@example.com -password 'S3cure!pass'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"groceryhub/internal/config"
	"groceryhub/internal/infra"
	"groceryhub/internal/model"
	"groceryhub/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	email := flag.String("email", "admin@groceryhub.local", "admin email")
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	first := flag.String("first-name", "Admin", "first name")
	last := flag.String("last-name", "", "last name")
	flag.Parse()

	if *password == "" {
		log.Fatal().Msg("-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	hash, err := service.HashPassword(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}

	ctx := context.Background()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		err := tx.Where("email = ?", *email).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = model.User{
				Email:        *email,
				Username:     *username,
				FirstName:    *first,
				LastName:     *last,
				PasswordHash: hash,
				Role:         model.RoleAdmin,
				IsActive:     true,
				AdminProfile: &model.AdminProfile{},
			}
			return tx.Create(&user).Error
		case err != nil:
			return err
		}

		if user.Role != model.RoleAdmin {
			return fmt.Errorf("%s exists with role %q; roles are fixed at creation", *email, user.Role)
		}
		if err := tx.Model(&user).Updates(map[string]any{
			"username":      *username,
			"first_name":    *first,
			"last_name":     *last,
			"password_hash": hash,
			"is_active":     true,
		}).Error; err != nil {
			return err
		}
		// Older rows may predate the profile table.
		var count int64
		if err := tx.Model(&model.AdminProfile{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return tx.Create(&model.AdminProfile{UserID: user.ID}).Error
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	fmt.Printf("admin %q created/updated\n", *email)
}
