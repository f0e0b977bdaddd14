package services

import (
	"fmt"
	"strings"

	"bookclub/internal/db"
	"bookclub/internal/models"
	"bookclub/internal/utils"

	"gorm.io/gorm"
)

const minPasswordLen = 6

// ProfileUpdate carries the editable profile fields. Empty strings leave the
// current value untouched, matching the edit form semantics.
type ProfileUpdate struct {
	Username string
	Email    string
	Bio      string
	Location string
}

// Signup creates a new user with a bcrypt-hashed password. Username and email
// collisions return ErrDuplicateIdentity; the unique indexes back this up for
// concurrent signups.
func Signup(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" {
		return nil, fmt.Errorf("%w: username and email are required", ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	var count int64
	db.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count)
	if count > 0 {
		return nil, ErrDuplicateIdentity
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Avatar:   utils.GetRandomEmoji(),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		// Lost a race against a concurrent signup with the same identity
		return nil, ErrDuplicateIdentity
	}

	return &user, nil
}

// Authenticate looks up the user by username and verifies the password
// against the stored hash. A failed match is a normal negative result, not
// an error.
func Authenticate(username, password string) (*models.User, bool) {
	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, false
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, false
	}

	return &user, true
}

// UpdateProfile re-authenticates with the supplied password, re-checks
// username/email uniqueness, then applies the changed fields.
func UpdateProfile(userID uint, password string, input ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	updates := make(map[string]interface{})

	if input.Username != "" && input.Username != user.Username {
		var count int64
		db.DB.Model(&models.User{}).Where("username = ? AND id != ?", input.Username, user.ID).Count(&count)
		if count > 0 {
			return nil, ErrDuplicateIdentity
		}
		updates["username"] = input.Username
	}

	if input.Email != "" && input.Email != user.Email {
		var count int64
		db.DB.Model(&models.User{}).Where("email = ? AND id != ?", input.Email, user.ID).Count(&count)
		if count > 0 {
			return nil, ErrDuplicateIdentity
		}
		updates["email"] = input.Email
	}

	if input.Bio != user.Bio {
		updates["bio"] = input.Bio
	}
	if input.Location != user.Location {
		updates["location"] = input.Location
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
			return nil, ErrDuplicateIdentity
		}
	}

	return &user, nil
}

// DeleteAccount removes the user and every row that references them: their
// messages (and likes on those messages), their likes, both directions of
// their follow edges, and their reads. All in one transaction so no orphan
// edges remain.
func DeleteAccount(userID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return ErrNotFound
		}

		var messageIDs []uint
		if err := tx.Model(&models.Message{}).Where("user_id = ?", userID).Pluck("id", &messageIDs).Error; err != nil {
			return err
		}
		if len(messageIDs) > 0 {
			if err := tx.Where("message_id IN ?", messageIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followee_id = ?", userID, userID).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Read{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Message{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}
