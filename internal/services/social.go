package services

import (
	"fmt"
	"strings"

	"bookclub/internal/db"
	"bookclub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	maxMessageLen      = 140
	recentMessageLimit = 100
)

// Follow adds a follow edge from follower to followee. Re-following is an
// idempotent no-op thanks to the unique pair index.
func Follow(followerID, followeeID uint) error {
	if followerID == followeeID {
		return fmt.Errorf("%w: cannot follow yourself", ErrValidation)
	}

	var followee models.User
	if err := db.DB.First(&followee, followeeID).Error; err != nil {
		return ErrNotFound
	}

	follow := models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	return db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
}

// Unfollow removes the follow edge if present; removing an absent edge is a
// no-op.
func Unfollow(followerID, followeeID uint) error {
	return db.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

// LikeMessage adds a like edge; duplicate likes are a no-op.
func LikeMessage(userID, messageID uint) error {
	var message models.Message
	if err := db.DB.First(&message, messageID).Error; err != nil {
		return ErrNotFound
	}

	like := models.Like{
		UserID:    userID,
		MessageID: messageID,
	}
	return db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
}

// UnlikeMessage removes the like edge if present; absent edges are a no-op.
func UnlikeMessage(userID, messageID uint) error {
	return db.DB.
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error
}

// PostMessage creates a message for the user with a server-assigned
// timestamp.
func PostMessage(userID uint, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text is required", ErrValidation)
	}
	if len(text) > maxMessageLen {
		return nil, fmt.Errorf("%w: message must be at most %d characters", ErrValidation, maxMessageLen)
	}

	message := models.Message{
		UserID: userID,
		Text:   text,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// DeleteMessage removes a message and its likes. Only the author may delete
// their own message.
func DeleteMessage(userID, messageID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var message models.Message
		if err := tx.First(&message, messageID).Error; err != nil {
			return ErrNotFound
		}
		if message.UserID != userID {
			return ErrUnauthorized
		}

		if err := tx.Where("message_id = ?", messageID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&message).Error
	})
}

// IsFollowing reports whether follower follows followee.
func IsFollowing(followerID, followeeID uint) bool {
	var count int64
	db.DB.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count)
	return count > 0
}

// Following returns the users the given user follows.
func Following(userID uint) ([]models.User, error) {
	var users []models.User
	err := db.DB.
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	return users, err
}

// Followers returns the users following the given user.
func Followers(userID uint) ([]models.User, error) {
	var users []models.User
	err := db.DB.
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	return users, err
}

// LikedMessages returns the messages a user has liked, newest first.
func LikedMessages(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := db.DB.Preload("User").
		Joins("JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", userID).
		Order("messages.created_at DESC").
		Find(&messages).Error
	return messages, err
}

// LikedMessageIDs returns the ids of messages the user has liked, used to
// render like/unlike state.
func LikedMessageIDs(userID uint) map[uint]bool {
	var ids []uint
	db.DB.Model(&models.Like{}).Where("user_id = ?", userID).Pluck("message_id", &ids)

	liked := make(map[uint]bool, len(ids))
	for _, id := range ids {
		liked[id] = true
	}
	return liked
}

// RecentMessages returns a user's own messages, newest first.
func RecentMessages(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := db.DB.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(recentMessageLimit).
		Find(&messages).Error
	return messages, err
}

// Timeline returns the recent messages of the user and everyone they follow,
// newest first.
func Timeline(userID uint) ([]models.Message, error) {
	authorIDs := []uint{userID}

	var followeeIDs []uint
	db.DB.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("followee_id", &followeeIDs)
	authorIDs = append(authorIDs, followeeIDs...)

	var messages []models.Message
	err := db.DB.Preload("User").
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Limit(recentMessageLimit).
		Find(&messages).Error
	return messages, err
}
