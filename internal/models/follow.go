package models

import (
	"time"
)

// Follow is a directed edge between two users. FollowerID follows FolloweeID;
// the pair is unique so re-following is a no-op at the storage layer.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followee" json:"follower_id"`
	Follower   User      `gorm:"foreignKey:FollowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"follower"`
	FolloweeID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followee" json:"followee_id"`
	Followee   User      `gorm:"foreignKey:FolloweeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"followee"`
	CreatedAt  time.Time `json:"created_at"`
}
