package services

import (
	"errors"
	"strings"
	"testing"

	"bookclub/internal/models"
)

func TestFollowIdempotent(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")
	grace := mustSignup(t, "grace", "grace@example.com")

	if err := Follow(ada.ID, grace.ID); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	// Re-following is a no-op, not an error
	if err := Follow(ada.ID, grace.ID); err != nil {
		t.Fatalf("Duplicate follow should be a no-op, got %v", err)
	}

	if got := countRows(t, &models.Follow{}, "follower_id = ? AND followee_id = ?", ada.ID, grace.ID); got != 1 {
		t.Errorf("Expected exactly 1 follow edge, got %d", got)
	}
}

func TestFollowRejectsSelfAndMissing(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")

	if err := Follow(ada.ID, ada.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for self-follow, got %v", err)
	}
	if err := Follow(ada.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing followee, got %v", err)
	}
}

func TestUnfollowAbsentIsNoop(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")
	grace := mustSignup(t, "grace", "grace@example.com")

	if err := Unfollow(ada.ID, grace.ID); err != nil {
		t.Errorf("Unfollowing an absent edge should be a no-op, got %v", err)
	}
}

func TestLikeUnlike(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")
	grace := mustSignup(t, "grace", "grace@example.com")

	msg, err := PostMessage(grace.ID, "Thoughts on Snow Crash?")
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}

	if err := LikeMessage(ada.ID, msg.ID); err != nil {
		t.Fatalf("LikeMessage: %v", err)
	}
	if err := LikeMessage(ada.ID, msg.ID); err != nil {
		t.Fatalf("Duplicate like should be a no-op, got %v", err)
	}
	if got := countRows(t, &models.Like{}, "user_id = ? AND message_id = ?", ada.ID, msg.ID); got != 1 {
		t.Errorf("Expected exactly 1 like edge, got %d", got)
	}

	if err := LikeMessage(ada.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing message, got %v", err)
	}

	if err := UnlikeMessage(ada.ID, msg.ID); err != nil {
		t.Fatalf("UnlikeMessage: %v", err)
	}
	if err := UnlikeMessage(ada.ID, msg.ID); err != nil {
		t.Errorf("Unliking an absent edge should be a no-op, got %v", err)
	}
	if got := countRows(t, &models.Like{}, "user_id = ?", ada.ID); got != 0 {
		t.Errorf("Expected 0 like edges after unlike, got %d", got)
	}
}

func TestPostMessageValidation(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")

	if _, err := PostMessage(ada.ID, "   "); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for blank text, got %v", err)
	}
	if _, err := PostMessage(ada.ID, strings.Repeat("x", 141)); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for oversized text, got %v", err)
	}

	msg, err := PostMessage(ada.ID, "A fine read")
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if msg.CreatedAt.IsZero() {
		t.Error("Expected a server-assigned timestamp")
	}
}

func TestDeleteMessageOwnership(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")
	grace := mustSignup(t, "grace", "grace@example.com")

	msg, err := PostMessage(ada.ID, "Mine to delete")
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if err := LikeMessage(grace.ID, msg.ID); err != nil {
		t.Fatalf("LikeMessage: %v", err)
	}

	if err := DeleteMessage(grace.ID, msg.ID); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized for non-author, got %v", err)
	}
	if got := countRows(t, &models.Message{}, "id = ?", msg.ID); got != 1 {
		t.Error("Message deleted by non-author")
	}

	if err := DeleteMessage(ada.ID, msg.ID); err != nil {
		t.Fatalf("DeleteMessage: %v", err)
	}
	if got := countRows(t, &models.Message{}, "id = ?", msg.ID); got != 0 {
		t.Error("Message not deleted")
	}
	if got := countRows(t, &models.Like{}, "message_id = ?", msg.ID); got != 0 {
		t.Error("Likes on a deleted message left orphaned")
	}

	if err := DeleteMessage(ada.ID, msg.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing message, got %v", err)
	}
}

func TestTimelineAndListings(t *testing.T) {
	setupTestDB(t)

	ada := mustSignup(t, "ada", "ada@example.com")
	grace := mustSignup(t, "grace", "grace@example.com")
	alan := mustSignup(t, "alan", "alan@example.com")

	adaMsg, _ := PostMessage(ada.ID, "From ada")
	graceMsg, _ := PostMessage(grace.ID, "From grace")
	alanMsg, _ := PostMessage(alan.ID, "From alan")

	if err := Follow(ada.ID, grace.ID); err != nil {
		t.Fatalf("Follow: %v", err)
	}

	timeline, err := Timeline(ada.ID)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	seen := make(map[uint]bool)
	for _, m := range timeline {
		seen[m.ID] = true
	}
	if !seen[adaMsg.ID] || !seen[graceMsg.ID] {
		t.Error("Timeline missing own or followed messages")
	}
	if seen[alanMsg.ID] {
		t.Error("Timeline includes messages from unfollowed users")
	}

	following, err := Following(ada.ID)
	if err != nil || len(following) != 1 || following[0].ID != grace.ID {
		t.Errorf("Following = %v, %v; want just grace", following, err)
	}
	followers, err := Followers(grace.ID)
	if err != nil || len(followers) != 1 || followers[0].ID != ada.ID {
		t.Errorf("Followers = %v, %v; want just ada", followers, err)
	}

	if err := LikeMessage(ada.ID, graceMsg.ID); err != nil {
		t.Fatalf("LikeMessage: %v", err)
	}
	liked, err := LikedMessages(ada.ID)
	if err != nil || len(liked) != 1 || liked[0].ID != graceMsg.ID {
		t.Errorf("LikedMessages = %v, %v; want just grace's message", liked, err)
	}
	if ids := LikedMessageIDs(ada.ID); !ids[graceMsg.ID] {
		t.Error("LikedMessageIDs missing liked message")
	}
}
