package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFollowCounterUpdates_LockOrderIsDeterministic(t *testing.T) {
	// Mutual concurrent follows must lock the two user rows in the
	// same order regardless of who is follower and who is followee.
	forward := followCounterUpdates("user-a", "user-b")
	reverse := followCounterUpdates("user-b", "user-a")

	assert.Equal(t, forward[0].userID, reverse[0].userID)
	assert.Equal(t, forward[1].userID, reverse[1].userID)

	// Each user still gets the column matching their role.
	assert.Equal(t, "following_count", forward[0].column)
	assert.Equal(t, "followers_count", forward[1].column)
	assert.Equal(t, "followers_count", reverse[0].column)
	assert.Equal(t, "following_count", reverse[1].column)
}
