package redis

import (
	"fmt"

	"github.com/famousguessr/famousguessr-go/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "fguessr"

// Key generation functions for each entity type

// userKey returns the Redis key for a User document
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// usersIndexKey returns the Redis key for the SET of all user ids
func usersIndexKey() string {
	return fmt.Sprintf("%s:idx:users", keyPrefix)
}

// celebrityKey returns the Redis key for a Celebrity document
func celebrityKey(id model.CelebrityID) string {
	return fmt.Sprintf("%s:celebrity:%s", keyPrefix, id)
}

// celebritiesIndexKey returns the Redis key for the SET of all celebrity ids
func celebritiesIndexKey() string {
	return fmt.Sprintf("%s:idx:celebrities", keyPrefix)
}

// celebrityGeoKey returns the Redis key for the celebrity GEO index
func celebrityGeoKey() string {
	return fmt.Sprintf("%s:geo:celebrities", keyPrefix)
}

// scoreKey returns the Redis key for a GameScore document
func scoreKey(id model.ScoreID) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, id)
}

// userScoresIndexKey returns the Redis key for the ZSET of a user's score
// ids, scored by creation time in unix milliseconds
func userScoresIndexKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:user_scores:%s", keyPrefix, userID)
}

// leaderboardKey returns the Redis key for the ZSET of score ids scored by
// points. An empty difficulty addresses the all-difficulties board.
func leaderboardKey(difficulty model.Difficulty) string {
	if difficulty == "" {
		return fmt.Sprintf("%s:idx:leaderboard", keyPrefix)
	}
	return fmt.Sprintf("%s:idx:leaderboard:%s", keyPrefix, difficulty)
}

// requestKey returns the Redis key for a PremiumRequest document
func requestKey(id model.RequestID) string {
	return fmt.Sprintf("%s:request:%s", keyPrefix, id)
}

// requestsIndexKey returns the Redis key for the ZSET of all request ids,
// scored by creation time
func requestsIndexKey() string {
	return fmt.Sprintf("%s:idx:requests", keyPrefix)
}

// userRequestsIndexKey returns the Redis key for the ZSET of a user's
// request ids, scored by creation time
func userRequestsIndexKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:user_requests:%s", keyPrefix, userID)
}

// pendingRequestKey returns the Redis key holding a user's pending request
// id, present only while a request is pending
func pendingRequestKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:pending_request:%s", keyPrefix, userID)
}
