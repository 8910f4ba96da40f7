package services

import (
	"context"
	"testing"

	"github.com/pixgram/backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFollowCreatesThenRemovesEdge(t *testing.T) {
	f := newFixture()
	f.addPerson("alice")
	f.addPerson("bob")

	following, err := f.graph.ToggleFollow("alice", "bob")
	require.NoError(t, err)
	assert.True(t, following)

	isFollowing, err := f.graph.IsFollowing("alice", "bob")
	require.NoError(t, err)
	assert.True(t, isFollowing)

	// Second identical call reverses the first.
	following, err = f.graph.ToggleFollow("alice", "bob")
	require.NoError(t, err)
	assert.False(t, following)

	isFollowing, err = f.graph.IsFollowing("alice", "bob")
	require.NoError(t, err)
	assert.False(t, isFollowing)

	stats, err := f.graph.Stats(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Followers)
}

func TestFollowIsDirected(t *testing.T) {
	f := newFixture()
	f.addPerson("alice")
	f.addPerson("bob")

	_, err := f.graph.ToggleFollow("alice", "bob")
	require.NoError(t, err)

	reverse, err := f.graph.IsFollowing("bob", "alice")
	require.NoError(t, err)
	assert.False(t, reverse, "a follow edge must not imply its reverse")
}

func TestSelfFollowRejectedWithoutMutation(t *testing.T) {
	f := newFixture()
	f.addPerson("alice")

	_, err := f.graph.ToggleFollow("alice", "alice")
	assert.ErrorIs(t, err, apperrors.ErrSelfFollow)

	stats, err := f.graph.Stats(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Followers)
	assert.Equal(t, int64(0), stats.Followings)
}

func TestFollowUnknownTarget(t *testing.T) {
	f := newFixture()
	f.addPerson("alice")

	_, err := f.graph.ToggleFollow("alice", "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestToggleLikeParity(t *testing.T) {
	f := newFixture()
	f.addPerson("alice")
	f.addPerson("bob")
	post := f.addPost("bob", "x.jpg")
	ctx := context.Background()

	before, err := f.likes.GetLikesCount(post.ID.Hex())
	require.NoError(t, err)

	// Odd number of toggles increments the count by exactly one.
	for i := 0; i < 3; i++ {
		_, err := f.graph.ToggleLike(ctx, "alice", post.ID.Hex())
		require.NoError(t, err)
	}
	count, err := f.likes.GetLikesCount(post.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, before+1, count)

	// An even total leaves it unchanged.
	_, err = f.graph.ToggleLike(ctx, "alice", post.ID.Hex())
	require.NoError(t, err)
	count, err = f.likes.GetLikesCount(post.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, before, count)
}

func TestSelfLikeAllowed(t *testing.T) {
	f := newFixture()
	f.addPerson("alice")
	post := f.addPost("alice", "mine.jpg")

	liked, err := f.graph.ToggleLike(context.Background(), "alice", post.ID.Hex())
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeUnknownPost(t *testing.T) {
	f := newFixture()
	f.addPerson("alice")

	_, err := f.graph.ToggleLike(context.Background(), "alice", "652d9fb1a2c3d4e5f6a7b8c9")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStatsCountsJoinedAtReadTime(t *testing.T) {
	f := newFixture()
	f.addPerson("alice")
	f.addPerson("bob")
	f.addPerson("carol")
	f.addPost("bob", "1.jpg")
	f.addPost("bob", "2.jpg")

	_, err := f.graph.ToggleFollow("alice", "bob")
	require.NoError(t, err)
	_, err = f.graph.ToggleFollow("carol", "bob")
	require.NoError(t, err)
	_, err = f.graph.ToggleFollow("bob", "alice")
	require.NoError(t, err)

	stats, err := f.graph.Stats(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Followers)
	assert.Equal(t, int64(1), stats.Followings)
	assert.Equal(t, int64(2), stats.Posts)
}

func TestSuggestionsExcludeSelfAndFollowees(t *testing.T) {
	f := newFixture()
	f.addPerson("alice")
	f.addPerson("bob")
	f.addPerson("carol")
	f.addPerson("dave")

	_, err := f.graph.ToggleFollow("alice", "bob")
	require.NoError(t, err)

	suggestions, err := f.graph.Suggestions("alice")
	require.NoError(t, err)

	usernames := make([]string, len(suggestions))
	for i, s := range suggestions {
		usernames[i] = s.Username
	}
	assert.NotContains(t, usernames, "alice")
	assert.NotContains(t, usernames, "bob")
	assert.LessOrEqual(t, len(suggestions), 3)
}

func TestFollowCreatesNotification(t *testing.T) {
	f := newFixture()
	alice := f.addPerson("alice")
	bob := f.addPerson("bob")

	_, err := f.graph.ToggleFollow("alice", "bob")
	require.NoError(t, err)

	unread, err := f.notifications.GetUnreadCount(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	// Unfollowing does not notify.
	_, err = f.graph.ToggleFollow("alice", "bob")
	require.NoError(t, err)
	unread, err = f.notifications.GetUnreadCount(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	// No one notifies themselves.
	unread, err = f.notifications.GetUnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}
