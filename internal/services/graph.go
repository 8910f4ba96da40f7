// Package services holds the core components between the endpoint
// adapters and the stores: graph operations over the follow/like edges,
// the post/comment lifecycle, and the feed assembler. No component
// outside this package mutates edges.
package services

import (
	"context"

	"github.com/pixgram/backend/internal/apperrors"
	"github.com/pixgram/backend/internal/models"
	"github.com/pixgram/backend/internal/repositories"
	"go.uber.org/zap"
)

const suggestionsLimit = 3

// GraphService implements the follow/like toggles and the read aggregates
// over the social graph.
type GraphService struct {
	people        repositories.PersonRepository
	follows       repositories.FollowRepository
	likes         repositories.LikeRepository
	posts         repositories.PostRepository
	notifications repositories.NotificationRepository
	logger        *zap.Logger
}

// NewGraphService creates a new GraphService
func NewGraphService(
	people repositories.PersonRepository,
	follows repositories.FollowRepository,
	likes repositories.LikeRepository,
	posts repositories.PostRepository,
	notifications repositories.NotificationRepository,
	logger *zap.Logger,
) *GraphService {
	return &GraphService{
		people:        people,
		follows:       follows,
		likes:         likes,
		posts:         posts,
		notifications: notifications,
		logger:        logger,
	}
}

// ToggleFollow flips the actor→target follow edge and returns true when
// the actor follows the target after the call. Following yourself is
// rejected before any state changes.
func (s *GraphService) ToggleFollow(actorUsername, targetUsername string) (bool, error) {
	if actorUsername == targetUsername {
		return false, apperrors.ErrSelfFollow
	}

	actor, err := s.people.GetPersonByUsername(actorUsername)
	if err != nil {
		return false, err
	}
	target, err := s.people.GetPersonByUsername(targetUsername)
	if err != nil {
		return false, err
	}

	following, err := s.follows.Toggle(actor.ID, target.ID)
	if err != nil {
		return false, err
	}

	if following {
		s.notify(&models.Notification{
			Type:        "follow",
			ActorID:     actor.ID,
			RecipientID: target.ID,
			Message:     actor.Username + " started following you",
		})
	}
	return following, nil
}

// ToggleLike flips the actor's like on the post and returns true when the
// post is liked after the call. Liking your own post is allowed.
func (s *GraphService) ToggleLike(ctx context.Context, actorUsername, postID string) (bool, error) {
	actor, err := s.people.GetPersonByUsername(actorUsername)
	if err != nil {
		return false, err
	}
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return false, err
	}

	liked, err := s.likes.Toggle(postID, actor.ID)
	if err != nil {
		return false, err
	}

	if liked && post.Uploader != actor.Username {
		if uploader, err := s.people.GetPersonByUsername(post.Uploader); err == nil {
			s.notify(&models.Notification{
				Type:        "like",
				ActorID:     actor.ID,
				RecipientID: uploader.ID,
				PostID:      postID,
				Message:     actor.Username + " liked your post",
			})
		}
	}
	return liked, nil
}

// IsFollowing reports whether follower currently follows followee.
func (s *GraphService) IsFollowing(followerUsername, followeeUsername string) (bool, error) {
	follower, err := s.people.GetPersonByUsername(followerUsername)
	if err != nil {
		return false, err
	}
	followee, err := s.people.GetPersonByUsername(followeeUsername)
	if err != nil {
		return false, err
	}
	return s.follows.IsFollowing(follower.ID, followee.ID)
}

// Stats returns the profile counters, joined at read time.
func (s *GraphService) Stats(ctx context.Context, username string) (*models.PersonStats, error) {
	person, err := s.people.GetPersonByUsername(username)
	if err != nil {
		return nil, err
	}

	followers, err := s.follows.GetFollowersCount(person.ID)
	if err != nil {
		return nil, err
	}
	followings, err := s.follows.GetFollowingCount(person.ID)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.GetPostsCountByUploader(ctx, person.Username)
	if err != nil {
		return nil, err
	}

	return &models.PersonStats{
		Followers:  followers,
		Followings: followings,
		Posts:      posts,
	}, nil
}

// Suggestions returns a random sample of persons the requester does not
// follow yet, excluding the requester. Selection order is random; the
// exclusions are not.
func (s *GraphService) Suggestions(username string) ([]models.PersonSuggestion, error) {
	person, err := s.people.GetPersonByUsername(username)
	if err != nil {
		return nil, err
	}

	people, err := s.people.Suggestions(person.ID, suggestionsLimit)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.PersonSuggestion, len(people))
	for i, p := range people {
		suggestions[i] = models.PersonSuggestion{Username: p.Username, Photo: p.Photo}
	}
	return suggestions, nil
}

// notify records a notification best-effort; a failed write never fails
// the graph operation that triggered it.
func (s *GraphService) notify(notification *models.Notification) {
	if err := s.notifications.CreateNotification(notification); err != nil {
		s.logger.Warn("failed to create notification",
			zap.String("type", notification.Type),
			zap.Error(err))
	}
}
