package services

import (
	"context"

	"github.com/pixgram/backend/internal/apperrors"
	"github.com/pixgram/backend/internal/models"
	"github.com/pixgram/backend/internal/repositories"
	"go.uber.org/zap"
)

// ContentService owns the post and comment lifecycle: creation by the
// authenticated person, mutation and deletion only by the owner, and the
// cascades a post deletion entails.
type ContentService struct {
	people        repositories.PersonRepository
	posts         repositories.PostRepository
	comments      repositories.CommentRepository
	likes         repositories.LikeRepository
	notifications repositories.NotificationRepository
	logger        *zap.Logger
}

// NewContentService creates a new ContentService
func NewContentService(
	people repositories.PersonRepository,
	posts repositories.PostRepository,
	comments repositories.CommentRepository,
	likes repositories.LikeRepository,
	notifications repositories.NotificationRepository,
	logger *zap.Logger,
) *ContentService {
	return &ContentService{
		people:        people,
		posts:         posts,
		comments:      comments,
		likes:         likes,
		notifications: notifications,
		logger:        logger,
	}
}

// CreatePost stores a new post owned by the uploader.
func (s *ContentService) CreatePost(ctx context.Context, uploaderUsername string, req models.CreatePostRequest) (*models.Post, error) {
	uploader, err := s.people.GetPersonByUsername(uploaderUsername)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Uploader:    uploader.Username,
		Description: req.Description,
		Hashtags:    req.Hashtags,
		Image:       req.Image,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost replaces the post's description, hashtags and image. Only the
// uploader may edit.
func (s *ContentService) EditPost(ctx context.Context, actorUsername, postID string, req models.UpdatePostRequest) error {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.Uploader != actorUsername {
		return apperrors.ErrForbidden
	}

	post.Description = req.Description
	post.Hashtags = req.Hashtags
	post.Image = req.Image
	return s.posts.UpdatePost(ctx, post)
}

// DeletePost removes the post together with every like edge and comment
// referencing it. Only the uploader may delete.
func (s *ContentService) DeletePost(ctx context.Context, actorUsername, postID string) error {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.Uploader != actorUsername {
		return apperrors.ErrForbidden
	}

	if err := s.posts.DeletePost(ctx, postID); err != nil {
		return err
	}
	if err := s.likes.DeleteByPostID(postID); err != nil {
		s.logger.Error("failed to cascade like deletion", zap.String("post_id", postID), zap.Error(err))
		return err
	}
	if err := s.comments.DeleteByPostID(postID); err != nil {
		s.logger.Error("failed to cascade comment deletion", zap.String("post_id", postID), zap.Error(err))
		return err
	}
	return nil
}

// CreateComment adds a comment by the author on an existing post.
func (s *ContentService) CreateComment(ctx context.Context, authorUsername, postID, content string) (*models.Comment, error) {
	author, err := s.people.GetPersonByUsername(authorUsername)
	if err != nil {
		return nil, err
	}
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: author.ID,
		Content:  content,
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, err
	}

	if post.Uploader != author.Username {
		if uploader, err := s.people.GetPersonByUsername(post.Uploader); err == nil {
			notification := &models.Notification{
				Type:        "comment",
				ActorID:     author.ID,
				RecipientID: uploader.ID,
				PostID:      postID,
				Message:     author.Username + " commented on your post",
			}
			if err := s.notifications.CreateNotification(notification); err != nil {
				s.logger.Warn("failed to create notification", zap.Error(err))
			}
		}
	}
	return comment, nil
}

// EditComment updates the comment text. Only the author may edit.
func (s *ContentService) EditComment(actorUsername string, commentID uint, content string) error {
	comment, err := s.ownedComment(actorUsername, commentID)
	if err != nil {
		return err
	}
	comment.Content = content
	return s.comments.UpdateComment(comment)
}

// DeleteComment removes the comment. Only the author may delete.
func (s *ContentService) DeleteComment(actorUsername string, commentID uint) error {
	comment, err := s.ownedComment(actorUsername, commentID)
	if err != nil {
		return err
	}
	return s.comments.DeleteComment(comment.ID)
}

func (s *ContentService) ownedComment(actorUsername string, commentID uint) (*models.Comment, error) {
	comment, err := s.comments.GetCommentByID(commentID)
	if err != nil {
		return nil, err
	}
	actor, err := s.people.GetPersonByUsername(actorUsername)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != actor.ID {
		return nil, apperrors.ErrForbidden
	}
	return comment, nil
}
