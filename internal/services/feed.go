package services

import (
	"context"
	"time"

	"github.com/pixgram/backend/internal/models"
	"github.com/pixgram/backend/internal/repositories"
)

// FeedConfig carries the per-view page sizes. The defaults mirror the
// product's current layout; they are policy, not architecture.
type FeedConfig struct {
	PreviewPageSize  int
	CommentsPageSize int
	HomePageSize     int
}

// DefaultFeedConfig returns the stock page sizes.
func DefaultFeedConfig() FeedConfig {
	return FeedConfig{PreviewPageSize: 3, CommentsPageSize: 2, HomePageSize: 1}
}

// PostPreview is the profile-grid projection of a post.
type PostPreview struct {
	ID            string `json:"id"`
	Image         string `json:"image"`
	LikesCount    int64  `json:"likes_count"`
	CommentsCount int64  `json:"comments_count"`
}

// PostDetail is the single-post view with a page of its comments.
type PostDetail struct {
	UploaderPhoto string                   `json:"photo"`
	Hashtags      []string                 `json:"hashtags"`
	Image         string                   `json:"image"`
	Description   string                   `json:"description"`
	PostedAt      time.Time                `json:"posted_at"`
	Comments      Page[models.CommentView] `json:"comments"`
	LikesCount    int64                    `json:"likes_count"`
	Liked         bool                     `json:"liked"`
}

// FeedEntry is one post in the home feed, annotated for the viewer.
type FeedEntry struct {
	ID            string    `json:"id"`
	Uploader      string    `json:"uploader"`
	UploaderPhoto string    `json:"uploader_photo"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	PostedAt      time.Time `json:"posted_at"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
	Liked         bool      `json:"liked"`
}

// FeedService assembles the paginated read views by composing the graph
// aggregates with the post store. All counts are joined at read time; the
// views always agree with the graph operations at the moment of the read.
type FeedService struct {
	people   repositories.PersonRepository
	follows  repositories.FollowRepository
	likes    repositories.LikeRepository
	comments repositories.CommentRepository
	posts    repositories.PostRepository
	config   FeedConfig
}

// NewFeedService creates a new FeedService
func NewFeedService(
	people repositories.PersonRepository,
	follows repositories.FollowRepository,
	likes repositories.LikeRepository,
	comments repositories.CommentRepository,
	posts repositories.PostRepository,
	config FeedConfig,
) *FeedService {
	return &FeedService{
		people:   people,
		follows:  follows,
		likes:    likes,
		comments: comments,
		posts:    posts,
		config:   config,
	}
}

// ProfilePreview returns one newest-first page of the person's own posts
// with live like and comment counts.
func (s *FeedService) ProfilePreview(ctx context.Context, username string, page int) (Page[PostPreview], error) {
	size := s.config.PreviewPageSize
	posts, err := s.posts.GetPostsByUploader(ctx, username, int64(page*size), int64(size))
	if err != nil {
		return Page[PostPreview]{}, err
	}
	total, err := s.posts.GetPostsCountByUploader(ctx, username)
	if err != nil {
		return Page[PostPreview]{}, err
	}

	previews := make([]PostPreview, len(posts))
	for i, post := range posts {
		id := post.ID.Hex()
		likes, err := s.likes.GetLikesCount(id)
		if err != nil {
			return Page[PostPreview]{}, err
		}
		comments, err := s.comments.GetCommentsCount(id)
		if err != nil {
			return Page[PostPreview]{}, err
		}
		previews[i] = PostPreview{
			ID:            id,
			Image:         post.Image,
			LikesCount:    likes,
			CommentsCount: comments,
		}
	}
	return NewPage(previews, page, size, total), nil
}

// PostDetail returns the full view of one post with a page of its
// comments and the viewer's like flag.
func (s *FeedService) PostDetail(ctx context.Context, postID, viewerUsername string, commentsPage int) (*PostDetail, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	uploader, err := s.people.GetPersonByUsername(post.Uploader)
	if err != nil {
		return nil, err
	}
	viewer, err := s.people.GetPersonByUsername(viewerUsername)
	if err != nil {
		return nil, err
	}

	size := s.config.CommentsPageSize
	comments, err := s.comments.GetPageByPostID(postID, commentsPage*size, size)
	if err != nil {
		return nil, err
	}
	commentsTotal, err := s.comments.GetCommentsCount(postID)
	if err != nil {
		return nil, err
	}
	likes, err := s.likes.GetLikesCount(postID)
	if err != nil {
		return nil, err
	}
	liked, err := s.likes.HasLiked(postID, viewer.ID)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		UploaderPhoto: uploader.Photo,
		Hashtags:      post.Hashtags,
		Image:         post.Image,
		Description:   post.Description,
		PostedAt:      post.CreatedAt,
		Comments:      NewPage(comments, commentsPage, size, commentsTotal),
		LikesCount:    likes,
		Liked:         liked,
	}, nil
}

// HomeFeed returns one newest-first page of posts authored by the
// viewer's followees. A viewer who follows nobody gets an empty page.
func (s *FeedService) HomeFeed(ctx context.Context, viewerUsername string, page int) (Page[FeedEntry], error) {
	size := s.config.HomePageSize
	viewer, err := s.people.GetPersonByUsername(viewerUsername)
	if err != nil {
		return Page[FeedEntry]{}, err
	}

	uploaders, err := s.follows.GetFolloweeUsernames(viewer.ID)
	if err != nil {
		return Page[FeedEntry]{}, err
	}
	if len(uploaders) == 0 {
		return NewPage[FeedEntry](nil, page, size, 0), nil
	}

	posts, err := s.posts.GetPostsByUploaders(ctx, uploaders, int64(page*size), int64(size))
	if err != nil {
		return Page[FeedEntry]{}, err
	}
	total, err := s.posts.GetPostsCountByUploaders(ctx, uploaders)
	if err != nil {
		return Page[FeedEntry]{}, err
	}

	// One photo lookup per distinct uploader on the page.
	photos := make(map[string]string)
	entries := make([]FeedEntry, len(posts))
	for i, post := range posts {
		id := post.ID.Hex()
		likes, err := s.likes.GetLikesCount(id)
		if err != nil {
			return Page[FeedEntry]{}, err
		}
		comments, err := s.comments.GetCommentsCount(id)
		if err != nil {
			return Page[FeedEntry]{}, err
		}
		liked, err := s.likes.HasLiked(id, viewer.ID)
		if err != nil {
			return Page[FeedEntry]{}, err
		}
		photo, ok := photos[post.Uploader]
		if !ok {
			if uploader, err := s.people.GetPersonByUsername(post.Uploader); err == nil {
				photo = uploader.Photo
			}
			photos[post.Uploader] = photo
		}
		entries[i] = FeedEntry{
			ID:            id,
			Uploader:      post.Uploader,
			UploaderPhoto: photo,
			Image:         post.Image,
			Description:   post.Description,
			PostedAt:      post.CreatedAt,
			LikesCount:    likes,
			CommentsCount: comments,
			Liked:         liked,
		}
	}
	return NewPage(entries, page, size, total), nil
}
