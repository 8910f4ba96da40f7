package repositories

import (
	"errors"

	"github.com/pixgram/backend/internal/apperrors"
	"github.com/pixgram/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	// GetPageByPostID returns one newest-first page of comments joined
	// with their authors.
	GetPageByPostID(postID string, offset, limit int) ([]models.CommentView, error)
	GetCommentsCount(postID string) (int64, error)
	UpdateComment(comment *models.Comment) error
	DeleteComment(id uint) error
	// DeleteByPostID removes every comment on the post; used when a post
	// is deleted.
	DeleteByPostID(postID string) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *PostgresCommentRepository) GetPageByPostID(postID string, offset, limit int) ([]models.CommentView, error) {
	var views []models.CommentView
	err := r.db.Model(&models.Comment{}).
		Select("comments.id, people.username AS author, people.photo, comments.content, comments.created_at").
		Joins("JOIN people ON people.id = comments.author_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&views).Error
	return views, err
}

func (r *PostgresCommentRepository) GetCommentsCount(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *PostgresCommentRepository) UpdateComment(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *PostgresCommentRepository) DeleteComment(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

func (r *PostgresCommentRepository) DeleteByPostID(postID string) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}
