package repositories

import (
	"errors"

	"github.com/pixgram/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like-edge operations
type LikeRepository interface {
	// Toggle creates the like if absent and removes it if present, in one
	// transaction. Returns true when the post is liked after the call.
	Toggle(postID string, personID uint) (bool, error)
	HasLiked(postID string, personID uint) (bool, error)
	GetLikesCount(postID string) (int64, error)
	// DeleteByPostID removes every like edge referencing the post; used
	// when a post is deleted.
	DeleteByPostID(postID string) error
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) Toggle(postID string, personID uint) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("post_id = ? AND person_id = ?", postID, personID).
			First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			liked = false
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := models.Like{PostID: postID, PersonID: personID}
			if err := tx.Create(&like).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					liked = true
					return nil
				}
				return err
			}
			liked = true
			return nil
		default:
			return err
		}
	})
	return liked, err
}

func (r *PostgresLikeRepository) HasLiked(postID string, personID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).
		Where("post_id = ? AND person_id = ?", postID, personID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresLikeRepository) GetLikesCount(postID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresLikeRepository) DeleteByPostID(postID string) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Like{}).Error
}
