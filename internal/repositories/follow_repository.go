package repositories

import (
	"errors"

	"github.com/pixgram/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow-edge operations. The
// follows table is the single authoritative membership index for the
// directed (follower, followee) pair.
type FollowRepository interface {
	// Toggle creates the edge if absent and removes it if present, in one
	// transaction. Returns true when the edge exists after the call.
	Toggle(followerID, followeeID uint) (bool, error)
	IsFollowing(followerID, followeeID uint) (bool, error)
	GetFollowersCount(personID uint) (int64, error)
	GetFollowingCount(personID uint) (int64, error)
	// GetFolloweeUsernames returns the usernames of everyone the given
	// person follows; the home feed is scoped to these uploaders.
	GetFolloweeUsernames(personID uint) ([]string, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) Toggle(followerID, followeeID uint) (bool, error) {
	var following bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Follow
		err := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			following = false
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			follow := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
			if err := tx.Create(&follow).Error; err != nil {
				// A racing toggle created the edge first; the unique index
				// keeps the net state consistent, so treat it as applied.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					following = true
					return nil
				}
				return err
			}
			following = true
			return nil
		default:
			return err
		}
	})
	return following, err
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresFollowRepository) GetFollowersCount(personID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followee_id = ?", personID).Count(&count).Error
	return count, err
}

func (r *PostgresFollowRepository) GetFollowingCount(personID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", personID).Count(&count).Error
	return count, err
}

func (r *PostgresFollowRepository) GetFolloweeUsernames(personID uint) ([]string, error) {
	var usernames []string
	err := r.db.Model(&models.Person{}).
		Where("id IN (?)",
			r.db.Model(&models.Follow{}).Select("followee_id").Where("follower_id = ?", personID),
		).
		Pluck("username", &usernames).Error
	return usernames, err
}
