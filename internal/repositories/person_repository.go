package repositories

import (
	"errors"

	"github.com/pixgram/backend/internal/apperrors"
	"github.com/pixgram/backend/internal/models"
	"gorm.io/gorm"
)

// PersonRepository defines the interface for person data operations
type PersonRepository interface {
	CreatePerson(person *models.Person) error
	GetPersonByID(id uint) (*models.Person, error)
	GetPersonByUsername(username string) (*models.Person, error)
	GetPersonByEmail(email string) (*models.Person, error)
	UpdatePerson(person *models.Person) error
	// Suggestions returns up to limit random persons excluding the given
	// person and everyone they already follow.
	Suggestions(personID uint, limit int) ([]models.Person, error)
}

// PostgresPersonRepository implements PersonRepository for PostgreSQL
type PostgresPersonRepository struct {
	db *gorm.DB
}

// NewPostgresPersonRepository creates a new PostgresPersonRepository
func NewPostgresPersonRepository(db *gorm.DB) *PostgresPersonRepository {
	return &PostgresPersonRepository{db: db}
}

func (r *PostgresPersonRepository) CreatePerson(person *models.Person) error {
	if err := r.db.Create(person).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

func (r *PostgresPersonRepository) GetPersonByID(id uint) (*models.Person, error) {
	var person models.Person
	if err := r.db.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

func (r *PostgresPersonRepository) GetPersonByUsername(username string) (*models.Person, error) {
	var person models.Person
	if err := r.db.Where("username = ?", username).First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

func (r *PostgresPersonRepository) GetPersonByEmail(email string) (*models.Person, error) {
	var person models.Person
	if err := r.db.Where("email = ?", email).First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

func (r *PostgresPersonRepository) UpdatePerson(person *models.Person) error {
	return r.db.Save(person).Error
}

func (r *PostgresPersonRepository) Suggestions(personID uint, limit int) ([]models.Person, error) {
	var people []models.Person
	err := r.db.
		Where("id <> ?", personID).
		Where("id NOT IN (?)",
			r.db.Model(&models.Follow{}).Select("followee_id").Where("follower_id = ?", personID),
		).
		Order("RANDOM()").
		Limit(limit).
		Find(&people).Error
	return people, err
}
