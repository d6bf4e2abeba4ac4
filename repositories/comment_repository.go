package repositories

import (
	"errors"

	"gorm.io/gorm"

	"contenthub-api/models"
)

// CommentRepository is the gorm-backed comment collection handle.
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ExistsByID(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CommentRepository) FindByID(id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) FindAll() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) FindAllByUserID(userID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("user_id = ?", userID).Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) Save(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *CommentRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}

func (r *CommentRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.Comment{}).Error
}
