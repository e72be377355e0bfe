package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/models"
)

type AscentService struct {
	db *gorm.DB
}

func NewAscentService(db *gorm.DB) *AscentService {
	return &AscentService{db: db}
}

type AscentRequest struct {
	SendDate     *time.Time      `json:"send_date"`
	SendType     models.SendType `json:"send_type"`
	SendRating   int             `json:"send_rating"`
	SendComments string          `json:"send_comments"`
}

// LogAscent records an attempt or send of a route by a user. The rating is
// constrained to 0..5 and the send type to the enumerated set before
// anything is persisted.
func (s *AscentService) LogAscent(routeID, userID uint, req AscentRequest) (*models.Ascent, error) {
	if req.SendRating < 0 || req.SendRating > 5 {
		return nil, &ValidationError{Field: "send_rating", Message: "rating must be between 0 and 5"}
	}
	if !req.SendType.Valid() {
		return nil, &ValidationError{Field: "send_type", Message: "unknown send type"}
	}
	if len(req.SendComments) > 1000 {
		return nil, &ValidationError{Field: "send_comments", Message: "please limit comments to 1000 characters"}
	}

	var route models.Route
	if err := s.db.First(&route, routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "route", ID: routeID}
		}
		return nil, err
	}
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user", ID: userID}
		}
		return nil, err
	}

	ascent := models.Ascent{
		UserID:       user.ID,
		RouteID:      route.ID,
		SendDate:     req.SendDate,
		SendType:     req.SendType,
		SendRating:   req.SendRating,
		SendComments: req.SendComments,
	}
	if err := s.db.Create(&ascent).Error; err != nil {
		return nil, &IntegrityError{Err: err}
	}
	return &ascent, nil
}

func (s *AscentService) DeleteAscent(id uint) error {
	var ascent models.Ascent
	if err := s.db.First(&ascent, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "ascent", ID: id}
		}
		return err
	}
	return s.db.Delete(&ascent).Error
}

func (s *AscentService) ListUserAscents(userID uint) ([]models.Ascent, error) {
	var ascents []models.Ascent
	err := s.db.Where("user_id = ?", userID).Order("send_date desc").Find(&ascents).Error
	if err != nil {
		return nil, err
	}
	return ascents, nil
}

// RouteAverageRating is the mean send rating across a route's ascents, zero
// when nothing has been logged yet.
func (s *AscentService) RouteAverageRating(routeID uint) (float64, error) {
	var ascents []models.Ascent
	if err := s.db.Where("route_id = ?", routeID).Find(&ascents).Error; err != nil {
		return 0, err
	}
	if len(ascents) == 0 {
		return 0, nil
	}
	total := 0
	for _, a := range ascents {
		total += a.SendRating
	}
	return float64(total) / float64(len(ascents)), nil
}
