package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/models"
	"github.com/energeist/dockerized-climbunity/utils"
)

type RouteService struct {
	db *gorm.DB
}

func NewRouteService(db *gorm.DB) *RouteService {
	return &RouteService{db: db}
}

type RouteRequest struct {
	VenueID           uint       `json:"venue_id"`
	SetterID          *uint      `json:"setter_id"`
	Name              string     `json:"name"`
	Grade             string     `json:"grade"`
	PhotoURL          string     `json:"photo_url"`
	RouteSetDate      *time.Time `json:"route_set_date"`
	RouteTakedownDate *time.Time `json:"route_takedown_date"`
	StyleIDs          []uint     `json:"style_ids"`
	TagIDs            []uint     `json:"tag_ids"`
}

func (s *RouteService) CreateRoute(req RouteRequest) (*models.Route, error) {
	if req.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "route name is required"}
	}
	var venue models.Venue
	if err := s.db.First(&venue, req.VenueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "venue", ID: req.VenueID}
		}
		return nil, err
	}

	route := models.Route{
		VenueID:           venue.ID,
		SetterID:          req.SetterID,
		Name:              req.Name,
		Grade:             req.Grade,
		PhotoURL:          utils.ResolveRoutePhoto(req.PhotoURL),
		RouteSetDate:      req.RouteSetDate,
		RouteTakedownDate: req.RouteTakedownDate,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&route).Error; err != nil {
			return &IntegrityError{Err: err}
		}
		return replaceRouteAssociations(tx, &route, req.StyleIDs, req.TagIDs)
	})
	if err != nil {
		return nil, err
	}
	return &route, nil
}

// UpdateRoute replaces the route's fields and its full style and tag sets.
// Edit resubmits the whole form, so the sets reflect exactly what was
// submitted rather than accumulating.
func (s *RouteService) UpdateRoute(id uint, req RouteRequest) (*models.Route, error) {
	if req.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "route name is required"}
	}
	var route models.Route
	if err := s.db.First(&route, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "route", ID: id}
		}
		return nil, err
	}
	if req.VenueID != 0 && req.VenueID != route.VenueID {
		var venue models.Venue
		if err := s.db.First(&venue, req.VenueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "venue", ID: req.VenueID}
			}
			return nil, err
		}
		route.VenueID = venue.ID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		route.Name = req.Name
		route.Grade = req.Grade
		route.PhotoURL = utils.ResolveRoutePhoto(req.PhotoURL)
		route.SetterID = req.SetterID
		route.RouteSetDate = req.RouteSetDate
		route.RouteTakedownDate = req.RouteTakedownDate
		if err := tx.Save(&route).Error; err != nil {
			return err
		}
		return replaceRouteAssociations(tx, &route, req.StyleIDs, req.TagIDs)
	})
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (s *RouteService) GetRoute(id uint) (*models.Route, error) {
	var route models.Route
	err := s.db.Preload("Venue").
		Preload("Styles").
		Preload("Tags").
		Preload("Ascents").
		First(&route, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "route", ID: id}
		}
		return nil, err
	}
	return &route, nil
}

func (s *RouteService) ListRoutes() ([]models.Route, error) {
	var routes []models.Route
	if err := s.db.Preload("Venue").Order("name").Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

// DeleteRoute removes the route, its ascents, and its association rows in
// one transaction.
func (s *RouteService) DeleteRoute(id uint) error {
	var route models.Route
	if err := s.db.First(&route, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "route", ID: id}
		}
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteRouteDependents(tx, &route); err != nil {
			return err
		}
		return tx.Delete(&route).Error
	})
}

// AddProject puts a route on the user's project list. Re-adding an existing
// project is a no-op.
func (s *RouteService) AddProject(userID, routeID uint) error {
	user, route, err := s.loadUserAndRoute(userID, routeID)
	if err != nil {
		return err
	}
	return s.db.Model(user).Association("Projects").Append(route)
}

// RemoveProject takes a route off the user's project list. Removing a
// non-member is a no-op.
func (s *RouteService) RemoveProject(userID, routeID uint) error {
	user, route, err := s.loadUserAndRoute(userID, routeID)
	if err != nil {
		return err
	}
	return s.db.Model(user).Association("Projects").Delete(route)
}

func (s *RouteService) ListProjects(userID uint) ([]models.Route, error) {
	var user models.User
	if err := s.db.Preload("Projects").Preload("Projects.Venue").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user", ID: userID}
		}
		return nil, err
	}
	return user.Projects, nil
}

func (s *RouteService) loadUserAndRoute(userID, routeID uint) (*models.User, *models.Route, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &NotFoundError{Entity: "user", ID: userID}
		}
		return nil, nil, err
	}
	var route models.Route
	if err := s.db.First(&route, routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &NotFoundError{Entity: "route", ID: routeID}
		}
		return nil, nil, err
	}
	return &user, &route, nil
}

func replaceRouteAssociations(tx *gorm.DB, route *models.Route, styleIDs, tagIDs []uint) error {
	styles, err := findStyles(tx, styleIDs)
	if err != nil {
		return err
	}
	if err := tx.Model(route).Association("Styles").Replace(styles); err != nil {
		return err
	}
	tags := []models.Tag{}
	if len(tagIDs) > 0 {
		if err := tx.Find(&tags, tagIDs).Error; err != nil {
			return err
		}
		if len(tags) != len(tagIDs) {
			return &ValidationError{Field: "tag_ids", Message: "unknown tag selected"}
		}
	}
	return tx.Model(route).Association("Tags").Replace(tags)
}
