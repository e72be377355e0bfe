package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/models"
)

type VenueService struct {
	db *gorm.DB
}

func NewVenueService(db *gorm.DB) *VenueService {
	return &VenueService{db: db}
}

type VenueRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	OpenHours   string `json:"open_hours"`
	Description string `json:"description"`
}

func (r VenueRequest) validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "venue name is required"}
	}
	if r.Address == "" {
		return &ValidationError{Field: "address", Message: "venue address is required"}
	}
	return nil
}

func (s *VenueService) CreateVenue(req VenueRequest) (*models.Venue, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	venue := models.Venue{
		Name:        req.Name,
		Address:     req.Address,
		OpenHours:   req.OpenHours,
		Description: req.Description,
	}
	if err := s.db.Create(&venue).Error; err != nil {
		return nil, &IntegrityError{Err: err}
	}
	return &venue, nil
}

func (s *VenueService) UpdateVenue(id uint, req VenueRequest) (*models.Venue, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	var venue models.Venue
	if err := s.db.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "venue", ID: id}
		}
		return nil, err
	}
	venue.Name = req.Name
	venue.Address = req.Address
	venue.OpenHours = req.OpenHours
	venue.Description = req.Description
	if err := s.db.Save(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (s *VenueService) GetVenue(id uint) (*models.Venue, error) {
	var venue models.Venue
	err := s.db.Preload("Routes").Preload("Appointments").First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "venue", ID: id}
		}
		return nil, err
	}
	return &venue, nil
}

func (s *VenueService) ListVenues() ([]models.Venue, error) {
	var venues []models.Venue
	if err := s.db.Order("name").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// DeleteVenue removes a venue and everything referencing it in one
// transaction: appointments (with their attendant rows), each route's
// ascents and association rows, the routes themselves, then the venue.
func (s *VenueService) DeleteVenue(id uint) error {
	var venue models.Venue
	if err := s.db.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "venue", ID: id}
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var appointments []models.Appointment
		if err := tx.Where("venue_id = ?", id).Find(&appointments).Error; err != nil {
			return err
		}
		for i := range appointments {
			if err := tx.Model(&appointments[i]).Association("Attendants").Clear(); err != nil {
				return err
			}
			if err := tx.Delete(&appointments[i]).Error; err != nil {
				return err
			}
		}

		var routes []models.Route
		if err := tx.Where("venue_id = ?", id).Find(&routes).Error; err != nil {
			return err
		}
		for i := range routes {
			if err := deleteRouteDependents(tx, &routes[i]); err != nil {
				return err
			}
			if err := tx.Delete(&routes[i]).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&venue).Error
	})
}

// deleteRouteDependents clears everything hanging off a route: ascents,
// style/tag rows, and project-list memberships. Shared by route and venue
// deletion so neither path can leave orphans.
func deleteRouteDependents(tx *gorm.DB, route *models.Route) error {
	if err := tx.Where("route_id = ?", route.ID).Delete(&models.Ascent{}).Error; err != nil {
		return err
	}
	if err := tx.Model(route).Association("Styles").Clear(); err != nil {
		return err
	}
	if err := tx.Model(route).Association("Tags").Clear(); err != nil {
		return err
	}
	return tx.Model(route).Association("ProjectingUsers").Clear()
}
