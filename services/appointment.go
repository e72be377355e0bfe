package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/models"
)

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

type AppointmentRequest struct {
	VenueID             uint      `json:"venue_id"`
	AppointmentDatetime time.Time `json:"appointment_datetime"`
	GuestIDs            []uint    `json:"guest_ids"`
}

// validateAppointmentTime enforces the creation-time invariant: the
// scheduled instant must be strictly after now. Appointments are never
// invalidated later when now passes them.
func validateAppointmentTime(scheduled, now time.Time) error {
	if !scheduled.After(now) {
		return &ValidationError{Field: "appointment_datetime", Message: "the appointment date cannot be in the past"}
	}
	return nil
}

// CreateAppointment schedules a meetup at a venue. The creator and every
// listed guest become attendants in the same transaction as the insert.
func (s *AppointmentService) CreateAppointment(creatorID uint, req AppointmentRequest) (*models.Appointment, error) {
	if err := validateAppointmentTime(req.AppointmentDatetime, time.Now()); err != nil {
		return nil, err
	}

	var creator models.User
	if err := s.db.First(&creator, creatorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user", ID: creatorID}
		}
		return nil, err
	}
	var venue models.Venue
	if err := s.db.First(&venue, req.VenueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "venue", ID: req.VenueID}
		}
		return nil, err
	}

	appointment := models.Appointment{
		CreatedBy:           creator.ID,
		VenueID:             venue.ID,
		AppointmentDatetime: req.AppointmentDatetime,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&appointment).Error; err != nil {
			return &IntegrityError{Err: err}
		}
		attendants := []models.User{creator}
		if len(req.GuestIDs) > 0 {
			var guests []models.User
			if err := tx.Find(&guests, req.GuestIDs).Error; err != nil {
				return err
			}
			if len(guests) != len(req.GuestIDs) {
				return &ValidationError{Field: "guest_ids", Message: "unknown guest selected"}
			}
			attendants = append(attendants, guests...)
		}
		return tx.Model(&appointment).Association("Attendants").Append(attendants)
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// JoinAppointment adds the user to the attendant set. Joining twice is a
// no-op.
func (s *AppointmentService) JoinAppointment(userID, appointmentID uint) error {
	user, appointment, err := s.loadUserAndAppointment(userID, appointmentID)
	if err != nil {
		return err
	}
	return s.db.Model(appointment).Association("Attendants").Append(user)
}

// LeaveAppointment removes the user from the attendant set. Leaving an
// appointment the user never joined is a no-op.
func (s *AppointmentService) LeaveAppointment(userID, appointmentID uint) error {
	user, appointment, err := s.loadUserAndAppointment(userID, appointmentID)
	if err != nil {
		return err
	}
	return s.db.Model(appointment).Association("Attendants").Delete(user)
}

// DeleteAppointment clears the attendant set, then deletes the row.
func (s *AppointmentService) DeleteAppointment(id uint) error {
	var appointment models.Appointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "appointment", ID: id}
		}
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&appointment).Association("Attendants").Clear(); err != nil {
			return err
		}
		return tx.Delete(&appointment).Error
	})
}

func (s *AppointmentService) GetAppointment(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Preload("Venue").Preload("Attendants").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "appointment", ID: id}
		}
		return nil, err
	}
	return &appointment, nil
}

func (s *AppointmentService) ListVenueAppointments(venueID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Preload("Attendants").
		Where("venue_id = ?", venueID).
		Order("appointment_datetime").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *AppointmentService) ListUserAppointments(userID uint) ([]models.Appointment, error) {
	var user models.User
	err := s.db.Preload("Appointments").Preload("Appointments.Venue").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user", ID: userID}
		}
		return nil, err
	}
	return user.Appointments, nil
}

func (s *AppointmentService) loadUserAndAppointment(userID, appointmentID uint) (*models.User, *models.Appointment, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &NotFoundError{Entity: "user", ID: userID}
		}
		return nil, nil, err
	}
	var appointment models.Appointment
	if err := s.db.First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &NotFoundError{Entity: "appointment", ID: appointmentID}
		}
		return nil, nil, err
	}
	return &user, &appointment, nil
}
