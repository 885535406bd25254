package usecases

import (
	"fmt"

	"agriwise-server/entities"
	"agriwise-server/repositories"
)

// PumpWithSensors is a pump plus the sensors attached to it, the shape the
// mobile client renders.
type PumpWithSensors struct {
	entities.Pump
	Sensors []entities.Sensor `json:"sensors"`
}

type PumpService struct {
	Pumps   repositories.PumpRepository
	Sensors repositories.SensorRepository
}

func NewPumpService(pumps repositories.PumpRepository, sensors repositories.SensorRepository) *PumpService {
	return &PumpService{Pumps: pumps, Sensors: sensors}
}

func validatePump(p *entities.Pump) error {
	if p.Name == "" {
		return fmt.Errorf("%w: pump name is required", ErrValidation)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrValidation)
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrValidation)
	}
	if p.Status != "" && !entities.IsValidPumpStatus(p.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// CreatePump stores a new pump owned by userID. Status defaults to off.
func (uc *PumpService) CreatePump(pump *entities.Pump, userID string) error {
	pump.UserID = userID
	if err := validatePump(pump); err != nil {
		return err
	}
	if err := uc.Pumps.Create(pump); err != nil {
		return ErrInternal
	}
	return nil
}

// GetPump returns the pump with its sensors. A pump owned by another user is
// reported as not found.
func (uc *PumpService) GetPump(id, userID string) (*PumpWithSensors, error) {
	pump, err := uc.Pumps.GetByIDAndOwner(id, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	sensors, err := uc.Sensors.GetByPumpID(pump.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return &PumpWithSensors{Pump: *pump, Sensors: sensors}, nil
}

// ListPumps returns the user's pumps, each with its sensors.
func (uc *PumpService) ListPumps(userID string) ([]PumpWithSensors, error) {
	pumps, err := uc.Pumps.GetByUserID(userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]PumpWithSensors, 0, len(pumps))
	for _, pump := range pumps {
		sensors, err := uc.Sensors.GetByPumpID(pump.ID)
		if err != nil {
			return nil, ErrInternal
		}
		out = append(out, PumpWithSensors{Pump: pump, Sensors: sensors})
	}
	return out, nil
}

// UpdatePump re-validates the full record before persisting; it is not a
// partial patch. The owner reference never changes.
func (uc *PumpService) UpdatePump(pump *entities.Pump, userID string) (*entities.Pump, error) {
	existing, err := uc.Pumps.GetByIDAndOwner(pump.ID, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	existing.Name = pump.Name
	existing.Longitude = pump.Longitude
	existing.Latitude = pump.Latitude
	existing.Description = pump.Description
	if pump.Status != "" {
		existing.Status = pump.Status
	}
	if err := validatePump(existing); err != nil {
		return nil, err
	}
	if err := uc.Pumps.Update(existing); err != nil {
		return nil, ErrInternal
	}
	return existing, nil
}

// SetPumpStatus is the dedicated status transition: the value is validated
// against the enum before a single conditional update is issued.
func (uc *PumpService) SetPumpStatus(id, userID, status string) (*entities.Pump, error) {
	if !entities.IsValidPumpStatus(status) {
		return nil, ErrInvalidStatus
	}
	pump, err := uc.Pumps.UpdateStatus(id, userID, status)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return pump, nil
}

func (uc *PumpService) DeletePump(id, userID string) error {
	if err := uc.Pumps.DeleteByIDAndOwner(id, userID); err != nil {
		return translateStoreErr(err)
	}
	return nil
}
