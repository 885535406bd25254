package usecases

import (
	"fmt"

	"agriwise-server/entities"
	"agriwise-server/repositories"
)

type SensorService struct {
	Sensors repositories.SensorRepository
	Pumps   repositories.PumpRepository
}

func NewSensorService(sensors repositories.SensorRepository, pumps repositories.PumpRepository) *SensorService {
	return &SensorService{Sensors: sensors, Pumps: pumps}
}

func validateSensor(s *entities.Sensor) error {
	if s.Name == "" {
		return fmt.Errorf("%w: sensor name is required", ErrValidation)
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrValidation)
	}
	if s.Latitude < -90 || s.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrValidation)
	}
	if s.Status != "" && !entities.IsValidSensorStatus(s.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// checkPumpRef verifies that an associated pump belongs to the same user.
func (uc *SensorService) checkPumpRef(pumpID, userID string) error {
	if pumpID == "" {
		return nil
	}
	if _, err := uc.Pumps.GetByIDAndOwner(pumpID, userID); err != nil {
		return translateStoreErr(err)
	}
	return nil
}

func (uc *SensorService) CreateSensor(sensor *entities.Sensor, userID string) error {
	sensor.UserID = userID
	if err := validateSensor(sensor); err != nil {
		return err
	}
	if err := uc.checkPumpRef(sensor.PumpID, userID); err != nil {
		return err
	}
	if err := uc.Sensors.Create(sensor); err != nil {
		return ErrInternal
	}
	return nil
}

func (uc *SensorService) GetSensor(id, userID string) (*entities.Sensor, error) {
	sensor, err := uc.Sensors.GetByIDAndOwner(id, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return sensor, nil
}

func (uc *SensorService) ListSensors(userID string) ([]entities.Sensor, error) {
	sensors, err := uc.Sensors.GetByUserID(userID)
	if err != nil {
		return nil, ErrInternal
	}
	return sensors, nil
}

// UpdateSensor follows the same validate-then-commit path as pumps.
func (uc *SensorService) UpdateSensor(sensor *entities.Sensor, userID string) (*entities.Sensor, error) {
	existing, err := uc.Sensors.GetByIDAndOwner(sensor.ID, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	existing.Name = sensor.Name
	existing.Temperature = sensor.Temperature
	existing.Humidity = sensor.Humidity
	existing.WaterCapacity = sensor.WaterCapacity
	existing.Longitude = sensor.Longitude
	existing.Latitude = sensor.Latitude
	existing.Description = sensor.Description
	existing.PumpID = sensor.PumpID
	if sensor.Status != "" {
		existing.Status = sensor.Status
	}

	if err := validateSensor(existing); err != nil {
		return nil, err
	}
	if err := uc.checkPumpRef(existing.PumpID, userID); err != nil {
		return nil, err
	}
	if err := uc.Sensors.Update(existing); err != nil {
		return nil, ErrInternal
	}
	return existing, nil
}

func (uc *SensorService) SetSensorStatus(id, userID, status string) (*entities.Sensor, error) {
	if !entities.IsValidSensorStatus(status) {
		return nil, ErrInvalidStatus
	}
	sensor, err := uc.Sensors.UpdateStatus(id, userID, status)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return sensor, nil
}

func (uc *SensorService) DeleteSensor(id, userID string) error {
	if err := uc.Sensors.DeleteByIDAndOwner(id, userID); err != nil {
		return translateStoreErr(err)
	}
	return nil
}
