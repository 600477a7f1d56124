package services

import (
	"github.com/google/uuid"
)

// Telemetry is simulated: the fleet is one drone with fixed readings.
// Only the flight id changes, once per process start.

const (
	droneBatteryLevel = 85
	droneMinBattery   = 20
	droneFixedETA     = 5.3 // minutes
)

type DronePosition struct {
	ID        string     `json:"id"`
	FlightID  string     `json:"flight_id"`
	Battery   int        `json:"battery"`
	Weather   string     `json:"weather"`
	Temp      int        `json:"temp"`
	Humidity  int        `json:"humidity"`
	WindSpeed int        `json:"wind_speed"`
	GPS       [2]float64 `json:"gps"`
}

type DroneService struct {
	flightID string
}

func NewDroneService() *DroneService {
	return &DroneService{flightID: uuid.NewString()}
}

func (s *DroneService) Positions() []DronePosition {
	return []DronePosition{{
		ID:        "DRONE_001",
		FlightID:  s.flightID,
		Battery:   droneBatteryLevel,
		Weather:   "clear",
		Temp:      22,
		Humidity:  40,
		WindSpeed: 3,
		GPS:       [2]float64{43.1965135, 76.6309754},
	}}
}

// ETA validates the destination and returns the fixed estimate in minutes.
func (s *DroneService) ETA(lat, lon float64) (float64, error) {
	if !validCoordinates(lat, lon) {
		return 0, ErrInvalidCoordinates
	}
	return droneFixedETA, nil
}

// BatteryOK gates take-off; the stub battery never drops below the floor.
func (s *DroneService) BatteryOK() bool {
	return droneBatteryLevel >= droneMinBattery
}
