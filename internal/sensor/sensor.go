// Package sensor produces mock IoT sensor readings for the /data endpoint.
package sensor

import (
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// DefaultSensorID identifies the single mock sensor.
	DefaultSensorID = "sensor-001"

	// MinTemperature and TemperatureSpan define the uniform temperature range
	// [20, 70) in degrees Celsius.
	MinTemperature  = 20.0
	TemperatureSpan = 50.0

	// HumiditySpan defines the uniform relative humidity range [0, 100).
	HumiditySpan = 100.0
)

// Reading is a single mock measurement.
type Reading struct {
	SensorID    string
	Temperature float64
	Humidity    float64
	Timestamp   time.Time
}

// Source generates readings from a random number generator and a clock.
// It is safe for concurrent use.
type Source struct {
	sensorID string
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Source.
type Option func(*Source)

// WithRand sets the random number generator, which makes readings
// reproducible in tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Source) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithClock sets the function used to timestamp readings.
func WithClock(now func() time.Time) Option {
	return func(s *Source) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSensorID overrides DefaultSensorID.
func WithSensorID(id string) Option {
	return func(s *Source) {
		if id != "" {
			s.sensorID = id
		}
	}
}

// NewSource creates a Source seeded from the current time.
func NewSource(opts ...Option) *Source {
	seed := uint64(time.Now().UnixNano())
	s := &Source{
		sensorID: DefaultSensorID,
		now:      time.Now,
		rng:      rand.New(rand.NewPCG(seed, seed>>1|1)), // #nosec G404 -- mock data
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns a new reading.
func (s *Source) Read() Reading {
	s.mu.Lock()
	temp := s.rng.Float64()*TemperatureSpan + MinTemperature
	humidity := s.rng.Float64() * HumiditySpan
	s.mu.Unlock()

	return Reading{
		SensorID:    s.sensorID,
		Temperature: temp,
		Humidity:    humidity,
		Timestamp:   s.now(),
	}
}
