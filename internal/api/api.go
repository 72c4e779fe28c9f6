// Package api defines the JSON bodies exchanged between the sensor API
// server and its clients.
package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedMillis is returned when a duration is not of the form "<n>ms".
var ErrMalformedMillis = errors.New("malformed millisecond duration")

// TimestampLayout renders UTC instants with millisecond precision, e.g.
// 2024-05-01T12:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const (
	HomeMessage       = "🚀 IoT Sensor API - Home (GENTLE CPU VERSION)"
	CPULoadMessage    = "Gentle CPU calculation completed"
	HealthStatusOK    = "OK"
	NotFoundMessage   = "not found"
	InternalErrorText = "internal server error"
)

// FormatTimestamp converts t to UTC and formats it with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp is the inverse of FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}

// FormatMillis renders a millisecond count as "<n>ms".
func FormatMillis(ms int64) string {
	return fmt.Sprintf("%dms", ms)
}

// ParseMillis is the inverse of FormatMillis.
func ParseMillis(s string) (time.Duration, error) {
	digits, ok := strings.CutSuffix(s, "ms")
	if !ok || digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedMillis, s)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedMillis, s)
	}
	return time.Duration(n) * time.Millisecond, nil
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// SensorDataResponse is the body of GET /data.
type SensorDataResponse struct {
	SensorID    string  `json:"sensorId"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Timestamp   string  `json:"timestamp"`
}

// CPULoadResponse is the body of GET /cpu-load.
type CPULoadResponse struct {
	Message         string  `json:"message"`
	CalculationTime string  `json:"calculationTime"`
	CPUIntensity    string  `json:"cpuIntensity"`
	Result          float64 `json:"result"`
	Timestamp       string  `json:"timestamp"`
}

// Elapsed parses CalculationTime.
func (r CPULoadResponse) Elapsed() (time.Duration, error) {
	return ParseMillis(r.CalculationTime)
}

// ErrorResponse is returned for unknown routes and recovered panics.
type ErrorResponse struct {
	Error string `json:"error"`
}
