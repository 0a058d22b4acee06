package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// LocateTimeout bounds a single location request
const LocateTimeout = 10 * time.Second

var ErrLocationTimeout = errors.New("timeout expired")

// Coordinates is a position in decimal degrees
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Locator resolves the customer's current position
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// LocatorFunc adapts a function to a Locator
type LocatorFunc func(ctx context.Context) (Coordinates, error)

func (f LocatorFunc) Locate(ctx context.Context) (Coordinates, error) {
	return f(ctx)
}

// ReportedPosition is a Locator for a position the client already resolved,
// or the error it got while trying.
type ReportedPosition struct {
	Coordinates Coordinates
	Err         error
}

func (r ReportedPosition) Locate(ctx context.Context) (Coordinates, error) {
	if r.Err != nil {
		return Coordinates{}, r.Err
	}
	return r.Coordinates, nil
}

// LocationResult is the outcome of one location request
type LocationResult struct {
	Location string
	Err      error
}

// ErrorMessage is the text shown to the customer for a failed request
func (r LocationResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s. Please ensure location services are enabled.", r.Err.Error())
}

// FormatCoordinates renders a position rounded to four decimals
func FormatCoordinates(c Coordinates) string {
	return fmt.Sprintf("Lat: %.4f, Long: %.4f", c.Latitude, c.Longitude)
}

// Locate runs one location request bounded by LocateTimeout. It blocks and
// must not be called while holding session state.
func Locate(ctx context.Context, locator Locator) LocationResult {
	ctx, cancel := context.WithTimeout(ctx, LocateTimeout)
	defer cancel()

	type outcome struct {
		coords Coordinates
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		c, err := locator.Locate(ctx)
		done <- outcome{coords: c, err: err}
	}()

	select {
	case o := <-done:
		if o.err != nil {
			if errors.Is(o.err, context.DeadlineExceeded) {
				return LocationResult{Err: ErrLocationTimeout}
			}
			return LocationResult{Err: o.err}
		}
		return LocationResult{Location: FormatCoordinates(o.coords)}
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return LocationResult{Err: ErrLocationTimeout}
		}
		return LocationResult{Err: ctx.Err()}
	}
}
