package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/citysafe/emergency_location_system/internal/beacon"
	"github.com/citysafe/emergency_location_system/pkg/logger"
)

// Консольный маяк: выполняет рукопожатие геолокации со стороны пострадавшего.
// Позиция задается флагами, что позволяет прогонять рукопожатие против живого
// сервера без реального устройства.

// staticProvider возвращает позицию из флагов командной строки
type staticProvider struct {
	pos beacon.Position
	err error
}

func (p *staticProvider) CurrentPosition(ctx context.Context) (*beacon.Position, error) {
	if p.err != nil {
		return nil, p.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pos := p.pos
	return &pos, nil
}

func main() {
	var (
		requestIDStr    = flag.String("request", "", "location request ID from the SMS link (required)")
		serverURL       = flag.String("server", "http://localhost:8080", "base URL of the emergency location server")
		lat             = flag.Float64("lat", 0, "device latitude")
		lng             = flag.Float64("lng", 0, "device longitude")
		accuracy        = flag.Float64("accuracy", 10, "position accuracy radius, meters")
		offline         = flag.Bool("offline", false, "simulate a device without a data connection")
		denied          = flag.Bool("denied", false, "simulate denied location permission")
		emergencyNumber = flag.String("emergency", "118", "emergency service number for the SMS fallback")
		writeTimeout    = flag.Duration("write-timeout", 15*time.Second, "budget for the network coordinate write")
		fixTimeout      = flag.Duration("fix-timeout", 30*time.Second, "budget for acquiring the device position")
		logLevel        = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()

	requestID, err := uuid.Parse(*requestIDStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid or missing -request flag: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	log := logger.New(*logLevel)

	provider := &staticProvider{
		pos: beacon.Position{
			Latitude:  *lat,
			Longitude: *lng,
			Accuracy:  *accuracy,
			Offline:   *offline,
		},
	}
	if *denied {
		provider.err = &beacon.FixError{Code: beacon.FixPermissionDenied}
	}

	sink := beacon.NewHTTPSink(*serverURL, &http.Client{Timeout: *writeTimeout})

	b := beacon.New(provider, sink, beacon.Config{
		RequestID:       requestID,
		EmergencyNumber: *emergencyNumber,
		WriteTimeout:    *writeTimeout,
		FixTimeout:      *fixTimeout,
	}, log)

	outcome := b.Run(context.Background())

	fmt.Printf("state: %s\n", outcome.State)
	switch outcome.State {
	case beacon.StateSuccess:
		fmt.Printf("coordinates delivered: %g,%g (±%gm)\n",
			outcome.Position.Latitude, outcome.Position.Longitude, outcome.Position.Accuracy)
	case beacon.StateSMSFallback:
		fmt.Printf("network write unavailable, send this SMS to %s:\n", *emergencyNumber)
		fmt.Printf("  %s\n", outcome.SMSBody)
		fmt.Printf("compose URI: %s\n", outcome.SMSURI)
	case beacon.StateError:
		fmt.Printf("error: %s\n", outcome.Message)
		os.Exit(1)
	}
}
