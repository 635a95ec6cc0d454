package traffic

import (
	"fmt"
	"github.com/chrisdamba/trafficwatch/internal/models"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const displayTimeLayout = "2006-01-02 15:04:05"

// ISO-8601 forms accepted for departure and arrival times. Offsets are
// parsed but not applied; the wall clock of the source is kept.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatDuration splits whole seconds into "H hr M min S sec".
func FormatDuration(seconds int64) string {
	hours := seconds / 3600
	rest := seconds % 3600
	return fmt.Sprintf("%d hr %d min %d sec", hours, rest/60, rest%60)
}

// FormatTrafficLength switches to kilometres above 1000 metres. Below that
// the length is shown in whole metres.
func FormatTrafficLength(meters float64) string {
	if meters > 1000 {
		return fmt.Sprintf("%.2f km", meters/1000)
	}
	return fmt.Sprintf("%d meters", int64(meters))
}

func FormatTimestamp(value string) (string, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(displayTimeLayout), nil
		}
	}
	return "", fmt.Errorf("invalid ISO-8601 timestamp %q", value)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// readNumber requires field to be present and numeric.
func readNumber(field string, n *models.Number) (float64, error) {
	if n == nil {
		return 0, missing(field)
	}
	v, err := n.Float64()
	if err != nil {
		return 0, invalid(field, err)
	}
	return v, nil
}

// ExtractRouteDetails summarises the first route and its first section.
func ExtractRouteDetails(data *models.TrafficResponse) (models.RouteDetails, error) {
	if data == nil || data.RouteDetails == nil {
		return models.RouteDetails{}, missing("route_details")
	}
	if len(data.RouteDetails.Routes) == 0 {
		return models.RouteDetails{}, missing("route_details.routes[0]")
	}
	route := data.RouteDetails.Routes[0]

	summary := route.Summary
	if summary == nil {
		return models.RouteDetails{}, missing("route_details.routes[0].summary")
	}
	const prefix = "route_details.routes[0].summary."
	length, err := readNumber(prefix+"lengthInMeters", summary.LengthInMeters)
	if err != nil {
		return models.RouteDetails{}, err
	}
	travelTime, err := readNumber(prefix+"travelTimeInSeconds", summary.TravelTimeInSeconds)
	if err != nil {
		return models.RouteDetails{}, err
	}
	delay, err := readNumber(prefix+"trafficDelayInSeconds", summary.TrafficDelayInSeconds)
	if err != nil {
		return models.RouteDetails{}, err
	}
	trafficLength, err := readNumber(prefix+"trafficLengthInMeters", summary.TrafficLengthInMeters)
	if err != nil {
		return models.RouteDetails{}, err
	}

	if summary.DepartureTime == nil {
		return models.RouteDetails{}, missing(prefix + "departureTime")
	}
	if summary.ArrivalTime == nil {
		return models.RouteDetails{}, missing(prefix + "arrivalTime")
	}
	if len(route.Sections) == 0 {
		return models.RouteDetails{}, missing("route_details.routes[0].sections[0]")
	}
	if route.Sections[0].TravelMode == nil {
		return models.RouteDetails{}, missing("route_details.routes[0].sections[0].travelMode")
	}

	departure, err := FormatTimestamp(*summary.DepartureTime)
	if err != nil {
		return models.RouteDetails{}, invalid(prefix+"departureTime", err)
	}
	arrival, err := FormatTimestamp(*summary.ArrivalTime)
	if err != nil {
		return models.RouteDetails{}, invalid(prefix+"arrivalTime", err)
	}

	return models.RouteDetails{
		DistanceKm:    length / 1000,
		TravelTime:    FormatDuration(int64(travelTime)),
		TrafficDelay:  FormatDuration(int64(delay)),
		TrafficLength: FormatTrafficLength(trafficLength),
		DepartureTime: departure,
		ArrivalTime:   arrival,
		TravelMode:    Capitalize(*route.Sections[0].TravelMode),
	}, nil
}
