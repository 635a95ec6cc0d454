package notifier

import (
	"github.com/chrisdamba/trafficwatch/internal/models"
	"strconv"
	"strings"
)

const Subject = "Traffic Alert"

// Alert is one notification for one requester.
type Alert struct {
	From   *string
	To     *string
	Email  *string
	Record *models.OutputRecord
}

// absentValue is shown for request attributes the caller left out.
const absentValue = "None"

func orNone(s *string) string {
	if s == nil {
		return absentValue
	}
	return *s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// FormatDistance renders kilometres the way a float prints in the alert
// history: shortest form, always with a decimal part.
func FormatDistance(km float64) string {
	s := strconv.FormatFloat(km, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatMessage renders the plain-text alert body.
func FormatMessage(a Alert) string {
	r := a.Record
	if r == nil {
		r = &models.OutputRecord{}
	}
	route := r.RouteDetails

	var b strings.Builder
	b.WriteString("__Traffic Alert:__\n\n")
	b.WriteString("Route: " + orNone(a.From) + " to " + orNone(a.To) + "\n\n")
	b.WriteString("Congestion Level: " + orNA(r.CongestionDetails.CongestionLevel) +
		" (" + orNA(r.CongestionDetails.CongestionCategory) + ")\n\n")
	b.WriteString("Road Accidents: " + orNA(r.RoadAccidentDetails.RoadAccidents) + "\n\n")
	b.WriteString("Route Details:\n")
	b.WriteString("Distance: " + FormatDistance(route.DistanceKm) + " km\n")
	b.WriteString("Travel Time: " + orNA(route.TravelTime) + " \n")
	b.WriteString("Traffic Delay: " + orNA(route.TrafficDelay) + " \n")
	b.WriteString("Traffic Length: " + orNA(route.TrafficLength) + "\n")
	b.WriteString("Departure Time: " + orNA(route.DepartureTime) + "\n")
	b.WriteString("Arrival Time: " + orNA(route.ArrivalTime) + "\n")
	b.WriteString("Travel Mode: " + orNA(route.TravelMode))
	return b.String()
}
