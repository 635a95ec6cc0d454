package models

import "encoding/json"

// TripRequest is the invocation payload. Absent attributes stay nil and are
// forwarded as JSON null.
type TripRequest struct {
	From  *string `json:"from"`
	To    *string `json:"to"`
	Email *string `json:"email"`
}

// TrafficResponse is the body returned by the upstream traffic API. Pointer
// fields distinguish an absent value from a zero one.
type TrafficResponse struct {
	TrafficFlow      *TrafficFlow      `json:"traffic_flow"`
	TrafficIncidents *TrafficIncidents `json:"traffic_incidents"`
	RouteDetails     *RouteResponse    `json:"route_details"`
}

type TrafficFlow struct {
	FlowSegmentData *FlowSegmentData `json:"flowSegmentData"`
}

type FlowSegmentData struct {
	CurrentSpeed  *Number `json:"currentSpeed"`
	FreeFlowSpeed *Number `json:"freeFlowSpeed"`
}

type TrafficIncidents struct {
	TM *IncidentMessage `json:"tm"`
}

type IncidentMessage struct {
	// POI is nil when the key is missing and empty when no incidents exist.
	POI []PointOfInterest `json:"poi"`
}

// PointOfInterest is kept opaque; only its presence matters.
type PointOfInterest = json.RawMessage

type RouteResponse struct {
	Routes []Route `json:"routes"`
}

type Route struct {
	Summary  *RouteSummary  `json:"summary"`
	Sections []RouteSection `json:"sections"`
}

type RouteSummary struct {
	LengthInMeters        *Number `json:"lengthInMeters"`
	TravelTimeInSeconds   *Number `json:"travelTimeInSeconds"`
	TrafficDelayInSeconds *Number `json:"trafficDelayInSeconds"`
	TrafficLengthInMeters *Number `json:"trafficLengthInMeters"`
	DepartureTime         *string `json:"departureTime"`
	ArrivalTime           *string `json:"arrivalTime"`
}

type RouteSection struct {
	TravelMode *string `json:"travelMode"`
}

type CongestionResult struct {
	CongestionLevel    string `json:"congestion_level"`
	CongestionCategory string `json:"congestion_category"`
}

type AccidentResult struct {
	RoadAccidents string `json:"road_accidents"`
}

type RouteDetails struct {
	DistanceKm    float64 `json:"distance_km"`
	TravelTime    string  `json:"travel_time"`
	TrafficDelay  string  `json:"traffic_delay"`
	TrafficLength string  `json:"traffic_length"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	TravelMode    string  `json:"travel_mode"`
}

// OutputRecord is the unit written to storage.
type OutputRecord struct {
	Email               *string          `json:"email"`
	RouteDetails        RouteDetails     `json:"route_details"`
	CongestionDetails   CongestionResult `json:"congestion_details"`
	RoadAccidentDetails AccidentResult   `json:"road_accident_details"`
}

// Response is returned to the caller. Body holds a JSON-encoded string.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}
