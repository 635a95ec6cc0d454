package traffic

import "github.com/chrisdamba/trafficwatch/internal/models"

// BuildRecord runs every derivation and combines them. It fails on the first
// derivation error so that nothing partial is ever returned.
func BuildRecord(email *string, data *models.TrafficResponse) (*models.OutputRecord, error) {
	congestion, err := CalculateCongestion(data)
	if err != nil {
		return nil, err
	}
	accidents, err := CheckRoadAccidents(data)
	if err != nil {
		return nil, err
	}
	route, err := ExtractRouteDetails(data)
	if err != nil {
		return nil, err
	}
	return &models.OutputRecord{
		Email:               email,
		RouteDetails:        route,
		CongestionDetails:   congestion,
		RoadAccidentDetails: accidents,
	}, nil
}
