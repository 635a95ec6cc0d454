package traffic

import "github.com/chrisdamba/trafficwatch/internal/models"

const (
	AccidentsReported   = "There are road accidents."
	NoAccidentsReported = "There are no road accidents."
)

func DescribeAccidents(incidents []models.PointOfInterest) models.AccidentResult {
	if len(incidents) > 0 {
		return models.AccidentResult{RoadAccidents: AccidentsReported}
	}
	return models.AccidentResult{RoadAccidents: NoAccidentsReported}
}

// CheckRoadAccidents requires traffic_incidents.tm.poi to be present; an
// empty list means no accidents.
func CheckRoadAccidents(data *models.TrafficResponse) (models.AccidentResult, error) {
	if data == nil || data.TrafficIncidents == nil {
		return models.AccidentResult{}, missing("traffic_incidents")
	}
	if data.TrafficIncidents.TM == nil {
		return models.AccidentResult{}, missing("traffic_incidents.tm")
	}
	if data.TrafficIncidents.TM.POI == nil {
		return models.AccidentResult{}, missing("traffic_incidents.tm.poi")
	}
	return DescribeAccidents(data.TrafficIncidents.TM.POI), nil
}
