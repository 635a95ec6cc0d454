package traffic

import (
	"fmt"
	"github.com/chrisdamba/trafficwatch/internal/models"
)

const (
	CategoryLow      = "Low"
	CategoryModerate = "Moderate"
	CategoryHigh     = "High"
)

// CongestionPercent is the speed reduction relative to free flow. It is not
// clamped, so a current speed above free flow yields a negative value.
func CongestionPercent(currentSpeed, freeFlowSpeed float64) float64 {
	if freeFlowSpeed > 0 {
		return (freeFlowSpeed - currentSpeed) / freeFlowSpeed * 100
	}
	return 0
}

func CongestionCategory(percent float64) string {
	switch {
	case percent < 20:
		return CategoryLow
	case percent < 50:
		return CategoryModerate
	default:
		return CategoryHigh
	}
}

func ClassifyCongestion(currentSpeed, freeFlowSpeed float64) models.CongestionResult {
	percent := CongestionPercent(currentSpeed, freeFlowSpeed)
	return models.CongestionResult{
		CongestionLevel:    fmt.Sprintf("%.2f%%", percent),
		CongestionCategory: CongestionCategory(percent),
	}
}

// CalculateCongestion reads the flow segment speeds from the response.
func CalculateCongestion(data *models.TrafficResponse) (models.CongestionResult, error) {
	if data == nil || data.TrafficFlow == nil {
		return models.CongestionResult{}, missing("traffic_flow")
	}
	segment := data.TrafficFlow.FlowSegmentData
	if segment == nil {
		return models.CongestionResult{}, missing("traffic_flow.flowSegmentData")
	}
	current, err := readNumber("traffic_flow.flowSegmentData.currentSpeed", segment.CurrentSpeed)
	if err != nil {
		return models.CongestionResult{}, err
	}
	freeFlow, err := readNumber("traffic_flow.flowSegmentData.freeFlowSpeed", segment.FreeFlowSpeed)
	if err != nil {
		return models.CongestionResult{}, err
	}
	return ClassifyCongestion(current, freeFlow), nil
}
