package traffic

import (
	"errors"
	"github.com/chrisdamba/trafficwatch/internal/models"
	"testing"
)

func TestCongestionCategoryBoundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{-25, CategoryLow},
		{0, CategoryLow},
		{19.99, CategoryLow},
		{20.00, CategoryModerate},
		{49.99, CategoryModerate},
		{50.00, CategoryHigh},
		{100, CategoryHigh},
	}

	for _, tt := range tests {
		if got := CongestionCategory(tt.percent); got != tt.want {
			t.Errorf("CongestionCategory(%v) = %s, want %s", tt.percent, got, tt.want)
		}
	}
}

func TestClassifyCongestion(t *testing.T) {
	tests := []struct {
		name          string
		current, free float64
		wantLevel     string
		wantCategory  string
	}{
		{"heavy", 40, 100, "60.00%", CategoryHigh},
		{"moderate", 80, 100, "20.00%", CategoryModerate},
		{"light", 95, 100, "5.00%", CategoryLow},
		{"stopped", 0, 60, "100.00%", CategoryHigh},
		{"no free flow", 30, 0, "0.00%", CategoryLow},
		{"faster than free flow", 120, 100, "-20.00%", CategoryLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyCongestion(tt.current, tt.free)
			if got.CongestionLevel != tt.wantLevel {
				t.Errorf("level = %s, want %s", got.CongestionLevel, tt.wantLevel)
			}
			if got.CongestionCategory != tt.wantCategory {
				t.Errorf("category = %s, want %s", got.CongestionCategory, tt.wantCategory)
			}
		})
	}
}

func TestCongestionPercentRange(t *testing.T) {
	for free := 1.0; free <= 120; free += 7 {
		for current := 0.0; current < free; current += 3 {
			p := CongestionPercent(current, free)
			if p <= 0 || p > 100 {
				t.Fatalf("CongestionPercent(%v, %v) = %v, outside (0, 100]", current, free, p)
			}
		}
	}
	if p := CongestionPercent(50, 0); p != 0 {
		t.Errorf("expected 0 for zero free flow, got %v", p)
	}
}

func TestCalculateCongestionFractionalSpeeds(t *testing.T) {
	data := decodeSample(t, `{"traffic_flow": {"flowSegmentData": {"currentSpeed": 40.0, "freeFlowSpeed": 100.0}}}`)
	got, err := CalculateCongestion(data)
	if err != nil {
		t.Fatalf("CalculateCongestion failed: %v", err)
	}
	if got.CongestionLevel != "60.00%" || got.CongestionCategory != CategoryHigh {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestCalculateCongestionMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		data  *models.TrafficResponse
		field string
	}{
		{"no flow", &models.TrafficResponse{}, "traffic_flow"},
		{"no segment", &models.TrafficResponse{TrafficFlow: &models.TrafficFlow{}}, "traffic_flow.flowSegmentData"},
		{"no current speed", &models.TrafficResponse{TrafficFlow: &models.TrafficFlow{
			FlowSegmentData: &models.FlowSegmentData{FreeFlowSpeed: models.NumberOf(50)},
		}}, "traffic_flow.flowSegmentData.currentSpeed"},
		{"no free flow speed", &models.TrafficResponse{TrafficFlow: &models.TrafficFlow{
			FlowSegmentData: &models.FlowSegmentData{CurrentSpeed: models.NumberOf(50)},
		}}, "traffic_flow.flowSegmentData.freeFlowSpeed"},
		{"speed is not a number", decodeSample(t, `{"traffic_flow": {"flowSegmentData": {"currentSpeed": "fast", "freeFlowSpeed": 100}}}`),
			"traffic_flow.flowSegmentData.currentSpeed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateCongestion(tt.data)
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected FieldError, got %v", err)
			}
			if fieldErr.Field != tt.field {
				t.Errorf("field = %s, want %s", fieldErr.Field, tt.field)
			}
		})
	}
}
