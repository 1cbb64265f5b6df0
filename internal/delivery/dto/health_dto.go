package dto

// SaveHealthDataRequest upserts today's snapshot; zero values are legal
// metric readings, so nothing here is required.
type SaveHealthDataRequest struct {
	Steps        int     `json:"steps" validate:"gte=0"`
	HeartRate    int     `json:"heart_rate" validate:"gte=0"`
	SleepHours   float64 `json:"sleep_hours" validate:"gte=0"`
	WaterGlasses int     `json:"water_glasses" validate:"gte=0"`
	Weight       float64 `json:"weight" validate:"gte=0"`
}

type HealthSnapshotResponse struct {
	Steps        int     `json:"steps"`
	HeartRate    int     `json:"heart_rate"`
	SleepHours   float64 `json:"sleep_hours"`
	WaterGlasses int     `json:"water_glasses"`
	Weight       float64 `json:"weight"`
	Date         string  `json:"date"`
}
