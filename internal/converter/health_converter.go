package converter

import (
	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"
)

// SnapshotToResponse converts a snapshot row; nil maps to the all-zero
// default for today, since absence of a row is not an error.
func SnapshotToResponse(snapshot *entity.HealthSnapshot) dto.HealthSnapshotResponse {
	if snapshot == nil {
		return dto.HealthSnapshotResponse{Date: entity.Today()}
	}

	return dto.HealthSnapshotResponse{
		Steps:        snapshot.Steps,
		HeartRate:    snapshot.HeartRate,
		SleepHours:   snapshot.SleepHours,
		WaterGlasses: snapshot.WaterGlasses,
		Weight:       snapshot.Weight,
		Date:         snapshot.Date,
	}
}
