package converter

import (
	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"
)

// UserToProfileResponse assembles the denormalized aggregate the client
// reads: profile fields, today's snapshot and the booking lists.
func UserToProfileResponse(
	user *entity.User,
	snapshot *entity.HealthSnapshot,
	consultations []entity.Consultation,
	yogaSessions []entity.YogaSession,
) *dto.ProfileResponse {
	if user == nil {
		return nil
	}

	avatar := user.Avatar
	if avatar == "" {
		avatar = entity.DeriveAvatar(user.Name)
	}

	return &dto.ProfileResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		Age:           user.Age,
		Avatar:        avatar,
		Preferences:   PreferencesToPayload(user.Preferences),
		HealthData:    SnapshotToResponse(snapshot),
		Consultations: ConsultationsToResponses(consultations),
		YogaSessions:  YogaSessionsToResponses(yogaSessions),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func PreferencesToPayload(p entity.Preferences) dto.PreferencesPayload {
	return dto.PreferencesPayload{
		Notifications: dto.NotificationPreferencesPayload{
			Appointments: p.Notifications.Appointments,
			Medications:  p.Notifications.Medications,
			HealthTips:   p.Notifications.HealthTips,
			Yoga:         p.Notifications.Yoga,
			Diet:         p.Notifications.Diet,
		},
		Privacy: dto.PrivacyPreferencesPayload{
			ShareHealthData: p.Privacy.ShareHealthData,
			PublicProfile:   p.Privacy.PublicProfile,
			DataAnalytics:   p.Privacy.DataAnalytics,
		},
	}
}

func PayloadToPreferences(p dto.PreferencesPayload) entity.Preferences {
	return entity.Preferences{
		Notifications: entity.NotificationPreferences{
			Appointments: p.Notifications.Appointments,
			Medications:  p.Notifications.Medications,
			HealthTips:   p.Notifications.HealthTips,
			Yoga:         p.Notifications.Yoga,
			Diet:         p.Notifications.Diet,
		},
		Privacy: entity.PrivacyPreferences{
			ShareHealthData: p.Privacy.ShareHealthData,
			PublicProfile:   p.Privacy.PublicProfile,
			DataAnalytics:   p.Privacy.DataAnalytics,
		},
	}
}
