package utils

import (
	"context"
	"screening-service/internal/pkg/constvars"
	"time"
)

func CalculateAge(birthDate string) int {
	if birthDate == "" {
		return 0
	}

	dob, err := time.Parse(constvars.TrackerDateLayout, birthDate)
	if err != nil {
		return 0
	}

	today := time.Now()
	age := today.Year() - dob.Year()
	if today.YearDay() < dob.YearDay() {
		age--
	}

	return age
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
