package utils

import (
	"patient-service/internal/pkg/dto/requests"
	"strings"
)

// SanitizePredictPremiumRequest strips surrounding whitespace only. Case is
// kept, city tiers and occupations are matched exactly.
func SanitizePredictPremiumRequest(request *requests.PredictPremium) {
	request.City = strings.TrimSpace(request.City)
	request.Occupation = strings.TrimSpace(request.Occupation)
}
