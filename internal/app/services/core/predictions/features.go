package predictions

import (
	"math"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/dto/requests"
	"slices"
)

// BuildPremiumFeatures derives the model's feature row from a validated
// request.
func BuildPremiumFeatures(request *requests.PredictPremium) requests.PremiumFeatures {
	bmi := FlooredBMI(*request.Height, *request.Weight)
	return requests.PremiumFeatures{
		BMI:           bmi,
		AgeGroup:      AgeGroup(*request.Age),
		LifestyleRisk: LifestyleRisk(*request.Smoker, bmi),
		CityTier:      CityTier(request.City),
		IncomeLPA:     *request.IncomeLPA,
		Occupation:    request.Occupation,
	}
}

// FlooredBMI is the floor division weight // height², unlike the two decimal
// bmi stored on patient records. The model was trained on this variant.
func FlooredBMI(height, weight float64) float64 {
	return floorDiv(weight, height*height)
}

// floorDiv floors the exact quotient x / y rather than the rounded one, so
// 58.87 / 1.45² gives 27 and not 28.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}

func LifestyleRisk(smoker bool, bmi float64) string {
	switch {
	case smoker && bmi > 30:
		return constvars.LifestyleRiskHigh
	case smoker || bmi > 27:
		return constvars.LifestyleRiskMedium
	default:
		return constvars.LifestyleRiskLow
	}
}

func CityTier(city string) int {
	switch {
	case slices.Contains(constvars.TierOneCities, city):
		return constvars.CityTierOne
	case slices.Contains(constvars.TierTwoCities, city):
		return constvars.CityTierTwo
	default:
		return constvars.CityTierThree
	}
}

func AgeGroup(age int) string {
	switch {
	case age < 25:
		return constvars.AgeGroupYoung
	case age < 45:
		return constvars.AgeGroupAdult
	case age < 60:
		return constvars.AgeGroupMiddleAged
	default:
		return constvars.AgeGroupSenior
	}
}
