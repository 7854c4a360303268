package constvars

const (
	LifestyleRiskHigh   = "high"
	LifestyleRiskMedium = "medium"
	LifestyleRiskLow    = "low"
)

const (
	AgeGroupYoung      = "young"
	AgeGroupAdult      = "adult"
	AgeGroupMiddleAged = "middle_aged"
	AgeGroupSenior     = "senior"
)

const (
	CityTierOne   = 1
	CityTierTwo   = 2
	CityTierThree = 3
)

const (
	OccupationRetired       = "retired"
	OccupationFreelancer    = "freelancer"
	OccupationStudent       = "student"
	OccupationGovernmentJob = "government_job"
	OccupationBusinessOwner = "business_owner"
	OccupationUnemployed    = "unemployed"
	OccupationPrivateJob    = "private_job"
)

var TierOneCities = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune"}

var TierTwoCities = []string{
	"Jaipur", "Chandigarh", "Indore", "Lucknow", "Patna", "Ranchi", "Visakhapatnam", "Coimbatore",
	"Bhopal", "Nagpur", "Vadodara", "Surat", "Rajkot", "Jodhpur", "Raipur", "Amritsar", "Varanasi",
	"Agra", "Dehradun", "Mysore", "Jabalpur", "Guwahati", "Thiruvananthapuram", "Ludhiana", "Nashik",
	"Allahabad", "Udaipur", "Aurangabad", "Hubli", "Belgaum", "Salem", "Vijayawada", "Tiruchirappalli",
	"Bhavnagar", "Gwalior", "Dhanbad", "Bareilly", "Aligarh", "Gaya", "Kozhikode", "Warangal",
	"Kolhapur", "Bilaspur", "Jalandhar", "Noida", "Guntur", "Asansol", "Siliguri",
}
