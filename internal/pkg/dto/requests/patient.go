package requests

// CreatePatient is the full candidate record. Pointer fields keep "missing"
// apart from zero values so that required checks report absent fields.
type CreatePatient struct {
	ID     string   `json:"id" validate:"required"`
	Name   *string  `json:"name" validate:"required"`
	City   *string  `json:"city" validate:"required"`
	Age    *int     `json:"age" validate:"required,gt=0"`
	Gender *string  `json:"gender" validate:"required,gender"`
	Height *float64 `json:"height" validate:"required,gt=0"`
	Weight *int     `json:"weight" validate:"required,gt=0"`
}

// UpdatePatient only carries the fields a client sent.
type UpdatePatient struct {
	Name   Optional[string]  `json:"name"`
	City   Optional[string]  `json:"city"`
	Age    Optional[int]     `json:"age"`
	Gender Optional[string]  `json:"gender"`
	Height Optional[float64] `json:"height"`
	Weight Optional[int]     `json:"weight"`
}

// PresentFields lists the json names of the fields sent in the patch.
func (p *UpdatePatient) PresentFields() []string {
	fields := make([]string, 0, 6)
	if p.Name.Set {
		fields = append(fields, "name")
	}
	if p.City.Set {
		fields = append(fields, "city")
	}
	if p.Age.Set {
		fields = append(fields, "age")
	}
	if p.Gender.Set {
		fields = append(fields, "gender")
	}
	if p.Height.Set {
		fields = append(fields, "height")
	}
	if p.Weight.Set {
		fields = append(fields, "weight")
	}
	return fields
}

type SortPatients struct {
	SortBy string
	Order  string
}
