package organization

import "time"

type Organization struct {
	ID             string
	Name           string
	NormalizedName string
	RegistryNumber string
	ContactEmail   string
	CompanySize    int
	YearFounded    int
	CreatedBy      string
	UpdatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
