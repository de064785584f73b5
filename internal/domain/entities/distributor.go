package entities

import "time"

// Distributor is a reseller shown on the "where to buy" map.
type Distributor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	ContactName string    `json:"contact_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	Lat         *float64  `json:"lat,omitempty"`
	Lng         *float64  `json:"lng,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DistributorPatch struct {
	Name        *string  `json:"name,omitempty"`
	City        *string  `json:"city,omitempty"`
	State       *string  `json:"state,omitempty"`
	Country     *string  `json:"country,omitempty"`
	ContactName *string  `json:"contact_name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

func (patch DistributorPatch) Apply(d *Distributor) {
	setString(&d.Name, patch.Name)
	setString(&d.City, patch.City)
	setString(&d.State, patch.State)
	setString(&d.Country, patch.Country)
	setString(&d.ContactName, patch.ContactName)
	setString(&d.Phone, patch.Phone)
	setString(&d.Email, patch.Email)
	setString(&d.Address, patch.Address)
	if patch.Lat != nil {
		v := *patch.Lat
		d.Lat = &v
	}
	if patch.Lng != nil {
		v := *patch.Lng
		d.Lng = &v
	}
}

type DistributorFilter struct {
	Search  string
	State   string
	Country string
}
