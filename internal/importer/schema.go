package importer

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dataset is the YAML file format for technicians, maintenance tasks,
// service tickets and customer master data.
type Dataset struct {
	Technicians []TechnicianImport `yaml:"technicians"`
	Tasks       []TaskImport       `yaml:"tasks"`
	Tickets     []TicketImport     `yaml:"tickets"`
	Customers   []CustomerImport   `yaml:"customers"`
}

// TechnicianImport defines one roster entry. Roster order is file order.
type TechnicianImport struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Initials string `yaml:"initials,omitempty"`
	Color    string `yaml:"color,omitempty"`
}

// TaskImport defines a maintenance visit. Date is YYYY-MM-DD.
type TaskImport struct {
	ID                 string `yaml:"id,omitempty"`
	ContactPerson      string `yaml:"contact_person"`
	Location           string `yaml:"location,omitempty"`
	Phone              string `yaml:"phone,omitempty"`
	Email              string `yaml:"email,omitempty"`
	Date               string `yaml:"date"`
	Status             string `yaml:"status,omitempty"`
	SchedulingStatus   string `yaml:"scheduling_status,omitempty"`
	ConfirmationStatus string `yaml:"confirmation_status,omitempty"`
	Technician         string `yaml:"technician,omitempty"`
	Notes              string `yaml:"notes,omitempty"`
}

// TicketImport defines a service ticket. CreatedAt is RFC 3339.
type TicketImport struct {
	ID            string `yaml:"id,omitempty"`
	Title         string `yaml:"title"`
	ContactPerson string `yaml:"contact_person,omitempty"`
	Location      string `yaml:"location,omitempty"`
	Phone         string `yaml:"phone,omitempty"`
	Email         string `yaml:"email,omitempty"`
	Priority      string `yaml:"priority,omitempty"`
	CreatedAt     string `yaml:"created_at"`
	Description   string `yaml:"description,omitempty"`
}

// CustomerImport defines an owner record. ID is the legacy AnlID; zero lets
// the store assign one.
type CustomerImport struct {
	ID            int64  `yaml:"id,omitempty"`
	OwnerNumber   string `yaml:"owner_number,omitempty"`
	Surname       string `yaml:"surname"`
	FirstName     string `yaml:"first_name"`
	Company       string `yaml:"company,omitempty"`
	Title         string `yaml:"title,omitempty"`
	Salutation    string `yaml:"salutation,omitempty"`
	Street        string `yaml:"street,omitempty"`
	HouseNumber   string `yaml:"house_number,omitempty"`
	PostalCode    string `yaml:"postal_code,omitempty"`
	City          string `yaml:"city,omitempty"`
	District      string `yaml:"district,omitempty"`
	Phone         string `yaml:"phone,omitempty"`
	BusinessPhone string `yaml:"business_phone,omitempty"`
	Mobile        string `yaml:"mobile,omitempty"`
	Email         string `yaml:"email,omitempty"`
	Notes         string `yaml:"notes,omitempty"`
}

// ParseDataset decodes YAML. Unknown keys are errors.
func ParseDataset(data []byte) (*Dataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return &ds, nil
}

// LoadDataset reads and parses a dataset file.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDataset(data)
}
