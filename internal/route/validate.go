package route

import (
	"errors"
	"strings"

	"github.com/asaskevich/govalidator"
)

// phonePattern allows an optional leading plus, then 7 to 20 characters of
// digits, spaces, dashes or parentheses.
const phonePattern = `^\+?[0-9\s\-()]{7,20}$`

type Payload struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	District    string `json:"district"`
	ManagerName string `json:"managerName"`
	PhoneNumber string `json:"phoneNumber"`
	Hours       string `json:"hours"`
}

func (p *Payload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)

	if p.Name == "" || p.Address == "" || p.District == "" || p.ManagerName == "" || p.PhoneNumber == "" || p.Hours == "" {
		return errors.New("all root fields are required")
	}
	if !govalidator.Matches(p.PhoneNumber, phonePattern) {
		return errors.New("please enter a valid phone number")
	}
	return nil
}
