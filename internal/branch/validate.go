package branch

import (
	"errors"
	"strings"

	"github.com/asaskevich/govalidator"
)

// phonePattern accepts digits, spaces, dashes and an optional leading plus.
const phonePattern = `^[+]?[\d\s-]+$`

type Payload struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	District string `json:"district"`
	Phone    string `json:"phone"`
	Manager  string `json:"manager"`
	Hours    string `json:"hours"`
}

func (p *Payload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)

	if p.Name == "" || p.Address == "" || p.District == "" || p.Phone == "" || p.Manager == "" || p.Hours == "" {
		return errors.New("all branch fields are required")
	}
	if !govalidator.Matches(p.Phone, phonePattern) {
		return errors.New(p.Phone + " is not a valid phone number")
	}
	return nil
}
