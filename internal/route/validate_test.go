package route

import "testing"

func validPayload() Payload {
	return Payload{
		Name:        "Kandy Service Route",
		Address:     "45 Temple Road",
		District:    "Kandy",
		ManagerName: "S. Fernando",
		PhoneNumber: "+94 (081) 223-4455",
		Hours:       "9am - 5pm",
	}
}

func TestPayloadValidate(t *testing.T) {
	p := validPayload()
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestPayloadValidateMissingFields(t *testing.T) {
	fields := []func(*Payload){
		func(p *Payload) { p.Name = "" },
		func(p *Payload) { p.Address = "" },
		func(p *Payload) { p.District = "" },
		func(p *Payload) { p.ManagerName = "" },
		func(p *Payload) { p.PhoneNumber = "" },
		func(p *Payload) { p.Hours = "" },
	}

	for i, clear := range fields {
		p := validPayload()
		clear(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("case %d: Validate() = nil, want error", i)
		}
	}
}

func TestPayloadValidatePhoneNumber(t *testing.T) {
	good := []string{"0812234455", "(081) 223-4455", "+94812234455", "081 223 4455"}
	for _, phone := range good {
		p := validPayload()
		p.PhoneNumber = phone
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() with phoneNumber %q = %v, want nil", phone, err)
		}
	}

	bad := []string{
		"12345",                 // below the 7-character minimum
		"123456789012345678901", // above the 20-character maximum
		"081/2234455",           // disallowed character
		"phone",                 // letters
	}
	for _, phone := range bad {
		p := validPayload()
		p.PhoneNumber = phone
		if err := p.Validate(); err == nil {
			t.Errorf("Validate() with phoneNumber %q = nil, want error", phone)
		}
	}
}
