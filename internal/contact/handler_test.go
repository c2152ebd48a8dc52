package contact

import "testing"

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		wantErr bool
	}{
		{
			name: "valid message",
			payload: Payload{
				Name:    "Nimal Silva",
				Email:   "nimal@example.com",
				Subject: "Loan inquiry",
				Message: "What are your current rates?",
			},
		},
		{
			name: "missing name",
			payload: Payload{
				Email:   "nimal@example.com",
				Subject: "Loan inquiry",
				Message: "What are your current rates?",
			},
			wantErr: true,
		},
		{
			name: "missing message",
			payload: Payload{
				Name:    "Nimal Silva",
				Email:   "nimal@example.com",
				Subject: "Loan inquiry",
			},
			wantErr: true,
		},
		{
			name: "bad email",
			payload: Payload{
				Name:    "Nimal Silva",
				Email:   "not-an-email",
				Subject: "Loan inquiry",
				Message: "What are your current rates?",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
