package utils

import "testing"

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		expectedCode string
		expectedFull string
	}{
		{
			name:         "bare 10 digit number defaults to +91",
			raw:          "9876543210",
			expectedCode: "+91",
			expectedFull: "+919876543210",
		},
		{
			name:         "already canonical +91 number",
			raw:          "+919876543210",
			expectedCode: "+91",
			expectedFull: "+919876543210",
		},
		{
			name:         "91 prefix without plus",
			raw:          "919876543210",
			expectedCode: "+91",
			expectedFull: "+919876543210",
		},
		{
			name:         "separators stripped",
			raw:          "+91 98765-43210",
			expectedCode: "+91",
			expectedFull: "+919876543210",
		},
		{
			name:         "singapore number via registry",
			raw:          "+6581234567",
			expectedCode: "+65",
			expectedFull: "+6581234567",
		},
		{
			name:         "UK number via registry",
			raw:          "+447911123456",
			expectedCode: "+44",
			expectedFull: "+447911123456",
		},
		{
			// Without a plus, 10 digits are always a local number even when
			// the leading digits collide with a registry dial code. Only the
			// explicit "+65..." form binds Singapore.
			name:         "bare 10 digits colliding with a dial code stay local",
			raw:          "6581234567",
			expectedCode: "+91",
			expectedFull: "+916581234567",
		},
		{
			name:         "unrecognized long number keeps last 10 digits",
			raw:          "00959876543210",
			expectedCode: "+91",
			expectedFull: "+919876543210",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMobile(tt.raw)
			if got.CountryCode != tt.expectedCode {
				t.Errorf("NormalizeMobile(%q).CountryCode = %q, want %q",
					tt.raw, got.CountryCode, tt.expectedCode)
			}
			if got.FullNumber != tt.expectedFull {
				t.Errorf("NormalizeMobile(%q).FullNumber = %q, want %q",
					tt.raw, got.FullNumber, tt.expectedFull)
			}
		})
	}
}

func TestNormalizeMobileIdempotent(t *testing.T) {
	inputs := []string{"9876543210", "+919876543210", "+6581234567", "077-9111-23456"}
	for _, raw := range inputs {
		first := NormalizeMobile(raw)
		second := NormalizeMobile(first.FullNumber)
		if second.FullNumber != first.FullNumber {
			t.Errorf("normalization not idempotent for %q: %q then %q",
				raw, first.FullNumber, second.FullNumber)
		}
	}
}

func TestValidateMobile(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		expectErr bool
	}{
		{name: "valid +91 number", raw: "9876543210", expectErr: false},
		{name: "valid +91 starting with 6", raw: "6123456789", expectErr: false},
		{name: "+91 starting with 5 rejected", raw: "5876543210", expectErr: true},
		{name: "valid singapore number", raw: "+6581234567", expectErr: false},
		{name: "letters rejected", raw: "98765abcde", expectErr: true},
		{name: "too short rejected", raw: "98765", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMobile(NormalizeMobile(tt.raw))
			if tt.expectErr && err == nil {
				t.Errorf("ValidateMobile(%q) = nil, want error", tt.raw)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateMobile(%q) = %v, want nil", tt.raw, err)
			}
		})
	}
}

func TestMaskMobile(t *testing.T) {
	m := NormalizeMobile("+919876543210")
	if got := MaskMobile(m); got != "******3210" {
		t.Errorf("MaskMobile = %q, want %q", got, "******3210")
	}

	short := MobileIdentity{CountryCode: "+91", LocalNumber: "321"}
	if got := MaskMobile(short); got != "******321" {
		t.Errorf("MaskMobile short = %q, want %q", got, "******321")
	}
}
