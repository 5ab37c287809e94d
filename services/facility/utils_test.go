package facility

import "testing"

func TestVerifyPasswordComplexity(t *testing.T) {
	tests := []struct {
		name    string
		pw      string
		wantErr bool
	}{
		{"valid", "Str0ngpass", false},
		{"too short", "Ab1", true},
		{"no uppercase", "weakpass1", true},
		{"no lowercase", "WEAKPASS1", true},
		{"no number", "Weakpassword", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := VerifyPasswordComplexity(tc.pw)
			if (err != nil) != tc.wantErr {
				t.Fatalf("VerifyPasswordComplexity(%q) error = %v, wantErr %v", tc.pw, err, tc.wantErr)
			}
		})
	}
}

func TestVerifyEmailFormat(t *testing.T) {
	valid := []string{"clinic@example.com", "front.desk@hospital.org.ng"}
	for _, email := range valid {
		if err := VerifyEmailFormat(email); err != nil {
			t.Errorf("expected %q to pass, got %v", email, err)
		}
	}
	invalid := []string{"", "no-at-sign", "two@@example.com", "spaces in@example.com", "no-domain@"}
	for _, email := range invalid {
		if err := VerifyEmailFormat(email); err == nil {
			t.Errorf("expected %q to fail", email)
		}
	}
}
