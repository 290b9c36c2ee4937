package validator

import (
	"testing"
	"time"

	"tripwise/pkg/logger"
	"tripwise/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func TestValidateRegistration_PasswordPolicy(t *testing.T) {
	v := NewAccountValidator(testLogger())

	base := func(password string) *model.RegisterInput {
		return &model.RegisterInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Password:  password,
		}
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "Secret1", false},
		{"too short", "Ab1", true},
		{"missing upper-case", "secret1", true},
		{"missing lower-case", "SECRET1", true},
		{"missing digit", "Secrets", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegistration(base(tt.password))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegistration() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRegistration_ReportsAllViolations(t *testing.T) {
	v := NewAccountValidator(testLogger())

	err := v.ValidateRegistration(&model.RegisterInput{
		FirstName: "",
		LastName:  "",
		Email:     "not-an-email",
		Password:  "weak",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 4 {
		t.Errorf("expected 4 field violations, got %d: %v", len(verrs), verrs)
	}

	details := verrs.Details()
	for _, field := range []string{"FirstName", "LastName", "Email", "Password"} {
		if _, present := details[field]; !present {
			t.Errorf("expected details to include %s, got %v", field, details)
		}
	}
}

func TestValidateRegistration_BadEmail(t *testing.T) {
	v := NewAccountValidator(testLogger())

	for _, email := range []string{"", "plain", "missing@tld@twice.com", "@nodомain"} {
		err := v.ValidateRegistration(&model.RegisterInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     email,
			Password:  "Secret1",
		})
		if err == nil {
			t.Errorf("expected error for email %q", email)
		}
	}
}

func TestValidatePassport(t *testing.T) {
	v := NewAccountValidator(testLogger())

	tests := []struct {
		name    string
		in      *model.PassportInput
		wantErr bool
	}{
		{
			name: "valid passport",
			in: &model.PassportInput{
				Number:         "AB123456",
				ExpiryDate:     time.Now().Add(365 * 24 * time.Hour),
				IssuingCountry: "US",
			},
			wantErr: false,
		},
		{
			name: "expired passport rejected",
			in: &model.PassportInput{
				Number:         "AB123456",
				ExpiryDate:     time.Now().Add(-24 * time.Hour),
				IssuingCountry: "US",
			},
			wantErr: true,
		},
		{
			name: "bad country code",
			in: &model.PassportInput{
				Number:         "AB123456",
				ExpiryDate:     time.Now().Add(365 * 24 * time.Hour),
				IssuingCountry: "USA",
			},
			wantErr: true,
		},
		{
			name: "number too short",
			in: &model.PassportInput{
				Number:         "A1",
				ExpiryDate:     time.Now().Add(365 * 24 * time.Hour),
				IssuingCountry: "US",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePassport(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassport() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePreferencesUpdate(t *testing.T) {
	v := NewAccountValidator(testLogger())

	if err := v.ValidatePreferencesUpdate(&model.PreferencesUpdate{Currency: "EUR", Language: "fr"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := v.ValidatePreferencesUpdate(&model.PreferencesUpdate{Currency: "BTC"}); err == nil {
		t.Error("expected error for unsupported currency")
	}

	if err := v.ValidatePreferencesUpdate(&model.PreferencesUpdate{Language: "xx"}); err == nil {
		t.Error("expected error for unsupported language")
	}
}
