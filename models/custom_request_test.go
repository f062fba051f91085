package models

import (
	"strings"
	"testing"
)

func validRequest() CustomTourRequest {
	return CustomTourRequest{
		Customer: CustomerInfo{FullName: "Jane Doe", Email: "jane@example.com"},
		Country:  "Pakistan",
		Days:     10,
	}
}

func TestApplyDefaults(t *testing.T) {
	req := validRequest()
	req.ApplyDefaults()

	if req.Status != StatusNew {
		t.Errorf("expected status %q, got %q", StatusNew, req.Status)
	}
	if req.Source != RequestSource {
		t.Errorf("expected source %q, got %q", RequestSource, req.Source)
	}
	if req.Customer.ContactMethod != ContactMethodEmail {
		t.Errorf("expected contact method %q, got %q", ContactMethodEmail, req.Customer.ContactMethod)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	req := validRequest()
	req.Status = StatusContacted
	req.Customer.ContactMethod = ContactMethodWhatsApp
	req.ApplyDefaults()

	if req.Status != StatusContacted {
		t.Errorf("explicit status overwritten: %q", req.Status)
	}
	if req.Customer.ContactMethod != ContactMethodWhatsApp {
		t.Errorf("explicit contact method overwritten: %q", req.Customer.ContactMethod)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CustomTourRequest)
		missing string
	}{
		{"no fullName", func(r *CustomTourRequest) { r.Customer.FullName = "" }, "customer.fullName"},
		{"no email", func(r *CustomTourRequest) { r.Customer.Email = "" }, "customer.email"},
		{"no country", func(r *CustomTourRequest) { r.Country = "" }, "country"},
		{"no days", func(r *CustomTourRequest) { r.Days = 0 }, "days"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			req.ApplyDefaults()

			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.missing) {
				t.Errorf("error %q does not name missing field %q", err, tc.missing)
			}
		})
	}
}

func TestValidateRejectsUnknownStatus(t *testing.T) {
	req := validRequest()
	req.Status = "Pending"
	req.ApplyDefaults()

	if err := req.Validate(); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestValidateAcceptsApproved(t *testing.T) {
	req := validRequest()
	req.Status = StatusApproved
	req.ApplyDefaults()

	if err := req.Validate(); err != nil {
		t.Fatalf("Approved should be a valid status: %v", err)
	}
}

func TestIsApproval(t *testing.T) {
	approved := StatusApproved
	contacted := StatusContacted

	upd := CustomTourRequestUpdate{Status: &approved}
	if !upd.IsApproval() {
		t.Error("expected IsApproval for Approved status")
	}

	upd = CustomTourRequestUpdate{Status: &contacted}
	if upd.IsApproval() {
		t.Error("Contacted must not count as approval")
	}

	upd = CustomTourRequestUpdate{}
	if upd.IsApproval() {
		t.Error("missing status must not count as approval")
	}
}
