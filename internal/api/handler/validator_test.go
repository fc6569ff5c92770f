package handler

import (
	"strings"
	"testing"
)

func strp(s string) *string { return &s }

func TestValidator_PresenceNotEmptiness(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&caseStudyRequest{Title: strp(""), Industry: strp(""), Summary: strp("")})
	if err != nil {
		t.Fatalf("empty strings must pass presence checks, got %v", err)
	}

	err = v.Validate(&caseStudyRequest{Title: strp("t")})
	if err == nil {
		t.Fatalf("expected missing fields to fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "industry is required") || !strings.Contains(msg, "summary is required") {
		t.Fatalf("unexpected message: %s", msg)
	}
	if strings.Contains(msg, "title") {
		t.Fatalf("title was present: %s", msg)
	}
}

func TestValidator_Email(t *testing.T) {
	v := NewValidator()

	ok := &loginRequest{Email: strp("alice@example.com"), Password: strp("")}
	if err := v.Validate(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := &loginRequest{Email: strp("alice@"), Password: strp("x")}
	err := v.Validate(bad)
	if err == nil || err.Error() != "email must be a valid email" {
		t.Fatalf("unexpected error: %v", err)
	}
}
