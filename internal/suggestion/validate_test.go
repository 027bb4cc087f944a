package suggestion

import "testing"

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"a@b.co",
		"a@b.com",
		"first.last@school.example.org",
		"parent+child@mail.example",
		"user_name%tag@sub.domain-two.io",
	}
	for _, addr := range valid {
		if !ValidEmail(addr) {
			t.Errorf("ValidEmail(%q) = false, want true", addr)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.example",
		"no-at-sign.example",
		"user@",
		"user@domain",
		"user@domain.c",
		"user@@domain.com",
		"user name@domain.com",
	}
	for _, addr := range invalid {
		if ValidEmail(addr) {
			t.Errorf("ValidEmail(%q) = true, want false", addr)
		}
	}
}

func TestAcceptableEmailInputTreatsEmptyAsProvisional(t *testing.T) {
	t.Parallel()

	if !AcceptableEmailInput("") {
		t.Fatal("AcceptableEmailInput(\"\") = false, want true")
	}
	if AcceptableEmailInput("not-an-address") {
		t.Fatal("AcceptableEmailInput(\"not-an-address\") = true, want false")
	}
	if !AcceptableEmailInput("a@b.co") {
		t.Fatal("AcceptableEmailInput(\"a@b.co\") = false, want true")
	}
}

func TestAcceptableMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"empty", "", false},
		{"short", "short", false},
		{"exactly ten", "1234567890", false},
		{"ten after trim", "  1234567890  ", false},
		{"eleven chars", "elevenchars", true},
		{"long note", "this is a long enough note", true},
		{"whitespace only", "                    ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := AcceptableMessage(tt.message); got != tt.want {
				t.Fatalf("AcceptableMessage(%q) = %t, want %t", tt.message, got, tt.want)
			}
		})
	}
}
