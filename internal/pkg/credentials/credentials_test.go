package credentials

import (
	"errors"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"  user@example.com  ", "user@example.com"},
		{"User@EXAMPLE.COM", "User@example.com"}, // local part case is kept
		{"User@Example.Com", "User@example.com"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
	}
	for _, c := range cases {
		got := NormalizeEmail(c.input)
		if got != c.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	if !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("HashPassword(\"\") error = %v, want ErrEmptyPassword", err)
	}
}

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Error("HashPassword() returned the plaintext")
	}

	if !VerifyPassword("correct horse battery staple", hash) {
		t.Error("VerifyPassword() = false for the matching password")
	}
	if VerifyPassword("wrong password", hash) {
		t.Error("VerifyPassword() = true for a non-matching password")
	}
}

func TestVerifyPassword_BadHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Error("VerifyPassword() = true for a malformed hash")
	}
}
