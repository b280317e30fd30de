package user

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	dob := date(2000, time.June, 15)

	cases := []struct {
		name string
		at   time.Time
		want int
	}{
		{"day before birthday", date(2024, time.June, 14), 23},
		{"on birthday", date(2024, time.June, 15), 24},
		{"day after birthday", date(2024, time.June, 16), 24},
		{"earlier month", date(2024, time.January, 1), 23},
		{"later month", date(2024, time.December, 31), 24},
	}
	for _, c := range cases {
		u := User{DateOfBirth: &dob}
		got := u.AgeAt(c.at)
		if got == nil {
			t.Fatalf("%s: AgeAt() = nil, want %d", c.name, c.want)
		}
		if *got != c.want {
			t.Errorf("%s: AgeAt() = %d, want %d", c.name, *got, c.want)
		}
	}
}

func TestAgeAt_YearEndBirthday(t *testing.T) {
	dob := date(2000, time.December, 31)
	u := User{DateOfBirth: &dob}

	got := u.AgeAt(date(2024, time.January, 1))
	if got == nil || *got != 23 {
		t.Errorf("AgeAt() = %v, want 23", got)
	}
}

func TestAgeAt_NoDateOfBirth(t *testing.T) {
	u := User{}
	if got := u.AgeAt(date(2024, time.June, 15)); got != nil {
		t.Errorf("AgeAt() = %v, want nil", got)
	}
}

func TestCanApprove(t *testing.T) {
	cases := []struct {
		level ApprovalLevel
		want  bool
	}{
		{LevelStaff, false},
		{LevelSupervisor, true},
		{LevelDeptHead, true},
		{LevelHRAdmin, true},
		{LevelITAdmin, true},
		{LevelDeputyDirector, true},
		{LevelDirector, true},
		{ApprovalLevel(""), false},
	}
	for _, c := range cases {
		u := User{ApprovalLevel: c.level}
		if got := u.CanApprove(); got != c.want {
			t.Errorf("CanApprove() with level %q = %v, want %v", c.level, got, c.want)
		}
	}
}

func TestIsCurrentlySuspended(t *testing.T) {
	cases := []struct {
		status EmployeeStatus
		want   bool
	}{
		{StatusSuspended, true},
		{StatusActive, false},
		{StatusOnLeave, false},
		{StatusTerminated, false},
		{StatusResigned, false},
	}
	for _, c := range cases {
		u := User{EmployeeStatus: c.status}
		if got := u.IsCurrentlySuspended(); got != c.want {
			t.Errorf("IsCurrentlySuspended() with status %q = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestFullName(t *testing.T) {
	middle := "Chukwuemeka"
	blank := "   "

	cases := []struct {
		name string
		user User
		want string
	}{
		{"first and last", User{FirstName: "Ada", LastName: "Obi"}, "Ada Obi"},
		{"with middle name", User{FirstName: "Ada", MiddleName: &middle, LastName: "Obi"}, "Ada Chukwuemeka Obi"},
		{"blank middle name skipped", User{FirstName: "Ada", MiddleName: &blank, LastName: "Obi"}, "Ada Obi"},
	}
	for _, c := range cases {
		if got := c.user.FullName(); got != c.want {
			t.Errorf("%s: FullName() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestShortName(t *testing.T) {
	u := User{FirstName: "Ada", LastName: "Obi"}
	if got := u.ShortName(); got != "Ada" {
		t.Errorf("ShortName() = %q, want %q", got, "Ada")
	}
}
