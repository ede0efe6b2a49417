package role

import (
	"errors"
	"strings"
)

// Role of the signed-in user.
type Role string

const (
	Doctor  Role = "doctor"
	Patient Role = "patient"
)

var ErrUnknownRole = errors.New("unknown role")

func Parse(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case Doctor:
		return Doctor, nil
	case Patient:
		return Patient, nil
	}
	return "", ErrUnknownRole
}

// FromPath picks the role the way the shared pages do: any path mentioning
// "doctor" is the doctor variant, everything else the patient one.
func FromPath(p string) Role {
	if strings.Contains(p, string(Doctor)) {
		return Doctor
	}
	return Patient
}

func (r Role) String() string { return string(r) }

// MenuItem is one sidebar entry.
type MenuItem struct {
	Icon  string
	Label string
	Path  string
}

// Profile is everything role-dependent, resolved once when a page is
// entered.
type Profile struct {
	Role              Role
	BasePath          string
	DisplayName       string
	Initials          string
	PatientID         string
	WelcomeToast      string
	Menu              []MenuItem
	ShowPatientColumn bool
	UploadLabel       string
	Accent            string
}

func (p Profile) Path(page string) string { return p.BasePath + "/" + page }
func (p Profile) LoginPath() string       { return p.Path("login") }
func (p Profile) DashboardPath() string   { return p.Path("dashboard") }
func (p Profile) LogoutPath() string      { return p.Path("logout") }

// Pages every role exposes under its base path.
var Pages = []string{"dashboard", "upload", "signal", "result", "reports", "history"}

var profiles = map[Role]Profile{
	Doctor: {
		Role:         Doctor,
		BasePath:     "/doctor",
		DisplayName:  "Dr. Smith",
		Initials:     "Dr",
		WelcomeToast: "Welcome back, Doctor!",
		Menu: []MenuItem{
			{Icon: "home", Label: "Dashboard", Path: "/doctor/dashboard"},
			{Icon: "upload", Label: "Upload ECG", Path: "/doctor/upload"},
			{Icon: "activity", Label: "Signal Display", Path: "/doctor/signal"},
			{Icon: "file-heart", Label: "CAD Result", Path: "/doctor/result"},
			{Icon: "file-text", Label: "Reports", Path: "/doctor/reports"},
			{Icon: "history", Label: "History", Path: "/doctor/history"},
		},
		ShowPatientColumn: true,
		UploadLabel:       "Upload New ECG",
		Accent:            "primary",
	},
	Patient: {
		Role:         Patient,
		BasePath:     "/patient",
		DisplayName:  "John Doe",
		Initials:     "P",
		PatientID:    "PAT-12345",
		WelcomeToast: "Welcome back!",
		Menu: []MenuItem{
			{Icon: "home", Label: "Dashboard", Path: "/patient/dashboard"},
			{Icon: "upload", Label: "Upload My ECG", Path: "/patient/upload"},
			{Icon: "activity", Label: "My Signal", Path: "/patient/signal"},
			{Icon: "file-heart", Label: "My Results", Path: "/patient/result"},
			{Icon: "file-text", Label: "My Reports", Path: "/patient/reports"},
			{Icon: "history", Label: "History", Path: "/patient/history"},
		},
		UploadLabel: "Upload My ECG",
		Accent:      "accent",
	},
}

// ProfileFor returns the profile of r. Unknown roles get the patient
// profile, matching FromPath.
func ProfileFor(r Role) Profile {
	if p, ok := profiles[r]; ok {
		return p
	}
	return profiles[Patient]
}

// Resolve parses s and returns its profile.
func Resolve(s string) (Profile, error) {
	r, err := Parse(s)
	if err != nil {
		return Profile{}, err
	}
	return ProfileFor(r), nil
}
