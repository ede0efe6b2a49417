package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	r, err := Parse(" Doctor ")
	require.NoError(t, err)
	assert.Equal(t, Doctor, r)

	r, err = Parse("patient")
	require.NoError(t, err)
	assert.Equal(t, Patient, r)

	_, err = Parse("nurse")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestFromPath(t *testing.T) {
	assert.Equal(t, Doctor, FromPath("/doctor/history"))
	assert.Equal(t, Patient, FromPath("/patient/history"))
	assert.Equal(t, Patient, FromPath("/elsewhere"))
}

func TestProfiles(t *testing.T) {
	d := ProfileFor(Doctor)
	assert.Equal(t, "/doctor/dashboard", d.DashboardPath())
	assert.Equal(t, "/doctor/login", d.LoginPath())
	assert.True(t, d.ShowPatientColumn)
	assert.Equal(t, "Dr", d.Initials)
	require.Len(t, d.Menu, len(Pages))

	p := ProfileFor(Patient)
	assert.False(t, p.ShowPatientColumn)
	assert.Equal(t, "Upload My ECG", p.Menu[1].Label)
	assert.Equal(t, "Welcome back!", p.WelcomeToast)

	for i, page := range Pages {
		assert.Equal(t, d.Path(page), d.Menu[i].Path)
		assert.Equal(t, p.Path(page), p.Menu[i].Path)
	}

	assert.Equal(t, Patient, ProfileFor("admin").Role)

	_, err := Resolve("admin")
	assert.Error(t, err)
}
