package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/cad-detect/internal/domain/records"
)

func TestDefault_SampleData(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.Len(t, c.History, 8)
	assert.Equal(t, "ECG-001", c.History[0].ID)
	assert.Equal(t, "PAT-12352", c.History[7].PatientID)
	assert.Equal(t, 87.6, c.History[3].Confidence)
	assert.True(t, c.History[1].CADDetected())

	require.Len(t, c.DoctorDashboard.Stats, 4)
	assert.Equal(t, "1,284", c.DoctorDashboard.Stats[0].Value)
	require.NotNil(t, c.DoctorDashboard.Stats[1].Trend)
	assert.False(t, c.DoctorDashboard.Stats[1].Trend.Positive)
	assert.Nil(t, c.DoctorDashboard.Stats[2].Trend)

	require.Len(t, c.DoctorDashboard.RecentPatients, 4)
	assert.Equal(t, records.RiskHigh, c.DoctorDashboard.RecentPatients[0].Risk)
	assert.Equal(t, "Today, 10:30 AM", c.DoctorDashboard.RecentPatients[0].Date)

	assert.Len(t, c.Features, 3)
	assert.Len(t, c.SignalInfo, 5)
	assert.Len(t, c.Upload.Requirements, 5)
	assert.Equal(t, "Sampling rate: 360 Hz recommended", c.Upload.Requirements[3])

	assert.Equal(t, 45, c.Report.Patient.Age)
	assert.Equal(t, "O+", c.Report.Patient.BloodType)
	assert.Len(t, c.Report.DetailedAnalysis, 6)
	assert.Len(t, c.Report.Recommendations, 5)
	assert.Equal(t, "RPT-2024-PAT-12345", c.Report.ReportID())
	assert.Equal(t, "Dr. Sarah Smith", c.Report.VerifiedBy())

	assert.True(t, c.PatientDashboard.QuickStats[2].IsAccent)
}

func TestDefault_ResultIsNormal(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	v := c.ResultView()
	assert.False(t, v.CADDetected)
	assert.Equal(t, 97.8, v.Confidence)
	assert.Equal(t, records.ResultNormal, v.Label)
	require.Len(t, v.Indicators, 4)
	assert.Equal(t, "75 BPM", v.Indicators[3].Value)
}

func TestLoad_FileOverridesAndValidates(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
app: {name: Demo}
history:
  - {id: X-1, patient: Ann, patientId: P-1, result: Normal, confidence: 50}
result: {cadDetected: true, confidenceDetected: 80, confidenceNormal: 90}
`), 0o644))

	c, err := Load(good)
	require.NoError(t, err)
	assert.Equal(t, "Demo", c.App.Name)
	assert.Len(t, c.History, 1)
	assert.Equal(t, 80.0, c.ResultView().Confidence)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
app: {name: Demo}
history:
  - {id: X-1, confidence: 120}
`), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "CAD Detection System", c.App.Name)
}

func TestFindPatient(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	p, ok := c.FindPatient("PAT-003")
	require.True(t, ok)
	assert.Equal(t, "Michael Brown", p.Name)

	_, ok = c.FindPatient("PAT-999")
	assert.False(t, ok)
}
