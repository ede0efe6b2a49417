package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHistory() []HistoryRecord {
	return []HistoryRecord{
		{ID: "ECG-001", Patient: "John Doe", PatientID: "PAT-12345", Result: ResultNormal, Confidence: 97.8},
		{ID: "ECG-002", Patient: "Emily Davis", PatientID: "PAT-12346", Result: ResultCADDetected, Confidence: 89.2},
		{ID: "ECG-003", Patient: "Michael Brown", PatientID: "PAT-12347", Result: ResultNormal, Confidence: 95.4},
		{ID: "ECG-004", Patient: "Sarah Wilson", PatientID: "PAT-DAVIS-9", Result: ResultCADDetected, Confidence: 87.6},
		{ID: "ECG-005", Patient: "Ann davison", PatientID: "PAT-12349", Result: ResultNormal, Confidence: 99.1},
	}
}

func TestFilterHistory_Davis(t *testing.T) {
	in := sampleHistory()
	out := FilterHistory(in, "Davis")

	require.Len(t, out, 3)
	assert.Equal(t, "ECG-002", out[0].ID)
	assert.Equal(t, "ECG-004", out[1].ID)
	assert.Equal(t, "ECG-005", out[2].ID)
}

func TestFilterHistory_MatchesRecordID(t *testing.T) {
	out := FilterHistory(sampleHistory(), "ecg-003")
	require.Len(t, out, 1)
	assert.Equal(t, "Michael Brown", out[0].Patient)
}

func TestFilterHistory_EmptyTermKeepsAll(t *testing.T) {
	in := sampleHistory()
	assert.Equal(t, in, FilterHistory(in, ""))
	assert.Empty(t, FilterHistory(in, "zzz"))
}

func TestFilterHistory_TermIsNotTrimmed(t *testing.T) {
	in := sampleHistory()
	assert.Empty(t, FilterHistory(in, " PAT"))
	assert.Len(t, FilterHistory(in, "PAT"), len(in))
	// spasi di tengah tetap dicocokkan apa adanya
	require.Len(t, FilterHistory(in, "john d"), 1)
}

func TestFilterHistory_DoesNotMutateInput(t *testing.T) {
	in := sampleHistory()
	before := append([]HistoryRecord(nil), in...)
	_ = FilterHistory(in, "brown")
	assert.Equal(t, before, in)
}

func TestPaginate(t *testing.T) {
	rows := sampleHistory()

	p := Paginate(rows, 1, 2)
	assert.Len(t, p.Items, 2)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 5, p.Total)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)

	p = Paginate(rows, 3, 2)
	assert.Len(t, p.Items, 1)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)

	p = Paginate(rows, 9, 2)
	assert.Empty(t, p.Items)
	assert.Equal(t, 9, p.Page)

	p = Paginate(rows, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Len(t, p.Items, 5)

	p = Paginate(nil, 1, 10)
	assert.Equal(t, 1, p.TotalPages)
	assert.Empty(t, p.Items)
}

func TestBuildResult(t *testing.T) {
	cfg := ResultConfig{ConfidenceDetected: 87.3, ConfidenceNormal: 97.8, HeartRate: "75 BPM"}

	v := BuildResult(cfg)
	assert.Equal(t, ResultNormal, v.Label)
	assert.Equal(t, 97.8, v.Confidence)
	require.Len(t, v.Indicators, 4)
	assert.Equal(t, "Absent", v.Indicators[1].Value)
	assert.False(t, v.Indicators[0].Alert)

	cfg.CADDetected = true
	v = BuildResult(cfg)
	assert.Equal(t, ResultCADDetected, v.Label)
	assert.Equal(t, 87.3, v.Confidence)
	assert.Equal(t, "Detected", v.Indicators[0].Value)
	assert.True(t, v.Indicators[1].Alert)
	assert.False(t, v.Indicators[2].Alert)
	assert.Equal(t, "75 BPM", v.Indicators[3].Value)
}

func TestReport_IDAndFields(t *testing.T) {
	r := Report{Patient: PatientInfo{ID: "PAT-12345", Age: 45, Doctor: "Dr. Sarah Smith"}}
	assert.Equal(t, "RPT-2024-PAT-12345", r.ReportID())
	assert.Equal(t, "Dr. Sarah Smith", r.VerifiedBy())

	fields := r.PatientFields()
	require.Len(t, fields, 8)
	assert.Equal(t, "45 years", fields[2].Value)
	assert.Equal(t, "Cardiology", fields[7].Value)
}
