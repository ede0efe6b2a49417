package records

import "fmt"

// ResultConfig holds the fixed detection outcome. There is no model behind
// these numbers.
type ResultConfig struct {
	CADDetected        bool         `yaml:"cadDetected"`
	ConfidenceDetected float64      `yaml:"confidenceDetected"`
	ConfidenceNormal   float64      `yaml:"confidenceNormal"`
	HeartRate          string       `yaml:"heartRate"`
	PatientID          string       `yaml:"patientId"`
	Details            []LabelValue `yaml:"details"`
	AdviceDetected     string       `yaml:"adviceDetected"`
	AdviceNormal       string       `yaml:"adviceNormal"`
}

// ResultView is what the CAD result page renders.
type ResultView struct {
	CADDetected    bool           `json:"cad_detected"`
	Label          string         `json:"label"`
	Summary        string         `json:"summary"`
	Confidence     float64        `json:"confidence"`
	PatientID      string         `json:"patient_id"`
	Details        []LabelValue   `json:"details"`
	Indicators     []KeyIndicator `json:"indicators"`
	Recommendation string         `json:"recommendation"`
}

// BuildResult derives the page state from the configured outcome.
func BuildResult(c ResultConfig) ResultView {
	v := ResultView{
		CADDetected: c.CADDetected,
		PatientID:   c.PatientID,
		Details:     c.Details,
	}

	if c.CADDetected {
		v.Label = ResultCADDetected
		v.Summary = "Coronary Artery Disease indicators found in ECG signal"
		v.Confidence = c.ConfidenceDetected
		v.Recommendation = c.AdviceDetected
	} else {
		v.Label = ResultNormal
		v.Summary = "No significant CAD indicators detected in ECG signal"
		v.Confidence = c.ConfidenceNormal
		v.Recommendation = c.AdviceNormal
	}

	v.Indicators = []KeyIndicator{
		{Name: "ST Depression", Value: pick(c.CADDetected, "Detected", "Normal"), Alert: c.CADDetected},
		{Name: "T Wave Inversion", Value: pick(c.CADDetected, "Present", "Absent"), Alert: c.CADDetected},
		{Name: "QRS Duration", Value: "Normal"},
		{Name: "Heart Rate", Value: c.HeartRate},
	}
	return v
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

// Report is the fixed medical report.
type Report struct {
	ID               string         `json:"id" yaml:"id"`
	Patient          PatientInfo    `json:"patient" yaml:"patient"`
	Department       string         `json:"department" yaml:"department"`
	Stats            []QuickStat    `json:"stats" yaml:"stats"`
	Classification   string         `json:"classification" yaml:"classification"`
	Summary          string         `json:"summary" yaml:"summary"`
	Confidence       float64        `json:"confidence" yaml:"confidence"`
	DetailedAnalysis []ECGParameter `json:"detailed_analysis" yaml:"detailedAnalysis"`
	Recommendations  []string       `json:"recommendations" yaml:"recommendations"`
	AnalyzedBy       string         `json:"analyzed_by" yaml:"analyzedBy"`
}

// ReportID falls back to RPT-2024-<patient id>.
func (r Report) ReportID() string {
	if r.ID != "" {
		return r.ID
	}
	return fmt.Sprintf("RPT-2024-%s", r.Patient.ID)
}

// VerifiedBy is the attending doctor.
func (r Report) VerifiedBy() string { return r.Patient.Doctor }

// PatientFields lists the patient information block in display order.
func (r Report) PatientFields() []LabelValue {
	p := r.Patient
	dept := r.Department
	if dept == "" {
		dept = "Cardiology"
	}
	return []LabelValue{
		{Label: "Patient Name", Value: p.Name},
		{Label: "Patient ID", Value: p.ID},
		{Label: "Age", Value: fmt.Sprintf("%d years", p.Age)},
		{Label: "Gender", Value: p.Gender},
		{Label: "Blood Type", Value: p.BloodType},
		{Label: "Examination Date", Value: p.Date},
		{Label: "Attending Doctor", Value: p.Doctor},
		{Label: "Department", Value: dept},
	}
}
