package records

import "fmt"

// Risk level shown next to a recent patient.
type Risk string

const (
	RiskHigh Risk = "high"
	RiskLow  Risk = "low"
)

// Result labels used across the mock data.
const (
	ResultNormal      = "Normal"
	ResultCADDetected = "CAD Detected"
)

// PatientRecord is a row of the doctor's recent patients table.
type PatientRecord struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Date   string `json:"date" yaml:"date"`
	Status string `json:"status" yaml:"status"`
	Risk   Risk   `json:"risk" yaml:"risk"`
}

// HistoryRecord is one past analysis.
type HistoryRecord struct {
	ID         string  `json:"id" yaml:"id"`
	Date       string  `json:"date" yaml:"date"`
	Patient    string  `json:"patient" yaml:"patient"`
	PatientID  string  `json:"patient_id" yaml:"patientId"`
	Result     string  `json:"result" yaml:"result"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

func (h HistoryRecord) CADDetected() bool { return h.Result == ResultCADDetected }

// ConfidenceLabel formats the score with one decimal, e.g. "97.8%".
func (h HistoryRecord) ConfidenceLabel() string {
	return fmt.Sprintf("%.1f%%", h.Confidence)
}

type PatientInfo struct {
	Name      string `json:"name" yaml:"name"`
	ID        string `json:"id" yaml:"id"`
	Age       int    `json:"age" yaml:"age"`
	Gender    string `json:"gender" yaml:"gender"`
	BloodType string `json:"blood_type" yaml:"bloodType"`
	Date      string `json:"date" yaml:"date"`
	Doctor    string `json:"doctor" yaml:"doctor"`
}

// Stat is a dashboard stat card.
type Stat struct {
	Title    string `json:"title" yaml:"title"`
	Value    string `json:"value" yaml:"value"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Icon     string `json:"icon" yaml:"icon"`
	Variant  string `json:"variant" yaml:"variant"`
	Trend    *Trend `json:"trend,omitempty" yaml:"trend,omitempty"`
}

type Trend struct {
	Value    int  `json:"value" yaml:"value"`
	Positive bool `json:"positive" yaml:"positive"`
}

type QuickStat struct {
	Label    string `json:"label" yaml:"label"`
	Value    string `json:"value" yaml:"value"`
	IsAccent bool   `json:"is_accent,omitempty" yaml:"isAccent,omitempty"`
}

type Feature struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Color       string `json:"color" yaml:"color"`
}

// LabelValue covers signal info and analysis detail rows.
type LabelValue struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type KeyIndicator struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Alert bool   `json:"alert" yaml:"alert"`
}

type ECGParameter struct {
	Parameter string `json:"parameter" yaml:"parameter"`
	Finding   string `json:"finding" yaml:"finding"`
	Status    string `json:"status" yaml:"status"`
}
