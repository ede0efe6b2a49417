// Package catalog holds the read-only sample data every page renders. It is
// loaded once at startup and injected into the handlers.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bryanwahyu/cad-detect/internal/domain/records"
)

//go:embed default.yaml
var defaultYAML []byte

type App struct {
	Name           string `yaml:"name"`
	Tagline        string `yaml:"tagline"`
	PatientTagline string `yaml:"patientTagline"`
	Footer         string `yaml:"footer"`
	LandingFooter  string `yaml:"landingFooter"`
	AnalyzedBy     string `yaml:"analyzedBy"`
}

type LatestSignal struct {
	PatientID string  `yaml:"patientId"`
	HeartRate string  `yaml:"heartRate"`
	Speed     float64 `yaml:"speed"`
}

type Alert struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Level   string `yaml:"level"`
}

type DoctorDashboard struct {
	Stats          []records.Stat          `yaml:"stats"`
	LatestSignal   LatestSignal            `yaml:"latestSignal"`
	RecentPatients []records.PatientRecord `yaml:"recentPatients"`
	Alerts         []Alert                 `yaml:"alerts"`
}

type PatientDashboard struct {
	Intro         string               `yaml:"intro"`
	LatestECGDate string               `yaml:"latestEcgDate"`
	LiveSpeed     float64              `yaml:"liveSpeed"`
	QuickStats    []records.QuickStat  `yaml:"quickStats"`
	LatestResult  records.LabelValue   `yaml:"latestResult"`
	Reminders     []records.LabelValue `yaml:"reminders"`
}

type Upload struct {
	Requirements []string `yaml:"requirements"`
	Notes        []string `yaml:"notes"`
}

// Catalog is every piece of mock data the dashboard shows.
type Catalog struct {
	App              App                     `yaml:"app"`
	Features         []records.Feature       `yaml:"features"`
	DoctorDashboard  DoctorDashboard         `yaml:"doctorDashboard"`
	PatientDashboard PatientDashboard        `yaml:"patientDashboard"`
	History          []records.HistoryRecord `yaml:"history"`
	SignalInfo       []records.LabelValue    `yaml:"signalInfo"`
	Upload           Upload                  `yaml:"upload"`
	Result           records.ResultConfig    `yaml:"result"`
	Report           records.Report          `yaml:"report"`
}

var ErrInvalid = errors.New("invalid catalog")

// Default returns the built-in sample data.
func Default() (*Catalog, error) {
	return parse(defaultYAML)
}

// Load reads a catalog file. An empty path yields the built-in data.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the values the pages compute with.
func (c *Catalog) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("%w: app.name is required", ErrInvalid)
	}
	for _, h := range c.History {
		if h.ID == "" {
			return fmt.Errorf("%w: history row without id", ErrInvalid)
		}
		if !validConfidence(h.Confidence) {
			return fmt.Errorf("%w: history %s confidence %.1f out of range", ErrInvalid, h.ID, h.Confidence)
		}
	}
	if !validConfidence(c.Result.ConfidenceDetected) || !validConfidence(c.Result.ConfidenceNormal) {
		return fmt.Errorf("%w: result confidence out of range", ErrInvalid)
	}
	if !validConfidence(c.Report.Confidence) {
		return fmt.Errorf("%w: report confidence out of range", ErrInvalid)
	}
	return nil
}

func validConfidence(v float64) bool { return v >= 0 && v <= 100 }

// ResultView is the CAD result page state.
func (c *Catalog) ResultView() records.ResultView {
	return records.BuildResult(c.Result)
}

// FindPatient looks up a recent patient by id.
func (c *Catalog) FindPatient(id string) (records.PatientRecord, bool) {
	for _, p := range c.DoctorDashboard.RecentPatients {
		if p.ID == id {
			return p, true
		}
	}
	return records.PatientRecord{}, false
}
