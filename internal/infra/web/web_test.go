package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	apphistory "github.com/bryanwahyu/cad-detect/internal/application/history"
	appsignal "github.com/bryanwahyu/cad-detect/internal/application/signal"
	"github.com/bryanwahyu/cad-detect/internal/catalog"
	"github.com/bryanwahyu/cad-detect/internal/domain/ecg"
	"github.com/bryanwahyu/cad-detect/internal/domain/records"
	"github.com/bryanwahyu/cad-detect/internal/domain/role"
	"github.com/bryanwahyu/cad-detect/internal/domain/upload"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestSidebar_ActiveItemAndCollapse(t *testing.T) {
	p := role.ProfileFor(role.Doctor)

	out := render(t, Sidebar(p, UIState{ActivePath: "/doctor/history"}))
	assert.Contains(t, out, `<a href="/doctor/history" class="sidebar-item active">`)
	assert.Contains(t, out, "Signal Display")
	assert.Contains(t, out, "Dr. Smith")
	assert.Contains(t, out, `href="/doctor/logout"`)
	assert.Contains(t, out, "?sidebar=collapsed")

	collapsed := render(t, Sidebar(p, UIState{ActivePath: "/doctor/history", Collapsed: true}))
	assert.Contains(t, collapsed, `class="sidebar collapsed"`)
	assert.NotContains(t, collapsed, "Signal Display")
	assert.Contains(t, collapsed, "?sidebar=expanded")
}

func TestSidebar_MobileOverlay(t *testing.T) {
	p := role.ProfileFor(role.Patient)
	out := render(t, Sidebar(p, UIState{ActivePath: "/patient/dashboard", MenuOpen: true}))
	assert.Contains(t, out, "overlay open")
	assert.Contains(t, out, "?menu=closed")
	assert.Contains(t, out, "Upload My ECG")
}

func TestIsActivePath(t *testing.T) {
	assert.True(t, isActivePath("/doctor/upload", "/doctor/upload/"))
	assert.False(t, isActivePath("/doctor/upload", "/doctor/uploads"))
}

func sampleHistory(p role.Profile) apphistory.SearchResult {
	rows := []records.HistoryRecord{
		{ID: "ECG-002", Date: "Dec 2, 2024", Patient: "Emily Davis", PatientID: "PAT-12346", Result: records.ResultCADDetected, Confidence: 89.2},
	}
	return apphistory.SearchResult{
		Page:    records.Paginate(rows, 1, 10),
		Query:   "davis",
		Matched: 1,
		All:     8,
	}
}

func TestHistoryPage_PatientColumnOnlyForDoctor(t *testing.T) {
	doc := role.ProfileFor(role.Doctor)
	out := render(t, HistoryPage(HistoryData{Profile: doc, UI: UIState{ActivePath: "/doctor/history"}, Result: sampleHistory(doc)}))
	assert.Contains(t, out, "<th>Patient</th>")
	assert.Contains(t, out, "Emily Davis")
	assert.Contains(t, out, "Showing 1 of 8 results")
	assert.Contains(t, out, "89.2%")
	assert.Contains(t, out, "Page 1")

	pat := role.ProfileFor(role.Patient)
	out = render(t, HistoryPage(HistoryData{Profile: pat, UI: UIState{ActivePath: "/patient/history"}, Result: sampleHistory(pat)}))
	assert.NotContains(t, out, "<th>Patient</th>")
	assert.NotContains(t, out, "Emily Davis")
	assert.Contains(t, out, "ECG-002")
}

func TestHistoryPage_PaginationLinksKeepQuery(t *testing.T) {
	p := role.ProfileFor(role.Doctor)
	rows := make([]records.HistoryRecord, 12)
	for i := range rows {
		rows[i] = records.HistoryRecord{ID: "ECG", Result: records.ResultNormal}
	}
	res := apphistory.SearchResult{Page: records.Paginate(rows, 1, 10), Query: "ecg", Matched: 12, All: 12}

	out := render(t, HistoryPage(HistoryData{Profile: p, Result: res}))
	assert.Contains(t, out, `href="/doctor/history?page=2&amp;q=ecg"`)
}

func TestSignalChart_GridAndTrace(t *testing.T) {
	v := appsignal.WaveformView{
		Width:  100,
		Height: 50,
		Points: ecg.Trace([]float64{0, 1, -0.2}, 50),
	}
	out := render(t, SignalChart(v))

	// 11 + 6 minor lines, 3 + 2 major lines
	assert.Equal(t, 22, strings.Count(out, "<line "))
	assert.Contains(t, out, `stroke="rgba(0, 168, 232, 0.1)" stroke-width="0.5"`)
	assert.Contains(t, out, `stroke="rgba(0, 168, 232, 0.25)" stroke-width="1"`)
	assert.Contains(t, out, `points="0.0,25.00 1.0,8.33 2.0,28.33"`)
	assert.Contains(t, out, `fill="#ffffff"`)
}

func TestSignalPage_ZoomControls(t *testing.T) {
	p := role.ProfileFor(role.Doctor)
	v := appsignal.WaveformView{Params: ecg.DefaultParams(), Zoom: 3, ZoomPercent: "300%", CanZoomOut: true, Width: 20, Height: 20}
	out := render(t, SignalPage(SignalData{Profile: p, View: v}))
	assert.Contains(t, out, "300%")
	assert.Contains(t, out, `href="/doctor/signal?zoom=2.75"`)
	assert.Contains(t, out, "Recording: 10 seconds")
	assert.Contains(t, out, "Voltage (mV)")
}

func TestLiveECGSignal_StreamSource(t *testing.T) {
	f := ecg.LiveFrame(40, 20, 0)
	out := render(t, LiveECGSignal("x-live", f, 1.5))
	assert.Contains(t, out, `data-src="/api/v1/signal/live?height=20&amp;speed=1.5&amp;width=40"`)
	assert.Contains(t, out, `id="x-live"`)
	assert.Contains(t, out, `r="8"`)
}

func TestResultPage_AttentionBanner(t *testing.T) {
	p := role.ProfileFor(role.Doctor)

	detected := records.BuildResult(records.ResultConfig{CADDetected: true, ConfidenceDetected: 87.3, ConfidenceNormal: 97.8, PatientID: "PAT-12345"})
	out := render(t, ResultPage(ResultData{Profile: p, Result: detected}))
	assert.Contains(t, out, "Attention Required")
	assert.Contains(t, out, "87.3%")
	assert.Contains(t, out, "Download Result as PDF")

	normal := records.BuildResult(records.ResultConfig{ConfidenceDetected: 87.3, ConfidenceNormal: 97.8})
	out = render(t, ResultPage(ResultData{Profile: p, Result: normal}))
	assert.NotContains(t, out, "Attention Required")
	assert.Contains(t, out, "97.8%")
}

func TestLogin_RoleCopy(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	doc := render(t, Login(LoginData{App: c.App, Role: role.Doctor}))
	assert.Contains(t, doc, "Doctor Login")
	assert.Contains(t, doc, "doctor@hospital.com")
	assert.Contains(t, doc, `action="/doctor/login"`)
	assert.Contains(t, doc, "Are you a patient?")

	pat := render(t, Login(LoginData{App: c.App, Role: role.Patient, Toast: ErrorToast("nope")}))
	assert.Contains(t, pat, "Patient ID or Email")
	assert.Contains(t, pat, c.App.PatientTagline)
	assert.Contains(t, pat, `class="toast toast-error"`)
}

func TestSignup_Steps(t *testing.T) {
	choose := render(t, Signup(SignupData{}))
	assert.Contains(t, choose, "Choose Account Type")
	assert.Contains(t, choose, `href="/signup?role=doctor"`)

	form := render(t, Signup(SignupData{Role: role.Patient, Name: "Jane"}))
	assert.Contains(t, form, "Patient Registration")
	assert.Contains(t, form, `name="confirm_password"`)
	assert.Contains(t, form, `value="Jane"`)
}

func TestForgotPassword_SentState(t *testing.T) {
	form := render(t, ForgotPassword(ForgotPasswordData{}))
	assert.Contains(t, form, "Send Reset Link")

	sent := render(t, ForgotPassword(ForgotPasswordData{Sent: true, Email: "a@b.co"}))
	assert.Contains(t, sent, "Check Your Email")
	assert.Contains(t, sent, "a@b.co")
	assert.NotContains(t, sent, "Send Reset Link")
}

func TestUploadPage_FormAndProgress(t *testing.T) {
	p := role.ProfileFor(role.Patient)
	d := UploadData{Profile: p, Formats: []string{".csv", ".mat", ".txt"}, MaxSizeMB: 50}

	out := render(t, UploadPage(d))
	assert.Contains(t, out, `accept=".csv,.mat,.txt"`)
	assert.Contains(t, out, "Supported formats: CSV, MAT, TXT (Max 50MB)")

	d.Upload = &upload.Upload{ID: "abc", FileName: "trace.csv", SizeBytes: 2048, Progress: 30}
	out = render(t, UploadPage(d))
	assert.Contains(t, out, "2.00 KB")
	assert.Contains(t, out, `data-src="/api/v1/uploads/abc/progress"`)
	assert.Contains(t, out, "width:30%")
}

func TestDashboards_RenderCatalog(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	f := ecg.LiveFrame(60, 30, 0)

	doc := render(t, DoctorDashboard(DashboardData{Profile: role.ProfileFor(role.Doctor), Catalog: c, Live: f}))
	assert.Contains(t, doc, "Welcome back, Dr. Smith")
	assert.Contains(t, doc, "Total ECGs Analyzed")
	assert.Contains(t, doc, "12% from last week")
	assert.Contains(t, doc, "Latest Signal - PAT-001")

	pat := render(t, PatientDashboard(DashboardData{Profile: role.ProfileFor(role.Patient), Catalog: c, Live: f}))
	assert.Contains(t, pat, "Welcome, John Doe")
	assert.Contains(t, pat, "Patient ID: PAT-12345")
	assert.Contains(t, pat, "Schedule recommended in 2 weeks")
}

func TestDoctorDashboard_SelectedPatient(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	d := DashboardData{Profile: role.ProfileFor(role.Doctor), Catalog: c, Live: ecg.LiveFrame(60, 30, 0)}

	doc := render(t, DoctorDashboard(d))
	assert.NotContains(t, doc, `id="selected-patient"`)
	assert.Contains(t, doc, `href="/doctor/dashboard?patient=PAT-004"`)

	rec, ok := c.FindPatient("PAT-004")
	require.True(t, ok)
	d.Selected = &rec
	doc = render(t, DoctorDashboard(d))
	panel := doc[strings.Index(doc, `id="selected-patient"`):]
	assert.Contains(t, panel, "Patient Details")
	assert.Contains(t, panel, "Sarah Wilson")
	assert.Contains(t, panel, "badge badge-cad")
	assert.Contains(t, panel, "High")
}

func TestReportsPage(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	out := render(t, ReportsPage(ReportData{Profile: role.ProfileFor(role.Doctor), Report: c.Report}))
	assert.Contains(t, out, "RPT-2024-PAT-12345")
	assert.Contains(t, out, "Confidence: 97.8%")
	assert.Contains(t, out, "Dr. Sarah Smith")
}

func TestSizeKB(t *testing.T) {
	assert.Equal(t, "1.50 KB", SizeKB(1536))
}
