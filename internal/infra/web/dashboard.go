package web

import (
	"net/url"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/bryanwahyu/cad-detect/internal/catalog"
	"github.com/bryanwahyu/cad-detect/internal/domain/ecg"
	"github.com/bryanwahyu/cad-detect/internal/domain/records"
	"github.com/bryanwahyu/cad-detect/internal/domain/role"
)

// DashboardData feeds both dashboards; each reads its own catalog section.
type DashboardData struct {
	Profile role.Profile
	UI      UIState
	Catalog *catalog.Catalog
	Live    ecg.Frame
	// Selected is the recent patient picked with ?patient=, doctor only.
	Selected *records.PatientRecord
}

func DoctorDashboard(d DashboardData) g.Node {
	dd := d.Catalog.DoctorDashboard
	p := d.Profile

	stats := make([]g.Node, 0, len(dd.Stats))
	for _, s := range dd.Stats {
		stats = append(stats, StatCard(s))
	}

	rows := make([]g.Node, 0, len(dd.RecentPatients))
	for _, r := range dd.RecentPatients {
		rows = append(rows, recentPatientRow(r, p))
	}

	alerts := make([]g.Node, 0, len(dd.Alerts))
	for _, a := range dd.Alerts {
		alerts = append(alerts, html.Div(
			html.Class("alert alert-"+a.Level),
			html.Strong(g.Text(a.Title)),
			html.P(html.Class("muted"), html.Style("margin:0"), g.Text(a.Message)),
		))
	}

	return DashboardLayout(p, d.UI, "Dashboard",
		pageHeader("Welcome back, "+p.DisplayName, "Here's your ECG analysis overview for today"),
		html.Section(html.Class("grid grid-4"), g.Group(stats)),
		html.Div(
			html.Class("grid grid-2"),
			html.Style("margin-top:1.5rem;grid-template-columns:2fr 1fr"),
			MedicalCard(
				html.Div(
					html.Style("display:flex;justify-content:space-between;align-items:center"),
					sectionTitle("Recent ECG Analysis"),
					html.A(html.Href(p.Path("history")), g.Text("View All")),
				),
				html.Div(
					html.Style("margin-bottom:1rem"),
					html.Div(
						html.Style("display:flex;justify-content:space-between"),
						html.Span(g.Text("Latest Signal - "+dd.LatestSignal.PatientID)),
						html.Span(html.Class("muted"), g.Text("HR: "+dd.LatestSignal.HeartRate)),
					),
					LiveECGSignal("doctor-live", d.Live, dd.LatestSignal.Speed),
				),
				html.Table(
					html.THead(html.Tr(
						html.Th(g.Text("Patient")),
						html.Th(g.Text("Date")),
						html.Th(g.Text("Result")),
						html.Th(g.Text("Action")),
					)),
					html.TBody(g.Group(rows)),
				),
			),
			html.Div(
				g.Iff(d.Selected != nil, func() g.Node {
					return g.Group([]g.Node{
						selectedPatientCard(d.Selected, p),
						html.Div(html.Style("height:1rem")),
					})
				}),
				MedicalCard(
					sectionTitle("Quick Actions"),
					html.Div(html.Style("display:flex;flex-direction:column;gap:.5rem"),
						linkButton(p.Path("upload"), "upload", "Upload New ECG", ""),
						linkButton(p.Path("reports"), "file-text", "Generate Report", "btn-outline"),
					),
				),
				html.Div(html.Style("height:1rem")),
				MedicalCard(
					sectionTitle("Critical Alerts"),
					g.Group(alerts),
				),
			),
		),
	)
}

func patientHref(p role.Profile, id string) string {
	return p.Path("dashboard") + "?patient=" + url.QueryEscape(id)
}

func recentPatientRow(r records.PatientRecord, p role.Profile) g.Node {
	return html.Tr(
		html.Td(
			html.Div(html.A(html.Href(patientHref(p, r.ID)), g.Text(r.Name))),
			html.Div(html.Class("muted"), g.Text(r.ID)),
		),
		html.Td(html.Class("muted"), g.Text(r.Date)),
		html.Td(ResultBadge(r.Status)),
		html.Td(html.A(html.Href(p.Path("result")), icon("eye", 16), g.Text(" View"))),
	)
}

func selectedPatientCard(r *records.PatientRecord, p role.Profile) g.Node {
	risk := "Low"
	if r.Risk == records.RiskHigh {
		risk = "High"
	}
	return html.Div(
		html.Class("card"),
		html.ID("selected-patient"),
		html.Div(
			html.Style("display:flex;justify-content:space-between;align-items:center"),
			sectionTitle("Patient Details"),
			html.A(html.Href(p.Path("dashboard")), g.Text("Close")),
		),
		InfoItem("Name", r.Name),
		InfoItem("Patient ID", r.ID),
		InfoItem("Last ECG", r.Date),
		html.Div(
			html.Class("info-item"),
			html.Span(html.Class("muted"), g.Text("Result")),
			ResultBadge(r.Status),
		),
		InfoItem("Risk", risk),
		html.Div(html.Style("margin-top:1rem"),
			linkButton(p.Path("result"), "eye", "View Result", "btn-outline"),
		),
	)
}

func PatientDashboard(d DashboardData) g.Node {
	pd := d.Catalog.PatientDashboard
	p := d.Profile

	quick := make([]g.Node, 0, len(pd.QuickStats))
	for _, q := range pd.QuickStats {
		quick = append(quick, QuickStatCard(q))
	}

	reminders := make([]g.Node, 0, len(pd.Reminders))
	for _, r := range pd.Reminders {
		reminders = append(reminders, html.Div(
			html.Class("alert alert-warning"),
			icon("calendar", 16),
			html.Strong(g.Text(" "+r.Label)),
			html.P(html.Class("muted"), html.Style("margin:0"), g.Text(r.Value)),
		))
	}

	return DashboardLayout(p, d.UI, "Dashboard",
		MedicalCard(
			html.H1(g.Text("Welcome, "+p.DisplayName)),
			html.P(html.Class("muted"), g.Text("Patient ID: "+p.PatientID)),
			html.P(g.Text(pd.Intro)),
		),
		html.Div(
			html.Class("grid grid-2"),
			html.Style("margin-top:1.5rem;grid-template-columns:2fr 1fr"),
			MedicalCard(
				html.Div(
					html.Style("display:flex;justify-content:space-between;align-items:center"),
					sectionTitle("Your Latest ECG"),
					html.Span(html.Class("muted"), g.Text(pd.LatestECGDate)),
				),
				html.Div(
					html.Style("display:flex;justify-content:space-between"),
					html.Span(g.Text("ECG Signal Recording")),
					html.Span(html.Class("muted"), g.Text("Lead II • Live")),
				),
				LiveECGSignal("patient-live", d.Live, pd.LiveSpeed),
				html.Div(html.Class("grid grid-3"), html.Style("margin-top:1rem"), g.Group(quick)),
			),
			html.Div(
				MedicalCard(
					sectionTitle("Latest Result"),
					html.Div(html.Style("text-align:center"),
						icon("check-circle", 40),
						html.H2(g.Text(pd.LatestResult.Label)),
						html.P(html.Class("muted"), g.Text(pd.LatestResult.Value)),
						linkButton(p.Path("result"), "", "View Full Report", "btn-outline"),
					),
				),
				html.Div(html.Style("height:1rem")),
				MedicalCard(
					sectionTitle("Quick Actions"),
					html.Div(html.Style("display:flex;flex-direction:column;gap:.5rem"),
						linkButton(p.Path("upload"), "upload", "Upload New ECG", "btn-accent"),
						linkButton(p.Path("reports"), "file-text", "My Reports", "btn-outline"),
					),
				),
				html.Div(html.Style("height:1rem")),
				MedicalCard(
					sectionTitle("Reminders"),
					g.Group(reminders),
				),
			),
		),
	)
}
