package web

import (
	"fmt"
	"net/url"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	apphistory "github.com/bryanwahyu/cad-detect/internal/application/history"
	appsignal "github.com/bryanwahyu/cad-detect/internal/application/signal"
	"github.com/bryanwahyu/cad-detect/internal/domain/ecg"
	"github.com/bryanwahyu/cad-detect/internal/domain/records"
	"github.com/bryanwahyu/cad-detect/internal/domain/role"
	"github.com/bryanwahyu/cad-detect/internal/domain/upload"
)

// UploadData: Upload is set once a file has been accepted.
type UploadData struct {
	Profile      role.Profile
	UI           UIState
	Formats      []string
	MaxSizeMB    int
	Requirements []string
	Notes        []string
	Upload       *upload.Upload
}

func formatsLabel(formats []string) string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, strings.ToUpper(strings.TrimPrefix(f, ".")))
	}
	return strings.Join(names, ", ")
}

// SizeKB formats a byte count the way the selected file shows it.
func SizeKB(n int64) string {
	return fmt.Sprintf("%.2f KB", float64(n)/1024)
}

func UploadPage(d UploadData) g.Node {
	p := d.Profile

	reqs := make([]g.Node, 0, len(d.Requirements))
	for _, r := range d.Requirements {
		reqs = append(reqs, html.Li(g.Text(r)))
	}
	notes := make([]g.Node, 0, len(d.Notes))
	for _, n := range d.Notes {
		notes = append(notes, html.P(html.Class("muted"), g.Text(n)))
	}

	var body g.Node
	if d.Upload == nil {
		body = html.Form(
			html.Method("post"),
			html.Action(p.Path("upload")),
			html.EncType("multipart/form-data"),
			html.Label(
				html.Class("card"),
				html.Style("display:block;text-align:center;border:2px dashed #bcdff0;cursor:pointer"),
				icon("upload", 40),
				html.H3(g.Text("Drag & Drop your ECG file here")),
				html.P(html.Class("muted"), g.Text("or click to browse from your computer")),
				html.Input(
					html.Type("file"),
					html.Name("file"),
					html.Accept(strings.Join(d.Formats, ",")),
					html.Required(),
				),
				html.P(html.Class("muted"), g.Textf("Supported formats: %s (Max %dMB)", formatsLabel(d.Formats), d.MaxSizeMB)),
			),
			html.Button(html.Type("submit"), html.Class("btn"), html.Style("width:100%;margin-top:1rem"), icon("activity", 16), g.Text("Start Analysis")),
		)
	} else {
		body = uploadProgress(p, d.Upload)
	}

	return DashboardLayout(p, d.UI, "Upload ECG",
		pageHeader("Upload ECG Signal", "Upload your ECG file for coronary artery disease analysis"),
		html.Div(
			html.Class("grid grid-2"),
			html.Style("grid-template-columns:2fr 1fr"),
			MedicalCard(sectionTitle("ECG File Upload"), body),
			html.Div(
				MedicalCard(sectionTitle("File Requirements"), html.Ul(g.Group(reqs))),
				html.Div(html.Style("height:1rem")),
				MedicalCard(sectionTitle("Important Notes"), g.Group(notes)),
			),
		),
	)
}

func uploadProgress(p role.Profile, u *upload.Upload) g.Node {
	done := u.Complete()
	src := "/api/v1/uploads/" + url.PathEscape(string(u.ID)) + "/progress"
	return html.Div(
		html.ID("upload-status"),
		g.Attr("data-src", src),
		html.Div(
			html.Style("display:flex;align-items:center;gap:.75rem;margin-bottom:1rem"),
			icon("file", 28),
			html.Div(
				html.P(html.Style("margin:0;font-weight:500"), g.Text(u.FileName)),
				html.P(html.Class("muted"), html.Style("margin:0"), g.Text(SizeKB(u.SizeBytes))),
			),
		),
		html.Div(
			html.ID("upload-bar"),
			html.Class(classIf("progress", done, "hidden")),
			html.Div(html.Style(fmt.Sprintf("width:%d%%", u.Progress))),
		),
		html.P(html.ID("upload-label"), html.Class(classIf("muted", done, "hidden")), g.Textf("Uploading... %d%%", u.Progress)),
		html.A(
			html.ID("upload-done"),
			html.Href(p.Path("result")),
			html.Class(classIf("btn btn-accent", !done, "hidden")),
			html.Style("width:100%;margin-top:1rem"),
			icon("check-circle", 16),
			g.Text("View Results"),
		),
		g.If(!done, html.Script(g.Raw(progressScript))),
	)
}

func classIf(base string, cond bool, extra string) string {
	if cond {
		return base + " " + extra
	}
	return base
}

const progressScript = `
(function () {
  var box = document.getElementById('upload-status');
  if (!box || !window.EventSource) { return; }
  var bar = document.querySelector('#upload-bar > div');
  var label = document.getElementById('upload-label');
  var es = new EventSource(box.getAttribute('data-src'));
  es.addEventListener('progress', function (e) {
    var v = JSON.parse(e.data).progress;
    bar.style.width = v + '%';
    label.textContent = 'Uploading... ' + v + '%';
    if (v >= 100) {
      es.close();
      document.getElementById('upload-bar').classList.add('hidden');
      label.classList.add('hidden');
      document.getElementById('upload-done').classList.remove('hidden');
      var t = document.createElement('div');
      t.className = 'toast toast-success';
      t.textContent = 'ECG file uploaded successfully!';
      document.body.appendChild(t);
      setTimeout(function () { t.remove(); }, 4000);
    }
  });
})();
`

// SignalData feeds the signal visualisation page.
type SignalData struct {
	Profile role.Profile
	UI      UIState
	View    appsignal.WaveformView
	Info    []records.LabelValue
}

func zoomHref(p role.Profile, z float64) string {
	return p.Path("signal") + "?zoom=" + fmtFloat(z)
}

func SignalPage(d SignalData) g.Node {
	p := d.Profile
	v := d.View

	zoomOut := html.A(html.Class("btn btn-outline"), html.Href(zoomHref(p, ecg.ZoomOut(v.Zoom))), html.Aria("label", "Zoom out"), icon("zoom-out", 16))
	if !v.CanZoomOut {
		zoomOut = html.Button(html.Class("btn btn-outline"), html.Disabled(), icon("zoom-out", 16))
	}
	zoomIn := html.A(html.Class("btn btn-outline"), html.Href(zoomHref(p, ecg.ZoomIn(v.Zoom))), html.Aria("label", "Zoom in"), icon("zoom-in", 16))
	if !v.CanZoomIn {
		zoomIn = html.Button(html.Class("btn btn-outline"), html.Disabled(), icon("zoom-in", 16))
	}

	patientID := "PAT-12345"
	if p.PatientID != "" {
		patientID = p.PatientID
	}

	return DashboardLayout(p, d.UI, "Signal Display",
		pageHeader("ECG Signal Visualization", "View and analyze the raw ECG waveform data"),
		MedicalCard(
			html.Div(
				html.Style("display:flex;justify-content:space-between;align-items:center;margin-bottom:1rem"),
				html.Div(
					sectionTitle("Raw ECG Waveform"),
					html.P(html.Class("muted"), g.Textf("Patient ID: %s | Recording: %s seconds", patientID, fmtFloat(v.Params.Duration))),
				),
				html.Div(
					html.Style("display:flex;align-items:center;gap:.5rem"),
					zoomOut,
					html.Span(html.ID("zoom-level"), g.Text(v.ZoomPercent)),
					zoomIn,
				),
			),
			html.Div(html.Class("chart-scroll"), SignalChart(v)),
			html.Div(
				html.Style("display:flex;justify-content:space-between;margin-top:.5rem"),
				html.Span(html.Class("muted"), g.Text("Voltage (mV)")),
				html.Span(html.Class("muted"), g.Text("Time (seconds)")),
			),
			html.Div(html.Class("no-print"), html.Style("margin-top:1rem"), inertButton("download", "Download ECG Data", "btn-outline")),
		),
		html.Div(
			html.Class("grid grid-2"),
			html.Style("margin-top:1.5rem"),
			MedicalCard(sectionTitle("Signal Information"), infoList(d.Info)),
			MedicalCard(
				sectionTitle("About ECG"),
				html.P(html.Class("muted"), g.Text("The electrocardiogram records the electrical activity of the heart. Each beat shows a P wave, the QRS complex and a T wave; changes in the ST segment and T wave can indicate coronary artery disease.")),
			),
		),
	)
}

// ResultData feeds the CAD result page.
type ResultData struct {
	Profile role.Profile
	UI      UIState
	Result  records.ResultView
}

func ResultPage(d ResultData) g.Node {
	p := d.Profile
	r := d.Result

	indicators := make([]g.Node, 0, len(r.Indicators))
	for _, k := range r.Indicators {
		cls := "badge badge-normal"
		if k.Alert {
			cls = "badge badge-cad"
		}
		indicators = append(indicators, html.Div(
			html.Class("info-item"),
			html.Span(g.Text(k.Name)),
			html.Span(html.Class(cls), g.Text(k.Value)),
		))
	}

	statusIcon := "check-circle"
	if r.CADDetected {
		statusIcon = "alert-triangle"
	}

	return DashboardLayout(p, d.UI, "CAD Result",
		pageHeader("CAD Detection Result", "Coronary Artery Disease classification based on ECG analysis"),
		MedicalCard(
			html.Div(
				html.Style("display:flex;align-items:center;gap:1.5rem"),
				icon(statusIcon, 56),
				html.Div(
					html.H2(html.ID("result-label"), html.Style("margin:0"), g.Text(r.Label)),
					html.P(html.Class("muted"), g.Text(r.Summary)),
				),
				html.Div(
					html.Style("margin-left:auto;text-align:right"),
					html.P(html.Class("muted"), html.Style("margin:0"), g.Text("Confidence Level")),
					html.P(html.ID("result-confidence"), html.Style("font-size:2rem;font-weight:700;margin:0"), g.Text(percent(r.Confidence))),
				),
			),
			html.Div(html.Class("progress"), html.Div(html.Style(fmt.Sprintf("width:%.1f%%", r.Confidence)))),
			g.If(r.CADDetected, html.Div(
				html.Class("alert alert-critical"),
				html.Style("margin-top:1rem"),
				html.Strong(g.Text("Attention Required")),
				html.P(html.Style("margin:0"), g.Text("CAD indicators detected. Please consult with a cardiologist.")),
			)),
		),
		html.Div(html.Style("height:1.5rem")),
		MedicalCard(
			html.Div(
				html.Style("display:flex;justify-content:space-between"),
				sectionTitle("Analyzed ECG Signal"),
				html.Span(html.Class("muted"), g.Text(r.PatientID)),
			),
			ECGWaveform("result-ecg", 120),
		),
		html.Div(
			html.Class("grid grid-3"),
			html.Style("margin-top:1.5rem"),
			MedicalCard(sectionTitle("Analysis Details"), infoList(r.Details)),
			MedicalCard(sectionTitle("Key Indicators"), g.Group(indicators)),
			MedicalCard(sectionTitle("Recommendations"), html.P(g.Text(r.Recommendation))),
		),
		html.Div(html.Class("no-print"), html.Style("margin-top:1.5rem;text-align:center"),
			inertButton("download", "Download Result as PDF", ""),
		),
	)
}

// ReportData feeds the printable medical report.
type ReportData struct {
	Profile role.Profile
	UI      UIState
	Report  records.Report
}

func ReportsPage(d ReportData) g.Node {
	p := d.Profile
	rp := d.Report

	stats := make([]g.Node, 0, len(rp.Stats))
	for _, s := range rp.Stats {
		stats = append(stats, QuickStatCard(s))
	}

	analysis := make([]g.Node, 0, len(rp.DetailedAnalysis))
	for _, a := range rp.DetailedAnalysis {
		analysis = append(analysis, html.Tr(
			html.Td(g.Text(a.Parameter)),
			html.Td(g.Text(a.Finding)),
			html.Td(html.Span(html.Class("badge badge-"+a.Status), g.Text(a.Status))),
		))
	}

	recs := make([]g.Node, 0, len(rp.Recommendations))
	for _, r := range rp.Recommendations {
		recs = append(recs, html.Li(g.Text(r)))
	}

	return DashboardLayout(p, d.UI, "Reports",
		pageHeader("Medical Report", "Comprehensive ECG analysis and CAD detection report",
			html.Div(html.Class("no-print"), html.Style("display:flex;gap:.5rem"),
				inertButton("printer", "Print", "btn-outline"),
				inertButton("download", "Download PDF", ""),
			),
		),
		MedicalCard(
			html.Div(
				html.Style("display:flex;justify-content:space-between;align-items:center;border-bottom:1px solid #e6eef4;padding-bottom:1rem"),
				html.Div(
					html.H2(html.Style("margin:0"), g.Text("CAD Detection Report")),
					html.P(html.Class("muted"), g.Text("Coronary Artery Disease Screening")),
				),
				html.Div(html.Style("text-align:right"),
					html.P(html.Class("muted"), html.Style("margin:0"), g.Text("Report ID")),
					html.P(html.ID("report-id"), html.Style("margin:0;font-weight:600"), g.Text(rp.ReportID())),
				),
			),
			html.H3(g.Text("Patient Information")),
			html.Div(html.Class("grid grid-2"), infoList(rp.PatientFields())),
			html.H3(g.Text("ECG Summary")),
			html.Div(html.Class("grid grid-3"), g.Group(stats)),
			html.H3(g.Text("CAD Classification Result")),
			html.Div(
				html.Class("alert"),
				html.Style("background:#d1fae5"),
				html.Strong(g.Text(rp.Classification)),
				html.P(html.Style("margin:0"), g.Text(rp.Summary)),
				html.P(html.Class("muted"), html.Style("margin:0"), g.Text("Confidence: "+percent(rp.Confidence))),
			),
			html.H3(g.Text("Detailed Analysis")),
			html.Table(
				html.THead(html.Tr(html.Th(g.Text("Parameter")), html.Th(g.Text("Finding")), html.Th(g.Text("Status")))),
				html.TBody(g.Group(analysis)),
			),
			html.H3(g.Text("Recommendations")),
			html.Ol(g.Group(recs)),
			html.Div(
				html.Class("grid grid-2"),
				html.Style("border-top:1px solid #e6eef4;padding-top:1rem;margin-top:1rem"),
				html.Div(
					html.P(html.Class("muted"), g.Text("Analyzed by")),
					html.P(g.Text(rp.AnalyzedBy)),
				),
				html.Div(html.Style("text-align:right"),
					html.P(html.Class("muted"), g.Text("Verified by")),
					html.P(g.Text(rp.VerifiedBy())),
				),
			),
		),
	)
}

// HistoryData feeds the searchable history table.
type HistoryData struct {
	Profile role.Profile
	UI      UIState
	Result  apphistory.SearchResult
}

func historyHref(p role.Profile, q string, page int) string {
	v := url.Values{}
	if q != "" {
		v.Set("q", q)
	}
	v.Set("page", itoa(page))
	return p.Path("history") + "?" + v.Encode()
}

func HistoryPage(d HistoryData) g.Node {
	p := d.Profile
	res := d.Result

	head := []g.Node{html.Th(g.Text("ECG ID")), html.Th(g.Text("Date"))}
	if p.ShowPatientColumn {
		head = append(head, html.Th(g.Text("Patient")))
	}
	head = append(head, html.Th(g.Text("Result")), html.Th(g.Text("Confidence")), html.Th(g.Text("Actions")))

	rows := make([]g.Node, 0, len(res.Items))
	for _, h := range res.Items {
		rows = append(rows, historyRow(p, h))
	}
	if len(rows) == 0 {
		rows = append(rows, html.Tr(html.Td(g.Attr("colspan", itoa(len(head))), html.Class("muted"), g.Text("No results found"))))
	}

	prev := html.Button(html.Class("btn btn-outline"), html.Disabled(), icon("chevron-left", 16))
	if res.HasPrev {
		prev = html.A(html.Class("btn btn-outline"), html.Href(historyHref(p, res.Query, res.Page.Page-1)), html.Aria("label", "Previous page"), icon("chevron-left", 16))
	}
	next := html.Button(html.Class("btn btn-outline"), html.Disabled(), icon("chevron-right", 16))
	if res.HasNext {
		next = html.A(html.Class("btn btn-outline"), html.Href(historyHref(p, res.Query, res.Page.Page+1)), html.Aria("label", "Next page"), icon("chevron-right", 16))
	}

	return DashboardLayout(p, d.UI, "History",
		pageHeader("Analysis History", "View all past ECG analyses and detection results"),
		MedicalCard(
			html.Form(
				html.Method("get"),
				html.Action(p.Path("history")),
				html.Style("display:flex;gap:.5rem;margin-bottom:1rem"),
				html.Input(
					html.Type("search"),
					html.Name("q"),
					html.Value(res.Query),
					html.Placeholder("Search by patient name, ID, or ECG ID..."),
					html.Style("flex:1;padding:.6rem .8rem;border:1px solid #c8dbe8;border-radius:.6rem"),
				),
				inertButton("calendar", "Date Range", "btn-outline"),
				inertButton("filter", "Filter", "btn-outline"),
			),
			html.Table(
				html.THead(html.Tr(g.Group(head))),
				html.TBody(g.Group(rows)),
			),
			html.Div(
				html.Style("display:flex;justify-content:space-between;align-items:center;margin-top:1rem"),
				html.P(html.ID("history-summary"), html.Class("muted"), g.Text(res.Summary())),
				html.Div(
					html.Style("display:flex;align-items:center;gap:.5rem"),
					prev,
					html.Span(g.Textf("Page %d", res.Page.Page)),
					next,
				),
			),
		),
	)
}

func historyRow(p role.Profile, h records.HistoryRecord) g.Node {
	cells := []g.Node{
		html.Td(html.Strong(g.Text(h.ID))),
		html.Td(html.Class("muted"), g.Text(h.Date)),
	}
	if p.ShowPatientColumn {
		cells = append(cells, html.Td(
			html.Div(g.Text(h.Patient)),
			html.Div(html.Class("muted"), g.Text(h.PatientID)),
		))
	}
	cells = append(cells,
		html.Td(ResultBadge(h.Result)),
		html.Td(g.Text(h.ConfidenceLabel())),
		html.Td(html.A(html.Href(p.Path("result")), icon("eye", 16), g.Text(" View"))),
	)
	return html.Tr(g.Group(cells))
}
