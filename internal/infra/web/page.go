// Package web renders every page of the dashboard as gomponents nodes.
// Handlers pick the data, this package only turns it into HTML.
package web

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Toast is a one-shot notification carried over a redirect.
type Toast struct {
	Kind    string // success | error
	Message string
}

func (t Toast) Empty() bool { return t.Message == "" }

// SuccessToast and ErrorToast build the two kinds the pages use.
func SuccessToast(msg string) Toast { return Toast{Kind: "success", Message: msg} }
func ErrorToast(msg string) Toast   { return Toast{Kind: "error", Message: msg} }

// Document is the outer HTML shell shared by all pages.
func Document(title string, toast Toast, body ...g.Node) g.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(title)),
				html.StyleEl(g.Raw(stylesheet)),
			),
			html.Body(
				g.Group(body),
				toastNode(toast),
				html.Script(g.Raw(toastScript)),
			),
		),
	)
}

func toastNode(t Toast) g.Node {
	if t.Empty() {
		return nil
	}
	return html.Div(
		html.ID("toast"),
		html.Class("toast toast-"+t.Kind),
		html.Role("status"),
		g.Text(t.Message),
	)
}

// toast hilang sendiri setelah 4 detik
const toastScript = `
(function () {
  var t = document.getElementById('toast');
  if (t) { setTimeout(function () { t.remove(); }, 4000); }
})();
`

const stylesheet = `
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,sans-serif;background:#f4f8fb;color:#102a43}
a{color:#0087c1;text-decoration:none}
.btn{display:inline-flex;align-items:center;gap:.4rem;padding:.6rem 1rem;border-radius:.6rem;border:0;background:#00a8e8;color:#fff;cursor:pointer;font-size:.9rem}
.btn[disabled]{opacity:.5;cursor:not-allowed}
.btn-outline{background:#fff;color:#0087c1;border:1px solid #bcdff0}
.btn-accent{background:#10b981}
.btn-danger{background:#fff;color:#dc2626}
.card{background:#fff;border-radius:1rem;padding:1.5rem;box-shadow:0 4px 16px rgba(16,42,67,.08)}
.grid{display:grid;gap:1rem}
.grid-2{grid-template-columns:repeat(auto-fit,minmax(280px,1fr))}
.grid-3{grid-template-columns:repeat(auto-fit,minmax(200px,1fr))}
.grid-4{grid-template-columns:repeat(auto-fit,minmax(180px,1fr))}
.muted{color:#627d98;font-size:.85rem}
.page-header h1{margin:0 0 .25rem}
.page-header{margin-bottom:1.5rem}
.layout{display:flex;min-height:100vh}
.sidebar{width:16rem;background:#0b2239;color:#d9e8f5;display:flex;flex-direction:column;position:relative}
.sidebar.collapsed{width:5rem}
.sidebar a{color:inherit}
.sidebar .logo{padding:1.5rem;border-bottom:1px solid #173a5c;display:flex;gap:.75rem;align-items:center}
.sidebar nav{flex:1;padding:1rem;display:flex;flex-direction:column;gap:.5rem}
.sidebar-item{display:flex;align-items:center;gap:.75rem;padding:.6rem .8rem;border-radius:.6rem}
.sidebar-item.active{background:#00a8e8;color:#fff}
.sidebar .user{padding:1rem;border-top:1px solid #173a5c}
.avatar{width:2.5rem;height:2.5rem;border-radius:50%;background:linear-gradient(135deg,#00a8e8,#10b981);display:flex;align-items:center;justify-content:center;color:#fff;font-weight:600}
.collapse-toggle{position:absolute;right:-.75rem;top:5rem;width:1.5rem;height:1.5rem;border-radius:50%;background:#00a8e8;color:#fff;display:flex;align-items:center;justify-content:center}
.mobile-toggle{display:none}
.overlay{display:none}
main.content{flex:1;padding:2rem;overflow:auto}
.content-inner{max-width:80rem;margin:0 auto}
.stat-card{border-left:4px solid transparent}
.stat-card.primary{border-left-color:#00a8e8}
.stat-card.success{border-left-color:#10b981}
.stat-card.warning{border-left-color:#eab308}
.trend-up{color:#10b981}
.trend-down{color:#dc2626}
.quick-stat{text-align:center;padding:1rem;border-radius:.75rem;background:#f0f6fa}
.quick-stat .value{font-size:1.5rem;font-weight:700;margin:0}
.quick-stat.accent .value{color:#10b981}
.info-item{display:flex;justify-content:space-between;padding:.5rem 0;border-bottom:1px solid #e6eef4}
.info-item:last-child{border-bottom:0}
.form-input{display:flex;flex-direction:column;gap:.35rem;margin-bottom:1rem}
.form-input input,.form-input select{padding:.6rem .8rem;border:1px solid #c8dbe8;border-radius:.6rem}
.badge{display:inline-block;padding:.15rem .6rem;border-radius:1rem;font-size:.75rem}
.badge-normal{background:#d1fae5;color:#047857}
.badge-cad{background:#fee2e2;color:#b91c1c}
.alert{padding:.75rem 1rem;border-radius:.75rem;margin-bottom:.5rem}
.alert-critical{background:#fee2e2}
.alert-warning{background:#fef9c3}
table{width:100%;border-collapse:collapse}
th,td{text-align:left;padding:.6rem;border-bottom:1px solid #e6eef4;font-size:.9rem}
.toast{position:fixed;right:1.5rem;bottom:1.5rem;padding:.8rem 1.2rem;border-radius:.6rem;color:#fff}
.toast-success{background:#10b981}
.toast-error{background:#dc2626}
.ecg-line{stroke-dasharray:1000;stroke-dashoffset:1000;animation:ecg-draw 3s ease-in-out forwards}
@keyframes ecg-draw{to{stroke-dashoffset:0}}
.progress{width:100%;height:.6rem;background:#e6eef4;border-radius:1rem;overflow:hidden}
.progress>div{height:100%;background:#00a8e8;width:0}
.chart-scroll{overflow-x:auto;border:1px solid #e6eef4;border-radius:.75rem}
.hidden{display:none}
.auth{min-height:100vh;display:flex;align-items:center;justify-content:center;padding:2rem}
.auth .card{width:100%;max-width:28rem}
@media (max-width:1024px){
 .mobile-toggle{display:block;position:fixed;top:1rem;left:1rem;z-index:50}
 .sidebar{position:fixed;inset:0 auto 0 0;z-index:40;transform:translateX(-100%)}
 .sidebar.open{transform:none}
 .overlay.open{display:block;position:fixed;inset:0;background:rgba(0,0,0,.5);z-index:30}
 main.content{padding-top:4rem}
}
@media print{.sidebar,.no-print{display:none}}
`
