package web

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/bryanwahyu/cad-detect/internal/domain/role"
)

// UIState is the per-request view state of the dashboard shell.
type UIState struct {
	ActivePath string
	Collapsed  bool
	MenuOpen   bool
	Toast      Toast
	Footer     string
}

// DashboardLayout wraps a role page with the sidebar.
func DashboardLayout(p role.Profile, st UIState, title string, content ...g.Node) g.Node {
	return Document(title+" | CAD Detect", st.Toast,
		html.Div(
			html.Class("layout"),
			Sidebar(p, st),
			html.Main(
				html.Class("content"),
				html.Div(html.Class("content-inner"), g.Group(content)),
				g.If(st.Footer != "", html.Footer(html.Class("muted"), html.Style("text-align:center;padding:2rem 0"), g.Text(st.Footer))),
			),
		),
	)
}

// Sidebar renders the role menu. Collapse and mobile-open are plain links
// that flip a query flag; the handler keeps the flag in a cookie.
func Sidebar(p role.Profile, st UIState) g.Node {
	asideCls := "sidebar"
	if st.Collapsed {
		asideCls += " collapsed"
	}
	if st.MenuOpen {
		asideCls += " open"
	}

	menuFlag, menuIcon := "open", "menu"
	if st.MenuOpen {
		menuFlag, menuIcon = "closed", "x"
	}
	collapseFlag, collapseArrow := "collapsed", "←"
	if st.Collapsed {
		collapseFlag, collapseArrow = "expanded", "→"
	}

	items := make([]g.Node, 0, len(p.Menu))
	for _, m := range p.Menu {
		items = append(items, navItem(m, st))
	}

	return g.Group([]g.Node{
		html.A(
			html.Class("mobile-toggle btn"),
			html.Href(st.ActivePath+"?menu="+menuFlag),
			html.Aria("label", "Toggle menu"),
			icon(menuIcon, 22),
		),
		g.If(st.MenuOpen, html.A(html.Class("overlay open"), html.Href(st.ActivePath+"?menu=closed"))),
		html.Aside(
			html.Class(asideCls),
			html.Div(
				html.Class("logo"),
				html.Div(html.Class("avatar"), icon("heart", 20)),
				g.If(!st.Collapsed, html.Div(
					html.Strong(g.Text("CAD Detect")),
					html.P(html.Class("muted"), html.Style("margin:0"), g.Text("ECG Analysis")),
				)),
			),
			g.If(!st.Collapsed, html.Div(
				html.Style("padding:.75rem 1rem;opacity:.6"),
				ECGWaveform("sidebar-ecg", 32),
			)),
			html.Nav(g.Group(items)),
			html.Div(
				html.Class("user"),
				html.Div(
					html.Style("display:flex;align-items:center;gap:.75rem;margin-bottom:1rem"),
					html.Div(html.Class("avatar"), g.Text(p.Initials)),
					g.If(!st.Collapsed, html.Div(
						html.P(html.Style("margin:0"), g.Text(p.DisplayName)),
						html.P(html.Class("muted"), html.Style("margin:0;text-transform:capitalize"), g.Text(p.Role.String())),
					)),
				),
				html.A(
					html.Href(p.LogoutPath()),
					html.Class("sidebar-item btn-danger"),
					icon("log-out", 20),
					g.If(!st.Collapsed, html.Span(g.Text("Logout"))),
				),
			),
			html.A(
				html.Class("collapse-toggle"),
				html.Href(st.ActivePath+"?sidebar="+collapseFlag),
				html.Aria("label", "Collapse sidebar"),
				g.Text(collapseArrow),
			),
		),
	})
}

func navItem(m role.MenuItem, st UIState) g.Node {
	cls := "sidebar-item"
	if isActivePath(m.Path, st.ActivePath) {
		cls += " active"
	}
	return html.A(
		html.Href(m.Path),
		html.Class(cls),
		icon(m.Icon, 20),
		g.If(!st.Collapsed, html.Span(g.Text(m.Label))),
	)
}

// isActivePath matches the exact menu path, ignoring a trailing slash.
func isActivePath(itemPath, activePath string) bool {
	return strings.TrimSuffix(itemPath, "/") == strings.TrimSuffix(activePath, "/")
}
