package web

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/bryanwahyu/cad-detect/internal/domain/records"
)

func itoa(n int) string { return strconv.Itoa(n) }

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// MedicalCard is the rounded white panel every section sits in.
func MedicalCard(children ...g.Node) g.Node {
	return html.Div(html.Class("card"), g.Group(children))
}

// StatCard renders a dashboard stat with an optional weekly trend.
func StatCard(s records.Stat) g.Node {
	variant := s.Variant
	if variant == "" {
		variant = "default"
	}
	return html.Div(
		html.Class("card stat-card "+variant),
		html.Div(
			html.Style("display:flex;justify-content:space-between;align-items:flex-start"),
			html.Div(
				html.P(html.Class("muted"), g.Text(s.Title)),
				html.P(html.Style("font-size:1.9rem;font-weight:700;margin:.25rem 0"), g.Text(s.Value)),
				g.If(s.Subtitle != "", html.P(html.Class("muted"), g.Text(s.Subtitle))),
				trendNode(s.Trend),
			),
			html.Span(html.Class("stat-icon"), icon(s.Icon, 24)),
		),
	)
}

func trendNode(t *records.Trend) g.Node {
	if t == nil {
		return nil
	}
	cls, arrow := "trend-down", "↓"
	if t.Positive {
		cls, arrow = "trend-up", "↑"
	}
	v := t.Value
	if v < 0 {
		v = -v
	}
	return html.Div(
		html.Class(cls),
		html.Span(g.Text(arrow)),
		html.Span(g.Textf(" %d%% from last week", v)),
	)
}

func QuickStatCard(q records.QuickStat) g.Node {
	cls := "quick-stat"
	if q.IsAccent {
		cls += " accent"
	}
	return html.Div(
		html.Class(cls),
		html.P(html.Class("value"), g.Text(q.Value)),
		html.P(html.Class("muted"), g.Text(q.Label)),
	)
}

// FormInput is a labelled input with a leading icon. Inputs are required
// unless optional is set.
type FormInput struct {
	Label       string
	Name        string
	Type        string
	Placeholder string
	Value       string
	Icon        string
	Optional    bool
}

func (f FormInput) Node() g.Node {
	id := "f-" + f.Name
	return html.Div(
		html.Class("form-input"),
		html.Label(html.For(id), g.Text(f.Label)),
		html.Div(
			html.Style("display:flex;align-items:center;gap:.5rem"),
			g.If(f.Icon != "", icon(f.Icon, 18)),
			html.Input(
				html.ID(id),
				html.Name(f.Name),
				html.Type(f.Type),
				html.Placeholder(f.Placeholder),
				g.If(f.Value != "", html.Value(f.Value)),
				g.If(!f.Optional, html.Required()),
				html.Style("flex:1"),
			),
		),
	)
}

func InfoItem(label, value string) g.Node {
	return html.Div(
		html.Class("info-item"),
		html.Span(html.Class("muted"), g.Text(label)),
		html.Span(html.Style("font-weight:500"), g.Text(value)),
	)
}

func infoList(rows []records.LabelValue) g.Node {
	items := make([]g.Node, 0, len(rows))
	for _, r := range rows {
		items = append(items, InfoItem(r.Label, r.Value))
	}
	return g.Group(items)
}

// ResultBadge colours a result label.
func ResultBadge(result string) g.Node {
	cls := "badge badge-normal"
	if result == records.ResultCADDetected {
		cls = "badge badge-cad"
	}
	return html.Span(html.Class(cls), g.Text(result))
}

func pageHeader(title, subtitle string, extra ...g.Node) g.Node {
	return html.Header(
		html.Class("page-header"),
		html.Div(
			html.H1(g.Text(title)),
			html.P(html.Class("muted"), g.Text(subtitle)),
		),
		g.Group(extra),
	)
}

// inertButton is a control the demo shows but does not act on.
func inertButton(iconName, label, class string) g.Node {
	return html.Button(
		html.Type("button"),
		html.Class("btn "+class),
		html.Disabled(),
		html.Title(label+" is not available in this demo"),
		icon(iconName, 16),
		g.Text(label),
	)
}

func linkButton(href, iconName, label, class string) g.Node {
	return html.A(
		html.Href(href),
		html.Class("btn "+class),
		g.If(iconName != "", icon(iconName, 16)),
		g.Text(label),
	)
}

func sectionTitle(text string) g.Node {
	return html.H3(html.Style("margin-top:0"), g.Text(text))
}

func percent(v float64) string { return fmt.Sprintf("%.1f%%", v) }
