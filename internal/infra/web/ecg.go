package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	appsignal "github.com/bryanwahyu/cad-detect/internal/application/signal"
	"github.com/bryanwahyu/cad-detect/internal/domain/ecg"
)

// decorativePath is three stylised beats on a 300x100 box.
const decorativePath = "M 0 50 L 30 50 L 35 50 L 40 45 L 45 55 L 50 50 L 60 50 L 65 50 L 70 20 L 75 80 L 80 35 L 85 50 L 100 50 " +
	"L 130 50 L 135 50 L 140 45 L 145 55 L 150 50 L 160 50 L 165 50 L 170 20 L 175 80 L 180 35 L 185 50 L 200 50 " +
	"L 230 50 L 235 50 L 240 45 L 245 55 L 250 50 L 260 50 L 265 50 L 270 20 L 275 80 L 280 35 L 285 50 L 300 50"

const ecgColor = "#00a8e8"

// ECGWaveform is the decorative trace used in headers and the sidebar. id
// keeps gradient ids unique when several are on one page.
func ECGWaveform(id string, height int) g.Node {
	grad := id + "-grad"
	glow := id + "-glow"
	return g.El("svg",
		g.Attr("viewBox", "0 0 300 100"),
		g.Attr("preserveAspectRatio", "none"),
		g.Attr("width", "100%"),
		g.Attr("height", itoa(height)),
		g.Attr("class", "ecg-waveform"),
		g.El("defs",
			g.El("linearGradient", g.Attr("id", grad), g.Attr("x1", "0%"), g.Attr("y1", "0%"), g.Attr("x2", "100%"), g.Attr("y2", "0%"),
				gradientStop("0%", "0.8"),
				gradientStop("50%", "1"),
				gradientStop("100%", "0.8"),
			),
			g.El("filter", g.Attr("id", glow),
				g.El("feGaussianBlur", g.Attr("stdDeviation", "2"), g.Attr("result", "coloredBlur")),
				g.El("feMerge",
					g.El("feMergeNode", g.Attr("in", "coloredBlur")),
					g.El("feMergeNode", g.Attr("in", "SourceGraphic")),
				),
			),
		),
		g.El("path",
			g.Attr("d", decorativePath),
			g.Attr("fill", "none"),
			g.Attr("stroke", "url(#"+grad+")"),
			g.Attr("stroke-width", "2.5"),
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("filter", "url(#"+glow+")"),
			g.Attr("class", "ecg-line"),
		),
	)
}

func gradientStop(offset, opacity string) g.Node {
	return g.El("stop", g.Attr("offset", offset), g.Attr("stop-color", ecgColor), g.Attr("stop-opacity", opacity))
}

func polyline(pts []ecg.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(p.X, 'f', 1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Y, 'f', 2, 64))
	}
	return b.String()
}

// SignalChart draws the zoomed recording on a grid: minor lines every
// 10px, major lines every 50px.
func SignalChart(v appsignal.WaveformView) g.Node {
	w := len(v.Points)
	if w < v.Width {
		w = v.Width
	}
	h := v.Height

	nodes := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", itoa(w)),
		g.Attr("height", itoa(h)),
		g.Attr("viewBox", fmt.Sprintf("0 0 %d %d", w, h)),
		g.Attr("id", "signal-chart"),
		g.El("rect", g.Attr("width", "100%"), g.Attr("height", "100%"), g.Attr("fill", "#ffffff")),
	}
	nodes = append(nodes, gridLines(w, h, 10, "rgba(0, 168, 232, 0.1)", "0.5")...)
	nodes = append(nodes, gridLines(w, h, 50, "rgba(0, 168, 232, 0.25)", "1")...)
	nodes = append(nodes,
		g.El("polyline",
			g.Attr("points", polyline(v.Points)),
			g.Attr("fill", "none"),
			g.Attr("stroke", ecgColor),
			g.Attr("stroke-width", "2"),
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
		),
	)
	return g.El("svg", nodes...)
}

func gridLines(w, h, step int, color, width string) []g.Node {
	out := make([]g.Node, 0, w/step+h/step+2)
	for x := 0; x <= w; x += step {
		out = append(out, line(x, 0, x, h, color, width))
	}
	for y := 0; y <= h; y += step {
		out = append(out, line(0, y, w, y, color, width))
	}
	return out
}

func line(x1, y1, x2, y2 int, color, width string) g.Node {
	return g.El("line",
		g.Attr("x1", itoa(x1)), g.Attr("y1", itoa(y1)),
		g.Attr("x2", itoa(x2)), g.Attr("y2", itoa(y2)),
		g.Attr("stroke", color), g.Attr("stroke-width", width),
	)
}

// LiveECGSignal renders the first live frame server-side, then a small
// script replaces it with frames from the event stream.
func LiveECGSignal(id string, f ecg.Frame, speed float64) g.Node {
	q := url.Values{}
	q.Set("speed", fmtFloat(speed))
	q.Set("width", itoa(f.Width))
	q.Set("height", itoa(f.Height))
	src := "/api/v1/signal/live?" + q.Encode()

	return html.Div(
		html.Class("live-ecg"),
		html.Style("background:#0b2239;border-radius:.75rem;padding:.5rem"),
		g.El("svg",
			g.Attr("id", id),
			g.Attr("data-src", src),
			g.Attr("width", "100%"),
			g.Attr("height", itoa(f.Height)),
			g.Attr("viewBox", fmt.Sprintf("0 0 %d %d", f.Width, f.Height)),
			g.Attr("preserveAspectRatio", "none"),
			g.El("polyline",
				g.Attr("class", "live-trace"),
				g.Attr("points", polyline(f.Points)),
				g.Attr("fill", "none"),
				g.Attr("stroke", ecgColor),
				g.Attr("stroke-width", "2"),
			),
			g.El("circle",
				g.Attr("class", "live-glow"),
				g.Attr("cx", fmtFloat(f.Lead.X)), g.Attr("cy", fmtFloat(f.Lead.Y)),
				g.Attr("r", fmtFloat(f.Lead.GlowRadius)),
				g.Attr("fill", ecgColor), g.Attr("fill-opacity", "0.3"),
			),
			g.El("circle",
				g.Attr("class", "live-dot"),
				g.Attr("cx", fmtFloat(f.Lead.X)), g.Attr("cy", fmtFloat(f.Lead.Y)),
				g.Attr("r", fmtFloat(f.Lead.Radius)),
				g.Attr("fill", ecgColor),
			),
		),
		html.Script(g.Raw(fmt.Sprintf(liveScript, id))),
	)
}

// stream ditutup otomatis waktu halaman di-unload
const liveScript = `
(function () {
  var svg = document.getElementById(%q);
  if (!svg || !window.EventSource) { return; }
  var line = svg.querySelector('.live-trace');
  var glow = svg.querySelector('.live-glow');
  var dot = svg.querySelector('.live-dot');
  var es = new EventSource(svg.getAttribute('data-src'));
  es.addEventListener('frame', function (e) {
    var f = JSON.parse(e.data);
    line.setAttribute('points', f.points.map(function (p) { return p.x + ',' + p.y; }).join(' '));
    [glow, dot].forEach(function (c) { c.setAttribute('cx', f.lead.x); c.setAttribute('cy', f.lead.y); });
  });
  window.addEventListener('beforeunload', function () { es.close(); });
})();
`
