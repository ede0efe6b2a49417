package web

import (
	g "maragu.dev/gomponents"
)

// iconPaths holds stroke paths on a 24x24 grid, lucide style.
var iconPaths = map[string][]string{
	"home":           {"M3 10.5 12 3l9 7.5", "M5 9.5V21h14V9.5", "M9 21v-6h6v6"},
	"upload":         {"M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4", "M17 8l-5-5-5 5", "M12 3v12"},
	"activity":       {"M22 12h-4l-3 9L9 3l-3 9H2"},
	"file-heart":     {"M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8z", "M14 2v6h6", "M12 18l-3-3a1.8 1.8 0 0 1 3-2 1.8 1.8 0 0 1 3 2z"},
	"file-text":      {"M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8z", "M14 2v6h6", "M16 13H8", "M16 17H8"},
	"history":        {"M3 12a9 9 0 1 0 3-6.7L3 8", "M3 3v5h5", "M12 7v5l4 2"},
	"log-out":        {"M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4", "M16 17l5-5-5-5", "M21 12H9"},
	"heart":          {"M19 14c1.5-1.5 3-3.2 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.8 0-3 .5-4.5 2-1.5-1.5-2.7-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4 3 5.5l7 7z"},
	"menu":           {"M4 6h16", "M4 12h16", "M4 18h16"},
	"x":              {"M18 6 6 18", "M6 6l12 12"},
	"zap":            {"M13 2 3 14h9l-1 8 10-12h-9z"},
	"shield":         {"M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"},
	"trending-up":    {"M22 7l-8.5 8.5-5-5L2 17", "M16 7h6v6"},
	"alert-triangle": {"M10.3 3.9 1.8 18a2 2 0 0 0 1.7 3h17a2 2 0 0 0 1.7-3L13.7 3.9a2 2 0 0 0-3.4 0z", "M12 9v4", "M12 17h.01"},
	"alert-circle":   {"M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20z", "M12 8v4", "M12 16h.01"},
	"check-circle":   {"M22 11.1V12a10 10 0 1 1-5.9-9.1", "M22 4 12 14l-3-3"},
	"user":           {"M20 21v-2a4 4 0 0 0-4-4H8a4 4 0 0 0-4 4v2", "M12 11a4 4 0 1 0 0-8 4 4 0 0 0 0 8z"},
	"mail":           {"M4 4h16a2 2 0 0 1 2 2v12a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z", "M22 6l-10 7L2 6"},
	"lock":           {"M5 11h14v10H5z", "M7 11V7a5 5 0 0 1 10 0v4"},
	"search":         {"M11 19a8 8 0 1 0 0-16 8 8 0 0 0 0 16z", "M21 21l-4.3-4.3"},
	"download":       {"M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4", "M7 10l5 5 5-5", "M12 15V3"},
	"printer":        {"M6 9V2h12v7", "M6 18H4a2 2 0 0 1-2-2v-5a2 2 0 0 1 2-2h16a2 2 0 0 1 2 2v5a2 2 0 0 1-2 2h-2", "M6 14h12v8H6z"},
	"zoom-in":        {"M11 19a8 8 0 1 0 0-16 8 8 0 0 0 0 16z", "M21 21l-4.3-4.3", "M11 8v6", "M8 11h6"},
	"zoom-out":       {"M11 19a8 8 0 1 0 0-16 8 8 0 0 0 0 16z", "M21 21l-4.3-4.3", "M8 11h6"},
	"calendar":       {"M3 6h18v15H3z", "M16 2v4", "M8 2v4", "M3 10h18"},
	"filter":         {"M22 3H2l8 9.5V19l4 2v-8.5z"},
	"eye":            {"M2 12s3.5-7 10-7 10 7 10 7-3.5 7-10 7S2 12 2 12z", "M12 15a3 3 0 1 0 0-6 3 3 0 0 0 0 6z"},
	"chevron-left":   {"M15 18l-6-6 6-6"},
	"chevron-right":  {"M9 18l6-6-6-6"},
	"stethoscope":    {"M5 2v6a5 5 0 0 0 10 0V2", "M10 13v3a5 5 0 0 0 10 0v-2", "M20 12a2 2 0 1 0 0-4 2 2 0 0 0 0 4z"},
	"file":           {"M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8z", "M14 2v6h6"},
}

// icon renders a named icon. Unknown names fall back to activity.
func icon(name string, size int) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		paths = iconPaths["activity"]
	}

	children := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", itoa(size)),
		g.Attr("height", itoa(size)),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", name),
	}
	for _, d := range paths {
		children = append(children, g.El("path", g.Attr("d", d)))
	}
	return g.El("svg", children...)
}
