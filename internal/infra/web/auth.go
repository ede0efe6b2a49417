package web

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/bryanwahyu/cad-detect/internal/catalog"
	"github.com/bryanwahyu/cad-detect/internal/domain/ecg"
	"github.com/bryanwahyu/cad-detect/internal/domain/records"
	"github.com/bryanwahyu/cad-detect/internal/domain/role"
)

// IndexData feeds the landing page.
type IndexData struct {
	App       catalog.App
	Features  []records.Feature
	Live      ecg.Frame
	LiveSpeed float64
	Toast     Toast
}

func brand(subtitle string) g.Node {
	return html.Div(
		html.Style("display:flex;align-items:center;gap:.75rem"),
		html.Div(html.Class("avatar"), icon("heart", 22)),
		html.Div(
			html.Strong(g.Text("CAD Detect")),
			html.P(html.Class("muted"), html.Style("margin:0"), g.Text(subtitle)),
		),
	)
}

// Index is the public landing page.
func Index(d IndexData) g.Node {
	features := make([]g.Node, 0, len(d.Features))
	for _, f := range d.Features {
		features = append(features, MedicalCard(
			html.Div(html.Style("text-align:center"),
				icon(f.Icon, 28),
				html.H3(g.Text(f.Title)),
				html.P(html.Class("muted"), g.Text(f.Description)),
			),
		))
	}

	return Document(d.App.Name, d.Toast,
		html.Div(
			html.Style("max-width:72rem;margin:0 auto;padding:3rem 1rem"),
			html.Nav(
				html.Style("display:flex;justify-content:space-between;align-items:center;margin-bottom:4rem"),
				brand("ECG Analysis System"),
				html.Div(
					html.Style("display:flex;gap:1rem"),
					linkButton("/doctor/login", "", "Doctor Login", "btn-outline"),
					linkButton("/patient/login", "", "Patient Login", "btn-outline"),
				),
			),
			html.Section(
				html.Style("text-align:center;margin-bottom:4rem"),
				html.P(html.Class("badge badge-normal"), icon("activity", 14), g.Text(" AI-Powered Heart Health Analysis")),
				html.H1(g.Text("Coronary Artery Disease"), html.Br(), g.Text("Detection System")),
				html.P(html.Class("muted"), g.Text("Advanced ECG signal analysis powered by machine learning for early detection of coronary artery disease. Accurate, fast, and reliable cardiovascular health monitoring.")),
				html.Div(
					html.Style("display:flex;gap:1rem;justify-content:center"),
					linkButton("/doctor/login", "stethoscope", "Doctor Portal", ""),
					linkButton("/patient/login", "user", "Patient Portal", "btn-accent"),
				),
			),
			html.Section(
				html.Style("margin-bottom:4rem"),
				MedicalCard(
					html.Div(
						html.Style("display:flex;justify-content:space-between;margin-bottom:1rem"),
						html.Span(g.Text("Live ECG Analysis Demo")),
						html.Span(html.Class("muted"), g.Text("HR: 72 BPM  Lead: II")),
					),
					LiveECGSignal("landing-live", d.Live, d.LiveSpeed),
				),
			),
			html.Section(html.Class("grid grid-3"), g.Group(features)),
			html.Footer(
				html.Style("text-align:center;padding:2rem 0"),
				html.P(html.Class("muted"), g.Text(d.App.LandingFooter)),
			),
		),
	)
}

// LoginData feeds both login pages.
type LoginData struct {
	App        catalog.App
	Role       role.Role
	Identifier string
	Toast      Toast
}

type loginCopy struct {
	title, subtitle, tagline string
	idLabel, idPlaceholder   string
	idType, idIcon           string
	otherPrompt, otherPath   string
	button                   string
}

func copyFor(a catalog.App, r role.Role) loginCopy {
	if r == role.Doctor {
		return loginCopy{
			title: "Doctor Login", subtitle: "Access your medical dashboard", tagline: a.Tagline,
			idLabel: "Email Address", idPlaceholder: "doctor@hospital.com", idType: "email", idIcon: "mail",
			otherPrompt: "Are you a patient?", otherPath: "/patient/login", button: "",
		}
	}
	return loginCopy{
		title: "Patient Login", subtitle: "Access your health records", tagline: a.PatientTagline,
		idLabel: "Patient ID or Email", idPlaceholder: "PAT-12345 or email@example.com", idType: "text", idIcon: "user",
		otherPrompt: "Are you a doctor?", otherPath: "/doctor/login", button: "btn-accent",
	}
}

// Login renders the sign-in form of r. Any credentials are accepted.
func Login(d LoginData) g.Node {
	c := copyFor(d.App, d.Role)
	p := role.ProfileFor(d.Role)

	return Document(c.title+" | CAD Detect", d.Toast,
		html.Div(
			html.Class("auth"),
			html.Div(
				html.Style("width:100%;max-width:28rem"),
				html.Div(html.Style("text-align:center;margin-bottom:1.5rem"),
					brand(c.tagline),
				),
				MedicalCard(
					html.H2(g.Text(c.title)),
					html.P(html.Class("muted"), g.Text(c.subtitle)),
					html.Form(
						html.Method("post"),
						html.Action(p.LoginPath()),
						FormInput{Label: c.idLabel, Name: "identifier", Type: c.idType, Placeholder: c.idPlaceholder, Value: d.Identifier, Icon: c.idIcon}.Node(),
						FormInput{Label: "Password", Name: "password", Type: "password", Placeholder: "••••••••", Icon: "lock"}.Node(),
						html.Div(
							html.Style("display:flex;justify-content:space-between;margin-bottom:1rem"),
							html.Label(html.Input(html.Type("checkbox"), html.Name("remember")), g.Text(" Remember me")),
							html.A(html.Href("/forgot-password"), g.Text("Forgot password?")),
						),
						html.Button(html.Type("submit"), html.Class("btn "+c.button), html.Style("width:100%"), g.Text("Sign In")),
					),
					html.P(html.Class("muted"), g.Text("Don't have an account? "), html.A(html.Href("/signup?role="+d.Role.String()), g.Text("Sign up"))),
					html.P(html.Class("muted"), g.Text(c.otherPrompt+" "), html.A(html.Href(c.otherPath), g.Text("Login here"))),
				),
			),
		),
	)
}

// SignupData drives both steps of account creation. An empty Role shows the
// role choice.
type SignupData struct {
	Role  role.Role
	Name  string
	Email string
	Toast Toast
}

func Signup(d SignupData) g.Node {
	var body g.Node
	if d.Role == "" {
		body = MedicalCard(
			html.H2(g.Text("Choose Account Type")),
			html.Div(html.Class("grid grid-2"),
				roleChoice(role.Doctor, "stethoscope", "I'm a Doctor", "Medical professional account"),
				roleChoice(role.Patient, "user", "I'm a Patient", "Personal health account"),
			),
		)
	} else {
		title := "Patient Registration"
		if d.Role == role.Doctor {
			title = "Doctor Registration"
		}
		body = MedicalCard(
			html.H2(g.Text(title)),
			html.P(html.Class("muted"), g.Text("Fill in your details")),
			html.Form(
				html.Method("post"),
				html.Action("/signup"),
				html.Input(html.Type("hidden"), html.Name("role"), html.Value(d.Role.String())),
				FormInput{Label: "Full Name", Name: "name", Type: "text", Placeholder: "John Doe", Value: d.Name, Icon: "user"}.Node(),
				FormInput{Label: "Email Address", Name: "email", Type: "email", Placeholder: "your@email.com", Value: d.Email, Icon: "mail"}.Node(),
				FormInput{Label: "Password", Name: "password", Type: "password", Placeholder: "••••••••", Icon: "lock"}.Node(),
				FormInput{Label: "Confirm Password", Name: "confirm_password", Type: "password", Placeholder: "••••••••", Icon: "lock"}.Node(),
				html.Div(html.Style("display:flex;gap:.5rem"),
					linkButton("/signup", "chevron-left", "Back", "btn-outline"),
					html.Button(html.Type("submit"), html.Class("btn"), html.Style("flex:1"), g.Text("Create Account")),
				),
			),
		)
	}

	return Document("Create Account | CAD Detect", d.Toast,
		html.Div(
			html.Class("auth"),
			html.Div(
				html.Style("width:100%;max-width:32rem"),
				html.Div(html.Style("text-align:center;margin-bottom:1.5rem"),
					html.H1(g.Text("Create Account")),
					html.P(html.Class("muted"), g.Text("Join CAD Detection System")),
				),
				body,
				html.P(html.Class("muted"), html.Style("text-align:center"),
					g.Text("Already have an account? "), html.A(html.Href("/doctor/login"), g.Text("Login here")),
				),
			),
		),
	)
}

func roleChoice(r role.Role, iconName, title, desc string) g.Node {
	return html.A(
		html.Href("/signup?role="+r.String()),
		html.Class("card"),
		html.Style("text-align:center;display:block"),
		icon(iconName, 32),
		html.H3(g.Text(title)),
		html.P(html.Class("muted"), g.Text(desc)),
	)
}

// ForgotPasswordData: Sent switches to the confirmation state.
type ForgotPasswordData struct {
	Email string
	Sent  bool
	Toast Toast
}

func ForgotPassword(d ForgotPasswordData) g.Node {
	var body g.Node
	if d.Sent {
		body = MedicalCard(
			html.Div(html.Style("text-align:center"),
				icon("check-circle", 40),
				html.H2(g.Text("Check Your Email")),
				html.P(g.Text("We've sent a password reset link to "), html.Strong(g.Text(d.Email))),
				html.P(html.Class("muted"), g.Text("Didn't receive the email? Check your spam folder or try again")),
			),
		)
	} else {
		body = MedicalCard(
			html.H2(g.Text("Forgot Password")),
			html.P(html.Class("muted"), g.Text("Enter your registered email")),
			html.Form(
				html.Method("post"),
				html.Action("/forgot-password"),
				FormInput{Label: "Email Address", Name: "email", Type: "email", Placeholder: "your@email.com", Value: d.Email, Icon: "mail"}.Node(),
				html.Button(html.Type("submit"), html.Class("btn"), html.Style("width:100%"), g.Text("Send Reset Link")),
			),
		)
	}

	return Document("Reset Password | CAD Detect", d.Toast,
		html.Div(
			html.Class("auth"),
			html.Div(
				html.Style("width:100%;max-width:28rem"),
				html.Div(html.Style("text-align:center;margin-bottom:1.5rem"),
					html.H1(g.Text("Reset Password")),
					html.P(html.Class("muted"), g.Text("We'll send you a link to reset your password")),
				),
				body,
				html.P(html.Style("text-align:center"), html.A(html.Href("/doctor/login"), icon("chevron-left", 14), g.Text("Back to Login"))),
			),
		),
	)
}

// NotFound is shown for every unmatched path.
func NotFound(path string) g.Node {
	return Document("404 | CAD Detect", Toast{},
		html.Div(
			html.Class("auth"),
			html.Div(
				html.Style("text-align:center"),
				html.H1(html.Style("font-size:4rem;margin:0"), g.Text("404")),
				html.P(g.Text("Oops! Page not found")),
				html.P(html.Class("muted"), html.Code(g.Text(path))),
				linkButton("/", "home", "Return to Home", ""),
			),
		),
	)
}
