package httpserver

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	appauth "github.com/bryanwahyu/cad-detect/internal/application/auth"
	appsignal "github.com/bryanwahyu/cad-detect/internal/application/signal"
	appuploads "github.com/bryanwahyu/cad-detect/internal/application/uploads"
	"github.com/bryanwahyu/cad-detect/internal/domain/ecg"
	"github.com/bryanwahyu/cad-detect/internal/domain/records"
	"github.com/bryanwahyu/cad-detect/internal/domain/role"
	domupload "github.com/bryanwahyu/cad-detect/internal/domain/upload"
	"github.com/bryanwahyu/cad-detect/internal/domain/validation"
	"github.com/bryanwahyu/cad-detect/internal/infra/web"
	"github.com/bryanwahyu/cad-detect/internal/middleware"
)

// landing page live demo runs a little faster than the dashboards
const landingSpeed = 1.5

// GET /
func (r *Router) handleIndex(w http.ResponseWriter, req *http.Request) error {
	return render(w, http.StatusOK, web.Index(web.IndexData{
		App:       r.cat.App,
		Features:  r.cat.Features,
		Live:      r.signal.Preview(appsignal.LiveOptions{}),
		LiveSpeed: landingSpeed,
		Toast:     takeFlash(w, req),
	}))
}

// GET /{role}/login
func (r *Router) handleLoginForm(w http.ResponseWriter, req *http.Request) error {
	p := middleware.ProfileFromContext(req)
	return render(w, http.StatusOK, web.Login(web.LoginData{
		App:   r.cat.App,
		Role:  p.Role,
		Toast: takeFlash(w, req),
	}))
}

// POST /{role}/login
// Any credentials are accepted after the simulated delay.
func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseForm(); err != nil {
		return badRequest("invalid form")
	}
	p := middleware.ProfileFromContext(req)
	out := r.auth.Login(req.Context(), appauth.LoginCommand{
		Role:       p.Role,
		Identifier: middleware.SanitizeString(req.PostForm.Get("identifier")),
		Password:   req.PostForm.Get("password"),
	})
	redirect(w, req, out.Redirect, web.SuccessToast(out.Toast))
	return nil
}

// GET /{role}/logout
func (r *Router) handleLogout(w http.ResponseWriter, req *http.Request) {
	clearUIState(w)
	http.Redirect(w, req, "/", http.StatusSeeOther)
}

// GET /signup?role=
func (r *Router) handleSignupForm(w http.ResponseWriter, req *http.Request) error {
	d := web.SignupData{Toast: takeFlash(w, req)}
	if rl, err := role.Parse(req.URL.Query().Get("role")); err == nil {
		d.Role = rl
	}
	return render(w, http.StatusOK, web.Signup(d))
}

// POST /signup
func (r *Router) handleSignup(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseForm(); err != nil {
		return badRequest("invalid form")
	}
	rl, err := role.Parse(req.PostForm.Get("role"))
	if err != nil {
		redirect(w, req, "/signup", web.ErrorToast("Please choose an account type."))
		return nil
	}

	cmd := appauth.SignupCommand{
		Role:            rl,
		Name:            middleware.SanitizeString(req.PostForm.Get("name")),
		Email:           middleware.SanitizeString(req.PostForm.Get("email")),
		Password:        req.PostForm.Get("password"),
		ConfirmPassword: req.PostForm.Get("confirm_password"),
	}
	again := func(msg string) error {
		return render(w, http.StatusUnprocessableEntity, web.Signup(web.SignupData{
			Role:  rl,
			Name:  cmd.Name,
			Email: cmd.Email,
			Toast: web.ErrorToast(msg),
		}))
	}

	var failed string
	v := validation.Validator{Notifier: validation.NotifierFunc(func(m string) { failed = m })}
	if !v.Required(cmd.Name, "Full name") || !v.Email(cmd.Email) {
		return again(failed)
	}

	out, err := r.auth.Signup(req.Context(), cmd)
	if err != nil {
		ve, ok := validation.AsError(err)
		if !ok {
			return err
		}
		return again(ve.Message)
	}
	redirect(w, req, out.Redirect, web.SuccessToast(out.Toast))
	return nil
}

// GET /forgot-password
func (r *Router) handleForgotForm(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query()
	d := web.ForgotPasswordData{
		Sent:  q.Get("sent") == "1",
		Toast: takeFlash(w, req),
	}
	if d.Sent {
		d.Email = middleware.SanitizeString(q.Get("email"))
	}
	return render(w, http.StatusOK, web.ForgotPassword(d))
}

// POST /forgot-password
func (r *Router) handleForgot(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseForm(); err != nil {
		return badRequest("invalid form")
	}
	email := middleware.SanitizeString(req.PostForm.Get("email"))
	out, err := r.auth.ResetPassword(req.Context(), email)
	if err != nil {
		ve, ok := validation.AsError(err)
		if !ok {
			return err
		}
		return render(w, http.StatusUnprocessableEntity, web.ForgotPassword(web.ForgotPasswordData{
			Email: email,
			Toast: web.ErrorToast(ve.Message),
		}))
	}
	redirect(w, req, out.Redirect+"&email="+url.QueryEscape(email), web.SuccessToast(out.Toast))
	return nil
}

// GET /{role}/dashboard?patient=
func (r *Router) handleDashboard(w http.ResponseWriter, req *http.Request) error {
	p := middleware.ProfileFromContext(req)
	d := web.DashboardData{
		Profile: p,
		UI:      r.uiState(w, req),
		Catalog: r.cat,
	}
	if p.Role == role.Doctor {
		if id := middleware.SanitizeString(req.URL.Query().Get("patient")); id != "" {
			rec, ok := r.cat.FindPatient(id)
			if !ok {
				return fmt.Errorf("patient %q: %w", id, records.ErrNotFound)
			}
			d.Selected = &rec
		}
		d.Live = r.signal.Preview(appsignal.LiveOptions{Speed: r.cat.DoctorDashboard.LatestSignal.Speed})
		return render(w, http.StatusOK, web.DoctorDashboard(d))
	}
	d.Live = r.signal.Preview(appsignal.LiveOptions{Speed: r.cat.PatientDashboard.LiveSpeed})
	return render(w, http.StatusOK, web.PatientDashboard(d))
}

func (r *Router) uploadData(w http.ResponseWriter, req *http.Request) web.UploadData {
	formats := r.uploads.AllowedFormats
	if len(formats) == 0 {
		formats = validation.DefaultECGFormats
	}
	return web.UploadData{
		Profile:      middleware.ProfileFromContext(req),
		UI:           r.uiState(w, req),
		Formats:      formats,
		MaxSizeMB:    r.maxSizeMB(),
		Requirements: r.cat.Upload.Requirements,
		Notes:        r.cat.Upload.Notes,
	}
}

// GET /{role}/upload?id=
func (r *Router) handleUploadForm(w http.ResponseWriter, req *http.Request) error {
	d := r.uploadData(w, req)
	if id := req.URL.Query().Get("id"); id != "" {
		if err := middleware.ValidateUploadID(id); err != nil {
			return badRequest(err.Error())
		}
		u, err := r.uploads.Get(req.Context(), domupload.ID(id))
		if err != nil {
			return err
		}
		d.Upload = u
	}
	return render(w, http.StatusOK, web.UploadPage(d))
}

// POST /{role}/upload (multipart, field "file")
// The part is streamed into the upload service so the extension is checked
// before any of the body is read.
func (r *Router) handleUpload(w http.ResponseWriter, req *http.Request) error {
	p := middleware.ProfileFromContext(req)
	back := p.Path("upload")

	limit := validation.MaxBytes(r.maxSizeMB()) + 1<<20
	req.Body = http.MaxBytesReader(w, req.Body, limit)

	// server ReadTimeout terlalu pendek untuk body sebesar limit
	if err := http.NewResponseController(w).SetReadDeadline(time.Now().Add(uploadReadTimeout(limit))); err != nil {
		r.log.Debug("upload read deadline not extended", zap.Error(err))
	}

	part, err := filePart(req)
	if err != nil {
		r.metrics.Upload("rejected")
		redirect(w, req, back, web.ErrorToast("Please choose an ECG file to upload."))
		return nil
	}
	defer part.Close()

	u, err := r.uploads.Receive(req.Context(), appuploads.ReceiveCommand{
		Role:     p.Role,
		FileName: part.FileName(),
		Body:     part,
	})
	if err != nil {
		if ve, ok := validation.AsError(err); ok {
			r.metrics.Upload("rejected")
			redirect(w, req, back, web.ErrorToast(ve.Message))
			return nil
		}
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			r.metrics.Upload("rejected")
			redirect(w, req, back, web.ErrorToast(fmt.Sprintf("File size exceeds %dMB limit.", r.maxSizeMB())))
			return nil
		}
		r.metrics.Upload("failed")
		return err
	}

	r.metrics.Upload("accepted")
	redirect(w, req, back+"?id="+url.QueryEscape(string(u.ID)), web.Toast{})
	return nil
}

// minUploadRate is the slowest client the upload deadline still waits for.
const minUploadRate = 64 << 10 // bytes per second

func uploadReadTimeout(limit int64) time.Duration {
	return 30*time.Second + time.Duration(limit/minUploadRate)*time.Second
}

func (r *Router) maxSizeMB() int {
	if r.uploads.MaxSizeMB > 0 {
		return r.uploads.MaxSizeMB
	}
	return validation.DefaultMaxSizeMB
}

var errNoFile = errors.New("no file part")

// filePart returns the first multipart part named "file".
func filePart(req *http.Request) (*multipart.Part, error) {
	mr, err := req.MultipartReader()
	if err != nil {
		return nil, err
	}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return nil, errNoFile
		}
		if err != nil {
			return nil, err
		}
		if part.FormName() == "file" && strings.TrimSpace(part.FileName()) != "" {
			return part, nil
		}
		part.Close()
	}
}

// GET /{role}/signal?zoom=
func (r *Router) handleSignal(w http.ResponseWriter, req *http.Request) error {
	zoom, err := ecg.ParseZoom(req.URL.Query().Get("zoom"))
	if err != nil {
		r.log.Debug("bad zoom, using default", zap.String("zoom", req.URL.Query().Get("zoom")))
	}
	view, err := r.signal.Waveform(zoom, 0)
	if err != nil {
		return err
	}
	return render(w, http.StatusOK, web.SignalPage(web.SignalData{
		Profile: middleware.ProfileFromContext(req),
		UI:      r.uiState(w, req),
		View:    view,
		Info:    r.cat.SignalInfo,
	}))
}

// GET /{role}/result
func (r *Router) handleResult(w http.ResponseWriter, req *http.Request) error {
	return render(w, http.StatusOK, web.ResultPage(web.ResultData{
		Profile: middleware.ProfileFromContext(req),
		UI:      r.uiState(w, req),
		Result:  r.cat.ResultView(),
	}))
}

// GET /{role}/reports
func (r *Router) handleReports(w http.ResponseWriter, req *http.Request) error {
	return render(w, http.StatusOK, web.ReportsPage(web.ReportData{
		Profile: middleware.ProfileFromContext(req),
		UI:      r.uiState(w, req),
		Report:  r.cat.Report,
	}))
}

// GET /{role}/history?q=&page=
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	q := middleware.SanitizeSearch(req.URL.Query().Get("q"))
	page := middleware.ValidatePage(req.URL.Query().Get("page"))

	res, err := r.history.Search(req.Context(), q, page, records.DefaultPageSize)
	if err != nil {
		return err
	}
	return render(w, http.StatusOK, web.HistoryPage(web.HistoryData{
		Profile: middleware.ProfileFromContext(req),
		UI:      r.uiState(w, req),
		Result:  res,
	}))
}
