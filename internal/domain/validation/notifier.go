package validation

// Notifier surfaces a transient message to the user (a toast).
type Notifier interface {
	Error(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Error(message string) { f(message) }

// Validator exposes the checks as yes/no answers and reports failures to
// its Notifier. Callers drop the submission on false; there is no retry.
type Validator struct {
	Notifier Notifier
}

func (v Validator) report(err error) bool {
	if err == nil {
		return true
	}
	if v.Notifier != nil {
		v.Notifier.Error(err.Error())
	}
	return false
}

func (v Validator) Password(p string) bool { return v.report(CheckPassword(p)) }

func (v Validator) PasswordMatch(p, confirm string) bool {
	return v.report(CheckPasswordMatch(p, confirm))
}

func (v Validator) ECGFile(name string, size int64, allowed []string, maxSizeMB int) bool {
	return v.report(CheckECGFile(name, size, allowed, maxSizeMB))
}

func (v Validator) Email(e string) bool { return v.report(CheckEmail(e)) }

func (v Validator) Required(value, field string) bool {
	return v.report(CheckRequired(value, field))
}
