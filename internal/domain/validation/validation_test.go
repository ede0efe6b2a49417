package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mb = 1024 * 1024

type recorder struct{ msgs []string }

func (r *recorder) Error(m string) { r.msgs = append(r.msgs, m) }

func TestValidator_Password(t *testing.T) {
	rec := &recorder{}
	v := Validator{Notifier: rec}

	assert.False(t, v.Password("abc"))
	assert.True(t, v.Password("abcdef"))
	require.Len(t, rec.msgs, 1)
	assert.Equal(t, "Password must be at least 6 characters!", rec.msgs[0])
}

// panjang dihitung per karakter, bukan per byte
func TestCheckPassword_CountsCharacters(t *testing.T) {
	assert.ErrorIs(t, CheckPassword("ééé"), ErrPasswordTooShort)
	assert.ErrorIs(t, CheckPassword("日本"), ErrPasswordTooShort)
	assert.NoError(t, CheckPassword("ééééé1"))
}

func TestValidator_PasswordMatch(t *testing.T) {
	rec := &recorder{}
	v := Validator{Notifier: rec}

	assert.True(t, v.PasswordMatch("x", "x"))
	assert.False(t, v.PasswordMatch("x", "y"))
	assert.Equal(t, []string{"Passwords do not match!"}, rec.msgs)
}

func TestValidator_ECGFile(t *testing.T) {
	rec := &recorder{}
	v := Validator{Notifier: rec}

	assert.True(t, v.ECGFile("trace.TXT", 1*mb, nil, 0))
	assert.False(t, v.ECGFile("trace.csv", 11*mb, []string{".csv"}, 10))
	assert.Equal(t, []string{"File size exceeds 10MB limit."}, rec.msgs)
}

func TestCheckECGFile(t *testing.T) {
	cases := []struct {
		name string
		file string
		size int64
		kind error
	}{
		{"csv 10MB accepted", "trace.csv", 10 * mb, nil},
		{"bin rejected", "trace.bin", 10 * mb, ErrFileFormat},
		{"csv 60MB rejected", "trace.csv", 60 * mb, ErrFileTooLarge},
		{"exactly 50MB accepted", "trace.mat", 50 * mb, nil},
		{"upper case extension", "TRACE.TXT", 1, nil},
		{"no extension", "trace", 1, ErrFileFormat},
		{"double extension uses last", "trace.csv.exe", 1, ErrFileFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckECGFile(tc.file, tc.size, DefaultECGFormats, 50)
			if tc.kind == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.kind)
		})
	}
}

func TestCheckECGFile_FormatCheckedBeforeSize(t *testing.T) {
	err := CheckECGFile("trace.bin", 60*mb, nil, 0)
	assert.ErrorIs(t, err, ErrFileFormat)
	assert.Equal(t, "Invalid file format. Please upload .csv, .mat, .txt files.", err.Error())
}

func TestCheckEmail(t *testing.T) {
	assert.NoError(t, CheckEmail("doctor@hospital.com"))
	assert.ErrorIs(t, CheckEmail("doctor@hospital"), ErrInvalidEmail)
	assert.ErrorIs(t, CheckEmail("doc tor@hospital.com"), ErrInvalidEmail)
	assert.ErrorIs(t, CheckEmail(""), ErrInvalidEmail)
}

func TestCheckRequired(t *testing.T) {
	err := CheckRequired("  ", "Full name")
	require.Error(t, err)
	assert.Equal(t, "Full name is required!", err.Error())
	assert.NoError(t, CheckRequired("Ann", "Full name"))
}

func TestAsError(t *testing.T) {
	ve, ok := AsError(CheckPassword("a"))
	require.True(t, ok)
	assert.ErrorIs(t, ve, ErrPasswordTooShort)

	_, ok = AsError(errors.New("boom"))
	assert.False(t, ok)
}

func TestValidator_NilNotifier(t *testing.T) {
	v := Validator{}
	assert.False(t, v.Email("nope"))
	assert.True(t, v.Required("x", "Field"))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".csv", Extension("a/b/trace.CSV"))
	assert.Equal(t, ".mat", Extension(`C:\data\trace.mat`))
	assert.Equal(t, ".trace", Extension("trace"))
}
