package errors

import (
	stderrors "errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidZoom, "zoom level %d not in manifest", 3)

	if err.Code != ErrCodeInvalidZoom {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidZoom)
	}
	if err.Message != "zoom level 3 not in manifest" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause should be nil, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch manifest")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidManifest, "empty page list"),
			want: "INVALID_MANIFEST: empty page list",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeNetwork, stderrors.New("timeout"), "fetch failed"),
			want: "NETWORK_ERROR: fetch failed: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidZoom, "no such zoom")

	if !Is(err, ErrCodeInvalidZoom) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidZoom) {
		t.Error("Is should not match a plain error")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "missing")); got != ErrCodeNotFound {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "padding cannot be negative")
	if got := UserMessage(err); got != "padding cannot be negative" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}

func TestValidateManifestID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid uuid", "7a1f4c3e-9d2b-4a8f-b1c0-6e5d4f3a2b1c", false},
		{"valid slug", "user-guide-v2", false},
		{"empty", "", true},
		{"path traversal", "../secrets", true},
		{"slash", "a/b", true},
		{"control char", "abc\x00def", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManifestID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateManifestID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	if err := ValidateURL("https://docs.example.com/manifest.json"); err != nil {
		t.Errorf("valid https URL rejected: %v", err)
	}
	if err := ValidateURL("ftp://example.com"); err == nil {
		t.Error("ftp scheme should be rejected")
	}
	if err := ValidateURL(""); err == nil {
		t.Error("empty URL should be rejected")
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"json", "svg"} {
		if err := ValidateOutputFormat(f); err != nil {
			t.Errorf("format %q should be valid: %v", f, err)
		}
	}
	if err := ValidateOutputFormat("png"); err == nil {
		t.Error("png should be rejected")
	}
	if !Is(ValidateOutputFormat("png"), ErrCodeInvalidFormat) {
		t.Error("format error should carry ErrCodeInvalidFormat")
	}
}
