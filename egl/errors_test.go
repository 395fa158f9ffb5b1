// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package egl

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorIs(t *testing.T) {
	for kind, sentinel := range kindErrors {
		err := error(&Error{Kind: kind, Code: BadAlloc, Driver: "test"})
		if !errors.Is(err, sentinel) {
			t.Errorf("%s: errors.Is(%v) = false", kind, sentinel)
		}
		if errors.Is(err, ErrBadNativeWindow) {
			t.Errorf("%s: matched ErrBadNativeWindow with code %s", kind, BadAlloc)
		}
	}
}

func TestErrorBadNativeWindow(t *testing.T) {
	err := fmt.Errorf("start: %w", &Error{Kind: KindSurfaceCreationFailed, Code: BadNativeWindow, Driver: "test"})

	if !errors.Is(err, ErrBadNativeWindow) {
		t.Error("surface failure with EGL_BAD_NATIVE_WINDOW should match ErrBadNativeWindow")
	}
	if !errors.Is(err, ErrSurfaceCreationFailed) {
		t.Error("surface failure should still match ErrSurfaceCreationFailed")
	}

	var e *Error
	if !errors.As(err, &e) || e.Code != BadNativeWindow {
		t.Errorf("errors.As(%v) did not yield code EGL_BAD_NATIVE_WINDOW", err)
	}
	if !strings.Contains(err.Error(), "EGL_BAD_NATIVE_WINDOW") {
		t.Errorf("message %q does not name the code", err.Error())
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: KindConfigUnavailable, Code: Success, Driver: "soft"}
	msg := err.Error()
	for _, part := range []string{"eglChooseConfig", "EGL_SUCCESS", "soft"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{Success, "EGL_SUCCESS"},
		{BadNativeWindow, "EGL_BAD_NATIVE_WINDOW"},
		{ContextLost, "EGL_CONTEXT_LOST"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("%#x.String() = %s, want %s", int32(tt.code), got, tt.want)
		}
	}
	if got := ErrorCode(0x1234).String(); !strings.Contains(got, "0x1234") {
		t.Errorf("unknown code String() = %s", got)
	}
}

func TestKindString(t *testing.T) {
	if got := KindMakeCurrentFailed.String(); got != "eglMakeCurrent" {
		t.Errorf("KindMakeCurrentFailed.String() = %s", got)
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99).String() = %s", got)
	}
}
