// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides helpers for logging and asserting errors
// through [log/slog], along with the standard library error functions
// so that callers only need to import one errors package.
package errors

import (
	"errors"
	"log/slog"
)

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Log logs the given error if it is non-nil and returns it unchanged:
//
//	errors.Log(dev.Resize(w, h))
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// LogMsg is like [Log], but logs the error as an "err" attribute
// under the given message, followed by the given key-value pairs.
func LogMsg(err error, msg string, args ...any) error {
	if err != nil {
		slog.Error(msg, append([]any{"err", err}, args...)...)
	}
	return err
}

// Log1 returns the given value, logging the error if it is non-nil:
//
//	cfg := errors.Log1(config.Open(path))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Ignore1 returns the given value and discards the error.
func Ignore1[T any](v T, err error) T {
	return v
}

// Must panics if the given error is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns the given value, panicking if the error is non-nil:
//
//	shader := errors.Must1(dev.CreateShaderModule(desc))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
