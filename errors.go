package colorpath

import (
	"errors"
	"fmt"

	"github.com/kovidgoyal/colorpath/colorspace"
	"github.com/kovidgoyal/colorpath/pixbuf"
)

var _ = fmt.Print

var (
	// ErrInvalidChannelCount is wrapped by every *ChannelCountError.
	ErrInvalidChannelCount = errors.New("invalid channel count")

	// ErrUnreachableConversion is wrapped by every *UnreachableError.
	ErrUnreachableConversion = errors.New("unreachable conversion")

	// ErrNotFound is returned when a color space id is not in the catalog.
	ErrNotFound = colorspace.ErrNotFound
)

// ChannelCountError reports a buffer whose channel count does not match the
// color space it is supposed to be in.
type ChannelCountError struct {
	Space            colorspace.ColorSpace
	Expected, Actual int

	// Stage is "input", "output", or "intermediate (A → B)" naming the
	// rule whose result had the wrong channel count
	Stage string
}

func (e *ChannelCountError) Error() string {
	return fmt.Sprintf("%s: the %s image has %d channels but the color space %s requires %d", ErrInvalidChannelCount, e.Stage, e.Actual, e.Space, e.Expected)
}

func (e *ChannelCountError) Unwrap() error { return ErrInvalidChannelCount }

// UnreachableError reports that no chain of rules converts From into To.
type UnreachableError struct {
	From, To colorspace.ColorSpace
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%s: conversion %s → %s is not possible", ErrUnreachableConversion, e.From, e.To)
}

func (e *UnreachableError) Unwrap() error { return ErrUnreachableConversion }

func check_channels(b *pixbuf.Buffer, s colorspace.ColorSpace, stage string) error {
	if b.Channels != s.Channels {
		return &ChannelCountError{Space: s, Expected: s.Channels, Actual: b.Channels, Stage: stage}
	}
	return nil
}
