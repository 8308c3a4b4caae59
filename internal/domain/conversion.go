package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var ErrNoFileSelected = errors.New("no file selected")

type ConversionRequest struct {
	SourcePath   string
	TargetFormat Format
}

type ConversionResult struct {
	ID          string
	Request     ConversionRequest
	Outcome     string
	OutputPath  string
	ErrorDetail string
	Err         error
	Bytes       int
	Duration    time.Duration
}

func (r ConversionRequest) Validate() error {
	if strings.TrimSpace(r.SourcePath) == "" {
		return ErrNoFileSelected
	}
	if !r.TargetFormat.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, r.TargetFormat)
	}
	return nil
}

func Succeeded(id string, req ConversionRequest, outputPath string, bytes int, took time.Duration) ConversionResult {
	return ConversionResult{
		ID:         id,
		Request:    req,
		Outcome:    OutcomeSuccess,
		OutputPath: outputPath,
		Bytes:      bytes,
		Duration:   took,
	}
}

// Failed collapses any conversion error into the single failure outcome.
func Failed(id string, req ConversionRequest, err error, took time.Duration) ConversionResult {
	detail := "unknown error"
	if err != nil {
		detail = err.Error()
	}
	return ConversionResult{
		ID:          id,
		Request:     req,
		Outcome:     OutcomeFailure,
		ErrorDetail: detail,
		Err:         err,
		Duration:    took,
	}
}

func (r ConversionResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}
