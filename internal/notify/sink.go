package notify

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/dunamismax/imgconvert/internal/domain"
	"github.com/dunamismax/imgconvert/internal/logging"
)

const remediationHints = "Possible fixes:\n" +
	"1. Check if the file is a valid image.\n" +
	"2. Make sure you have permission to read/write the file.\n" +
	"3. Try a different format."

// Sink turns selections and conversion results into log entries and notices.
type Sink struct {
	diag      *log.Logger
	logger    *logging.Logger
	notifiers []Notifier
}

func NewSink(diag *log.Logger, logger *logging.Logger, notifiers ...Notifier) *Sink {
	if diag == nil {
		diag = log.New(io.Discard, "", 0)
	}
	return &Sink{
		diag:      diag,
		logger:    logger,
		notifiers: notifiers,
	}
}

func (s *Sink) Selected(ctx context.Context, path string) {
	if err := s.logger.Infof(ctx, "Selected file: %s", path); err != nil {
		s.diag.Printf("log selection failed path=%s err=%v", path, err)
	}
}

// Report writes exactly one log entry for result and forwards the notice to
// every notifier.
func (s *Sink) Report(ctx context.Context, result domain.ConversionResult) Notice {
	var notice Notice

	if result.Succeeded() {
		message := SuccessMessage(result.OutputPath)
		if err := s.logger.Infof(ctx, "%s", message); err != nil {
			s.diag.Printf("log success failed conversion_id=%s err=%v", result.ID, err)
		}
		notice = Notice{
			Kind:   KindInfo,
			Title:  TitleConversionSuccessful,
			Body:   message,
			Status: message,
		}
	} else {
		status := FailureMessage(result.ErrorDetail)
		if err := s.logger.Errorf(ctx, result.Err, "%s", status); err != nil {
			s.diag.Printf("log failure failed conversion_id=%s err=%v", result.ID, err)
		}
		notice = Notice{
			Kind:   KindError,
			Title:  TitleConversionError,
			Body:   FailureNoticeBody(result.ErrorDetail),
			Status: status,
		}
	}

	notice.Result = &result
	s.dispatch(ctx, notice)
	return notice
}

// NoFileSelected warns the user without touching the log.
func (s *Sink) NoFileSelected(ctx context.Context) Notice {
	notice := Notice{
		Kind:  KindWarning,
		Title: TitleNoFileSelected,
		Body:  "Please select a file to convert.",
	}
	s.dispatch(ctx, notice)
	return notice
}

func (s *Sink) dispatch(ctx context.Context, notice Notice) {
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, notice); err != nil {
			s.diag.Printf("notify failed kind=%s title=%q err=%v", notice.Kind, notice.Title, err)
		}
	}
}

func SuccessMessage(outputPath string) string {
	return fmt.Sprintf("File converted and saved as %s", outputPath)
}

func FailureMessage(detail string) string {
	return fmt.Sprintf("Conversion failed: %s", detail)
}

func FailureNoticeBody(detail string) string {
	return fmt.Sprintf("An error occurred while converting your file:\n\n%s\n\n%s", detail, remediationHints)
}
