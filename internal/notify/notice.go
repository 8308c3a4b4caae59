package notify

import (
	"context"

	"github.com/dunamismax/imgconvert/internal/domain"
)

const (
	KindInfo    = "info"
	KindWarning = "warning"
	KindError   = "error"
)

const (
	TitleConversionSuccessful = "Conversion Successful"
	TitleConversionError      = "Conversion Error"
	TitleNoFileSelected       = "No File Selected"
)

// Notice is a blocking, human-readable message for the user.
type Notice struct {
	Kind   string
	Title  string
	Body   string
	Status string
	Result *domain.ConversionResult
}

type Notifier interface {
	Notify(ctx context.Context, notice Notice) error
}

type NotifierFunc func(ctx context.Context, notice Notice) error

func (f NotifierFunc) Notify(ctx context.Context, notice Notice) error {
	return f(ctx, notice)
}
