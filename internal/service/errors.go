package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/invoicemaker/internal/export"
	"github.com/mmynk/invoicemaker/internal/models"
	"github.com/mmynk/invoicemaker/internal/storage"
)

var (
	errInvalidDate   = errors.New("invalid date, want YYYY-MM-DD")
	errSignatureKind = errors.New("unknown signature kind")
	errMissingField  = errors.New("missing required field")
)

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) error {
	var cerr *connect.Error
	switch {
	case errors.As(err, &cerr):
		return err
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrLineItemIndex),
		errors.Is(err, models.ErrUnsupportedImage),
		errors.Is(err, models.ErrImageTooLarge),
		errors.Is(err, models.ErrNotDataURL),
		errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, errInvalidDate),
		errors.Is(err, errSignatureKind),
		errors.Is(err, errMissingField):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
