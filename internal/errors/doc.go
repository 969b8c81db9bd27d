// Package errors is the error vocabulary shared by the card service, its
// repositories and the HTTP layer.
//
// Operations return *Error values built with the code constructors:
//
//	card, err := repo.Get(ctx, id)
//	if err != nil {
//		return nil, errors.Wrapf(err, "failed to load card %s", id)
//	}
//	if input.Format == "" {
//		return nil, errors.InvalidArgument("format is required")
//	}
//
// Wrap keeps the code of an inner *Error, so a NOT_FOUND raised by a
// repository stays NOT_FOUND when it reaches the handler, where
// GetCode(err).HTTPStatus() picks the response status.
//
// Config and input validation go through ValidationBuilder, which reports
// every failing field in one INVALID_ARGUMENT error.
package errors
