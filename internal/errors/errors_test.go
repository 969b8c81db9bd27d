package errors_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cardgen/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNew() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found",
			code:     errors.CodeNotFound,
			message:  "card not found",
			expected: "NOT_FOUND: card not found",
		},
		{
			name:     "invalid argument",
			code:     errors.CodeInvalidArgument,
			message:  "unknown format",
			expected: "INVALID_ARGUMENT: unknown format",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("card not found").
		WithMeta("card_id", "card_123").
		WithMeta("format", "png")

	s.Assert().Equal("card_123", err.Meta["card_id"])
	s.Assert().Equal("png", err.Meta["format"])
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("foreign error becomes internal", func() {
		base := fmt.Errorf("chrome crashed")
		wrapped := errors.Wrap(base, "failed to capture card")

		s.Assert().Equal(errors.CodeInternal, wrapped.Code)
		s.Assert().Equal("failed to capture card", wrapped.Message)
		s.Assert().Equal(base, wrapped.Unwrap())
	})

	s.Run("code and meta survive", func() {
		base := errors.NotFound("no such export").WithMeta("export_id", "exp_1")
		wrapped := errors.Wrapf(base, "failed to load export %s", "exp_1")

		s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
		s.Assert().Equal("exp_1", wrapped.Meta["export_id"])
		s.Assert().Equal("failed to load export exp_1", errors.GetMessage(wrapped))
	})

	s.Run("nil stays nil", func() {
		s.Assert().Nil(errors.Wrap(nil, "nothing"))
		s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
		s.Assert().Nil(errors.FromContext(nil, "nothing"))
	})
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := fmt.Errorf("connection refused")
	wrapped := errors.WrapWithCode(base, errors.CodeUnavailable, "export backend unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().True(errors.IsUnavailable(wrapped))
	s.Assert().ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestFromContext() {
	s.Assert().True(errors.IsDeadlineExceeded(errors.FromContext(context.DeadlineExceeded, "export timed out")))
	s.Assert().True(errors.IsCanceled(errors.FromContext(context.Canceled, "export canceled")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(errors.FromContext(fmt.Errorf("boom"), "export failed")))
}

func (s *ErrorsTestSuite) TestIs() {
	s.Assert().True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.Assert().False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
	s.Assert().True(errors.IsNotFound(errors.Wrap(errors.NotFound("a"), "wrapped")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeUnimplemented, errors.GetCode(errors.Unimplementedf("pdf on %s", "raster")))
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("plain")))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, http.StatusOK},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeTooLarge, http.StatusRequestEntityTooLarge},
		{errors.CodeUnimplemented, http.StatusNotImplemented},
		{errors.CodeUnavailable, http.StatusServiceUnavailable},
		{errors.CodeDeadlineExceeded, http.StatusGatewayTimeout},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Assert().Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}
