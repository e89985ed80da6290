package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/cardastika-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "equipment state not found",
			expected: "NOT_FOUND: equipment state not found",
		},
		{
			name:     "data loss error",
			code:     errors.CodeDataLoss,
			message:  "corrupt document",
			expected: "DATA_LOSS: corrupt document",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFoundf("gold for owner %s not found", "p1").WithMeta("owner_id", "p1")
	wrapped := errors.Wrap(base, "failed to read gold")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("p1", wrapped.Meta["owner_id"])
	s.True(errors.IsNotFound(wrapped))
	s.ErrorIs(wrapped, errors.NotFound("any"))
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrapf(baseErr, "failed to save state for %s", "p1")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Nil(errors.Wrap(nil, "noop"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("bad json"), errors.CodeDataLoss, "corrupt state")
	s.True(errors.IsDataLoss(wrapped))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.InvalidArgument("owner_id is required").WithMeta("field", "owner_id")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Equal("owner_id is required", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsInvalidArgument(back))
	s.Equal("owner_id", errors.GetMeta(back)["field"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlain() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestContextErrorsKeepTheirCodes() {
	canceled := errors.Wrap(context.Canceled, "failed to load state")
	s.Equal(errors.CodeCanceled, canceled.Code)

	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("redis: %w", context.DeadlineExceeded)))
	s.Require().True(ok)
	s.Equal(codes.DeadlineExceeded, st.Code())
}

func (s *ErrorsTestSuite) TestUnmappedGRPCCodeBecomesInternal() {
	back := errors.FromGRPCError(status.Error(codes.ResourceExhausted, "slow down"))
	s.Equal(errors.CodeInternal, errors.GetCode(back))
	s.Equal(codes.Unknown, errors.Code("TEAPOT").GRPCCode())
	s.True(errors.IsUnavailable(errors.Unavailable("redis down")))
}
