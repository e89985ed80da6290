package errors

import (
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata travels as a
// google.protobuf.Struct detail; metadata that structpb cannot hold is dropped.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		customErr = Wrap(err, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) == 0 {
		return st.Err()
	}

	details, detailsErr := structpb.NewStruct(customErr.Meta)
	if detailsErr != nil {
		return st.Err()
	}
	if withDetails, wdErr := st.WithDetails(details); wdErr == nil {
		st = withDetails
	}
	return st.Err()
}

// FromGRPCError converts a gRPC status error back into an *Error, restoring the
// metadata detail. Errors that are not statuses pass through unchanged.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := New(codeFromGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		if meta, isStruct := detail.(*structpb.Struct); isStruct {
			customErr.Meta = meta.AsMap()
			break
		}
	}
	return customErr
}
