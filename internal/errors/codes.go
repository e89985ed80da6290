package errors

import "google.golang.org/grpc/codes"

// Code represents an error code
type Code string

// Error codes, named after their gRPC counterparts
const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
	CodeDataLoss         Code = "DATA_LOSS"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:               codes.OK,
	CodeCanceled:         codes.Canceled,
	CodeInvalidArgument:  codes.InvalidArgument,
	CodeDeadlineExceeded: codes.DeadlineExceeded,
	CodeNotFound:         codes.NotFound,
	CodeInternal:         codes.Internal,
	CodeUnavailable:      codes.Unavailable,
	CodeDataLoss:         codes.DataLoss,
}

var fromGRPCCodes = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(grpcCodes))
	for code, grpcCode := range grpcCodes {
		m[grpcCode] = code
	}
	return m
}()

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the matching gRPC code; unknown codes map to Unknown
func (c Code) GRPCCode() codes.Code {
	if grpcCode, ok := grpcCodes[c]; ok {
		return grpcCode
	}
	return codes.Unknown
}

// codeFromGRPC maps a gRPC code back; codes without a counterpart become Internal
func codeFromGRPC(grpcCode codes.Code) Code {
	if code, ok := fromGRPCCodes[grpcCode]; ok {
		return code
	}
	return CodeInternal
}
