package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if As(err, &customErr) {
		return status.Error(customErr.Code.GRPCCode(), customErr.Message)
	}

	return status.Error(codes.Internal, err.Error())
}

// GRPCStatus returns the gRPC status for any error
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	if st, ok := status.FromError(err); ok {
		return st
	}

	var customErr *Error
	if As(err, &customErr) {
		return status.New(customErr.Code.GRPCCode(), customErr.Message)
	}

	return status.New(codes.Internal, err.Error())
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeInvalidArgument, CodeInvalidSlot, CodeInvalidTarget, CodeNoAttackPower:
		return codes.InvalidArgument
	case CodeNotFound, CodeCardNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeCardNotOwned:
		return codes.PermissionDenied
	case CodeSlotFull, CodeInvalidPhase, CodeInsufficientCatalog:
		return codes.FailedPrecondition
	case CodeConflict:
		return codes.Aborted
	case CodeUnavailable:
		return codes.Unavailable
	case CodeInternal:
		return codes.Internal
	default:
		return codes.Unknown
	}
}
