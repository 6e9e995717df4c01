package transport

import (
	"errors"

	"github.com/Quarmire/chord/errs"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const errorDomain = "chord"

// ToStatus turns ring errors into gRPC statuses carrying an ErrorInfo detail.
// Other errors become codes.Internal.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}

	var code codes.Code
	switch {
	case errors.Is(err, errs.RingIsFullError):
		code = codes.ResourceExhausted
	case errors.Is(err, errs.NodeDoesNotExistError):
		code = codes.NotFound
	case errors.Is(err, errs.NoNodesExistError):
		code = codes.FailedPrecondition
	case errors.Is(err, errs.OutOfRangeError):
		code = codes.OutOfRange
	default:
		return status.Error(codes.Internal, err.Error())
	}

	st, detailErr := status.New(code, err.Error()).WithDetails(&errdetails.ErrorInfo{
		Reason: errs.Reason(err),
		Domain: errorDomain,
	})
	if detailErr != nil {
		return status.Error(code, err.Error())
	}
	return st.Err()
}

// FromStatus recovers the ring error carried by a status produced by ToStatus.
// Anything else is returned unchanged.
func FromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.OK {
		return err
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != errorDomain {
			continue
		}
		if known := errs.FromReason(info.GetReason()); known != nil {
			return known
		}
	}

	return err
}
