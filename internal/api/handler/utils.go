package handler

import (
	"errors"
	"strings"

	"request_desk/internal/common"
)

var sentinels = []error{
	common.ErrBadRequest,
	common.ErrValidation,
	common.ErrNotFound,
	common.ErrConflict,
	common.ErrUnauthorized,
	common.ErrForbidden,
}

// errorMessage extracts the user-facing message from a service error,
// dropping the wrapped sentinel suffix. Unexpected errors are not echoed to
// clients.
func errorMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			if cut, ok := strings.CutSuffix(msg, ": "+sentinel.Error()); ok {
				return cut
			}
			return msg
		}
	}
	return "Internal server error"
}
