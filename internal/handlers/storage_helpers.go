package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/DentalLabServices/clinic-scheduler/internal/httperr"
)

// writeStorageError maps a failed storage call: an expired request deadline
// means the backend is stalled (503), anything else is an internal fault.
// Storage failures never crash the process and never leak driver details.
func writeStorageError(c *gin.Context, code string, err error) {
	if httperr.IsTimeout(err) {
		httperr.Unavailable(c, "storage_timeout", "Storage backend did not respond in time.")
		return
	}
	httperr.Internal(c, code, "Unexpected storage error.")
}
