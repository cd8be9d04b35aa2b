package domain

// Order lifecycle. Every transition is guarded by a conditional update, so a
// failed step leaves the previous status in place.
const (
	StatusPendingPayment = "PENDING_PAYMENT"
	StatusPaid           = "PAID"
	StatusPreparing      = "PREPARING"
	StatusOnTheWay       = "ON_THE_WAY"
	StatusDelivered      = "DELIVERED"
	StatusCompleted      = "COMPLETED"
	StatusCancelled      = "CANCELLED"
)

// StatusLegacyOnDelivery is the pre-rename spelling of ON_THE_WAY still
// present in old rows and old clients. It is accepted on the way in and never
// written back out.
const StatusLegacyOnDelivery = "ON_DELIVERY"

func NormalizeStatus(status string) string {
	if status == StatusLegacyOnDelivery {
		return StatusOnTheWay
	}
	return status
}

// ActiveStatuses are the in-flight states a driver's reconciliation read
// cares about.
var ActiveStatuses = []string{StatusPaid, StatusPreparing, StatusOnTheWay}

// OnTheWaySpellings matches rows written under either spelling; queries that
// filter on the in-transit state must accept both.
var OnTheWaySpellings = []string{StatusOnTheWay, StatusLegacyOnDelivery}
