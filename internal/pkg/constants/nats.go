package constants

// NATS Subjects
const (
	// Ride lifecycle events published to clients
	SubjectRideRequested = "ride.requested"
	SubjectRideUpdated   = "ride.updated"

	// Location events
	SubjectLocationPing = "location.ping"   // internal: feeds the opportunistic match
	SubjectDriverMoved  = "driver.location" // public: only for drivers on an active ride
)

// Queue groups
const (
	QueueDispatch = "dispatch"
)
