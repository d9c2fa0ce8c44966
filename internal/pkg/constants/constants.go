package constants

// NATS subjects for booking lifecycle events
const (
	SubjectBookingRequested = "booking.requested"
	SubjectBookingConfirmed = "booking.confirmed"
	SubjectBookingCancelled = "booking.cancelled"
	SubjectBookingWildcard  = "booking.>"
)

// JetStream names
const (
	StreamBookings          = "BOOKING_STREAM"
	ConsumerBookingNotifier = "booking_notifier"
)

// NSQ topic carrying all booking events; the subject travels inside the envelope
const TopicBookingEvents = "booking_events"

// Redis keys
const (
	KeyRideSearchVersion = "rides:search:version"
	KeyRideSearch        = "rides:search:v%d:%s"
	KeyRateLimitBookings = "ratelimit:bookings"
)

// Broker types
const (
	BrokerNATS     = "nats"
	BrokerNSQ      = "nsq"
	BrokerRabbitMQ = "rabbitmq"
)
