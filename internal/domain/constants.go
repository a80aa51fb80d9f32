package domain

const (
	RoleCustomer     = "customer"
	RolePhotographer = "photographer"
	RoleAdmin        = "admin"
)

const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingInProgress = "in_progress"
	BookingCompleted  = "completed"
	BookingDelivered  = "delivered"
	BookingCancelled  = "cancelled"
	BookingRefunded   = "refunded"
	BookingDeclined   = "declined"
)

const (
	CancelledByClient       = "client"
	CancelledByPhotographer = "photographer"
	CancelledByAdmin        = "admin"
)

const (
	PaymentPending           = "pending"
	PaymentProcessing        = "processing"
	PaymentSucceeded         = "succeeded"
	PaymentFailed            = "failed"
	PaymentRefunded          = "refunded"
	PaymentPartiallyRefunded = "partially_refunded"
)

const (
	RefundPending    = "pending"
	RefundApproved   = "approved"
	RefundRejected   = "rejected"
	RefundProcessing = "processing"
	RefundCompleted  = "completed"
)

const (
	PayoutPending    = "pending"
	PayoutProcessing = "processing"
	PayoutPaid       = "paid"
	PayoutFailed     = "failed"
)

const (
	MessageSent      = "sent"
	MessageDelivered = "delivered"
	MessageRead      = "read"
)

const (
	NotifyBookingRequest   = "booking_request"
	NotifyBookingAccepted  = "booking_accepted"
	NotifyBookingDeclined  = "booking_declined"
	NotifyBookingCancelled = "booking_cancelled"
	NotifyBookingCompleted = "booking_completed"
	NotifyMessage          = "message"
	NotifyReview           = "review"
	NotifyPayment          = "payment"
	NotifySystem           = "system"
)

const (
	AdminActionUserSuspended   = "user_suspended"
	AdminActionUserActivated   = "user_activated"
	AdminActionBookingRefunded = "booking_refunded"
)

// Platform commission defaults applied when a booking carries no override.
const (
	DefaultCommissionPercentage = 9.0
	DefaultCommissionFixed      = 2.0
)
