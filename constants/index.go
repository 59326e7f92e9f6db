package constants

const (
	DATA_INPUT_IS_NOT_NUMBER   = "Data input is not a number"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read request data"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	VALIDATION_FAILED          = "validation failed"
	CUSTOMER_CONFLICT          = "Customer is being created concurrently, retry the request"
	FEED_DISABLED              = "Live feed is disabled"
)

const (
	EVENT_RESERVATION_CREATED = "reservation.created"
	EVENT_RESERVATION_UPDATED = "reservation.updated"
	EVENT_RESERVATION_DELETED = "reservation.deleted"
)
