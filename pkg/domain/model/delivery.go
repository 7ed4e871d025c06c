package model

// DeliveryResult is the raw outcome of a single outbound request
type DeliveryResult struct {
	StatusCode int
	Body       []byte
}

// Announcement is the outcome of one announce run
type Announcement struct {
	// Delivered is false when the endpoint answered with a non-success status. Destinations that do
	// not check the status always report true.
	Delivered bool
	Result    *DeliveryResult
}
