package codes

// ErrorDetail is one classified occurrence of an ErrorCode. It is a value
// type; copies are independent.
type ErrorDetail struct {
	Code ErrorCode `json:"code"`
	// Message is the auxiliary description supplied by the origin, if any.
	Message string `json:"message,omitempty"`
}

// NewDetail returns a detail without an auxiliary message.
func NewDetail(code ErrorCode) ErrorDetail {
	return ErrorDetail{Code: code}
}

// WithMessage returns a copy of d carrying msg.
func (d ErrorDetail) WithMessage(msg string) ErrorDetail {
	d.Message = msg
	return d
}

// HasMessage reports whether an auxiliary message is present.
func (d ErrorDetail) HasMessage() bool {
	return d.Message != ""
}
