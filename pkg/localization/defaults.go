package localization

import "github.com/Goden-Gun/payment-recovery/pkg/codes"

var defaultEntries = map[codes.ErrorCode]Entry{
	codes.Unknown:                 {Title: "Something went wrong", Message: "An unexpected error occurred. Please try again."},
	codes.Network:                 {Title: "No connection", Message: "Please check your internet connection and try again."},
	codes.GatewayTimeout:          {Title: "Request timed out", Message: "The payment server took too long to respond."},
	codes.ServerUnavailable:       {Title: "Service unavailable", Message: "The payment service is temporarily unavailable."},
	codes.RequestNotFound:         {Title: "Request not found", Message: "The payment request could not be found."},
	codes.SourceAlreadyUsed:       {Title: "Payment method used", Message: "This payment method was already used. Please try again."},
	codes.Serialization:           {Title: "Unexpected response", Message: "The server response could not be read."},
	codes.InvalidInput:            {Title: "Invalid input", Message: "Please check the entered details."},
	codes.InvalidCardNumber:       {Title: "Invalid card number", Message: "Please check the card number and try again."},
	codes.InvalidExpirationDate:   {Title: "Invalid expiry date", Message: "Please check the card expiry date."},
	codes.InvalidConfirmationCode: {Title: "Invalid code", Message: "The confirmation code is incorrect."},
	codes.CardAlreadyExists:       {Title: "Card already saved", Message: "This card is already saved to your account."},
	codes.InvalidEmailAddress:     {Title: "Invalid email", Message: "Please provide a valid email address."},
	codes.InvalidPhoneNumber:      {Title: "Invalid phone number", Message: "Please provide a valid phone number."},
	codes.MissingCustomerID:       {Title: "Customer required", Message: "The payment cannot continue without customer details."},
	codes.InvalidCurrency:         {Title: "Invalid currency", Message: "The payment currency is not valid."},
	codes.UnsupportedCurrency:     {Title: "Unsupported currency", Message: "The payment currency is not supported."},
	codes.PermissionDenied:        {Title: "Not allowed", Message: "This payment is not permitted."},
}

// DefaultCatalog returns the built-in English catalog.
func DefaultCatalog() *Catalog {
	entries := make(map[string]Entry, len(defaultEntries))
	for code, e := range defaultEntries {
		entries[code.Symbol()] = e
	}
	return NewCatalog("en", entries)
}
