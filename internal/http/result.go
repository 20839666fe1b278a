package httpapi

import "dairycoop-data/internal/validation"

// Envelope is the uniform response body for every endpoint:
// {success, data?, message?, errors?}. Both portals key off success, so the
// shape never varies per resource.
type Envelope struct {
	Success bool                    `json:"success"`
	Data    any                     `json:"data,omitempty"`
	Message string                  `json:"message,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

func Ok(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OkMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

func FailValidation(errs []validation.FieldError) Envelope {
	return Envelope{Success: false, Message: "validation failed", Errors: errs}
}
