package dto

// Envelope wraps every successful response body.
type Envelope struct {
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func OK(msg string, data interface{}) Envelope {
	return Envelope{Msg: msg, Data: data}
}
