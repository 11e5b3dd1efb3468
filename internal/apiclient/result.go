package apiclient

// Source says where the data in a Result came from.
type Source string

const (
	// SourceLive is data decoded from a successful backend response.
	SourceLive Source = "live"
	// SourceSample is bundled data served because the sample switch is on.
	SourceSample Source = "sample"
	// SourceFallback is bundled data substituted for a failed backend call.
	SourceFallback Source = "fallback"
)

// Result carries read data together with its provenance. Cause is set only
// for SourceFallback and holds the failure that was absorbed.
type Result[T any] struct {
	Data   T
	Source Source
	Cause  error
}

// Degraded reports whether the data did not come from the backend.
func (r Result[T]) Degraded() bool {
	return r.Source != SourceLive
}

// Envelope is the uniform {success, data | error} shape handed to browser code.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Source  Source `json:"source,omitempty"`
}

// Wrap builds an envelope from a plain call's return values.
func Wrap[T any](data T, err error) Envelope[T] {
	if err != nil {
		return Envelope[T]{Success: false, Error: err.Error()}
	}
	return Envelope[T]{Success: true, Data: data}
}

// WrapResult builds an envelope from a read that returns a Result.
func WrapResult[T any](res Result[T], err error) Envelope[T] {
	if err != nil {
		return Envelope[T]{Success: false, Error: err.Error()}
	}
	return Envelope[T]{Success: true, Data: res.Data, Source: res.Source}
}
