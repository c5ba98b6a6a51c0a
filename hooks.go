package ghostext

// Hooks are lightweight callbacks for codec events.
// Implementations MUST be cheap and non-blocking; Codec calls them inline.
type Hooks interface {
	// A payload of payloadLen bytes was encoded (plain, hidden or sealed).
	Encoded(payloadLen int)

	// A text was decoded into payloadLen bytes; carriers code points were skipped.
	Decoded(payloadLen, carriers int)

	// Decode found an odd number of alphabet members.
	Truncated(members int)

	// An input of inputLen bytes exceeded Options.MaxDecode.
	Rejected(inputLen, limit int)

	// Open found no well-formed envelope.
	EnvelopeMissing()
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Encoded(int)       {}
func (NopHooks) Decoded(int, int)  {}
func (NopHooks) Truncated(int)     {}
func (NopHooks) Rejected(int, int) {}
func (NopHooks) EnvelopeMissing()  {}
