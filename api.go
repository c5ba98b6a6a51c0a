package ghostext

import "fmt"

// Options tune a Codec. The zero value is ready to use.
type Options struct {
	Encoding  *Encoding // nil => StdEncoding
	Envelope  *Envelope // nil => default markers over Encoding; must share Encoding
	Logger    Logger    // if nil, NopLogger is used
	Hooks     Hooks     // if nil, NopHooks is used
	MaxDecode int       // max text bytes accepted by Decode/Open; <= 0 disables
}

// New returns a Codec configured by opts.
func New(opts Options) (*Codec, error) {
	opts = withDefaults(opts)
	c := &Codec{
		enc:       opts.Encoding,
		log:       opts.Logger,
		hooks:     opts.Hooks,
		maxDecode: opts.MaxDecode,
	}

	switch {
	case opts.Envelope == nil:
		env, err := NewEnvelope(c.enc, DefaultStart, DefaultEnd)
		if err != nil {
			return nil, err
		}
		c.env = env
	case opts.Envelope.enc != c.enc:
		return nil, fmt.Errorf("ghostext: envelope and codec use different encodings")
	default:
		c.env = opts.Envelope
	}

	return c, nil
}
