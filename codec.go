package ghostext

import "errors"

// Codec bundles an Encoding and an Envelope with logging, hooks and an
// input size limit. It is safe for concurrent use.
type Codec struct {
	enc       *Encoding
	env       *Envelope
	log       Logger
	hooks     Hooks
	maxDecode int
}

// Encoding returns the encoding c was built with.
func (c *Codec) Encoding() *Encoding { return c.enc }

// Envelope returns the envelope used by Seal and Open.
func (c *Codec) Envelope() *Envelope { return c.env }

// Encode returns the pure invisible encoding of payload.
func (c *Codec) Encode(payload []byte) string {
	out := c.enc.EncodeToString(payload)
	c.hooks.Encoded(len(payload))
	c.log.Debug("ghostext.encode", Fields{
		FieldPayloadBytes: len(payload),
		FieldMembers:      c.enc.EncodedLen(len(payload)),
	})
	return out
}

// Decode recovers the payload hidden in text, ignoring carriers.
func (c *Codec) Decode(text string) ([]byte, error) {
	if err := c.checkLimit(text); err != nil {
		return nil, err
	}

	p, t, err := c.enc.decodeString(text)
	if err != nil {
		c.decodeFailed(err)
		return nil, err
	}

	c.hooks.Decoded(len(p), t.Carriers)
	c.log.Debug("ghostext.decode", Fields{
		FieldTextBytes:    len(text),
		FieldPayloadBytes: len(p),
		FieldMembers:      t.Members,
		FieldCarriers:     t.Carriers,
	})
	return p, nil
}

// Hide embeds payload in cover at placement p.
func (c *Codec) Hide(cover string, payload []byte, p Placement) (string, error) {
	out, err := c.enc.Hide(cover, payload, p)
	if err != nil {
		c.log.Warn("ghostext.hide_failed", Fields{FieldPlacement: p.String(), FieldErr: err})
		return "", err
	}
	c.hooks.Encoded(len(payload))
	c.log.Debug("ghostext.hide", Fields{
		FieldPayloadBytes: len(payload),
		FieldTextBytes:    len(out),
		FieldPlacement:    p.String(),
	})
	return out, nil
}

// Seal wraps payload in the codec's envelope.
func (c *Codec) Seal(payload []byte) string {
	out := c.env.Seal(payload)
	c.hooks.Encoded(len(payload))
	c.log.Debug("ghostext.seal", Fields{
		FieldPayloadBytes: len(payload),
		FieldTextBytes:    len(out),
	})
	return out
}

// Open returns the payload of the first well-formed envelope in text.
func (c *Codec) Open(text string) ([]byte, error) {
	if err := c.checkLimit(text); err != nil {
		return nil, err
	}

	p, err := c.env.Open(text)
	if err != nil {
		if errors.Is(err, ErrNoEnvelope) {
			c.hooks.EnvelopeMissing()
			c.log.Debug("ghostext.envelope_missing", Fields{FieldTextBytes: len(text)})
			return nil, err
		}
		c.decodeFailed(err)
		return nil, err
	}

	t := c.enc.Scan(text)
	c.hooks.Decoded(len(p), t.Carriers)
	c.log.Debug("ghostext.open", Fields{
		FieldTextBytes:    len(text),
		FieldPayloadBytes: len(p),
		FieldCarriers:     t.Carriers,
	})
	return p, nil
}

func (c *Codec) checkLimit(text string) error {
	if c.maxDecode > 0 && len(text) > c.maxDecode {
		c.hooks.Rejected(len(text), c.maxDecode)
		err := &LimitError{Size: len(text), Limit: c.maxDecode}
		c.log.Warn("ghostext.rejected", Fields{FieldTextBytes: len(text), FieldErr: err})
		return err
	}
	return nil
}

func (c *Codec) decodeFailed(err error) {
	var te *TruncatedPayloadError
	if errors.As(err, &te) {
		c.hooks.Truncated(te.Members)
		c.log.Warn("ghostext.truncated", Fields{FieldMembers: te.Members, FieldErr: err})
		return
	}
	c.log.Warn("ghostext.decode_failed", Fields{FieldErr: err})
}
