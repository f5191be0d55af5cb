// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Uint, Int and Fixed values.

package bigfix

import (
	"encoding/binary"
	"strings"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const gobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
func (x Uint) GobEncode() ([]byte, error) {
	return append([]byte{gobVersion}, x.abs.bytes()...), nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Uint) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Uint{}
		return nil
	}
	if buf[0] != gobVersion {
		return Error.New("Uint.GobDecode: encoding version %d not supported", buf[0])
	}
	z.abs = mag(nil).setBytes(buf[1:])
	return nil
}

// GobEncode implements the gob.GobEncoder interface.
func (x Int) GobEncode() ([]byte, error) {
	buf := make([]byte, 2, 2+len(x.abs)*_S)
	buf[0] = gobVersion
	if x.neg {
		buf[1] = 1
	}
	return append(buf, x.abs.bytes()...), nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		*z = Int{}
		return nil
	}
	if buf[0] != gobVersion {
		return Error.New("Int.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 2 {
		return Error.New("Int.GobDecode: buffer too small")
	}
	*z = makeInt(buf[1]&1 != 0, mag(nil).setBytes(buf[2:]))
	return nil
}

// GobEncode implements the gob.GobEncoder interface.
// The value and the scale of x are marshaled.
func (x Fixed) GobEncode() ([]byte, error) {
	buf := make([]byte, 2+binary.MaxVarintLen64, 2+binary.MaxVarintLen64+len(x.value.abs)*_S)
	buf[0] = gobVersion
	if x.value.neg {
		buf[1] = 1
	}
	n := binary.PutUvarint(buf[2:], uint64(x.scale))
	return append(buf[:2+n], x.value.abs.bytes()...), nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Fixed) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		*z = Fixed{}
		return nil
	}
	if buf[0] != gobVersion {
		return Error.New("Fixed.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 3 {
		return Error.New("Fixed.GobDecode: buffer too small")
	}
	scale, n := binary.Uvarint(buf[2:])
	if n <= 0 {
		return Error.New("Fixed.GobDecode: invalid scale")
	}
	*z = Fixed{makeInt(buf[1]&1 != 0, mag(nil).setBytes(buf[2+n:])), uint(scale)}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x Uint) MarshalText() ([]byte, error) {
	return x.abs.utoa(), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Uint) UnmarshalText(text []byte) error {
	u, err := ParseUint(string(text))
	if err != nil {
		return Error.New("cannot unmarshal %q into a *bigfix.Uint (%v)", text, err)
	}
	*z = u
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	i, err := ParseInt(string(text))
	if err != nil {
		return Error.New("cannot unmarshal %q into a *bigfix.Int (%v)", text, err)
	}
	*z = i
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The text is
// the exact decimal expansion returned by x.Text(); its number of fractional
// digits records the scale, so that UnmarshalText restores both the value and
// the scale of x.
func (x Fixed) MarshalText() ([]byte, error) {
	return []byte(x.Text()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The result
// has as many fractional bits as text has fractional digits.
func (z *Fixed) UnmarshalText(text []byte) error {
	s := string(text)
	var prec uint
	if _, fp, ok := strings.Cut(s, "."); ok {
		prec = uint(len(fp))
	}
	f, err := ParseFixed(s, prec)
	if err != nil {
		return Error.New("cannot unmarshal %q into a *bigfix.Fixed (%v)", text, err)
	}
	*z = f
	return nil
}
