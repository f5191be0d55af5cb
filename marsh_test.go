// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfix

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

var encodingTests = []string{
	"0",
	"1",
	"2",
	"10",
	"1000",
	"1234567890",
	"298472983472983471903246121093472394872319615612417471234712061",
}

func TestUintIntGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, test := range encodingTests {
		for _, sign := range []string{"", "-"} {
			medium.Reset()
			x, err := ParseInt(sign + test)
			require.NoError(t, err)
			require.NoError(t, enc.Encode(x))
			var y Int
			require.NoError(t, dec.Decode(&y))
			require.True(t, x.Equal(y), "%s", x)
		}

		medium.Reset()
		u, err := ParseUint(test)
		require.NoError(t, err)
		require.NoError(t, enc.Encode(u))
		var v Uint
		require.NoError(t, dec.Decode(&v))
		require.True(t, u.Equal(v), "%s", u)
	}
}

func TestFixedGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, x := range []Fixed{{}, fx(1, 0), fx(-3, 1), fx(85, 8), fx(12345, 300), fx(-1, 0).ScaleByPowerOfTwo(200)} {
		medium.Reset()
		require.NoError(t, enc.Encode(x))
		var y Fixed
		require.NoError(t, dec.Decode(&y))
		require.True(t, x.Equal(y), "%s", x)
		require.Equal(t, x.Scale(), y.Scale())
	}
}

func TestGobDecodeErrors(t *testing.T) {
	var f Fixed
	require.Error(t, f.GobDecode([]byte{gobVersion + 1, 0, 0}))
	require.Error(t, f.GobDecode([]byte{gobVersion, 0}))
	var i Int
	require.Error(t, i.GobDecode([]byte{gobVersion}))
	var u Uint
	require.Error(t, u.GobDecode([]byte{gobVersion + 1}))
	require.NoError(t, u.GobDecode(nil))
	require.True(t, u.IsZero())
}

type numbers struct {
	U Uint
	I Int
	F Fixed
}

func TestJSONEncoding(t *testing.T) {
	for _, n := range []numbers{
		{},
		{NewUint(42), NewInt(-42), fx(-3, 1)},
		{NewUint(1).Lsh(100), NewInt(1).Lsh(70).Neg(), fx(85, 8)},
		{F: fx(1, 64)},
	} {
		b, err := json.Marshal(n)
		require.NoError(t, err)
		var m numbers
		require.NoError(t, json.Unmarshal(b, &m), string(b))
		require.True(t, n.U.Equal(m.U), string(b))
		require.True(t, n.I.Equal(m.I), string(b))
		require.True(t, n.F.Equal(m.F), string(b))
		require.Equal(t, n.F.Scale(), m.F.Scale(), string(b))
	}

	b, err := json.Marshal(numbers{F: fx(-3, 1)})
	require.NoError(t, err)
	require.Equal(t, `{"U":"0","I":"0","F":"-1.5"}`, string(b))

	var m numbers
	require.Error(t, json.Unmarshal([]byte(`{"F":"x"}`), &m))
	require.Error(t, json.Unmarshal([]byte(`{"I":"1.5"}`), &m))
	require.Error(t, json.Unmarshal([]byte(`{"U":"-1"}`), &m))
}
