package persist

import (
	"github.com/klauspost/compress/zstd"

	"github.com/brenns10/fsm/nfa"
)

// WriteCompressed serializes n with Write and compresses the result
// with zstd, for large generated automata where the text format's
// verbosity is a problem (e.g. NFAs produced by fsmscript batches).
func WriteCompressed(n *nfa.NFA) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll([]byte(Write(n)), nil), nil
}

// ReadCompressed decompresses data produced by WriteCompressed and
// parses the result with Read.
func ReadCompressed(data []byte) (*nfa.NFA, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	text, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, err
	}
	return Read(string(text))
}
