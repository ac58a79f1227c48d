package frbcat

import (
	"frbcat/lib/restyutil"
)

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput dumps the raw HTTP exchanges of clients
// created afterwards, for debugging the archive's responses.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
