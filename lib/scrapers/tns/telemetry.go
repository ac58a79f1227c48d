package tns

import (
	"frbcat/lib/restyutil"
)

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput dumps the raw HTTP exchanges of clients
// created afterwards, for debugging the server's markup.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
