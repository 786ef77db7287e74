package bcrp

import (
	"bcrpharvest/lib/restyutil"
	"bcrpharvest/lib/telemetry"
)

var tracer = telemetry.Tracer("bcrpharvest.lib.scrapers.bcrp")
var restyInstrumentOutput restyutil.InstrumentOutput

func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
