package observability

import "testing"

func TestRecordHelpersRegisterOnce(t *testing.T) {
	// MustRegister panics on duplicate registration; recording twice
	// proves registration happens exactly once.
	RecordPacketSent()
	RecordPacketReceived()
	RecordAuth("success")
	RecordAuth("failure")
	RecordRoundTrip(0)
	RecordPacketSent()
}
