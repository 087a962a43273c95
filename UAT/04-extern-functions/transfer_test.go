//nolint:paralleltest // static mocks claim a process-wide table entry
package extern_test

import (
	"errors"
	"testing"

	"github.com/scenariotest/scenario"

	extern "github.com/scenariotest/scenario/UAT/04-extern-functions"
)

// TestTransfer_PrependsHostname drives both free functions through the
// block mock.
func TestTransfer_PrependsHostname(t *testing.T) {
	s := scenario.New(t)

	net := extern.NewNetOpsMock(s)
	defer net.Close()

	net.HostnameCall().
		Return(extern.NetOpsMockHostnameReturns{Result0: "node-1"})
	net.SendPacketCall(scenario.Eq("10.0.0.2"), scenario.Eq([]byte("node-1: ping"))).
		Return(nil)

	err := extern.Transfer("10.0.0.2", []byte("ping"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.VerifyAll()
}

// TestTransfer_HostnameFailure stops before sending when the hostname
// lookup fails.
func TestTransfer_HostnameFailure(t *testing.T) {
	s := scenario.New(t)

	net := extern.NewNetOpsMock(s)
	defer net.Close()

	lookupErr := errors.New("resolver down")
	net.HostnameCall().
		Return(extern.NetOpsMockHostnameReturns{Result1: lookupErr})

	err := extern.Transfer("10.0.0.2", []byte("ping"))
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected the lookup error, got %v", err)
	}

	s.VerifyAll()
}
