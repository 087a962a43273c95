// Package extern demonstrates free-function mode: a block of package
// functions mocked as one unit, with the generated forwarders standing in
// for the real implementations. The generate directive finds SendPacket
// and Hostname in the generated file itself on regeneration; a fresh
// package seeds the block by declaring the two signatures with stub bodies
// once, which the first run's forwarders then replace.
package extern

//go:generate go run github.com/scenariotest/scenario/mockgen "SendPacket, Hostname" --extern --name NetOpsMock

// Transfer announces this host and ships data to addr.
func Transfer(addr string, data []byte) error {
	name, err := Hostname()
	if err != nil {
		return err
	}

	return SendPacket(addr, append([]byte(name+": "), data...))
}
