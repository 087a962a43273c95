// Package matching demonstrates argument matching beyond equality,
// including assertion-library matchers adapted through scenario.Should.
package matching

//go:generate go run github.com/scenariotest/scenario/mockgen Notifier

// Message is a payload with a delivery priority.
type Message struct {
	Payload  string
	Priority int
}

// Notifier delivers messages.
type Notifier interface {
	Send(msg Message) error
}

// Broadcast sends payload at increasing priorities until a send succeeds.
func Broadcast(n Notifier, payload string) error {
	var err error

	for priority := 1; priority <= 3; priority++ {
		err = n.Send(Message{Payload: payload, Priority: priority})
		if err == nil {
			return nil
		}
	}

	return err
}
