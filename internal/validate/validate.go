package validate

import (
	"errors"
	"fmt"
	"strings"

	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
)

// Identifier validates a transport identifier handed over by the host
// (connection, channel). Only the character set is checked: identifiers are
// assigned by the transport layer and their numbering is not assumed.
func Identifier(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("identifier cannot be blank")
	}

	if !host.IsValidID(id) {
		return fmt.Errorf("identifier %s must contain only alphanumeric or the following characters: '.', '_', '+', '-', '#', '[', ']', '<', '>'", id)
	}

	return nil
}

// PortID validates a port identifier with the ICS-24 port rules.
func PortID(portID string) error {
	return host.PortIdentifierValidator(portID)
}
