package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/interchaintxs/internal/validate"
)

// SudoPayload correlates a submitted transaction with the interchain account
// it was submitted for. It is staged under SudoPayloadReplyID on submission and
// moved under the packet (channel, sequence) once local submission succeeds.
type SudoPayload struct {
	AccountKey string `json:"port_id"`
	// Message labels the kind of submitted instruction for diagnostics
	Message string `json:"message"`
}

// Validate checks the payload refers to a valid account key.
func (p SudoPayload) Validate() error {
	if err := validate.PortID(p.AccountKey); err != nil {
		return errorsmod.Wrapf(ErrInvalidAccountID, "%s: %v", p.AccountKey, err)
	}

	return nil
}

// OutcomeKind tags the final result of a submitted transaction.
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeError   OutcomeKind = "error"
	OutcomeTimeout OutcomeKind = "timeout"
	// OutcomeUnreadableResult marks a transaction the counterparty executed
	// whose acknowledgement result could not be parsed
	OutcomeUnreadableResult OutcomeKind = "unreadable_result"
)

// Validate returns an error if the kind is unknown.
func (k OutcomeKind) Validate() error {
	switch k {
	case OutcomeSuccess, OutcomeError, OutcomeTimeout, OutcomeUnreadableResult:
		return nil
	default:
		return fmt.Errorf("unknown outcome kind %q", string(k))
	}
}

// ItemStatus describes how an acknowledged message response was handled.
type ItemStatus string

const (
	// ItemInterpreted responses were decoded by a registered decoder
	ItemInterpreted ItemStatus = "interpreted"
	// ItemUninterpreted responses have no registered decoder and are recorded as is
	ItemUninterpreted ItemStatus = "uninterpreted"
	// ItemDecodeFailed responses have a registered decoder that rejected them
	ItemDecodeFailed ItemStatus = "decode_failed"
)

// AckItem is one message response of a successful acknowledgement.
type AckItem struct {
	MsgType string     `json:"msg_type"`
	Status  ItemStatus `json:"status"`
	Detail  string     `json:"detail,omitempty"`
}

// Outcome is the terminal result of the last transaction submitted for an
// interchain account.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	// Label is the SudoPayload message; empty for successes
	Label string `json:"label,omitempty"`
	// Details holds the error reported by the counterparty, or the parse
	// error of an unreadable result
	Details  string    `json:"details,omitempty"`
	MsgTypes []string  `json:"msg_types,omitempty"`
	Items    []AckItem `json:"items,omitempty"`
}

// NewSuccessOutcome returns the outcome of an acknowledged transaction.
func NewSuccessOutcome(items []AckItem) Outcome {
	msgTypes := make([]string, len(items))
	for i, item := range items {
		msgTypes[i] = item.MsgType
	}

	return Outcome{
		Kind:     OutcomeSuccess,
		MsgTypes: msgTypes,
		Items:    items,
	}
}

// NewErrorOutcome returns the outcome of a transaction the counterparty failed to execute.
func NewErrorOutcome(label, details string) Outcome {
	return Outcome{
		Kind:    OutcomeError,
		Label:   label,
		Details: details,
	}
}

// NewUnreadableResultOutcome returns the outcome of a transaction the
// counterparty executed but whose result could not be parsed.
func NewUnreadableResultOutcome(label, details string) Outcome {
	return Outcome{
		Kind:    OutcomeUnreadableResult,
		Label:   label,
		Details: details,
	}
}

// NewTimeoutOutcome returns the outcome of a timed out transaction.
func NewTimeoutOutcome(label string) Outcome {
	return Outcome{
		Kind:  OutcomeTimeout,
		Label: label,
	}
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeSuccess:
		return fmt.Sprintf("success(%s)", strings.Join(o.MsgTypes, ","))
	case OutcomeError:
		return fmt.Sprintf("error(%s: %s)", o.Label, o.Details)
	case OutcomeTimeout:
		return fmt.Sprintf("timeout(%s)", o.Label)
	case OutcomeUnreadableResult:
		return fmt.Sprintf("unreadable_result(%s: %s)", o.Label, o.Details)
	default:
		return fmt.Sprintf("unknown(%s)", string(o.Kind))
	}
}
