package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	icatypes "github.com/cosmos/ibc-go/v8/modules/apps/27-interchain-accounts/types"

	"github.com/cosmos/interchaintxs/internal/validate"
)

// AccountKeyDelimiter separates the owner from the interchain account id in an account key
const AccountKeyDelimiter = "."

// NewAccountKey returns the key identifying the interchain account
// interchainAccountID of owner. It is the ICS-27 controller port id the host
// binds for that account: icacontroller-<owner>.<interchainAccountID>.
func NewAccountKey(owner, interchainAccountID string) (string, error) {
	if strings.TrimSpace(owner) == "" {
		return "", errorsmod.Wrap(ErrInvalidAccountID, "owner cannot be blank")
	}

	if strings.TrimSpace(interchainAccountID) == "" {
		return "", errorsmod.Wrap(ErrInvalidAccountID, "interchain account id cannot be blank")
	}

	portID, err := icatypes.NewControllerPortID(owner + AccountKeyDelimiter + interchainAccountID)
	if err != nil {
		return "", err
	}

	if err := validate.PortID(portID); err != nil {
		return "", errorsmod.Wrapf(ErrInvalidAccountID, "%s: %v", interchainAccountID, err)
	}

	return portID, nil
}

// RemoteAccount is an interchain account confirmed by the counterparty chain.
type RemoteAccount struct {
	Address      string `json:"address"`
	ConnectionID string `json:"connection_id"`
}

// AccountSlot is the registry entry of an interchain account. Remote is nil
// between registration and the channel open acknowledgement.
type AccountSlot struct {
	Remote *RemoteAccount `json:"remote,omitempty"`
}

// IsOpen returns true once the counterparty chain confirmed the account.
func (s AccountSlot) IsOpen() bool {
	return s.Remote != nil
}

// ParseCounterpartyVersion parses the ICS-27 metadata of a channel open
// acknowledgement into the confirmed RemoteAccount.
func ParseCounterpartyVersion(version string) (RemoteAccount, error) {
	var metadata icatypes.Metadata
	if err := icatypes.ModuleCdc.UnmarshalJSON([]byte(version), &metadata); err != nil {
		return RemoteAccount{}, errorsmod.Wrapf(ErrHandshakeMetadataInvalid, "%v", err)
	}

	if strings.TrimSpace(metadata.Address) == "" {
		return RemoteAccount{}, errorsmod.Wrap(ErrHandshakeMetadataInvalid, "interchain account address cannot be empty")
	}

	if err := icatypes.ValidateAccountAddress(metadata.Address); err != nil {
		return RemoteAccount{}, errorsmod.Wrapf(ErrHandshakeMetadataInvalid, "%v", err)
	}

	if err := validate.Identifier(metadata.ControllerConnectionId); err != nil {
		return RemoteAccount{}, errorsmod.Wrapf(ErrHandshakeMetadataInvalid, "controller connection id: %v", err)
	}

	return RemoteAccount{
		Address:      metadata.Address,
		ConnectionID: metadata.ControllerConnectionId,
	}, nil
}
