package types

// Interchain transactions events
const (
	EventTypeRegisterInterchainAccount = "register_interchain_account"
	EventTypeSubmitTx                  = "submit_tx"
	EventTypeSubmitTxAccepted          = "submit_tx_accepted"
	EventTypeChannelOpenAck            = "channel_open_ack"
	EventTypeAcknowledgement           = "acknowledgement_result"
	EventTypeCleanAckResults           = "clean_ack_results"

	AttributeKeyAccountKey          = "account_key"
	AttributeKeyInterchainAccountID = "interchain_account_id"
	AttributeKeyConnectionID        = "connection_id"
	AttributeKeyChannelID           = "channel_id"
	AttributeKeySequence            = "sequence"
	AttributeKeyAddress             = "address"
	AttributeKeyMessage             = "message"
	AttributeKeyOutcome             = "outcome"
	AttributeKeyMsgTypes            = "msg_types"
	AttributeKeyCount               = "count"
	AttributeKeyTimeoutTimestamp    = "timeout_timestamp"
)
