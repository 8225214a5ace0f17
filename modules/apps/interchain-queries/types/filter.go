package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/interchaintxs/internal/collections"
)

// TransactionFilterOp is a comparison operator of a transactions filter item.
type TransactionFilterOp string

const (
	OpEq  TransactionFilterOp = "eq"
	OpGt  TransactionFilterOp = "gt"
	OpGte TransactionFilterOp = "gte"
	OpLt  TransactionFilterOp = "lt"
	OpLte TransactionFilterOp = "lte"
)

var filterOps = []TransactionFilterOp{OpEq, OpGt, OpGte, OpLt, OpLte}

// Validate returns an error if the operator is unknown.
func (op TransactionFilterOp) Validate() error {
	if !collections.Contains(op, filterOps) {
		return errorsmod.Wrapf(ErrInvalidFilter, "unknown operator %q", string(op))
	}

	return nil
}

// TransactionFilterValue is either a string or an unsigned integer. It is
// encoded as a bare JSON string or number.
type TransactionFilterValue struct {
	str   string
	num   uint64
	isNum bool
}

// NewStringFilterValue returns a string filter value.
func NewStringFilterValue(s string) TransactionFilterValue {
	return TransactionFilterValue{str: s}
}

// NewIntFilterValue returns an integer filter value.
func NewIntFilterValue(n uint64) TransactionFilterValue {
	return TransactionFilterValue{num: n, isNum: true}
}

// IsInt returns true for integer values.
func (v TransactionFilterValue) IsInt() bool { return v.isNum }

// String implements fmt.Stringer.
func (v TransactionFilterValue) String() string {
	if v.isNum {
		return strconv.FormatUint(v.num, 10)
	}
	return v.str
}

// MarshalJSON implements json.Marshaler.
func (v TransactionFilterValue) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return []byte(strconv.FormatUint(v.num, 10)), nil
	}
	return json.Marshal(v.str)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *TransactionFilterValue) UnmarshalJSON(bz []byte) error {
	bz = bytes.TrimSpace(bz)
	if len(bz) > 0 && bz[0] == '"' {
		var s string
		if err := json.Unmarshal(bz, &s); err != nil {
			return err
		}
		*v = NewStringFilterValue(s)
		return nil
	}

	n, err := strconv.ParseUint(string(bz), 10, 64)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidFilter, "value %s is neither a string nor an unsigned integer", string(bz))
	}
	*v = NewIntFilterValue(n)
	return nil
}

// TransactionFilterItem is a single condition of a transactions filter.
type TransactionFilterItem struct {
	Field string                 `json:"field"`
	Op    TransactionFilterOp    `json:"op"`
	Value TransactionFilterValue `json:"value"`
}

// TransactionFilter is the list of conditions a remote transaction must satisfy.
type TransactionFilter []TransactionFilterItem

// Validate checks every item of the filter.
func (f TransactionFilter) Validate() error {
	if len(f) == 0 {
		return errorsmod.Wrap(ErrInvalidFilter, "filter cannot be empty")
	}

	for i, item := range f {
		if strings.TrimSpace(item.Field) == "" {
			return errorsmod.Wrapf(ErrInvalidFilter, "item %d has an empty field", i)
		}
		if err := item.Op.Validate(); err != nil {
			return errorsmod.Wrapf(err, "item %d", i)
		}
	}

	return nil
}

// Encode returns the JSON string handed to the query subsystem.
func (f TransactionFilter) Encode() (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}

	bz, err := json.Marshal(f)
	if err != nil {
		return "", errorsmod.Wrap(ErrInvalidFilter, err.Error())
	}

	return string(bz), nil
}

// DecodeTransactionFilter parses a JSON encoded transactions filter.
func DecodeTransactionFilter(s string) (TransactionFilter, error) {
	var f TransactionFilter
	if err := json.Unmarshal([]byte(s), &f); err != nil {
		return nil, errorsmod.Wrap(ErrInvalidFilter, err.Error())
	}

	return f, f.Validate()
}

// NewTransfersFilter returns the filter matching transfers to recipient,
// optionally starting at minHeight. A zero minHeight adds no height condition.
func NewTransfersFilter(recipient string, minHeight uint64) TransactionFilter {
	filter := TransactionFilter{
		{Field: RecipientField, Op: OpEq, Value: NewStringFilterValue(recipient)},
	}

	if minHeight > 0 {
		filter = append(filter, TransactionFilterItem{Field: HeightField, Op: OpGte, Value: NewIntFilterValue(minHeight)})
	}

	return filter
}
