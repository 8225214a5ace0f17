package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// DecodeAndConvert decodes a bech32 encoded address of any prefix into raw bytes.
func DecodeAndConvert(encoded string) ([]byte, error) {
	_, bz, err := bech32.DecodeAndConvert(encoded)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAddress, "%s: %v", encoded, err)
	}

	return bz, nil
}

// CreateAccountBalancesPrefix creates the prefix of all balances of an account
// in the bank store.
func CreateAccountBalancesPrefix(addr []byte) ([]byte, error) {
	prefixed, err := address.LengthPrefix(addr)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidAddress, err.Error())
	}

	return append([]byte{BalancesPrefix}, prefixed...), nil
}

// CreateAccountDenomBalanceKey creates the bank store key of the balance of an
// account for a particular denom.
func CreateAccountDenomBalanceKey(addr []byte, denom string) ([]byte, error) {
	prefix, err := CreateAccountBalancesPrefix(addr)
	if err != nil {
		return nil, err
	}

	return append(prefix, []byte(denom)...), nil
}

// CreateValidatorKey creates the staking store key of a validator.
func CreateValidatorKey(operatorAddr []byte) ([]byte, error) {
	prefixed, err := address.LengthPrefix(operatorAddr)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidAddress, err.Error())
	}

	return append([]byte{ValidatorsKey}, prefixed...), nil
}

// CreateDelegationsKey creates the staking store prefix of all delegations of a delegator.
func CreateDelegationsKey(delAddr []byte) ([]byte, error) {
	prefixed, err := address.LengthPrefix(delAddr)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidAddress, err.Error())
	}

	return append([]byte{DelegationKey}, prefixed...), nil
}

// CreateDelegationKey creates the staking store key of the delegation of
// delAddr to valAddr.
func CreateDelegationKey(delAddr, valAddr []byte) ([]byte, error) {
	prefix, err := CreateDelegationsKey(delAddr)
	if err != nil {
		return nil, err
	}

	prefixed, err := address.LengthPrefix(valAddr)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidAddress, err.Error())
	}

	return append(prefix, prefixed...), nil
}

// CreateParamsStoreKey creates the key of a legacy x/params subspace value.
func CreateParamsStoreKey(module, key string) []byte {
	return []byte(module + "/" + key)
}

// NewBalanceKVKey returns the KVKey of the balance of addr in denom.
func NewBalanceKVKey(addr, denom string) (KVKey, error) {
	addrBz, err := DecodeAndConvert(addr)
	if err != nil {
		return KVKey{}, err
	}

	key, err := CreateAccountDenomBalanceKey(addrBz, denom)
	if err != nil {
		return KVKey{}, err
	}

	return NewKVKey(BankStoreKey, key), nil
}

// NewDelegatorDelegationsKVKeys returns the KVKeys needed to compute the
// delegations of delegator to each of validators: the staking bond denom
// param, then the delegation and validator keys per validator.
func NewDelegatorDelegationsKVKeys(delegator string, validators []string) (KVKeys, error) {
	delAddr, err := DecodeAndConvert(delegator)
	if err != nil {
		return nil, err
	}

	keys := make(KVKeys, 0, len(validators)*2+1)
	keys = append(keys, NewKVKey(ParamsStoreKey, CreateParamsStoreKey(StakingStoreKey, KeyBondDenom)))

	for _, v := range validators {
		valAddr, err := DecodeAndConvert(v)
		if err != nil {
			return nil, err
		}

		delegationKey, err := CreateDelegationKey(delAddr, valAddr)
		if err != nil {
			return nil, err
		}
		keys = append(keys, NewKVKey(StakingStoreKey, delegationKey))

		validatorKey, err := CreateValidatorKey(valAddr)
		if err != nil {
			return nil, err
		}
		keys = append(keys, NewKVKey(StakingStoreKey, validatorKey))
	}

	return keys, nil
}
