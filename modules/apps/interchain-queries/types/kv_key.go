package types

import (
	"encoding/hex"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// KVKey describes a key in the KV storage of a remote chain module.
//
// Path is the store prefix the key lives under (usually the module name, e.g.
// "bank" or "staking"). Path must not contain KVPathKeyDelimiter or
// KVKeysDelimiter: the encoding does not escape them, so a KVKey with such a
// path does not survive a round trip. Use Validate before encoding untrusted
// input.
type KVKey struct {
	Path string `json:"path"`
	Key  []byte `json:"key"`
}

// NewKVKey creates a new KVKey instance
func NewKVKey(path string, key []byte) KVKey {
	return KVKey{
		Path: path,
		Key:  key,
	}
}

// Validate checks that the path can be encoded unambiguously.
func (kv KVKey) Validate() error {
	if strings.TrimSpace(kv.Path) == "" {
		return errorsmod.Wrap(ErrInvalidKVPath, "path cannot be blank")
	}

	if strings.Contains(kv.Path, KVPathKeyDelimiter) {
		return errorsmod.Wrapf(ErrInvalidKVPath, "path %q contains delimiter %q", kv.Path, KVPathKeyDelimiter)
	}

	if strings.Contains(kv.Path, KVKeysDelimiter) {
		return errorsmod.Wrapf(ErrInvalidKVPath, "path %q contains delimiter %q", kv.Path, KVKeysDelimiter)
	}

	return nil
}

// String encodes the KVKey as <path>/<hex(key)>.
func (kv KVKey) String() string {
	var sb strings.Builder
	sb.Grow(len(kv.Path) + len(KVPathKeyDelimiter) + hex.EncodedLen(len(kv.Key)))

	sb.WriteString(kv.Path)
	sb.WriteString(KVPathKeyDelimiter)
	sb.WriteString(EncodeHex(kv.Key))

	return sb.String()
}

// KVKeyFromString decodes a KVKey previously encoded with KVKey.String.
// Only the first two path delimited segments are read; anything after a
// second delimiter is ignored.
func KVKeyFromString(s string) (KVKey, error) {
	split := strings.Split(s, KVPathKeyDelimiter)
	if len(split) < 2 {
		return KVKey{}, errorsmod.Wrapf(ErrMalformedAddress, "expected <path>%s<hex key>, got %q", KVPathKeyDelimiter, s)
	}

	key, err := DecodeHex(split[1])
	if err != nil {
		return KVKey{}, errorsmod.Wrapf(ErrMalformedAddress, "invalid key segment %q: %v", split[1], err)
	}

	return KVKey{
		Path: split[0],
		Key:  key,
	}, nil
}

// KVKeys is a list of KVKey
type KVKeys []KVKey

// String joins the encoded keys with KVKeysDelimiter.
func (kvs KVKeys) String() string {
	encoded := make([]string, len(kvs))
	for i, kv := range kvs {
		encoded[i] = kv.String()
	}

	return strings.Join(encoded, KVKeysDelimiter)
}

// Validate validates every key of the list.
func (kvs KVKeys) Validate() error {
	for i, kv := range kvs {
		if err := kv.Validate(); err != nil {
			return errorsmod.Wrapf(err, "key at index %d", i)
		}
	}

	return nil
}

// KVKeysFromString decodes a list encoded with KVKeys.String. Any malformed
// segment, including an empty one, fails the whole decode. The empty string
// decodes to an empty list.
func KVKeysFromString(s string) (KVKeys, error) {
	if s == "" {
		return KVKeys{}, nil
	}

	split := strings.Split(s, KVKeysDelimiter)
	kvs := make(KVKeys, 0, len(split))
	for i, segment := range split {
		kv, err := KVKeyFromString(segment)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "segment %d", i)
		}

		kvs = append(kvs, kv)
	}

	return kvs, nil
}

// EncodeHex encodes bytes into a lowercase hex string without prefix.
func EncodeHex(bz []byte) string {
	return hex.EncodeToString(bz)
}

// DecodeHex decodes a hex string. Both cases are accepted, odd length and
// non-hex characters are rejected.
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
