// Package eeitest provides an in-memory emulation of the ewasm host so that
// programs written against the root ewasm package run unmodified in ordinary
// Go tests. World state lives in a cometbft-db MemDB; balances are moved
// with uint256 arithmetic; contract addresses are derived the way Ethereum
// derives them. Execution is strictly sequential, matching the EEI model.
package eeitest

import (
	"bytes"
	"encoding/binary"
	"fmt"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"

	"github.com/ewasm/ewasm-go/internal/native"
	"github.com/ewasm/ewasm-go/types"
)

const defaultGasLimit = 100_000_000

// CallKind distinguishes the four inter-contract call variants as seen by
// the host.
type CallKind int

const (
	CallKindCall CallKind = iota
	CallKindCallCode
	CallKindDelegate
	CallKindStatic
)

func (k CallKind) String() string {
	switch k {
	case CallKindCall:
		return "call"
	case CallKindCallCode:
		return "callCode"
	case CallKindDelegate:
		return "callDelegate"
	case CallKindStatic:
		return "callStatic"
	default:
		return fmt.Sprintf("CallKind(%d)", int(k))
	}
}

// CallRecord captures one inter-contract call observed by the host.
type CallRecord struct {
	Kind    CallKind
	Gas     uint64
	Address types.Address
	Value   types.EtherValue
	Input   []byte
}

// LogEntry captures one emitted log.
type LogEntry struct {
	Data   []byte
	Topics []types.Topic
}

// Config fixes the execution context of an emulated host. The zero value is
// usable; missing fields default to zero values and GasLimit defaults to
// defaultGasLimit.
type Config struct {
	Address   types.Address // executing contract
	Caller    types.Address
	Origin    types.Address
	CallValue types.EtherValue
	CallData  []byte
	Code      []byte // running code

	GasLimit uint64
	GasPrice types.EtherValue

	Coinbase      types.Address
	Difficulty    types.Difficulty
	BlockNumber   uint64
	Timestamp     uint64
	BlockGasLimit uint64

	// BlockHashes overrides the derived hash for specific block numbers.
	BlockHashes map[uint64]types.Hash

	// OnCall, when set, intercepts every call variant and supplies the
	// result code and return data instead of the default bookkeeping.
	OnCall func(kind CallKind, gas uint64, addr types.Address, value types.EtherValue, input []byte) (uint32, []byte)
	// OnCreate, when set, intercepts create the same way.
	OnCreate func(value types.EtherValue, code []byte) (uint32, types.Address)

	// Logger receives a debug event per host call. Nil disables tracing.
	Logger *zerolog.Logger
}

// Host is an in-memory implementation of native.Host.
type Host struct {
	cfg        Config
	db         *dbm.MemDB
	log        zerolog.Logger
	returnData []byte
	logs       []LogEntry
	calls      []CallRecord
	gasUsed    uint64
}

var _ native.Host = (*Host)(nil)

// New creates an emulated host for the given context and registers it as
// the backend of the raw surface. Hosts are not safe for concurrent use;
// neither is the interface they emulate.
func New(cfg Config) *Host {
	if cfg.GasLimit == 0 {
		cfg.GasLimit = defaultGasLimit
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	h := &Host{
		cfg: cfg,
		db:  dbm.NewMemDB(),
		log: logger,
	}
	h.SetCode(cfg.Address, cfg.Code)
	native.SetHost(h)
	return h
}

// Cleanup unregisters the host from the raw surface. Call it when the test
// is done with this host.
func (h *Host) Cleanup() {
	native.SetHost(nil)
}

func (h *Host) trace(op string) *zerolog.Event {
	return h.log.Debug().Str("op", op)
}

// State keys are prefixed per concern so one MemDB holds the whole world.

func balanceKey(addr types.Address) []byte { return append([]byte("bal/"), addr[:]...) }
func codeKey(addr types.Address) []byte    { return append([]byte("code/"), addr[:]...) }
func nonceKey(addr types.Address) []byte   { return append([]byte("nonce/"), addr[:]...) }

func storageKey(addr types.Address, key types.StorageKey) []byte {
	out := append([]byte("st/"), addr[:]...)
	return append(out, key[:]...)
}

func (h *Host) get(key []byte) []byte {
	v, err := h.db.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

func (h *Host) set(key, value []byte) {
	if err := h.db.Set(key, value); err != nil {
		panic(err)
	}
}

func (h *Host) delete(key []byte) {
	if err := h.db.Delete(key); err != nil {
		panic(err)
	}
}

// EtherValue crosses the boundary little-endian; uint256 wants big-endian.

func valueToInt(v types.EtherValue) *uint256.Int {
	var be [16]byte
	for i := range v {
		be[i] = v[len(v)-1-i]
	}
	return new(uint256.Int).SetBytes(be[:])
}

func intToValue(x *uint256.Int) types.EtherValue {
	be := x.Bytes32()
	var v types.EtherValue
	for i := range v {
		v[i] = be[31-i]
	}
	return v
}

// SetBalance fixes the balance of an account.
func (h *Host) SetBalance(addr types.Address, value types.EtherValue) {
	h.set(balanceKey(addr), value[:])
}

// SetCode fixes the code of an account. The stored copy is never nil; the
// underlying store rejects nil values.
func (h *Host) SetCode(addr types.Address, code []byte) {
	h.set(codeKey(addr), append([]byte{}, code...))
}

// SetReturnData fills the return buffer, as a completed call would.
func (h *Host) SetReturnData(data []byte) {
	h.returnData = bytes.Clone(data)
}

// Logs returns the logs emitted so far.
func (h *Host) Logs() []LogEntry { return h.logs }

// Calls returns the inter-contract calls observed so far.
func (h *Host) Calls() []CallRecord { return h.calls }

// transfer moves value between balances, reporting false when the sender
// cannot cover it.
func (h *Host) transfer(from, to types.Address, value types.EtherValue) bool {
	amount := valueToInt(value)
	if amount.IsZero() || from == to {
		return true
	}
	fromBal := valueToInt(h.Balance(from))
	if fromBal.Lt(amount) {
		return false
	}
	toBal := valueToInt(h.Balance(to))
	h.SetBalance(from, intToValue(fromBal.Sub(fromBal, amount)))
	h.SetBalance(to, intToValue(toBal.Add(toBal, amount)))
	return true
}

// copyOut implements the raw copy semantics for a host-owned buffer. The raw
// surface promises nothing about invalid ranges; the emulation makes misuse
// loud instead of silent.
func copyOut(op string, dst, src []byte, offset uint32) {
	end := uint64(offset) + uint64(len(dst))
	if end > uint64(len(src)) {
		panic(fmt.Sprintf("eeitest: %s range [%d, %d) exceeds buffer of %d bytes", op, offset, end, len(src)))
	}
	copy(dst, src[offset:end])
}

func (h *Host) UseGas(amount uint64) {
	h.trace("useGas").Uint64("amount", amount).Msg("host call")
	if amount > h.cfg.GasLimit-h.gasUsed {
		h.gasUsed = h.cfg.GasLimit
		panic(Termination{Status: StatusOutOfGas})
	}
	h.gasUsed += amount
}

func (h *Host) GasLeft() uint64 { return h.cfg.GasLimit - h.gasUsed }

func (h *Host) Address() types.Address { return h.cfg.Address }

func (h *Host) Balance(addr types.Address) types.EtherValue {
	var v types.EtherValue
	copy(v[:], h.get(balanceKey(addr)))
	return v
}

func (h *Host) BlockCoinbase() types.Address { return h.cfg.Coinbase }

func (h *Host) BlockDifficulty() types.Difficulty { return h.cfg.Difficulty }

func (h *Host) BlockGasLimit() uint64 { return h.cfg.BlockGasLimit }

// BlockHash serves overrides first, then derives a stable pseudo-hash for
// any block inside the 256-block lookback window. Outside the window it
// reports failure with a zero hash, like the EVM BLOCKHASH rule.
func (h *Host) BlockHash(number uint64) (types.Hash, uint32) {
	if hash, ok := h.cfg.BlockHashes[number]; ok {
		return hash, 0
	}
	if number >= h.cfg.BlockNumber || h.cfg.BlockNumber-number > 256 {
		return types.Hash{}, 1
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], number)
	var hash types.Hash
	copy(hash[:], crypto.Keccak256(buf[:]))
	return hash, 0
}

func (h *Host) BlockNumber() uint64 { return h.cfg.BlockNumber }

func (h *Host) BlockTimestamp() uint64 { return h.cfg.Timestamp }

func (h *Host) TxGasPrice() types.EtherValue { return h.cfg.GasPrice }

func (h *Host) TxOrigin() types.Address { return h.cfg.Origin }

func (h *Host) Caller() types.Address { return h.cfg.Caller }

func (h *Host) CallValue() types.EtherValue { return h.cfg.CallValue }

func (h *Host) CallDataSize() uint32 { return uint32(len(h.cfg.CallData)) }

func (h *Host) CallDataCopy(dst []byte, offset uint32) {
	h.trace("callDataCopy").Uint32("offset", offset).Int("length", len(dst)).Msg("host call")
	copyOut("callDataCopy", dst, h.cfg.CallData, offset)
}

func (h *Host) CodeSize() uint32 { return uint32(len(h.cfg.Code)) }

func (h *Host) CodeCopy(dst []byte, offset uint32) {
	h.trace("codeCopy").Uint32("offset", offset).Int("length", len(dst)).Msg("host call")
	copyOut("codeCopy", dst, h.cfg.Code, offset)
}

func (h *Host) ExternalCodeSize(addr types.Address) uint32 {
	return uint32(len(h.get(codeKey(addr))))
}

func (h *Host) ExternalCodeCopy(addr types.Address, dst []byte, offset uint32) {
	h.trace("externalCodeCopy").Hex("address", addr[:]).Uint32("offset", offset).Int("length", len(dst)).Msg("host call")
	copyOut("externalCodeCopy", dst, h.get(codeKey(addr)), offset)
}

func (h *Host) ReturnDataSize() uint32 { return uint32(len(h.returnData)) }

func (h *Host) ReturnDataCopy(dst []byte, offset uint32) {
	h.trace("returnDataCopy").Uint32("offset", offset).Int("length", len(dst)).Msg("host call")
	copyOut("returnDataCopy", dst, h.returnData, offset)
}

func (h *Host) StorageLoad(key types.StorageKey) types.StorageValue {
	h.trace("storageLoad").Hex("key", key[:]).Msg("host call")
	var v types.StorageValue
	copy(v[:], h.get(storageKey(h.cfg.Address, key)))
	return v
}

func (h *Host) StorageStore(key types.StorageKey, value types.StorageValue) {
	h.trace("storageStore").Hex("key", key[:]).Hex("value", value[:]).Msg("host call")
	h.set(storageKey(h.cfg.Address, key), value[:])
}

func (h *Host) Log(data []byte, topics []types.Topic) {
	h.trace("log").Int("topics", len(topics)).Int("length", len(data)).Msg("host call")
	entry := LogEntry{Data: bytes.Clone(data)}
	entry.Topics = append(entry.Topics, topics...)
	h.logs = append(h.logs, entry)
}

// doCall implements the shared bookkeeping of the call variants. Without an
// interceptor a call succeeds with an empty return buffer; only the plain
// variant moves value, and an uncovered value yields the failure code.
func (h *Host) doCall(kind CallKind, gas uint64, addr types.Address, value types.EtherValue, input []byte) uint32 {
	h.trace(kind.String()).Uint64("gas", gas).Hex("address", addr[:]).Int("length", len(input)).Msg("host call")
	h.calls = append(h.calls, CallRecord{Kind: kind, Gas: gas, Address: addr, Value: value, Input: bytes.Clone(input)})
	if h.cfg.OnCall != nil {
		code, ret := h.cfg.OnCall(kind, gas, addr, value, input)
		h.returnData = bytes.Clone(ret)
		return code
	}
	h.returnData = nil
	if kind == CallKindCall && !h.transfer(h.cfg.Address, addr, value) {
		return 1
	}
	return 0
}

func (h *Host) Call(gas uint64, addr types.Address, value types.EtherValue, input []byte) uint32 {
	return h.doCall(CallKindCall, gas, addr, value, input)
}

func (h *Host) CallCode(gas uint64, addr types.Address, value types.EtherValue, input []byte) uint32 {
	return h.doCall(CallKindCallCode, gas, addr, value, input)
}

func (h *Host) CallDelegate(gas uint64, addr types.Address, input []byte) uint32 {
	return h.doCall(CallKindDelegate, gas, addr, types.EtherValue{}, input)
}

func (h *Host) CallStatic(gas uint64, addr types.Address, input []byte) uint32 {
	return h.doCall(CallKindStatic, gas, addr, types.EtherValue{}, input)
}

// Create deploys code at the address Ethereum would derive from the creator
// and its nonce, endows it with value, and clears the return buffer.
func (h *Host) Create(value types.EtherValue, code []byte) (uint32, types.Address) {
	h.trace("create").Int("length", len(code)).Msg("host call")
	if h.cfg.OnCreate != nil {
		resultCode, addr := h.cfg.OnCreate(value, code)
		h.returnData = nil
		return resultCode, addr
	}
	nonce := h.nextNonce(h.cfg.Address)
	created := types.Address(crypto.CreateAddress(common.Address(h.cfg.Address), nonce))
	if !h.transfer(h.cfg.Address, created, value) {
		return 1, types.Address{}
	}
	h.SetCode(created, code)
	h.returnData = nil
	return 0, created
}

func (h *Host) nextNonce(addr types.Address) uint64 {
	var nonce uint64
	if raw := h.get(nonceKey(addr)); len(raw) == 8 {
		nonce = binary.BigEndian.Uint64(raw)
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], nonce+1)
	h.set(nonceKey(addr), buf[:])
	return nonce
}

func (h *Host) Finish(data []byte) {
	h.trace("finish").Int("length", len(data)).Msg("host call")
	panic(Termination{Status: StatusFinished, ReturnData: bytes.Clone(data)})
}

func (h *Host) Revert(data []byte) {
	h.trace("revert").Int("length", len(data)).Msg("host call")
	panic(Termination{Status: StatusReverted, ReturnData: bytes.Clone(data)})
}

func (h *Host) SelfDestruct(beneficiary types.Address) {
	h.trace("selfDestruct").Hex("beneficiary", beneficiary[:]).Msg("host call")
	balance := h.Balance(h.cfg.Address)
	h.transfer(h.cfg.Address, beneficiary, balance)
	h.delete(codeKey(h.cfg.Address))
	panic(Termination{Status: StatusSelfDestructed})
}
