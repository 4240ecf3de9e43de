package ewasm

import (
	"unsafe"

	"github.com/ewasm/ewasm-go/internal/native"
	"github.com/ewasm/ewasm-go/types"
)

// Call executes a standard call to the given address with the given gas
// limit, ether value and data.
func Call(gasLimit uint64, addr types.Address, value types.EtherValue, data []byte) types.CallResult {
	code := native.Call(gasLimit, unsafe.Pointer(&addr[0]), unsafe.Pointer(&value[0]), dataPtr(data), uint32(len(data)))
	return types.DecodeCallResult("call", code)
}

// CallCode executes the code at the given address in the context of the
// caller.
func CallCode(gasLimit uint64, addr types.Address, value types.EtherValue, data []byte) types.CallResult {
	code := native.CallCode(gasLimit, unsafe.Pointer(&addr[0]), unsafe.Pointer(&value[0]), dataPtr(data), uint32(len(data)))
	return types.DecodeCallResult("callCode", code)
}

// CallDelegate executes a call similar to CallCode, but retaining the
// currently executing call's sender and value. It cannot transfer value.
func CallDelegate(gasLimit uint64, addr types.Address, data []byte) types.CallResult {
	code := native.CallDelegate(gasLimit, unsafe.Pointer(&addr[0]), dataPtr(data), uint32(len(data)))
	return types.DecodeCallResult("callDelegate", code)
}

// CallStatic executes a static call which cannot mutate state or transfer
// value.
func CallStatic(gasLimit uint64, addr types.Address, data []byte) types.CallResult {
	code := native.CallStatic(gasLimit, unsafe.Pointer(&addr[0]), dataPtr(data), uint32(len(data)))
	return types.DecodeCallResult("callStatic", code)
}

// Create creates a contract with the given initialization code, sending the
// given ether value to its address. The new contract's address is carried in
// the result only on success.
func Create(value types.EtherValue, initCode []byte) types.CreateResult {
	var addr types.Address
	code := native.Create(unsafe.Pointer(&value[0]), dataPtr(initCode), uint32(len(initCode)), unsafe.Pointer(&addr[0]))
	return types.DecodeCreateResult(code, addr)
}

// emitLog appends log data to the transaction receipt. Unused topic slots
// are forwarded as null placeholders; the host reads only the first
// numTopics of them.
func emitLog(data []byte, numTopics uint32, t1, t2, t3, t4 *types.Topic) {
	native.Log(dataPtr(data), uint32(len(data)), numTopics, topicPtr(t1), topicPtr(t2), topicPtr(t3), topicPtr(t4))
}

func topicPtr(t *types.Topic) unsafe.Pointer {
	if t == nil {
		return nil
	}
	return unsafe.Pointer(&t[0])
}

// Log0 appends log data without a topic.
func Log0(data []byte) {
	emitLog(data, 0, nil, nil, nil, nil)
}

// Log1 appends log data with one topic.
func Log1(data []byte, topic1 types.Topic) {
	emitLog(data, 1, &topic1, nil, nil, nil)
}

// Log2 appends log data with two topics.
func Log2(data []byte, topic1, topic2 types.Topic) {
	emitLog(data, 2, &topic1, &topic2, nil, nil)
}

// Log3 appends log data with three topics.
func Log3(data []byte, topic1, topic2, topic3 types.Topic) {
	emitLog(data, 3, &topic1, &topic2, &topic3, nil)
}

// Log4 appends log data with four topics.
func Log4(data []byte, topic1, topic2, topic3, topic4 types.Topic) {
	emitLog(data, 4, &topic1, &topic2, &topic3, &topic4)
}

// Finish ends execution, signalling success. It does not return; any code
// sequenced after it is unreachable.
func Finish() {
	native.Finish(nil, 0)
}

// FinishData fills the return buffer with the given data and ends execution,
// signalling success. It does not return.
func FinishData(data []byte) {
	native.Finish(dataPtr(data), uint32(len(data)))
}

// Revert ends execution and reverts all state changes. It does not return.
func Revert() {
	native.Revert(nil, 0)
}

// RevertData fills the return buffer with the given data, then ends
// execution and reverts all state changes. It does not return.
func RevertData(data []byte) {
	native.Revert(dataPtr(data), uint32(len(data)))
}

// SelfDestruct marks the running contract for removal, sending all its ether
// to the beneficiary address, and ends execution. It does not return.
func SelfDestruct(beneficiary types.Address) {
	native.SelfDestruct(unsafe.Pointer(&beneficiary[0]))
}
