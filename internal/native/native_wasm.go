//go:build wasm

package native

import "unsafe"

// Direct imports from the "ethereum" module of the ewasm host. The host
// interprets every pointer as an offset into the instance's linear memory
// and is trusted to honor the widths documented for each operation.

//go:wasmimport ethereum useGas
func UseGas(amount uint64)

//go:wasmimport ethereum getGasLeft
func GetGasLeft() uint64

//go:wasmimport ethereum getAddress
func GetAddress(resultPtr unsafe.Pointer)

//go:wasmimport ethereum getBalance
func GetBalance(addrPtr, resultPtr unsafe.Pointer)

//go:wasmimport ethereum getBlockCoinbase
func GetBlockCoinbase(resultPtr unsafe.Pointer)

//go:wasmimport ethereum getBlockDifficulty
func GetBlockDifficulty(resultPtr unsafe.Pointer)

//go:wasmimport ethereum getBlockGasLimit
func GetBlockGasLimit() uint64

//go:wasmimport ethereum getBlockHash
func GetBlockHash(number uint64, resultPtr unsafe.Pointer) uint32

//go:wasmimport ethereum getBlockNumber
func GetBlockNumber() uint64

//go:wasmimport ethereum getBlockTimestamp
func GetBlockTimestamp() uint64

//go:wasmimport ethereum getTxGasPrice
func GetTxGasPrice(resultPtr unsafe.Pointer)

//go:wasmimport ethereum getTxOrigin
func GetTxOrigin(resultPtr unsafe.Pointer)

//go:wasmimport ethereum getCaller
func GetCaller(resultPtr unsafe.Pointer)

//go:wasmimport ethereum getCallValue
func GetCallValue(resultPtr unsafe.Pointer)

//go:wasmimport ethereum getCallDataSize
func GetCallDataSize() uint32

//go:wasmimport ethereum callDataCopy
func CallDataCopy(resultPtr unsafe.Pointer, offset, length uint32)

//go:wasmimport ethereum getCodeSize
func GetCodeSize() uint32

//go:wasmimport ethereum codeCopy
func CodeCopy(resultPtr unsafe.Pointer, offset, length uint32)

//go:wasmimport ethereum getExternalCodeSize
func GetExternalCodeSize(addrPtr unsafe.Pointer) uint32

//go:wasmimport ethereum externalCodeCopy
func ExternalCodeCopy(addrPtr, resultPtr unsafe.Pointer, offset, length uint32)

//go:wasmimport ethereum getReturnDataSize
func GetReturnDataSize() uint32

//go:wasmimport ethereum returnDataCopy
func ReturnDataCopy(resultPtr unsafe.Pointer, offset, length uint32)

//go:wasmimport ethereum storageLoad
func StorageLoad(keyPtr, resultPtr unsafe.Pointer)

//go:wasmimport ethereum storageStore
func StorageStore(keyPtr, valuePtr unsafe.Pointer)

//go:wasmimport ethereum log
func Log(dataPtr unsafe.Pointer, length, numTopics uint32, t1, t2, t3, t4 unsafe.Pointer)

//go:wasmimport ethereum call
func Call(gas uint64, addrPtr, valuePtr, dataPtr unsafe.Pointer, dataLen uint32) uint32

//go:wasmimport ethereum callCode
func CallCode(gas uint64, addrPtr, valuePtr, dataPtr unsafe.Pointer, dataLen uint32) uint32

//go:wasmimport ethereum callDelegate
func CallDelegate(gas uint64, addrPtr, dataPtr unsafe.Pointer, dataLen uint32) uint32

//go:wasmimport ethereum callStatic
func CallStatic(gas uint64, addrPtr, dataPtr unsafe.Pointer, dataLen uint32) uint32

//go:wasmimport ethereum create
func Create(valuePtr, dataPtr unsafe.Pointer, dataLen uint32, resultPtr unsafe.Pointer) uint32

//go:wasmimport ethereum finish
func finish(dataPtr unsafe.Pointer, length uint32)

//go:wasmimport ethereum revert
func revert(dataPtr unsafe.Pointer, length uint32)

//go:wasmimport ethereum selfDestruct
func selfDestruct(addrPtr unsafe.Pointer)

// The terminating imports end execution inside the host and never return.
// The trailing panics assert that contract at runtime should a host ever
// resume the instance.

func Finish(dataPtr unsafe.Pointer, length uint32) {
	finish(dataPtr, length)
	panic("native: host returned from finish")
}

func Revert(dataPtr unsafe.Pointer, length uint32) {
	revert(dataPtr, length)
	panic("native: host returned from revert")
}

func SelfDestruct(addrPtr unsafe.Pointer) {
	selfDestruct(addrPtr)
	panic("native: host returned from selfDestruct")
}
