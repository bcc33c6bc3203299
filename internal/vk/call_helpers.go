// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// ptrArg wraps a C pointer-typed argument for goffi: goffi's args[] slots
// hold pointers to WHERE each argument's value is stored, so a genuine C
// pointer argument (as opposed to a scalar handle passed by value) must be
// boxed one level deeper — a pointer to the local variable holding the
// pointer value, not the pointer itself.
func ptrArg(p unsafe.Pointer) unsafe.Pointer { return unsafe.Pointer(&p) }

// The helpers below each correspond to one shared C signature prepared in
// signatures.go. h/h2 are handles (or other scalar values) passed by
// value; p/p2/p3 are genuine C pointer arguments boxed with ptrArg.

func call3Ptr(fn unsafe.Pointer, p1, p2, p3 unsafe.Pointer) Result {
	var result int32
	args := [3]unsafe.Pointer{ptrArg(p1), ptrArg(p2), ptrArg(p3)}
	_ = ffi.CallFunction(&sig3Ptr, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callH1Ptr2(fn unsafe.Pointer, h uint64, p1, p2 unsafe.Pointer) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&h), ptrArg(p1), ptrArg(p2)}
	_ = ffi.CallFunction(&sigH1Ptr2, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callH1Ptr3(fn unsafe.Pointer, h uint64, p1, p2, p3 unsafe.Pointer) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&h), ptrArg(p1), ptrArg(p2), ptrArg(p3)}
	_ = ffi.CallFunction(&sigH1Ptr3, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callH2Ptr2(fn unsafe.Pointer, h, h2 uint64, p1, p2 unsafe.Pointer) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&h2), ptrArg(p1), ptrArg(p2)}
	_ = ffi.CallFunction(&sigH2Ptr2, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callH1U32Ptr(fn unsafe.Pointer, h uint64, count uint32, p unsafe.Pointer) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&count), ptrArg(p)}
	_ = ffi.CallFunction(&sigH1U32Ptr, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callH1U32PtrH1(fn unsafe.Pointer, h uint64, count uint32, p unsafe.Pointer, h2 uint64) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&count), ptrArg(p), unsafe.Pointer(&h2)}
	_ = ffi.CallFunction(&sigH1U32PtrH1, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callH1Ptr(fn unsafe.Pointer, h uint64, p unsafe.Pointer) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&h), ptrArg(p)}
	_ = ffi.CallFunction(&sigH1Ptr, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callH1(fn unsafe.Pointer, h uint64) Result {
	var result int32
	args := [1]unsafe.Pointer{unsafe.Pointer(&h)}
	_ = ffi.CallFunction(&sigH1, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callH1U32(fn unsafe.Pointer, h uint64, v uint32) Result {
	var result int32
	args := [2]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&v)}
	_ = ffi.CallFunction(&sigH1U32, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callWaitForFences(fn unsafe.Pointer, h uint64, count uint32, p unsafe.Pointer, waitAll uint32, timeout uint64) Result {
	var result int32
	args := [5]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&count), ptrArg(p), unsafe.Pointer(&waitAll), unsafe.Pointer(&timeout)}
	_ = ffi.CallFunction(&sigWaitForFences, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callMapMemory(fn unsafe.Pointer, h, h2, offset, size uint64, flags uint32, p unsafe.Pointer) Result {
	var result int32
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&h), unsafe.Pointer(&h2), unsafe.Pointer(&offset),
		unsafe.Pointer(&size), unsafe.Pointer(&flags), ptrArg(p),
	}
	_ = ffi.CallFunction(&sigMapMemory, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callBindMemory(fn unsafe.Pointer, h, h2, h3, offset uint64) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&h2), unsafe.Pointer(&h3), unsafe.Pointer(&offset)}
	_ = ffi.CallFunction(&sigBindMemory, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callH2Ptr(fn unsafe.Pointer, h, h2 uint64, p unsafe.Pointer) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&h2), ptrArg(p)}
	_ = ffi.CallFunction(&sigH2Ptr, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callSurfaceSupport(fn unsafe.Pointer, h uint64, family uint32, h2 uint64, p unsafe.Pointer) Result {
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&family), unsafe.Pointer(&h2), ptrArg(p)}
	_ = ffi.CallFunction(&sigSurfaceSupport, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callAcquireImage(fn unsafe.Pointer, h, h2, timeout, h3, h4 uint64, p unsafe.Pointer) Result {
	var result int32
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&h), unsafe.Pointer(&h2), unsafe.Pointer(&timeout),
		unsafe.Pointer(&h3), unsafe.Pointer(&h4), ptrArg(p),
	}
	_ = ffi.CallFunction(&sigAcquireImage, fn, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func callVoidH1Ptr(fn unsafe.Pointer, h uint64, p unsafe.Pointer) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&h), ptrArg(p)}
	_ = ffi.CallFunction(&sigVoidH1Ptr, fn, nil, args[:])
}

func callVoidH2Ptr(fn unsafe.Pointer, h, h2 uint64, p unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&h2), ptrArg(p)}
	_ = ffi.CallFunction(&sigVoidH2Ptr, fn, nil, args[:])
}

func callVoidH1Ptr2(fn unsafe.Pointer, h uint64, p1, p2 unsafe.Pointer) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&h), ptrArg(p1), ptrArg(p2)}
	_ = ffi.CallFunction(&sigVoidH1Ptr2, fn, nil, args[:])
}

func callVoidH2(fn unsafe.Pointer, h, h2 uint64) {
	args := [2]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&h2)}
	_ = ffi.CallFunction(&sigVoidH2, fn, nil, args[:])
}

func callVoidH1U32x2Ptr(fn unsafe.Pointer, h uint64, a, b uint32, p unsafe.Pointer) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&a), unsafe.Pointer(&b), ptrArg(p)}
	_ = ffi.CallFunction(&sigVoidH1U32x2Ptr, fn, nil, args[:])
}

func callVoidH2U64U32(fn unsafe.Pointer, h, h2, v uint64, w uint32) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&h2), unsafe.Pointer(&v), unsafe.Pointer(&w)}
	_ = ffi.CallFunction(&sigVoidH2U64U32, fn, nil, args[:])
}

func callVoidH1U32x2PtrPtr(fn unsafe.Pointer, h uint64, a, b uint32, p1, p2 unsafe.Pointer) {
	args := [5]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&a), unsafe.Pointer(&b), ptrArg(p1), ptrArg(p2)}
	_ = ffi.CallFunction(&sigVoidH1U32x2PtrPtr, fn, nil, args[:])
}

func callVoidH1U32U32Ptr(fn unsafe.Pointer, h uint64, a, b uint32, p unsafe.Pointer) {
	args := [4]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&a), unsafe.Pointer(&b), ptrArg(p)}
	_ = ffi.CallFunction(&sigVoidH1U32U32Ptr, fn, nil, args[:])
}

func callVoidH3U32Ptr(fn unsafe.Pointer, h, h2, h3 uint64, count uint32, p unsafe.Pointer) {
	args := [5]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&h2), unsafe.Pointer(&h3), unsafe.Pointer(&count), ptrArg(p)}
	_ = ffi.CallFunction(&sigVoidH3U32Ptr, fn, nil, args[:])
}

func callVoidH3U32x2Ptr(fn unsafe.Pointer, h, h2, h3 uint64, a, b uint32, p unsafe.Pointer) {
	args := [6]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&h2), unsafe.Pointer(&h3), unsafe.Pointer(&a), unsafe.Pointer(&b), ptrArg(p)}
	_ = ffi.CallFunction(&sigVoidH3U32x2Ptr, fn, nil, args[:])
}

func callVoidH1U32x4(fn unsafe.Pointer, h uint64, a, b, c, d uint32) {
	args := [5]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&a), unsafe.Pointer(&b), unsafe.Pointer(&c), unsafe.Pointer(&d)}
	_ = ffi.CallFunction(&sigVoidH1U32x4, fn, nil, args[:])
}

func callVoidH3(fn unsafe.Pointer, h, h2, h3 uint64) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&h), unsafe.Pointer(&h2), unsafe.Pointer(&h3)}
	_ = ffi.CallFunction(&sigVoidH3, fn, nil, args[:])
}

func callVoidH1PtrU32(fn unsafe.Pointer, h uint64, p unsafe.Pointer, v uint32) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&h), ptrArg(p), unsafe.Pointer(&v)}
	_ = ffi.CallFunction(&sigVoidH1PtrU32, fn, nil, args[:])
}

func callVoidH1(fn unsafe.Pointer, h uint64) {
	args := [1]unsafe.Pointer{unsafe.Pointer(&h)}
	_ = ffi.CallFunction(&sigVoidH1, fn, nil, args[:])
}

func callVoidCopyImageToBuffer(fn unsafe.Pointer, cmd, image uint64, layout uint32, buffer uint64, count uint32, p unsafe.Pointer) {
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&image), unsafe.Pointer(&layout),
		unsafe.Pointer(&buffer), unsafe.Pointer(&count), ptrArg(p),
	}
	_ = ffi.CallFunction(&sigVoidCopyImageToBuffer, fn, nil, args[:])
}

func callVoidPipelineBarrier(fn unsafe.Pointer, cmd uint64, srcStage, dstStage, depFlags uint32,
	memCount uint32, pMem unsafe.Pointer, bufCount uint32, pBuf unsafe.Pointer, imgCount uint32, pImg unsafe.Pointer) {
	args := [10]unsafe.Pointer{
		unsafe.Pointer(&cmd), unsafe.Pointer(&srcStage), unsafe.Pointer(&dstStage), unsafe.Pointer(&depFlags),
		unsafe.Pointer(&memCount), ptrArg(pMem), unsafe.Pointer(&bufCount), ptrArg(pBuf),
		unsafe.Pointer(&imgCount), ptrArg(pImg),
	}
	_ = ffi.CallFunction(&sigVoidPipelineBarrier, fn, nil, args[:])
}
