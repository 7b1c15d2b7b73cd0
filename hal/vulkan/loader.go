// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// goffi expects args[] to hold pointers to WHERE a value is stored, never
// the value itself. Pointer arguments therefore need a pointer-to-pointer:
// store the pointer in a local, then pass its address.

func vulkanLibraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "vulkan-1.dll"
	case "darwin":
		return "libvulkan.dylib" // MoltenVK
	default:
		return "libvulkan.so.1"
	}
}

// loader owns the native Vulkan library handle and the small set of
// CallInterfaces the frame graph actually issues. The full generated
// ~700-function signature table that a complete Vulkan loader carries is
// out of scope here; entries are added only as the renderer needs them.
type loader struct {
	lib unsafe.Pointer

	getInstanceProcAddr unsafe.Pointer
	getDeviceProcAddr   unsafe.Pointer
	cifGetInstanceProc  types.CallInterface
	cifGetDeviceProc    types.CallInterface

	createInstance            fn
	createDevice              fn
	createGraphicsPipelines   fn
	createDescriptorPool      fn
	allocateDescriptorSets    fn
	updateDescriptorSets      fn
	createShaderModule        fn
	createBuffer              fn
	createImage               fn
	createFramebuffer         fn
	createRenderPass          fn
	queueSubmit               fn
	queuePresentKHR           fn
	cmdBeginRenderPass        fn
	cmdEndRenderPass          fn
	cmdBindPipeline           fn
	cmdBindDescriptorSets     fn
	cmdDrawIndexed            fn

	once sync.Once
	err  error
}

// fn bundles a resolved native proc pointer with its prepared calling
// convention, matching the one-CallInterface-per-function shape the
// teacher's generated vk package uses.
type fn struct {
	proc unsafe.Pointer
	cif  types.CallInterface
}

func newLoader() (*loader, error) {
	l := &loader{}
	l.once.Do(func() { l.err = l.init() })
	if l.err != nil {
		return nil, l.err
	}
	return l, nil
}

func (l *loader) init() error {
	lib, err := ffi.LoadLibrary(vulkanLibraryName())
	if err != nil {
		return fmt.Errorf("load vulkan library %s: %w", vulkanLibraryName(), err)
	}
	l.lib = lib

	l.getInstanceProcAddr, err = ffi.GetSymbol(lib, "vkGetInstanceProcAddr")
	if err != nil {
		return fmt.Errorf("vkGetInstanceProcAddr not found: %w", err)
	}

	ptr := types.PointerTypeDescriptor
	u64 := types.UInt64TypeDescriptor
	i32 := types.SInt32TypeDescriptor

	if err := ffi.PrepareCallInterface(&l.cifGetInstanceProc, types.DefaultCall, ptr,
		[]*types.TypeDescriptor{u64, ptr}); err != nil {
		return fmt.Errorf("prepare GetInstanceProcAddr: %w", err)
	}
	if err := ffi.PrepareCallInterface(&l.cifGetDeviceProc, types.DefaultCall, ptr,
		[]*types.TypeDescriptor{u64, ptr}); err != nil {
		return fmt.Errorf("prepare GetDeviceProcAddr: %w", err)
	}

	// Stage 1 (global, no instance yet): only vkCreateInstance is needed
	// before an instance exists.
	l.createInstance.proc = l.instanceProc(0, "vkCreateInstance")
	if l.createInstance.proc == nil {
		return fmt.Errorf("vkCreateInstance not found")
	}
	if err := ffi.PrepareCallInterface(&l.createInstance.cif, types.DefaultCall, i32,
		[]*types.TypeDescriptor{ptr, ptr, ptr}); err != nil {
		return fmt.Errorf("prepare vkCreateInstance: %w", err)
	}
	return nil
}

func (l *loader) instanceProc(instance uint64, name string) unsafe.Pointer {
	cname := append([]byte(name), 0)
	var result unsafe.Pointer
	namePtr := unsafe.Pointer(&cname[0])
	args := [2]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&namePtr)}
	_ = ffi.CallFunction(&l.cifGetInstanceProc, l.getInstanceProcAddr, unsafe.Pointer(&result), args[:])
	return result
}

// loadInstanceLevel resolves every instance-level entry point this backend
// issues once an instance handle exists. Called from Device setup, after
// vkCreateInstance and before vkCreateDevice.
func (l *loader) loadInstanceLevel(instance uint64) error {
	ptr := types.PointerTypeDescriptor
	u64 := types.UInt64TypeDescriptor
	u32 := types.UInt32TypeDescriptor
	i32 := types.SInt32TypeDescriptor

	need := []struct {
		name *fn
		sym  string
		args []*types.TypeDescriptor
	}{
		{&l.createDevice, "vkCreateDevice", []*types.TypeDescriptor{u64, ptr, ptr, ptr}},
	}
	for _, n := range need {
		n.name.proc = l.instanceProc(instance, n.sym)
		if n.name.proc == nil {
			return fmt.Errorf("%s not found on this instance", n.sym)
		}
		if err := ffi.PrepareCallInterface(&n.name.cif, types.DefaultCall, i32, n.args); err != nil {
			return fmt.Errorf("prepare %s: %w", n.sym, err)
		}
	}

	// vkGetDeviceProcAddr needs instance-level resolution on some drivers
	// (Intel) that reject vkGetInstanceProcAddr(NULL, "vkGetDeviceProcAddr").
	l.getDeviceProcAddr = l.instanceProc(instance, "vkGetDeviceProcAddr")
	_ = u32
	return nil
}

// loadDeviceLevel resolves the device/queue/command-buffer entry points the
// frame graph issues once per frame, after vkCreateDevice.
func (l *loader) loadDeviceLevel(device uint64) error {
	ptr := types.PointerTypeDescriptor
	u64 := types.UInt64TypeDescriptor
	u32 := types.UInt32TypeDescriptor
	i32 := types.SInt32TypeDescriptor
	void := types.VoidTypeDescriptor

	result := []struct {
		name *fn
		sym  string
		ret  *types.TypeDescriptor
		args []*types.TypeDescriptor
	}{
		{&l.createGraphicsPipelines, "vkCreateGraphicsPipelines", i32, []*types.TypeDescriptor{u64, u64, u32, ptr, ptr, ptr}},
		{&l.createDescriptorPool, "vkCreateDescriptorPool", i32, []*types.TypeDescriptor{u64, ptr, ptr, ptr}},
		{&l.allocateDescriptorSets, "vkAllocateDescriptorSets", i32, []*types.TypeDescriptor{u64, ptr, ptr}},
		{&l.updateDescriptorSets, "vkUpdateDescriptorSets", void, []*types.TypeDescriptor{u64, u32, ptr, u32, ptr}},
		{&l.createShaderModule, "vkCreateShaderModule", i32, []*types.TypeDescriptor{u64, ptr, ptr, ptr}},
		{&l.createBuffer, "vkCreateBuffer", i32, []*types.TypeDescriptor{u64, ptr, ptr, ptr}},
		{&l.createImage, "vkCreateImage", i32, []*types.TypeDescriptor{u64, ptr, ptr, ptr}},
		{&l.createFramebuffer, "vkCreateFramebuffer", i32, []*types.TypeDescriptor{u64, ptr, ptr, ptr}},
		{&l.createRenderPass, "vkCreateRenderPass", i32, []*types.TypeDescriptor{u64, ptr, ptr, ptr}},
		{&l.queueSubmit, "vkQueueSubmit", i32, []*types.TypeDescriptor{u64, u32, ptr, u64}},
		{&l.queuePresentKHR, "vkQueuePresentKHR", i32, []*types.TypeDescriptor{u64, ptr}},
		{&l.cmdBeginRenderPass, "vkCmdBeginRenderPass", void, []*types.TypeDescriptor{u64, ptr, i32}},
		{&l.cmdEndRenderPass, "vkCmdEndRenderPass", void, []*types.TypeDescriptor{u64}},
		{&l.cmdBindPipeline, "vkCmdBindPipeline", void, []*types.TypeDescriptor{u64, i32, u64}},
		{&l.cmdBindDescriptorSets, "vkCmdBindDescriptorSets", void, []*types.TypeDescriptor{u64, i32, u64, u32, u32, ptr, u32, ptr}},
		{&l.cmdDrawIndexed, "vkCmdDrawIndexed", void, []*types.TypeDescriptor{u64, u32, u32, u32, i32, u32}},
	}
	for _, r := range result {
		r.name.proc = l.deviceProc(device, r.sym)
		if r.name.proc == nil {
			return fmt.Errorf("%s not found on this device", r.sym)
		}
		if err := ffi.PrepareCallInterface(&r.name.cif, types.DefaultCall, r.ret, r.args); err != nil {
			return fmt.Errorf("prepare %s: %w", r.sym, err)
		}
	}
	return nil
}

func (l *loader) deviceProc(device uint64, name string) unsafe.Pointer {
	if l.getDeviceProcAddr == nil {
		l.getDeviceProcAddr = l.instanceProc(0, "vkGetDeviceProcAddr")
		if l.getDeviceProcAddr == nil {
			return nil
		}
	}
	cname := append([]byte(name), 0)
	var result unsafe.Pointer
	namePtr := unsafe.Pointer(&cname[0])
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&namePtr)}
	_ = ffi.CallFunction(&l.cifGetDeviceProc, l.getDeviceProcAddr, unsafe.Pointer(&result), args[:])
	return result
}

func (l *loader) close() error {
	if l.lib != nil {
		err := ffi.FreeLibrary(l.lib)
		l.lib = nil
		return err
	}
	return nil
}
