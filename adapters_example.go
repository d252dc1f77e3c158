// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

// A handful of representative per-function adapters, in the shape of the
// generated Tracing{ClCreateContext,ClGetDeviceInfo,...} wrapper classes a
// full runtime would produce one per traced entry point, roughly 110 of
// them. These four are enough to demonstrate the Trace seam from shim.go
// without reproducing the whole generated surface.

// ContextParams is the parameter record for clCreateContext, standing in
// for a generated ClCreateContextTracingParams struct.
type ContextParams struct {
	Properties []uintptr
	NumDevices uint32
}

// Context is a placeholder for the runtime's real context handle type.
type Context struct{ ID uint64 }

// CreateContext is the shim adapter for clCreateContext: it traces the
// call and delegates the actual work to impl.
func CreateContext(g *Gate, props []uintptr, numDevices uint32, impl func(ContextParams) *Context) *Context {
	params := ContextParams{Properties: props, NumDevices: numDevices}
	result := g.Trace(FunctionCreateContext, "clCreateContext", params, func() interface{} {
		return impl(params)
	})
	ctx, _ := result.(*Context)
	return ctx
}

// ReleaseContext is the shim adapter for clReleaseContext.
func ReleaseContext(g *Gate, ctx *Context, impl func(*Context) int32) int32 {
	result := g.Trace(FunctionReleaseContext, "clReleaseContext", ctx, func() interface{} {
		return impl(ctx)
	})
	code, _ := result.(int32)
	return code
}

// DeviceInfoParams is the parameter record for clGetDeviceInfo.
type DeviceInfoParams struct {
	DeviceID   uint64
	ParamName  uint32
	ParamValue []byte
}

// GetDeviceInfo is the shim adapter for clGetDeviceInfo.
func GetDeviceInfo(g *Gate, deviceID uint64, paramName uint32, out []byte, impl func(DeviceInfoParams) int32) int32 {
	params := DeviceInfoParams{DeviceID: deviceID, ParamName: paramName, ParamValue: out}
	result := g.Trace(FunctionGetDeviceInfo, "clGetDeviceInfo", params, func() interface{} {
		return impl(params)
	})
	code, _ := result.(int32)
	return code
}

// PlatformInfoParams is the parameter record for clGetPlatformInfo.
type PlatformInfoParams struct {
	PlatformID uint64
	ParamName  uint32
	ParamValue []byte
}

// GetPlatformInfo is the shim adapter for clGetPlatformInfo.
func GetPlatformInfo(g *Gate, platformID uint64, paramName uint32, out []byte, impl func(PlatformInfoParams) int32) int32 {
	params := PlatformInfoParams{PlatformID: platformID, ParamName: paramName, ParamValue: out}
	result := g.Trace(FunctionGetPlatformInfo, "clGetPlatformInfo", params, func() interface{} {
		return impl(params)
	})
	code, _ := result.(int32)
	return code
}
