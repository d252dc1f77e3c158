// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

// FunctionID identifies one host API entry point. Values are dense and
// contiguous starting at zero, matching the cl_intel_tracing extension's
// cl_function_id enum, so they can be used directly as bit indices into a
// handle's function mask (see handle.go).
type FunctionID uint32

// FunctionCount is the number of distinct FunctionID values. Handle masks
// are sized to hold exactly this many bits.
const FunctionCount FunctionID = 118

const (
	FunctionBuildProgram                           FunctionID = 0
	FunctionCloneKernel                            FunctionID = 1
	FunctionCompileProgram                         FunctionID = 2
	FunctionCreateBuffer                           FunctionID = 3
	FunctionCreateCommandQueue                     FunctionID = 4
	FunctionCreateCommandQueueWithProperties       FunctionID = 5
	FunctionCreateContext                          FunctionID = 6
	FunctionCreateContextFromType                  FunctionID = 7
	FunctionCreateFromGLBuffer                     FunctionID = 8
	FunctionCreateFromGLRenderbuffer               FunctionID = 9
	FunctionCreateFromGLTexture                    FunctionID = 10
	FunctionCreateFromGLTexture2D                  FunctionID = 11
	FunctionCreateFromGLTexture3D                  FunctionID = 12
	FunctionCreateImage                            FunctionID = 13
	FunctionCreateImage2D                          FunctionID = 14
	FunctionCreateImage3D                          FunctionID = 15
	FunctionCreateKernel                           FunctionID = 16
	FunctionCreateKernelsInProgram                 FunctionID = 17
	FunctionCreatePipe                             FunctionID = 18
	FunctionCreateProgramWithBinary                FunctionID = 19
	FunctionCreateProgramWithBuiltInKernels        FunctionID = 20
	FunctionCreateProgramWithIL                    FunctionID = 21
	FunctionCreateProgramWithSource                FunctionID = 22
	FunctionCreateSampler                          FunctionID = 23
	FunctionCreateSamplerWithProperties            FunctionID = 24
	FunctionCreateSubBuffer                        FunctionID = 25
	FunctionCreateSubDevices                       FunctionID = 26
	FunctionCreateUserEvent                        FunctionID = 27
	FunctionEnqueueAcquireGLObjects                FunctionID = 28
	FunctionEnqueueBarrier                         FunctionID = 29
	FunctionEnqueueBarrierWithWaitList             FunctionID = 30
	FunctionEnqueueCopyBuffer                      FunctionID = 31
	FunctionEnqueueCopyBufferRect                  FunctionID = 32
	FunctionEnqueueCopyBufferToImage               FunctionID = 33
	FunctionEnqueueCopyImage                       FunctionID = 34
	FunctionEnqueueCopyImageToBuffer               FunctionID = 35
	FunctionEnqueueFillBuffer                      FunctionID = 36
	FunctionEnqueueFillImage                       FunctionID = 37
	FunctionEnqueueMapBuffer                       FunctionID = 38
	FunctionEnqueueMapImage                        FunctionID = 39
	FunctionEnqueueMarker                          FunctionID = 40
	FunctionEnqueueMarkerWithWaitList              FunctionID = 41
	FunctionEnqueueMigrateMemObjects               FunctionID = 42
	FunctionEnqueueNDRangeKernel                   FunctionID = 43
	FunctionEnqueueNativeKernel                    FunctionID = 44
	FunctionEnqueueReadBuffer                      FunctionID = 45
	FunctionEnqueueReadBufferRect                  FunctionID = 46
	FunctionEnqueueReadImage                       FunctionID = 47
	FunctionEnqueueReleaseGLObjects                FunctionID = 48
	FunctionEnqueueSVMFree                         FunctionID = 49
	FunctionEnqueueSVMMap                          FunctionID = 50
	FunctionEnqueueSVMMemFill                      FunctionID = 51
	FunctionEnqueueSVMMemcpy                       FunctionID = 52
	FunctionEnqueueSVMMigrateMem                   FunctionID = 53
	FunctionEnqueueSVMUnmap                        FunctionID = 54
	FunctionEnqueueTask                            FunctionID = 55
	FunctionEnqueueUnmapMemObject                  FunctionID = 56
	FunctionEnqueueWaitForEvents                   FunctionID = 57
	FunctionEnqueueWriteBuffer                     FunctionID = 58
	FunctionEnqueueWriteBufferRect                 FunctionID = 59
	FunctionEnqueueWriteImage                      FunctionID = 60
	FunctionFinish                                 FunctionID = 61
	FunctionFlush                                  FunctionID = 62
	FunctionGetCommandQueueInfo                    FunctionID = 63
	FunctionGetContextInfo                         FunctionID = 64
	FunctionGetDeviceAndHostTimer                  FunctionID = 65
	FunctionGetDeviceIDs                           FunctionID = 66
	FunctionGetDeviceInfo                          FunctionID = 67
	FunctionGetEventInfo                           FunctionID = 68
	FunctionGetEventProfilingInfo                  FunctionID = 69
	FunctionGetExtensionFunctionAddress            FunctionID = 70
	FunctionGetExtensionFunctionAddressForPlatform FunctionID = 71
	FunctionGetGLObjectInfo                        FunctionID = 72
	FunctionGetGLTextureInfo                       FunctionID = 73
	FunctionGetHostTimer                           FunctionID = 74
	FunctionGetImageInfo                           FunctionID = 75
	FunctionGetKernelArgInfo                       FunctionID = 76
	FunctionGetKernelInfo                          FunctionID = 77
	FunctionGetKernelSubGroupInfo                  FunctionID = 78
	FunctionGetKernelWorkGroupInfo                 FunctionID = 79
	FunctionGetMemObjectInfo                       FunctionID = 80
	FunctionGetPipeInfo                            FunctionID = 81
	FunctionGetPlatformIDs                         FunctionID = 82
	FunctionGetPlatformInfo                        FunctionID = 83
	FunctionGetProgramBuildInfo                    FunctionID = 84
	FunctionGetProgramInfo                         FunctionID = 85
	FunctionGetSamplerInfo                         FunctionID = 86
	FunctionGetSupportedImageFormats               FunctionID = 87
	FunctionLinkProgram                            FunctionID = 88
	FunctionReleaseCommandQueue                    FunctionID = 89
	FunctionReleaseContext                         FunctionID = 90
	FunctionReleaseDevice                          FunctionID = 91
	FunctionReleaseEvent                           FunctionID = 92
	FunctionReleaseKernel                          FunctionID = 93
	FunctionReleaseMemObject                       FunctionID = 94
	FunctionReleaseProgram                         FunctionID = 95
	FunctionReleaseSampler                         FunctionID = 96
	FunctionRetainCommandQueue                     FunctionID = 97
	FunctionRetainContext                          FunctionID = 98
	FunctionRetainDevice                           FunctionID = 99
	FunctionRetainEvent                            FunctionID = 100
	FunctionRetainKernel                           FunctionID = 101
	FunctionRetainMemObject                        FunctionID = 102
	FunctionRetainProgram                          FunctionID = 103
	FunctionRetainSampler                          FunctionID = 104
	FunctionSVMAlloc                               FunctionID = 105
	FunctionSVMFree                                FunctionID = 106
	FunctionSetCommandQueueProperty                FunctionID = 107
	FunctionSetDefaultDeviceCommandQueue           FunctionID = 108
	FunctionSetEventCallback                       FunctionID = 109
	FunctionSetKernelArg                           FunctionID = 110
	FunctionSetKernelArgSVMPointer                 FunctionID = 111
	FunctionSetKernelExecInfo                      FunctionID = 112
	FunctionSetMemObjectDestructorCallback         FunctionID = 113
	FunctionSetUserEventStatus                     FunctionID = 114
	FunctionUnloadCompiler                         FunctionID = 115
	FunctionUnloadPlatformCompiler                 FunctionID = 116
	FunctionWaitForEvents                          FunctionID = 117
)

var functionNames = [FunctionCount]string{
	FunctionBuildProgram:                           "clBuildProgram",
	FunctionCloneKernel:                            "clCloneKernel",
	FunctionCompileProgram:                         "clCompileProgram",
	FunctionCreateBuffer:                           "clCreateBuffer",
	FunctionCreateCommandQueue:                     "clCreateCommandQueue",
	FunctionCreateCommandQueueWithProperties:       "clCreateCommandQueueWithProperties",
	FunctionCreateContext:                          "clCreateContext",
	FunctionCreateContextFromType:                  "clCreateContextFromType",
	FunctionCreateFromGLBuffer:                     "clCreateFromGLBuffer",
	FunctionCreateFromGLRenderbuffer:               "clCreateFromGLRenderbuffer",
	FunctionCreateFromGLTexture:                    "clCreateFromGLTexture",
	FunctionCreateFromGLTexture2D:                  "clCreateFromGLTexture2D",
	FunctionCreateFromGLTexture3D:                  "clCreateFromGLTexture3D",
	FunctionCreateImage:                            "clCreateImage",
	FunctionCreateImage2D:                          "clCreateImage2D",
	FunctionCreateImage3D:                          "clCreateImage3D",
	FunctionCreateKernel:                           "clCreateKernel",
	FunctionCreateKernelsInProgram:                 "clCreateKernelsInProgram",
	FunctionCreatePipe:                             "clCreatePipe",
	FunctionCreateProgramWithBinary:                "clCreateProgramWithBinary",
	FunctionCreateProgramWithBuiltInKernels:        "clCreateProgramWithBuiltInKernels",
	FunctionCreateProgramWithIL:                    "clCreateProgramWithIL",
	FunctionCreateProgramWithSource:                "clCreateProgramWithSource",
	FunctionCreateSampler:                          "clCreateSampler",
	FunctionCreateSamplerWithProperties:            "clCreateSamplerWithProperties",
	FunctionCreateSubBuffer:                        "clCreateSubBuffer",
	FunctionCreateSubDevices:                       "clCreateSubDevices",
	FunctionCreateUserEvent:                        "clCreateUserEvent",
	FunctionEnqueueAcquireGLObjects:                "clEnqueueAcquireGLObjects",
	FunctionEnqueueBarrier:                         "clEnqueueBarrier",
	FunctionEnqueueBarrierWithWaitList:             "clEnqueueBarrierWithWaitList",
	FunctionEnqueueCopyBuffer:                      "clEnqueueCopyBuffer",
	FunctionEnqueueCopyBufferRect:                  "clEnqueueCopyBufferRect",
	FunctionEnqueueCopyBufferToImage:               "clEnqueueCopyBufferToImage",
	FunctionEnqueueCopyImage:                       "clEnqueueCopyImage",
	FunctionEnqueueCopyImageToBuffer:               "clEnqueueCopyImageToBuffer",
	FunctionEnqueueFillBuffer:                      "clEnqueueFillBuffer",
	FunctionEnqueueFillImage:                       "clEnqueueFillImage",
	FunctionEnqueueMapBuffer:                       "clEnqueueMapBuffer",
	FunctionEnqueueMapImage:                        "clEnqueueMapImage",
	FunctionEnqueueMarker:                          "clEnqueueMarker",
	FunctionEnqueueMarkerWithWaitList:              "clEnqueueMarkerWithWaitList",
	FunctionEnqueueMigrateMemObjects:               "clEnqueueMigrateMemObjects",
	FunctionEnqueueNDRangeKernel:                   "clEnqueueNDRangeKernel",
	FunctionEnqueueNativeKernel:                    "clEnqueueNativeKernel",
	FunctionEnqueueReadBuffer:                      "clEnqueueReadBuffer",
	FunctionEnqueueReadBufferRect:                  "clEnqueueReadBufferRect",
	FunctionEnqueueReadImage:                       "clEnqueueReadImage",
	FunctionEnqueueReleaseGLObjects:                "clEnqueueReleaseGLObjects",
	FunctionEnqueueSVMFree:                         "clEnqueueSVMFree",
	FunctionEnqueueSVMMap:                          "clEnqueueSVMMap",
	FunctionEnqueueSVMMemFill:                      "clEnqueueSVMMemFill",
	FunctionEnqueueSVMMemcpy:                       "clEnqueueSVMMemcpy",
	FunctionEnqueueSVMMigrateMem:                   "clEnqueueSVMMigrateMem",
	FunctionEnqueueSVMUnmap:                        "clEnqueueSVMUnmap",
	FunctionEnqueueTask:                            "clEnqueueTask",
	FunctionEnqueueUnmapMemObject:                  "clEnqueueUnmapMemObject",
	FunctionEnqueueWaitForEvents:                   "clEnqueueWaitForEvents",
	FunctionEnqueueWriteBuffer:                     "clEnqueueWriteBuffer",
	FunctionEnqueueWriteBufferRect:                 "clEnqueueWriteBufferRect",
	FunctionEnqueueWriteImage:                      "clEnqueueWriteImage",
	FunctionFinish:                                 "clFinish",
	FunctionFlush:                                  "clFlush",
	FunctionGetCommandQueueInfo:                    "clGetCommandQueueInfo",
	FunctionGetContextInfo:                         "clGetContextInfo",
	FunctionGetDeviceAndHostTimer:                  "clGetDeviceAndHostTimer",
	FunctionGetDeviceIDs:                           "clGetDeviceIDs",
	FunctionGetDeviceInfo:                          "clGetDeviceInfo",
	FunctionGetEventInfo:                           "clGetEventInfo",
	FunctionGetEventProfilingInfo:                  "clGetEventProfilingInfo",
	FunctionGetExtensionFunctionAddress:            "clGetExtensionFunctionAddress",
	FunctionGetExtensionFunctionAddressForPlatform: "clGetExtensionFunctionAddressForPlatform",
	FunctionGetGLObjectInfo:                        "clGetGLObjectInfo",
	FunctionGetGLTextureInfo:                       "clGetGLTextureInfo",
	FunctionGetHostTimer:                           "clGetHostTimer",
	FunctionGetImageInfo:                           "clGetImageInfo",
	FunctionGetKernelArgInfo:                       "clGetKernelArgInfo",
	FunctionGetKernelInfo:                          "clGetKernelInfo",
	FunctionGetKernelSubGroupInfo:                  "clGetKernelSubGroupInfo",
	FunctionGetKernelWorkGroupInfo:                 "clGetKernelWorkGroupInfo",
	FunctionGetMemObjectInfo:                       "clGetMemObjectInfo",
	FunctionGetPipeInfo:                            "clGetPipeInfo",
	FunctionGetPlatformIDs:                         "clGetPlatformIDs",
	FunctionGetPlatformInfo:                        "clGetPlatformInfo",
	FunctionGetProgramBuildInfo:                    "clGetProgramBuildInfo",
	FunctionGetProgramInfo:                         "clGetProgramInfo",
	FunctionGetSamplerInfo:                         "clGetSamplerInfo",
	FunctionGetSupportedImageFormats:               "clGetSupportedImageFormats",
	FunctionLinkProgram:                            "clLinkProgram",
	FunctionReleaseCommandQueue:                    "clReleaseCommandQueue",
	FunctionReleaseContext:                         "clReleaseContext",
	FunctionReleaseDevice:                          "clReleaseDevice",
	FunctionReleaseEvent:                           "clReleaseEvent",
	FunctionReleaseKernel:                          "clReleaseKernel",
	FunctionReleaseMemObject:                       "clReleaseMemObject",
	FunctionReleaseProgram:                         "clReleaseProgram",
	FunctionReleaseSampler:                         "clReleaseSampler",
	FunctionRetainCommandQueue:                     "clRetainCommandQueue",
	FunctionRetainContext:                          "clRetainContext",
	FunctionRetainDevice:                           "clRetainDevice",
	FunctionRetainEvent:                            "clRetainEvent",
	FunctionRetainKernel:                           "clRetainKernel",
	FunctionRetainMemObject:                        "clRetainMemObject",
	FunctionRetainProgram:                          "clRetainProgram",
	FunctionRetainSampler:                          "clRetainSampler",
	FunctionSVMAlloc:                               "clSVMAlloc",
	FunctionSVMFree:                                "clSVMFree",
	FunctionSetCommandQueueProperty:                "clSetCommandQueueProperty",
	FunctionSetDefaultDeviceCommandQueue:           "clSetDefaultDeviceCommandQueue",
	FunctionSetEventCallback:                       "clSetEventCallback",
	FunctionSetKernelArg:                           "clSetKernelArg",
	FunctionSetKernelArgSVMPointer:                 "clSetKernelArgSVMPointer",
	FunctionSetKernelExecInfo:                      "clSetKernelExecInfo",
	FunctionSetMemObjectDestructorCallback:         "clSetMemObjectDestructorCallback",
	FunctionSetUserEventStatus:                     "clSetUserEventStatus",
	FunctionUnloadCompiler:                         "clUnloadCompiler",
	FunctionUnloadPlatformCompiler:                 "clUnloadPlatformCompiler",
	FunctionWaitForEvents:                          "clWaitForEvents",
}

// String returns the host API symbol this id names, e.g. "clCreateContext".
// Out-of-range ids return a placeholder rather than panicking, since this is
// primarily used for logging.
func (f FunctionID) String() string {
	if f >= FunctionCount {
		return "clFunctionUnknown"
	}
	return functionNames[f]
}

// Site identifies whether a callback fires on entry to or exit from the
// traced API call, matching the cl_intel_tracing extension's
// cl_callback_site.
type Site uint32

const (
	SiteEnter Site = 0
	SiteExit  Site = 1
)

func (s Site) String() string {
	switch s {
	case SiteEnter:
		return "enter"
	case SiteExit:
		return "exit"
	default:
		return "unknown"
	}
}
