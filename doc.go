// Package tracing implements the notification gate and handle registration
// machine behind a host-side API tracing facility for an OpenCL-like
// compute runtime. Before and after every externally exposed API entry
// point, the runtime notifies zero or more registered observers with a
// structured record describing the call.
//
// # Architecture
//
// A [Gate] ties together four pieces:
//   - a single packed 32-bit atomic state word (see state.go) encoding an
//     ENABLED bit, a LOCKED bit, and a client count, which makes admission
//     and management mutually exclusive without ever taking a mutex on the
//     hot path;
//   - a fixed-capacity dense [Handle] table (table.go), mutated only while
//     the state word is locked and quiesced;
//   - a monotonically increasing correlation counter (correlation.go) that
//     lets observers pair an ENTER notification with its matching EXIT;
//   - a per-goroutine reentrancy guard (reentrancy.go) that turns a
//     callback re-entering a traced function into a silent no-op instead
//     of unbounded recursion.
//
// [Gate.Enter] and [Gate.Exit] bracket every traced API call. Enter returns
// a token that must be passed to the matching Exit exactly once; between
// the two, enabled handles are notified in slot order with a
// [CallbackData] value that is stable across the pair except for its Site
// and ReturnValue fields.
//
// The management surface ([Gate.CreateHandle], [Gate.SetTracingPoint],
// [Gate.Enable], [Gate.Disable], [Gate.GetState], [Gate.DestroyHandle])
// registers observers and flips them in and out of the handle table.
//
// # Thread Safety
//
// Every exported Gate method is safe to call from any goroutine
// concurrently. When tracing is off, Enter is a single atomic load. When
// tracing is on, Enter and Exit each take the reentrancy guard's short
// mutex once, and admission spins with exponential backoff (backoff.go)
// against the state word and, at worst, against a concurrent management
// operation holding the lock briefly while the table is mutated.
//
// # Usage
//
//	gate := tracing.NewGate(tracing.WithLogger(tracing.NewDefaultLogger(tracing.LevelInfo)))
//
//	h, err := gate.CreateHandle(func(fn tracing.FunctionID, data *tracing.CallbackData, userData interface{}) {
//	    fmt.Printf("%s %s corr=%d\n", fn, data.Site, data.CorrelationID)
//	}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := gate.SetTracingPoint(h, tracing.FunctionCreateContext, true); err != nil {
//	    log.Fatal(err)
//	}
//	if err := gate.Enable(h); err != nil {
//	    log.Fatal(err)
//	}
//
//	c := gate.Enter(tracing.FunctionCreateContext, "clCreateContext", params)
//	ctx := doCreateContext(params)
//	gate.Exit(tracing.FunctionCreateContext, c, ctx)
//
// # Error Types
//
// The management API reports failures using typed errors:
//   - [InvalidArgumentError]: null handle, unknown function id, duplicate
//     enable, disable of a handle not in the table, or destroy of a
//     handle still in the table
//   - [OutOfResourcesError]: Enable attempted against a full handle table
//   - [OutOfMemoryError]: reserved for allocation failure during create
//
// All three implement [error] and [errors.Unwrap].
package tracing
