package clevercloud

import (
	"encoding/json"
	"fmt"
	"time"
)

// Function is a WebAssembly function owned by an organisation. The function
// itself carries no code; code ships through deployments.
type Function struct {
	ID           string            `json:"id"`
	OwnerID      string            `json:"ownerId"`
	Name         *string           `json:"name,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Tag          *string           `json:"tag,omitempty"`
	Environment  map[string]string `json:"environment"`
	MaxMemory    uint64            `json:"maxMemory"`
	MaxInstances uint64            `json:"maxInstances"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// FunctionOpts is the payload for creating or updating a function. The same
// shape serves both operations; updates replace the stored values.
type FunctionOpts struct {
	Name         *string           `json:"name"`
	Description  *string           `json:"description"`
	Tag          *string           `json:"tag"`
	Environment  map[string]string `json:"environment"`
	MaxMemory    uint64            `json:"maxMemory"`
	MaxInstances uint64            `json:"maxInstances"`
}

// DefaultFunctionOpts returns options with the platform defaults: 512 MiB of
// memory, a single instance and an empty environment.
func DefaultFunctionOpts() *FunctionOpts {
	return &FunctionOpts{
		Environment:  map[string]string{},
		MaxMemory:    512 * 1024 * 1024,
		MaxInstances: 1,
	}
}

// ExecutionSuccess is the outcome of a function run that completed, carrying
// the captured output streams.
type ExecutionSuccess struct {
	Stdout       string  `json:"stdout"`
	Stderr       string  `json:"stderr"`
	Dmesg        string  `json:"dmesg"`
	CurrentPages *uint64 `json:"current_pages"`
}

// ExecutionFailure is the outcome of a function run that the runtime
// rejected or aborted.
type ExecutionFailure struct {
	Error string `json:"error"`
}

// ExecutionResult is the outcome of executing a function, either an
// ExecutionSuccess or an ExecutionFailure. The variant is recovered from the
// response shape on decode.
type ExecutionResult struct {
	success *ExecutionSuccess
	failure *ExecutionFailure
}

// NewExecutionSuccess builds a successful result.
func NewExecutionSuccess(stdout, stderr, dmesg string, currentPages *uint64) *ExecutionResult {
	return &ExecutionResult{success: &ExecutionSuccess{
		Stdout:       stdout,
		Stderr:       stderr,
		Dmesg:        dmesg,
		CurrentPages: currentPages,
	}}
}

// NewExecutionFailure builds a failed result.
func NewExecutionFailure(message string) *ExecutionResult {
	return &ExecutionResult{failure: &ExecutionFailure{Error: message}}
}

// IsOK reports whether the execution completed.
func (r *ExecutionResult) IsOK() bool {
	return r.success != nil
}

// Success returns the success payload. The boolean reports whether the
// execution completed.
func (r *ExecutionResult) Success() (ExecutionSuccess, bool) {
	if r.success == nil {
		return ExecutionSuccess{}, false
	}

	return *r.success, true
}

// Failure returns the failure payload. The boolean reports whether the
// execution failed.
func (r *ExecutionResult) Failure() (ExecutionFailure, bool) {
	if r.failure == nil {
		return ExecutionFailure{}, false
	}

	return *r.failure, true
}

// MarshalJSON implements json.Marshaler, emitting the active variant.
func (r *ExecutionResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.success != nil:
		return json.Marshal(r.success)
	case r.failure != nil:
		return json.Marshal(r.failure)
	default:
		return nil, fmt.Errorf("%w: execution result carries no variant", ErrEncodeRequest)
	}
}

// UnmarshalJSON implements json.Unmarshaler. The success shape is tried
// first: a document carrying stdout, stderr and dmesg decodes as a success
// even when an error field is also present. A document carrying only an
// error field decodes as a failure. Anything else is a decode error.
func (r *ExecutionResult) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage

	err := json.Unmarshal(data, &fields)
	if err != nil {
		return fmt.Errorf("parsing execution result: %w", err)
	}

	_, hasStdout := fields["stdout"]
	_, hasStderr := fields["stderr"]
	_, hasDmesg := fields["dmesg"]
	_, hasError := fields["error"]

	switch {
	case hasStdout && hasStderr && hasDmesg:
		var success ExecutionSuccess
		if err := json.Unmarshal(data, &success); err != nil {
			return fmt.Errorf("parsing execution success: %w", err)
		}

		*r = ExecutionResult{success: &success}
	case hasError:
		var failure ExecutionFailure
		if err := json.Unmarshal(data, &failure); err != nil {
			return fmt.Errorf("parsing execution failure: %w", err)
		}

		*r = ExecutionResult{failure: &failure}
	default:
		return fmt.Errorf("%w: execution result matches neither success nor failure", ErrDecodeResponse)
	}

	return nil
}
