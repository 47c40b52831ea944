// Package errors provides structured error handling for the VN engine.
//
// Errors carry a code, a message, optional metadata, and a wrapped cause:
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.Unavailable("sprite storage rejected scan").
//	    WithMeta("character_id", id)
//
// Wrapping preserves the original code and metadata:
//
//	if err := repo.ScanAndSync(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to refresh sprite inventory")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // roster inconsistency: omit the slot, keep rendering
//	}
//
// Layer guidelines mirror the error taxonomy of the engine: repositories
// return NotFound/Unavailable/Internal; the resolver consumes every error
// and degrades to a placeholder; the orchestrator only ever returns
// InvalidArgument for malformed input. Nothing in this engine has a fatal
// error class.
package errors
