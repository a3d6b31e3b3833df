// Package errors provides structured error handling for tavern-api.
//
// Errors carry a stable machine-readable Code, a human-readable Message,
// optional Meta context, and an optional wrapped Cause. Game rule failures
// (SLOT_FULL, CARD_NOT_OWNED, INVALID_TARGET, CONFLICT, ...) are first-class
// codes so the transport layer can map them without string matching.
//
// Creating errors:
//
//	err := errors.SlotFullf("hp slot is at capacity %d", cap)
//	err := errors.CardNotFound("card not in catalog").WithMeta("card_id", id)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load game session")
//	}
//
// Checking errors:
//
//	if errors.IsConflict(err) {
//	    // reload and retry
//	}
//
// Each code maps to an HTTP status (Code.HTTPStatus), a gRPC code
// (Code.GRPCCode), and a remediation hint (Code.Hint) for callers.
//
// Validation of inputs and constructor configs uses ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.SessionRepo == nil {
//	    vb.RequiredField("SessionRepo")
//	}
//	return vb.Build()
package errors
