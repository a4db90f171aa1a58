// Package errors provides the structured error type shared by the
// orchestrators, repositories and gRPC handlers of vtm-api.
//
// The rules engine (internal/rules/...) never returns these errors for dice or
// resource math; those operations normalize their inputs instead. The only
// engine failures are initiative state violations, reported with
// CodeFailedPrecondition (the "invalid state" condition):
//
//	if !order.Active {
//	    return errors.FailedPrecondition("combat has already ended")
//	}
//
// Adding metadata:
//
//	err := errors.NotFound("initiative order not found").
//	    WithMeta("order_id", orderID)
//
// Wrapping keeps the code of the wrapped *Error:
//
//	if err := repo.Update(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save initiative order")
//	}
//
// Validating configs and inputs:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("session_id", input.SessionID, vb)
//	errors.ValidateRange("generation", input.Generation, 3, 16, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Handlers convert with ToGRPCError; clients convert back with FromGRPCError.
package errors
