// Package errors provides structured errors for the monster generator.
//
// Every error carries a Code that maps onto both an HTTP status and a gRPC
// code, so the REST and gRPC handlers render the same failure the same way.
//
// # Basic Usage
//
//	err := errors.NotFound("saved monster not found").
//	    WithMeta("monster_id", id)
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load monster")
//	}
//
// # Generation errors
//
// The generator never fails because a filter matched nothing; that case falls
// back to procedural synthesis. It only fails when the static tables are
// broken, and those failures carry CodeTableIntegrity:
//
//	if len(pool) == 0 {
//	    return errors.TableIntegrityf("empty %s pool", name)
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("monster_id", input.MonsterID, vb)
//	errors.ValidateRange("count", input.Count, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound / Expired for missing or stale records
//   - Wrap redis errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository and generator errors with business context
//
// Handler layer:
//   - REST: status from Code.HTTPStatus(), body {"error": {code, message}}
//   - gRPC: ToGRPCError
package errors
