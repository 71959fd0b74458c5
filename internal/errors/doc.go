// Package errors provides the coded error type shared by every layer of talent-api.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFoundf("talent %q not found", id).
//	    WithMeta("tree", treeName).
//	    WithMeta("talent_id", id)
//
// Wrap keeps the code of a wrapped *Error so a repository NotFound stays NotFound
// after the orchestrator adds context:
//
//	if err := src.Load(ctx); err != nil {
//	    return errors.Wrap(err, "failed to load talent trees")
//	}
//
// Configuration problems found while loading tree definitions use
// CodeInvalidConfiguration (see InvalidConfiguration). References to unknown
// trees or talents use CodeNotFound.
//
// Rejected allocations (capped, locked, nothing to reclaim) are not errors and
// never pass through this package.
//
// Handlers convert with ToGRPCError for gRPC and Code.HTTPStatus for HTTP.
package errors
