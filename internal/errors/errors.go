// Package errors defines the sentinel-error taxonomy shared by the
// splitting, dispersal, and streaming layers. Every layer-local
// ErrContractViolation / ErrInvalidData is this package's ContractViolation
// / InvalidData under a package-qualified name, so callers can check
// errors.Is against either the local alias or this shared root regardless
// of which layer raised it.
package errors

import "errors"

// ContractViolation marks a violated precondition: a threshold or share
// count outside its valid range, duplicate or zero share indices, or an
// internal invariant a correct caller should never trip. Not recovered;
// callers are expected to fix the call site, not retry.
var ContractViolation = errors.New("contract violation")

// InvalidData marks malformed input discovered only at runtime: a missing
// or misplaced padding marker, a decrypt stream flushed with a partial
// block, or a padded stream whose length isn't block-aligned on decode.
var InvalidData = errors.New("invalid data")
