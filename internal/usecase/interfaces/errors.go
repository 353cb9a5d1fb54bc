package interfaces

import "errors"

// Referential-integrity failures detected by the store itself.
var (
	ErrReferencedAccountMissing = errors.New("referenced account does not exist")
	ErrAccountStillReferenced   = errors.New("account is still referenced by demands")
)
