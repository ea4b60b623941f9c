package useragent

import "errors"

// Detection never fails: unmatched patterns degrade to "", false or the
// documented platform defaults. The errors below cover configuration only.
var (
	ErrLoadingAssumptions     = errors.New("failed to load user agent assumptions from environment")
	ErrConflictingAssumptions = errors.New("conflicting user agent assumptions")
)
