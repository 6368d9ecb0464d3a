package raid

// RepositoryError is a custom error type for registry errors
type RepositoryError string

// Error implements the error interface
func (e RepositoryError) Error() string {
	return string(e)
}

const (
	ErrRaidNotFound     RepositoryError = "raid not found"
	ErrUnknownPartition RepositoryError = "unknown partition"
	ErrMissingHandle    RepositoryError = "raid has no handle"
	ErrNilInput         RepositoryError = "input cannot be nil"
	ErrNilMutate        RepositoryError = "mutate function cannot be nil"
	ErrNilConfig        RepositoryError = "config cannot be nil"
	ErrNoPartitions     RepositoryError = "at least one partition is required"
	ErrHandleChanged    RepositoryError = "mutation cannot change the raid handle"
)
