package governance

import "errors"

var (
	// ErrFieldTooLong indicates a proposal text field exceeds its configured bound.
	ErrFieldTooLong = errors.New("field exceeds maximum length")

	// ErrFieldEmpty indicates a required proposal text field is empty.
	ErrFieldEmpty = errors.New("field is empty")

	// ErrInsufficientFee indicates the paid amount does not match the proposal fee.
	ErrInsufficientFee = errors.New("insufficient proposal fee")

	// ErrNotFound indicates the proposal id is out of range.
	ErrNotFound = errors.New("proposal not found")

	// ErrProposalNotActive indicates the proposal is past its voting window.
	ErrProposalNotActive = errors.New("proposal is not active")

	// ErrVotingStillOpen indicates the voting deadline has not been reached.
	ErrVotingStillOpen = errors.New("voting is still open")

	// ErrProposalNotPassed indicates the proposal did not pass.
	ErrProposalNotPassed = errors.New("proposal has not passed")

	// ErrAlreadyExecuted indicates the proposal was already executed.
	ErrAlreadyExecuted = errors.New("proposal already executed")

	// ErrUnauthorized indicates the caller is not the governance authority.
	ErrUnauthorized = errors.New("caller is not the authority")
)
