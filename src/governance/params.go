package governance

// Params holds the mutable governance configuration. Only VotingPeriod
// changes after deployment; the field bounds and fee are fixed at init.
type Params struct {
	Fee               uint64
	MaxTitleLen       int
	MaxForumLinkLen   int
	MaxDescriptionLen int
	VotingPeriod      uint64
}

// DefaultParams mirrors the bounds the original dApp form enforces.
func DefaultParams() Params {
	return Params{
		Fee:               1,
		MaxTitleLen:       100,
		MaxForumLinkLen:   200,
		MaxDescriptionLen: 200,
		VotingPeriod:      10,
	}
}

func (p Params) validateFields(title, forumLink, description string) error {
	if title == "" || forumLink == "" || description == "" {
		return ErrFieldEmpty
	}
	if len(title) > p.MaxTitleLen ||
		len(forumLink) > p.MaxForumLinkLen ||
		len(description) > p.MaxDescriptionLen {
		return ErrFieldTooLong
	}
	return nil
}

// chargeFee requires the exact fee, not a minimum.
func (p Params) chargeFee(paid uint64) error {
	if paid != p.Fee {
		return ErrInsufficientFee
	}
	return nil
}
